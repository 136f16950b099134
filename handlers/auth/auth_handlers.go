package auth

import (
	"net/http"
	"time"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterUser creates a new user account
// @Summary Register a new user
// @Description Create a user profile with a username, email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var request RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", request.Email).Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrEmailInUse)
		return
	}
	database.DB.Model(&models.User{}).Where("username = ?", request.Username).Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrUsernameInUse)
		return
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
		return
	}

	user := models.User{
		Username: request.Username,
		Email:    request.Email,
		Password: hashedPassword,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	token, err := middleware.GenerateToken(user.ID, 24*time.Hour)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}
	setCookieToken(c, token, false)

	c.JSON(http.StatusCreated, AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Points:   user.Points,
		HasToken: user.HasToken,
		Verified: user.Verified,
	})
}

// Login authenticates a user and issues a JWT
// @Summary Log in
// @Description Authenticate with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", request.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		} else {
			response.Error(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	ttl := 24 * time.Hour
	if request.RememberMe {
		ttl = 30 * 24 * time.Hour
	}
	token, err := middleware.GenerateToken(user.ID, ttl)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}
	setCookieToken(c, token, request.RememberMe)

	c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Points:   user.Points,
		HasToken: user.HasToken,
		Verified: user.Verified,
	})
}

// CheckAuth returns the authenticated user's profile if the token is valid
// @Summary Check authentication
// @Description Validate the current token and return the user it belongs to
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
func CheckAuth(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// Logout clears the authentication cookie and the cached session
// @Summary Log out
// @Description Invalidate the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	if userID := c.GetString("user_id"); userID != "" {
		middleware.InvalidateUserCache(c, userID)
	}

	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	response.Message(c, http.StatusOK, "Successfully logged out")
}
