package users

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUserProfile retrieves the authenticated user's profile
// @Summary Get User Profile
// @Description Get the profile information of the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /user/profile [get]
// @Security Bearer
func GetUserProfile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// GetPublicProfile retrieves the public part of any user's profile
// @Summary Get Public Profile
// @Description Get the publicly visible profile of a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} PublicProfile
// @Failure 404 {object} map[string]string
// @Router /users/{id}/profile [get]
func GetPublicProfile(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, PublicProfile{
		ID:       user.ID,
		Username: user.Username,
		Points:   user.Points,
		HasToken: user.HasToken,
		Verified: user.Verified,
	})
}

// UpdateUserProfile updates the authenticated user's username
// @Summary Update User Profile
// @Description Update the profile information of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body ProfileUpdateRequest true "Profile update"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /user/profile [put]
// @Security Bearer
func UpdateUserProfile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var update ProfileUpdateRequest
	if err := c.ShouldBindJSON(&update); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var count int64
	database.DB.Model(&models.User{}).
		Where("username = ? AND id <> ?", update.Username, user.ID).
		Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrUsernameInUse)
		return
	}

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("username", update.Username).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}

	middleware.InvalidateUserCache(c, user.ID)

	var updated models.User
	if err := database.DB.First(&updated, "id = ?", user.ID).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Profile updated but failed to retrieve updated data")
		return
	}
	updated.Password = ""
	c.JSON(http.StatusOK, updated)
}

// LinkWallet stores the user's wallet address, required before purchasing
// @Summary Link Wallet
// @Description Attach a wallet address to the authenticated user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Param wallet body LinkWalletRequest true "Wallet address"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /user/profile/wallet [put]
// @Security Bearer
func LinkWallet(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var request LinkWalletRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("wallet_address", request.WalletAddress).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}

	middleware.InvalidateUserCache(c, user.ID)

	user.WalletAddress = &request.WalletAddress
	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// GetQuizHistory lists the authenticated user's completed quiz results
// @Summary Get Quiz History
// @Description Get the authenticated user's past quiz results, newest first
// @Tags Users
// @Produce json
// @Success 200 {array} models.QuizResult
// @Failure 401 {object} map[string]string
// @Router /user/quiz-history [get]
// @Security Bearer
func GetQuizHistory(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	results, err := services.GetUserQuizResults(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchHistory)
		return
	}

	c.JSON(http.StatusOK, results)
}
