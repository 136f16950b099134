package users

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to user profiles
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	r.GET("/users/:id/profile", GetPublicProfile)

	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/profile", GetUserProfile)
		user.PUT("/profile", UpdateUserProfile)
		user.PUT("/profile/wallet", LinkWallet)
		user.GET("/quiz-history", GetQuizHistory)
	}
}
