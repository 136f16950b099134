package v1

import (
	"api/handlers/auth"
	"api/handlers/leaderboard"
	"api/handlers/marketplace"
	"api/handlers/quizzes"
	"api/handlers/users"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	users.RegisterRoutes(v1)
	quizzes.RegisterRoutes(v1)
	marketplace.RegisterRoutes(v1)
	leaderboard.RegisterRoutes(v1)

	// Register metrics and swagger endpoints
	RegisterMetricsRoutes(v1)
	RegisterSwaggerRoutes(v1)
}
