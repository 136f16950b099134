package quizzes

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the quiz
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	quiz := r.Group("/quiz")
	// Anonymous users can take the quiz; only saving requires an account
	quiz.Use(middleware.SetUserIdMiddleware())
	{
		quiz.GET("/questions", GetQuestions)
		quiz.POST("/attempts", StartAttempt)
		quiz.POST("/attempts/:id/answer", SelectAnswer)
		quiz.POST("/attempts/:id/submit", SubmitAnswer)
		quiz.POST("/attempts/:id/advance", Advance)
	}
}
