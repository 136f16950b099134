package leaderboard

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the leaderboard
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/leaderboard", GetLeaderboard)
	r.GET("/leaderboard/ws", LeaderboardWebSocket)
}
