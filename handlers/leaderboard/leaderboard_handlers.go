package leaderboard

import (
	"net/http"
	"strconv"

	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the ranked point standings. Clients subscribed to
// the websocket channel call this again whenever a profiles change event
// arrives.
// @Summary Get the leaderboard
// @Description Get the top profiles ranked by points, ties broken by ID
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Number of entries (default 10)"
// @Success 200 {array} services.LeaderboardEntry
// @Failure 500 {object} map[string]string
// @Router /leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	entries, err := services.FetchLeaderboard(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}
	c.JSON(http.StatusOK, entries)
}
