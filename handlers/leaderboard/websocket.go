package leaderboard

import (
	"log"
	"net/http"

	"api/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ProfilesTable is the logical channel leaderboard clients subscribe to;
// any points change on it triggers their re-fetch
const ProfilesTable = "profiles"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LeaderboardWebSocket subscribes a client to profile change events. The
// client is unregistered when the connection drops, so subscriptions do not
// leak.
func LeaderboardWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(ProfilesTable, conn)
	defer func() {
		realtime.UnregisterClient(ProfilesTable, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
