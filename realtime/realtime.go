package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	tableClients = make(map[string]map[*websocket.Conn]bool) // Map of table name to subscribed clients
	broadcast    = make(chan TableChange)                    // Broadcast channel for change events
	mutex        sync.Mutex                                  // Mutex to protect tableClients map
)

// TableChange is a change notification for one table. Subscribers treat it
// as an invalidation signal and re-fetch; delivery is at-least-once, so a
// duplicate event only causes a redundant re-fetch.
type TableChange struct {
	Table  string `json:"table"`
	Action string `json:"action"` // "insert", "update" or "delete"
}

// RegisterClient subscribes a WebSocket client to change events for a table
func RegisterClient(table string, conn *websocket.Conn) {
	mutex.Lock()
	if tableClients[table] == nil {
		tableClients[table] = make(map[*websocket.Conn]bool)
	}
	tableClients[table][conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a table's subscribers
func UnregisterClient(table string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := tableClients[table]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(tableClients, table)
		}
	}
	mutex.Unlock()
}

// BroadcastChange notifies every client subscribed to the changed table
func BroadcastChange(change TableChange) {
	broadcast <- change
}

func handleBroadcast() {
	for {
		change := <-broadcast
		mutex.Lock()
		if clients, exists := tableClients[change.Table]; exists {
			for client := range clients {
				if err := client.WriteJSON(change); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
