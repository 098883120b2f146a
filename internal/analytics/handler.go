package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the live event stream.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// Stream upgrades the request to a WebSocket and pushes every tracked
// event to the client until it disconnects.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "websocket upgrade failed"})
		return
	}
	h.hub.ServeWS(conn)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/analytics/stream", h.Stream)
}
