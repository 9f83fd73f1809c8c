package api

import (
	"log/slog"
	"net/http"
	"slices"

	"parking-occupancy/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OccupancyFeed is the hub side of the websocket feed.
type OccupancyFeed interface {
	Subscribe(conn *websocket.Conn) error
}

type RealtimeHandler struct {
	feed     OccupancyFeed
	upgrader websocket.Upgrader
}

func NewRealtimeHandler(feed OccupancyFeed, cfg config.Config) *RealtimeHandler {
	allowed := cfg.CORS.AllowOrigins
	return &RealtimeHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
			},
		},
	}
}

// @Summary Occupancy feed
// @Description Websocket stream of committed occupancy events (session.opened, session.closed, spot.*, tariff.updated)
// @Tags realtime
// @Success 101 "Switching Protocols"
// @Router /ws/occupancy [get]
func (h *RealtimeHandler) Occupancy(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		slog.WarnContext(c.Request.Context(), "websocket upgrade failed", "error", err.Error())
		return
	}
	if err := h.feed.Subscribe(conn); err != nil {
		slog.WarnContext(c.Request.Context(), "websocket subscription rejected", "error", err.Error())
	}
}
