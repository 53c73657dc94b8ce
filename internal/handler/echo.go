package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/randkit/randkit-go/internal/model"
)

const (
	echoReadTimeout  = 5 * time.Minute
	echoWriteTimeout = 10 * time.Second
	echoMaxMessage   = 64 << 10
)

// EchoHandler mirrors input back to the caller.
type EchoHandler struct {
	upgrader websocket.Upgrader
}

// NewEchoHandler creates a new EchoHandler.
func NewEchoHandler() *EchoHandler {
	return &EchoHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Register mounts the echo routes on r.
func (h *EchoHandler) Register(r chi.Router) {
	r.Post("/api/v1/echo", h.HandleEcho)
	r.Get("/api/v1/echo/ws", h.HandleEchoWS)
}

// HandleEcho handles POST /api/v1/echo requests.
func (h *EchoHandler) HandleEcho(w http.ResponseWriter, r *http.Request) {
	var msg model.EchoMessage
	if !decodeJSON(w, r, &msg) {
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// HandleEchoWS handles GET /api/v1/echo/ws. Every data frame is written back unchanged until the
// client goes away or stays idle past the read timeout.
func (h *EchoHandler) HandleEchoWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(echoMaxMessage)
	for {
		conn.SetReadDeadline(time.Now().Add(echoReadTimeout))
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("echo websocket closed", "error", err)
			}
			return
		}

		conn.SetWriteDeadline(time.Now().Add(echoWriteTimeout))
		if err := conn.WriteMessage(kind, data); err != nil {
			slog.Debug("echo websocket write failed", "error", err)
			return
		}
	}
}
