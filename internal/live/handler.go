package live

import (
	"context"
	"errors"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/activityboard/internal/middleware"
)

const (
	// SendBuffer is how many pushes may queue for a slow browser before it
	// is dropped.
	SendBuffer = 16

	writeTimeout = 10 * time.Second
)

// Handler upgrades browser connections and streams hub pushes to them.
type Handler struct {
	hub           *Hub
	defaultLocale string
}

// NewHandler creates a websocket Handler. Connections whose locale was not
// negotiated use defaultLocale.
func NewHandler(hub *Hub, defaultLocale string) *Handler {
	return &Handler{hub: hub, defaultLocale: defaultLocale}
}

// ServeWS handles GET /ws/board. The browser never sends anything; any
// inbound data message closes the connection.
func (h *Handler) ServeWS(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("Failed to upgrade live connection", "error", err)
		return nil
	}

	locale := middleware.LocaleFrom(c)
	if locale == "" {
		locale = h.defaultLocale
	}
	sub := NewSubscriber(uuid.NewString(), locale, SendBuffer)
	if !h.hub.Register(sub) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return nil
	}
	defer h.hub.Unregister(sub)

	ctx := conn.CloseRead(c.Request().Context())
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return nil

		case payload, ok := <-sub.Send:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "subscription closed")
				return nil
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(wctx, websocket.MessageText, payload)
			cancel()
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Warn("Live write failed", "subscriber_id", sub.ID, "error", err)
				}
				conn.Close(websocket.StatusInternalError, "write failed")
				return nil
			}
		}
	}
}
