package streams

import (
	"context"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rewardlabs/points-txcore/internal/logger"
	"github.com/rewardlabs/points-txcore/internal/models"
)

// reconnectDelay backs off between failed socket sessions.
const reconnectDelay = 5 * time.Second

// WSStatusStream consumes transaction lifecycle events over a WebSocket.
// The backend replays missed events keyed by transaction id after a
// reconnect, so this client only has to keep the connection alive.
type WSStatusStream struct {
	url     string
	handler EventHandler
	dialer  *websocket.Dialer
}

// NewWSStatusStream creates a client for the status socket.
func NewWSStatusStream(url string, handler EventHandler) *WSStatusStream {
	return &WSStatusStream{
		url:     url,
		handler: handler,
		dialer:  websocket.DefaultDialer,
	}
}

// Run reads events until the context is cancelled, redialing on failure.
func (s *WSStatusStream) Run(ctx context.Context) error {
	for {
		if err := s.session(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Log.Warnw("status socket session ended, reconnecting",
				"url", s.url, "error", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func (s *WSStatusStream) session(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Unblock ReadJSON when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var event models.StatusEvent
		if err := conn.ReadJSON(&event); err != nil {
			if ctx.Err() != nil {
				return context.Canceled
			}
			return err
		}
		if event.ID == "" {
			logger.Log.Errorw("dropping status event without transaction id")
			continue
		}
		s.handler(event)
	}
}
