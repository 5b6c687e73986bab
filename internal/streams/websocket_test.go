package streams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWSStatusStream_DeliversEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		conn.WriteJSON(models.StatusEvent{ID: "T1", Status: models.StatusProcessing})
		// An event without an id is dropped, not delivered.
		conn.WriteJSON(models.StatusEvent{Status: models.StatusFailed})
		conn.WriteJSON(models.StatusEvent{ID: "T1", Status: models.StatusCompleted, ExternalRef: "X1"})

		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	events := make(chan models.StatusEvent, 4)
	stream := NewWSStatusStream(wsURL, func(e models.StatusEvent) {
		events <- e
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runDone := make(chan error, 1)
	go func() { runDone <- stream.Run(ctx) }()

	expectEvent := func() models.StatusEvent {
		select {
		case e := <-events:
			return e
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for status event")
			return models.StatusEvent{}
		}
	}

	first := expectEvent()
	assert.Equal(t, "T1", first.ID)
	assert.Equal(t, models.StatusProcessing, first.Status)

	second := expectEvent()
	assert.Equal(t, models.StatusCompleted, second.Status)
	assert.Equal(t, "X1", second.ExternalRef)

	cancel()
	select {
	case err := <-runDone:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not stop on context cancel")
	}
}

func TestWSStatusStream_StopsWhenDialFails(t *testing.T) {
	stream := NewWSStatusStream("ws://127.0.0.1:1/status", func(models.StatusEvent) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- stream.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not stop on cancelled context")
	}
}
