//go:build unit

package realtime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parking-occupancy/internal/infra/realtime"
	"parking-occupancy/internal/usecase/commands"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*realtime.Hub, string, context.CancelFunc) {
	t.Helper()
	hub := realtime.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = hub.Subscribe(conn)
	}))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http"), cancel
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// publishUntilReceived keeps publishing because the subscriber registers asynchronously.
func publishUntilReceived(t *testing.T, hub *realtime.Hub, conn *websocket.Conn, event commands.OccupancyEvent) commands.OccupancyEvent {
	t.Helper()
	received := make(chan struct{})
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-received:
				return
			case <-ticker.C:
				_ = hub.Publish(context.Background(), event)
			}
		}
	}()
	defer close(received)

	// A timed out read leaves the connection unusable, so read once.
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	_ = conn.SetReadDeadline(time.Time{})

	var got commands.OccupancyEvent
	require.NoError(t, json.Unmarshal(raw, &got))
	return got
}

func TestHub_Broadcast(t *testing.T) {
	t.Run("success: subscriber receives published events", func(t *testing.T) {
		hub, url, cancel := startHub(t)
		defer cancel()
		conn := dial(t, url)

		got := publishUntilReceived(t, hub, conn, commands.OccupancyEvent{
			Type:      commands.EventSessionOpened,
			SpotLabel: "A-01",
			Plate:     "ABC-1234",
		})

		assert.Equal(t, commands.EventSessionOpened, got.Type)
		assert.Equal(t, "A-01", got.SpotLabel)
		assert.Equal(t, "ABC-1234", got.Plate)
	})

	t.Run("success: publishing without subscribers is fine", func(t *testing.T) {
		hub, _, cancel := startHub(t)
		defer cancel()
		assert.NoError(t, hub.Publish(context.Background(), commands.OccupancyEvent{Type: commands.EventSpotCreated}))
	})
}

func TestHub_Stop(t *testing.T) {
	t.Run("error: publish after stop", func(t *testing.T) {
		hub, _, cancel := startHub(t)
		cancel()

		assert.Eventually(t, func() bool {
			return hub.Publish(context.Background(), commands.OccupancyEvent{Type: commands.EventSpotCreated}) != nil
		}, 2*time.Second, 10*time.Millisecond)
		assert.ErrorIs(t, hub.Publish(context.Background(), commands.OccupancyEvent{}), realtime.ErrHubStopped)
	})

	t.Run("success: subscribers are closed when the hub stops", func(t *testing.T) {
		hub, url, cancel := startHub(t)
		conn := dial(t, url)
		publishUntilReceived(t, hub, conn, commands.OccupancyEvent{Type: commands.EventSpotCreated})

		cancel()

		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				assert.True(t, websocket.IsCloseError(err, websocket.CloseNoStatusReceived) ||
					websocket.IsUnexpectedCloseError(err), "want close, got %v", err)
				return
			}
		}
	})
}
