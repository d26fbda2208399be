package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/liliang-cn/datagenie/internal/domain"
	"github.com/liliang-cn/datagenie/internal/store"
)

// Events streams AppState snapshots over SSE. The initial snapshot is sent
// immediately; every store mutation pushes a fresh one. Slow clients drop
// intermediate snapshots rather than block the store's synchronous notify.
func Events(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Set SSE headers
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")

		updates := make(chan *domain.AppState, 8)
		unsubscribe := st.Subscribe(func(state *domain.AppState) {
			select {
			case updates <- state:
			default:
				// Client is behind; it will catch up on the next mutation
			}
		})
		defer unsubscribe()

		if err := writeSSE(c.Writer, "state", st.Snapshot()); err == nil {
			c.Writer.Flush()
		}

		clientGone := c.Request.Context().Done()
		c.Stream(func(w io.Writer) bool {
			select {
			case <-clientGone:
				return false
			case state := <-updates:
				// A frame that fails to encode is dropped; the stream stays open
				_ = writeSSE(w, "state", state)
				return true
			}
		})
	}
}

func writeSSE(w io.Writer, eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, data)
	return err
}

// Health is the liveness endpoint
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
