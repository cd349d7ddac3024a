package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/BuildQueue_Go/internal/logger"
)

// Handler returns an HTTP handler for SSE connections. Clients may narrow
// the stream with ?types=a,b and ?star=key.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		rc := http.NewResponseController(w)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		// Flushing early commits the headers and proves the writer can stream
		if err := rc.Flush(); err != nil {
			log.Error(LogMsgFlushUnsupported, "error", err)
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		filter := parseFilter(r)
		client := hub.Register(filter)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"types", filter.Types,
			"star", filter.StarKey,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		connectEvent := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"types":     filter.Types,
				"star":      filter.StarKey,
			},
		}
		if err := write(w, rc, connectEvent); err != nil {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if err := write(w, rc, event); err != nil {
					log.Warn(LogMsgWriteError, "error", err)
					return
				}

			case <-ticker.C:
				keepalive := Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}
				if err := write(w, rc, keepalive); err != nil {
					return
				}
			}
		}
	}
}

func write(w http.ResponseWriter, rc *http.ResponseController, event Event) error {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return rc.Flush()
}

func parseFilter(r *http.Request) Filter {
	var f Filter
	for _, t := range strings.Split(r.URL.Query().Get(QueryTypes), ",") {
		if t = strings.TrimSpace(t); t != "" {
			f.Types = append(f.Types, t)
		}
	}
	f.StarKey = strings.TrimSpace(r.URL.Query().Get(QueryStar))
	return f
}
