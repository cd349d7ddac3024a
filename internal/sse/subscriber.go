package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/BuildQueue_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for every construction event type
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.BuildQueued, s.handleBuildRequest)
	s.bus.Subscribe(event.BuildCancelled, s.handleBuildRequest)
	s.bus.Subscribe(event.BuildCompleted, s.handleBuildRequest)
	s.bus.Subscribe(event.StarUpdated, s.handleStarUpdated)

	slog.Info(LogMsgSubscriberReady,
		"types", []string{
			string(event.BuildQueued),
			string(event.BuildCancelled),
			string(event.BuildCompleted),
			string(event.StarUpdated),
		})
}

// Streaming is best effort, so malformed payloads are logged and not retried
func (s *Subscriber) handleBuildRequest(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.BuildRequestPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn("Invalid build request event payload", "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), payload.StarKey, payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "request", payload.RequestKey)
	return nil
}

func (s *Subscriber) handleStarUpdated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.StarUpdatedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn("Invalid star update event payload", "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), payload.StarKey, payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "star", payload.StarKey, "revision", payload.Revision)
	return nil
}
