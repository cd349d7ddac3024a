package metrics

import (
	"context"

	"github.com/osse101/BuildQueue_Go/internal/event"
	"github.com/osse101/BuildQueue_Go/internal/logger"
)

// EventMetricsCollector subscribes to construction events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every construction event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.BuildQueued,
		event.BuildCancelled,
		event.BuildCompleted,
		event.StarUpdated,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if evt.Type == event.StarUpdated {
		return nil
	}

	payload, err := event.DecodePayload[event.BuildRequestPayloadV1](evt.Payload)
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	action := ActionBuild
	if payload.ExistingBuildingKey != "" {
		action = ActionUpgrade
	}

	switch evt.Type {
	case event.BuildQueued:
		BuildRequestsQueued.WithLabelValues(payload.DesignID, action).Inc()
	case event.BuildCancelled:
		BuildRequestsCancelled.WithLabelValues(payload.DesignID).Inc()
	case event.BuildCompleted:
		BuildRequestsCompleted.WithLabelValues(payload.DesignID, action).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
