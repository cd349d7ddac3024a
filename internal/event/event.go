package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BuildQueue_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Construction event types
const (
	BuildQueued    Type = domain.EventTypeBuildQueued
	BuildCancelled Type = domain.EventTypeBuildCancelled
	BuildCompleted Type = domain.EventTypeBuildCompleted
	StarUpdated    Type = domain.EventTypeStarUpdated
)

// Typed event payloads for type safety

// BuildRequestPayloadV1 is the typed payload for build request lifecycle events
type BuildRequestPayloadV1 struct {
	RequestKey          string `json:"request_key"`
	StarKey             string `json:"star_key"`
	ColonyKey           string `json:"colony_key"`
	DesignKind          string `json:"design_kind"`
	DesignID            string `json:"design_id"`
	ExistingBuildingKey string `json:"existing_building_key,omitempty"`
	// BuildingKey is the building a completed request produced or upgraded
	BuildingKey string `json:"building_key,omitempty"`
	Level       int    `json:"level,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// StarUpdatedPayloadV1 is the typed payload for star change notifications
type StarUpdatedPayloadV1 struct {
	StarKey   string `json:"star_key"`
	Revision  uint64 `json:"revision"`
	Reason    Type   `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

func newBuildRequestEvent(t Type, starKey string, req domain.BuildRequest, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: BuildRequestPayloadV1{
			RequestKey:          req.Key,
			StarKey:             starKey,
			ColonyKey:           req.ColonyKey,
			DesignKind:          string(req.DesignKind),
			DesignID:            req.DesignID,
			ExistingBuildingKey: req.ExistingBuildingKey,
			Timestamp:           at.Unix(),
		},
		Metadata: map[string]interface{}{
			"star_key": starKey,
		},
	}
}

// NewBuildQueuedEvent creates an event for a newly queued request
func NewBuildQueuedEvent(starKey string, req domain.BuildRequest, at time.Time) Event {
	return newBuildRequestEvent(BuildQueued, starKey, req, at)
}

// NewBuildCancelledEvent creates an event for a cancelled request
func NewBuildCancelledEvent(starKey string, req domain.BuildRequest, at time.Time) Event {
	return newBuildRequestEvent(BuildCancelled, starKey, req, at)
}

// NewBuildCompletedEvent creates an event for a finished request and the
// building it produced or upgraded
func NewBuildCompletedEvent(starKey string, req domain.BuildRequest, building domain.Building, at time.Time) Event {
	evt := newBuildRequestEvent(BuildCompleted, starKey, req, at)
	payload := evt.Payload.(BuildRequestPayloadV1)
	payload.BuildingKey = building.Key
	payload.Level = building.Level
	evt.Payload = payload
	return evt
}

// NewStarUpdatedEvent creates a change notification for a star
func NewStarUpdatedEvent(starKey string, revision uint64, reason Type, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StarUpdated,
		Payload: StarUpdatedPayloadV1{
			StarKey:   starKey,
			Revision:  revision,
			Reason:    reason,
			Timestamp: at.Unix(),
		},
		Metadata: map[string]interface{}{
			"star_key": starKey,
		},
	}
}

// DecodePayload decodes an event payload into T via type assertion then JSON fallback.
// Payloads published on the MemoryBus are already the right struct; replayed
// dead-letter entries go through the JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event's type synchronously, in
// subscription order. Handler errors are collected, not short-circuited.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
