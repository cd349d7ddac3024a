package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/BuildQueue_Go/internal/logger"
)

// RetryQueueBufferSize is the buffer size for the retry queue
const RetryQueueBufferSize = 1000

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter
// file. It satisfies Bus so services can publish through it unchanged.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher starts a retry worker in front of bus. Events that
// still fail after maxRetries attempts are appended to deadLetterPath.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// Publish delivers the event, queuing it for retry on failure. It never
// returns a delivery error to the caller.
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the wrapped bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

// PublishWithRetry makes one synchronous attempt and hands failures to the
// retry worker
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)
	rp.enqueue(retryEntry{event: event, attempts: 1, lastErr: err})
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-rp.shutdown:
		rp.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case rp.retryQueue <- entry:
	default:
		rp.writeDeadLetter(entry)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case entry := <-rp.retryQueue:
			rp.retry(entry)
		case <-rp.shutdown:
			rp.drain()
			return
		}
	}
}

func (rp *ResilientPublisher) retry(entry retryEntry) {
	timer := time.NewTimer(CalculateRetryDelay(rp.retryDelay, entry.attempts))
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-rp.shutdown:
	}

	rp.attempt(entry, true)
}

// attempt publishes once more. When requeue is false a failure goes straight
// to the dead-letter file.
func (rp *ResilientPublisher) attempt(entry retryEntry, requeue bool) {
	err := rp.bus.Publish(context.Background(), entry.event)
	entry.attempts++
	if err == nil {
		slog.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts)
		return
	}
	entry.lastErr = err

	if !requeue || entry.attempts > rp.maxRetries {
		rp.writeDeadLetter(entry)
		return
	}

	slog.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
	rp.enqueue(entry)
}

// drain gives every queued event one last attempt during shutdown
func (rp *ResilientPublisher) drain() {
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.attempt(entry, false)
		default:
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	slog.Error(LogMsgEventDeadLettered,
		"event_type", entry.event.Type,
		"attempts", entry.attempts,
		"error", entry.lastErr)

	if err := rp.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		slog.Error(LogMsgDeadLetterFailed, "error", err)
	}
}

// Shutdown stops the retry worker after one final attempt per queued event
// and closes the dead-letter file
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.shutdownOnce.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return rp.deadLetter.Close()
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout)
		return errors.Join(ctx.Err(), rp.deadLetter.Close())
	}
}

// CheckHealth fails once the publisher has been shut down or its retry
// queue is full
func (rp *ResilientPublisher) CheckHealth(ctx context.Context) error {
	select {
	case <-rp.shutdown:
		return ErrPublisherClosed
	default:
	}
	if len(rp.retryQueue) == cap(rp.retryQueue) {
		return ErrRetryQueueFull
	}
	return nil
}
