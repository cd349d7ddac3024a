package construction

import (
	"context"
	"fmt"

	"github.com/osse101/BuildQueue_Go/internal/domain"
	"github.com/osse101/BuildQueue_Go/internal/event"
	"github.com/osse101/BuildQueue_Go/internal/logger"
	"github.com/osse101/BuildQueue_Go/internal/repository"
)

// Persister writes a star's snapshot to the store each time the star changes
type Persister struct {
	service Service
	store   repository.EmpireStore
}

// NewPersister creates a persister for the service's stars
func NewPersister(svc Service, store repository.EmpireStore) *Persister {
	return &Persister{service: svc, store: store}
}

// Register subscribes the persister to star updates
func (p *Persister) Register(bus event.Bus) {
	bus.Subscribe(event.StarUpdated, p.HandleEvent)
}

// HandleEvent saves the star named by a StarUpdated event. The snapshot is
// taken at handling time, so it may be newer than the event's revision.
func (p *Persister) HandleEvent(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.StarUpdatedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodeStarUpdated, err)
	}

	rec, err := p.service.Snapshot(ctx, payload.StarKey)
	if err != nil {
		return fmt.Errorf(ErrMsgSnapshotFailed, payload.StarKey, err)
	}
	if err := p.store.SaveStar(ctx, rec); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgStarPersisted, "star", rec.Star.Key, "revision", rec.Revision)
	return nil
}

// LoadOrSeed returns the stars held by the store with their revisions. An
// empty store is first filled from seed at revision zero.
func LoadOrSeed(ctx context.Context, store repository.EmpireStore, seed []domain.Star) ([]domain.Star, map[string]uint64, error) {
	records, err := store.LoadStars(ctx)
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 && len(seed) > 0 {
		records = make([]repository.StarRecord, len(seed))
		for i, star := range seed {
			records[i] = repository.StarRecord{Star: star, Position: i}
		}
		if err := store.SaveStars(ctx, records); err != nil {
			return nil, nil, err
		}
		logger.FromContext(ctx).Info(LogMsgEmpireSeeded, "stars", len(records))
	}

	return repository.Stars(records), repository.Revisions(records), nil
}
