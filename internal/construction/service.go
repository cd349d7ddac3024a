// Package construction owns the live star graph of one empire and drives the
// build queue over it: queuing new buildings and upgrades, cancelling them,
// and settling the ones whose time has run out.
package construction

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BuildQueue_Go/internal/clock"
	"github.com/osse101/BuildQueue_Go/internal/domain"
	"github.com/osse101/BuildQueue_Go/internal/eligibility"
	"github.com/osse101/BuildQueue_Go/internal/event"
	"github.com/osse101/BuildQueue_Go/internal/logger"
	"github.com/osse101/BuildQueue_Go/internal/metrics"
	"github.com/osse101/BuildQueue_Go/internal/progress"
	"github.com/osse101/BuildQueue_Go/internal/queue"
	"github.com/osse101/BuildQueue_Go/internal/repository"
)

// Service defines the construction queue interface
type Service interface {
	View(ctx context.Context, starKey, colonyKey string) (queue.View, error)
	Progress(ctx context.Context, requestKey string) (*RequestProgress, error)
	QueueBuild(ctx context.Context, colonyKey, designID string) (*domain.BuildRequest, error)
	QueueUpgrade(ctx context.Context, buildingKey string) (*domain.BuildRequest, error)
	Cancel(ctx context.Context, requestKey string) error
	Settle(ctx context.Context) ([]Completion, error)
	Snapshot(ctx context.Context, starKey string) (repository.StarRecord, error)
}

// RequestProgress is the state of one request at the service clock
type RequestProgress struct {
	Request    domain.BuildRequest `json:"request"`
	Progress   progress.Progress   `json:"progress"`
	Percent    int                 `json:"percent"`
	FinishTime time.Time           `json:"finish_time"`
	Verb       string              `json:"verb"`
}

// Completion is one request that Settle finished
type Completion struct {
	StarKey  string              `json:"star_key"`
	Request  domain.BuildRequest `json:"request"`
	Building domain.Building     `json:"building"`
}

// Options tunes a Service
type Options struct {
	ViewCacheSize int
	ViewCacheTTL  time.Duration
	// Revisions seeds per-star revision counters, e.g. from a store
	Revisions map[string]uint64
	// Logger receives engine diagnostics; nil uses the default logger
	Logger *slog.Logger
}

type service struct {
	catalog   queue.Provider
	engine    *eligibility.Engine
	assembler *queue.Assembler
	bus       event.Bus
	clock     clock.Clock
	cache     *viewCache

	mu     sync.RWMutex
	empire *empire
}

// NewService creates a construction service over a copy of stars. bus may
// be nil, in which case no events are published.
func NewService(catalog queue.Provider, stars []domain.Star, bus event.Bus, clk clock.Clock, opts Options) Service {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	engine := eligibility.NewEngine(log)

	s := &service{
		catalog:   catalog,
		engine:    engine,
		assembler: queue.NewAssembler(catalog, engine, log),
		bus:       bus,
		clock:     clk,
		cache:     newViewCache(opts.ViewCacheSize, opts.ViewCacheTTL),
		empire:    newEmpire(stars, opts.Revisions),
	}
	metrics.BuildRequestsActive.Set(float64(s.empire.activeRequests()))
	return s
}

// View assembles the building list for one colony. The returned view may be
// shared with the cache and must be treated as read-only.
func (s *service) View(ctx context.Context, starKey, colonyKey string) (queue.View, error) {
	s.mu.RLock()
	star, err := s.empire.star(starKey)
	if err != nil {
		s.mu.RUnlock()
		return queue.View{}, err
	}
	colony, ok := star.Colony(colonyKey)
	if !ok {
		s.mu.RUnlock()
		return queue.View{}, fmt.Errorf("%w: '%s' on star '%s'", domain.ErrColonyNotFound, colonyKey, starKey)
	}

	key := viewKey(starKey, colonyKey, s.empire.generation)
	if view, hit := s.cache.Get(key); hit {
		s.mu.RUnlock()
		metrics.ViewCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return view, nil
	}

	in := queue.Input{
		Colony: cloneColony(colony),
		Star:   cloneStar(*star),
		Empire: s.empire.snapshot(),
	}
	s.mu.RUnlock()

	if s.cache != nil {
		metrics.ViewCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
	}

	view := s.assembler.Assemble(in)
	metrics.ViewsAssembled.Inc()
	if n := len(view.Skipped); n > 0 {
		metrics.ViewEntriesSkipped.Add(float64(n))
		logger.FromContext(ctx).Warn(LogMsgViewSkipped, "star", starKey, "colony", colonyKey, "skipped", n)
	}

	s.cache.Set(key, view)
	return view, nil
}

// Progress reports how far along a request is at the service clock
func (s *service) Progress(ctx context.Context, requestKey string) (*RequestProgress, error) {
	s.mu.RLock()
	star, idx, err := s.empire.request(requestKey)
	if err != nil {
		s.mu.RUnlock()
		return nil, err
	}
	req := star.BuildRequests[idx]
	s.mu.RUnlock()

	p := progress.Compute(req, s.clock.Now())
	verb := domain.VerbBuilding
	if req.IsUpgrade() {
		verb = domain.VerbUpgrading
	}
	return &RequestProgress{
		Request:    req,
		Progress:   p,
		Percent:    p.Percent(),
		FinishTime: progress.FinishTime(req),
		Verb:       verb,
	}, nil
}

// QueueBuild starts construction of a new building in the colony
func (s *service) QueueBuild(ctx context.Context, colonyKey, designID string) (*domain.BuildRequest, error) {
	log := logger.FromContext(ctx)

	design, err := s.catalog.Design(domain.DesignKindBuilding, designID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	star, ci, err := s.empire.colony(colonyKey)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	colony := star.Colonies[ci]

	in := eligibility.Input{
		Colony:         colony,
		ColonyRequests: star.BuildRequests,
		Empire:         s.empire.snapshot(),
	}
	if err := s.engine.Check(in, design); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if !colony.DependenciesMet(design.DependenciesFor(0)) {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s in colony '%s'", domain.ErrDependencies, design.ID, colonyKey)
	}

	req := domain.BuildRequest{
		Key:        uuid.NewString(),
		ColonyKey:  colonyKey,
		DesignKind: domain.DesignKindBuilding,
		DesignID:   design.ID,
		StartTime:  s.clock.Now(),
		Duration:   progress.DurationFor(design.BuildCost),
		Count:      1,
	}
	star.BuildRequests = append(star.BuildRequests, req)
	revision := s.empire.touch(star.Key)
	active := s.empire.activeRequests()
	starKey := star.Key
	s.mu.Unlock()

	metrics.BuildRequestsActive.Set(float64(active))
	log.Info(LogMsgBuildQueued, "request", req.Key, "colony", colonyKey, "design", design.ID, "duration", req.Duration)

	s.publish(ctx, event.NewBuildQueuedEvent(starKey, req, req.StartTime))
	s.publish(ctx, event.NewStarUpdatedEvent(starKey, revision, event.BuildQueued, req.StartTime))
	return &req, nil
}

// QueueUpgrade starts upgrading an existing building to its next level
func (s *service) QueueUpgrade(ctx context.Context, buildingKey string) (*domain.BuildRequest, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	ref, err := s.empire.building(buildingKey)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	b := *ref.get()
	star := ref.star

	design, err := s.catalog.Design(domain.DesignKindBuilding, b.DesignID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	cost, ok := design.NextLevelCost(b.Level)
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s is at level %d of %d", domain.ErrNotUpgradable, b.Key, b.Level, design.NumUpgrades()+1)
	}
	if active := s.engine.ActiveUpgradeFor(b, star.BuildRequests); active != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s is being upgraded by %s", domain.ErrUpgradeInFlight, b.Key, active.Key)
	}
	if !star.Colonies[ref.colony].DependenciesMet(design.DependenciesFor(b.Level)) {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s level %d", domain.ErrDependencies, design.ID, b.Level+1)
	}

	req := domain.BuildRequest{
		Key:                 uuid.NewString(),
		ColonyKey:           star.Colonies[ref.colony].Key,
		DesignKind:          domain.DesignKindBuilding,
		DesignID:            design.ID,
		ExistingBuildingKey: b.Key,
		StartTime:           s.clock.Now(),
		Duration:            progress.DurationFor(cost),
		Count:               1,
	}
	star.BuildRequests = append(star.BuildRequests, req)
	revision := s.empire.touch(star.Key)
	active := s.empire.activeRequests()
	starKey := star.Key
	s.mu.Unlock()

	metrics.BuildRequestsActive.Set(float64(active))
	log.Info(LogMsgUpgradeQueued, "request", req.Key, "building", b.Key, "design", design.ID, "to_level", b.Level+1)

	s.publish(ctx, event.NewBuildQueuedEvent(starKey, req, req.StartTime))
	s.publish(ctx, event.NewStarUpdatedEvent(starKey, revision, event.BuildQueued, req.StartTime))
	return &req, nil
}

// Cancel removes an active request
func (s *service) Cancel(ctx context.Context, requestKey string) error {
	s.mu.Lock()
	star, idx, err := s.empire.request(requestKey)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	req := star.BuildRequests[idx]
	star.BuildRequests = append(star.BuildRequests[:idx], star.BuildRequests[idx+1:]...)
	revision := s.empire.touch(star.Key)
	active := s.empire.activeRequests()
	starKey := star.Key
	s.mu.Unlock()

	metrics.BuildRequestsActive.Set(float64(active))
	logger.FromContext(ctx).Info(LogMsgRequestCancelled, "request", req.Key, "design", req.DesignID)

	now := s.clock.Now()
	s.publish(ctx, event.NewBuildCancelledEvent(starKey, req, now))
	s.publish(ctx, event.NewStarUpdatedEvent(starKey, revision, event.BuildCancelled, now))
	return nil
}

// Snapshot returns a deep copy of one star at its current revision
func (s *service) Snapshot(ctx context.Context, starKey string) (repository.StarRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	star, err := s.empire.star(starKey)
	if err != nil {
		return repository.StarRecord{}, err
	}
	return repository.StarRecord{
		Star:     cloneStar(*star),
		Position: s.empire.position(starKey),
		Revision: s.empire.revisions[starKey],
	}, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
