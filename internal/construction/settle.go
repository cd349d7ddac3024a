package construction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/BuildQueue_Go/internal/domain"
	"github.com/osse101/BuildQueue_Go/internal/event"
	"github.com/osse101/BuildQueue_Go/internal/logger"
	"github.com/osse101/BuildQueue_Go/internal/metrics"
	"github.com/osse101/BuildQueue_Go/internal/progress"
)

// Settle completes every request whose build time has elapsed at the
// service clock. New buildings are placed at level 1; upgrades raise the
// existing building by one level. Other kinds are simply retired. When
// several upgrades target one building, only the first in queue order is
// kept; the rest are dropped.
func (s *service) Settle(ctx context.Context) ([]Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)
	now := s.clock.Now()

	var completions []Completion
	revisions := make(map[string]uint64)

	s.mu.Lock()
	for _, starKey := range s.empire.order {
		star := s.empire.stars[starKey]
		remaining := star.BuildRequests[:0:0]
		changed := false
		upgrading := make(map[string]string)

		for _, req := range star.BuildRequests {
			if req.IsUpgrade() {
				if first, dup := upgrading[req.ExistingBuildingKey]; dup {
					log.Warn(LogMsgDuplicateUpgrade, "request", req.Key, "building", req.ExistingBuildingKey, "kept", first)
					changed = true
					continue
				}
				upgrading[req.ExistingBuildingKey] = req.Key
			}
			if !progress.Compute(req, now).Complete() {
				remaining = append(remaining, req)
				continue
			}
			changed = true

			b, err := s.complete(star, req)
			if err != nil {
				log.Warn(LogMsgRequestDropped, "request", req.Key, "colony", req.ColonyKey, "building", req.ExistingBuildingKey, "error", err)
				continue
			}
			completions = append(completions, Completion{StarKey: starKey, Request: req, Building: b})
		}

		if changed {
			star.BuildRequests = remaining
			revisions[starKey] = s.empire.touch(starKey)
		}
	}
	active := s.empire.activeRequests()
	order := append([]string(nil), s.empire.order...)
	s.mu.Unlock()

	metrics.BuildRequestsActive.Set(float64(active))

	for _, c := range completions {
		log.Info(LogMsgRequestCompleted, "request", c.Request.Key, "building", c.Building.Key, "level", c.Building.Level)
		s.publish(ctx, event.NewBuildCompletedEvent(c.StarKey, c.Request, c.Building, now))
	}
	for _, starKey := range order {
		if rev, ok := revisions[starKey]; ok {
			s.publish(ctx, event.NewStarUpdatedEvent(starKey, rev, event.BuildCompleted, now))
		}
	}

	if len(completions) > 0 {
		log.Debug(LogMsgSettleCompleted, "completed", len(completions))
	}
	return completions, nil
}

// complete applies a finished request to the star. Upgrades fail when the
// building is gone or already at the end of its upgrade chain.
func (s *service) complete(star *domain.Star, req domain.BuildRequest) (domain.Building, error) {
	if !req.IsBuilding() {
		return domain.Building{}, nil
	}

	for ci := range star.Colonies {
		c := &star.Colonies[ci]
		if req.IsUpgrade() {
			for bi := range c.Buildings {
				b := &c.Buildings[bi]
				if b.Key != req.ExistingBuildingKey {
					continue
				}
				if design, err := s.catalog.Design(domain.DesignKindBuilding, b.DesignID); err == nil && !design.HasNextLevel(b.Level) {
					return domain.Building{}, fmt.Errorf("%w: '%s' is at level %d of %d", domain.ErrNotUpgradable, b.Key, b.Level, design.NumUpgrades()+1)
				}
				b.Level++
				return *b, nil
			}
			continue
		}
		if c.Key == req.ColonyKey {
			b := domain.Building{
				Key:       uuid.NewString(),
				ColonyKey: c.Key,
				DesignID:  req.DesignID,
				Level:     1,
			}
			c.Buildings = append(c.Buildings, b)
			return b, nil
		}
	}
	if req.IsUpgrade() {
		return domain.Building{}, fmt.Errorf("%w: '%s'", domain.ErrBuildingNotFound, req.ExistingBuildingKey)
	}
	return domain.Building{}, fmt.Errorf("%w: '%s'", domain.ErrColonyNotFound, req.ColonyKey)
}
