// Package eligibility decides which designs a colony may queue and which of
// its buildings may be upgraded, from snapshots supplied by the caller.
package eligibility

import (
	"fmt"
	"log/slog"

	"github.com/osse101/BuildQueue_Go/internal/domain"
)

// Input is the snapshot one eligibility computation runs against
type Input struct {
	Colony domain.Colony
	// ColonyRequests are the active requests of the colony's star. Requests
	// for other colonies are ignored.
	ColonyRequests []domain.BuildRequest
	Empire         domain.EmpireSnapshot
}

// Counts is the number of existing-or-queued instances of one design
type Counts struct {
	Colony int
	Empire int
}

// Engine provides pure eligibility logic (no state of its own)
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a new eligibility engine. A nil logger falls back to the
// default slog logger.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger.With("component", "eligibility")}
}

// Count returns the per-colony and per-empire instance counts for designID.
//
// The colony count covers buildings in the colony plus new-building requests
// queued in it. The empire count covers every building in the empire plus
// every active building request for the design, in any colony.
func (e *Engine) Count(in Input, designID string) Counts {
	return tally(in).of(designID)
}

// Check returns nil when the design may be queued in the colony, otherwise a
// wrapped ErrColonyCapReached or ErrEmpireCapReached
func (e *Engine) Check(in Input, design domain.Design) error {
	return tally(in).check(design)
}

// EligibleDesigns filters designs down to those under both caps, keeping the
// input order
func (e *Engine) EligibleDesigns(in Input, designs []domain.Design) []domain.Design {
	t := tally(in)
	eligible := make([]domain.Design, 0, len(designs))
	for _, d := range designs {
		if err := t.check(d); err != nil {
			e.logger.Debug("Design not eligible", "colony", in.Colony.Key, "design", d.ID, "reason", err)
			continue
		}
		eligible = append(eligible, d)
	}
	return eligible
}

// UpgradeEligible reports whether building can be upgraded: its design must
// have a next level and no request may already be upgrading it
func UpgradeEligible(building domain.Building, design domain.Design, active *domain.BuildRequest) bool {
	if !design.HasNextLevel(building.Level) {
		return false
	}
	return active == nil
}

// ActiveUpgradeFor returns the first request referencing building, or nil.
// More than one referencing request breaks the one-upgrade-per-building
// invariant; the extras are logged and ignored.
func (e *Engine) ActiveUpgradeFor(building domain.Building, requests []domain.BuildRequest) *domain.BuildRequest {
	var found *domain.BuildRequest
	for i := range requests {
		r := &requests[i]
		if !r.IsUpgrade() || r.ExistingBuildingKey != building.Key {
			continue
		}
		if found == nil {
			found = r
			continue
		}
		e.logger.Warn("Multiple active requests reference one building",
			"building", building.Key,
			"kept_request", found.Key,
			"ignored_request", r.Key)
	}
	return found
}

type counts struct {
	colony map[string]int
	empire map[string]int
}

func tally(in Input) counts {
	t := counts{
		colony: make(map[string]int),
		empire: make(map[string]int),
	}

	for _, b := range in.Colony.Buildings {
		t.colony[b.DesignID]++
	}
	for _, r := range in.ColonyRequests {
		if r.ColonyKey == in.Colony.Key && r.IsNewBuilding() {
			t.colony[r.DesignID]++
		}
	}

	for _, b := range in.Empire.Buildings {
		t.empire[b.DesignID]++
	}
	for _, r := range in.Empire.BuildRequests {
		if r.IsBuilding() {
			t.empire[r.DesignID]++
		}
	}
	return t
}

func (t counts) of(designID string) Counts {
	return Counts{Colony: t.colony[designID], Empire: t.empire[designID]}
}

func (t counts) check(d domain.Design) error {
	if d.MaxPerColony > 0 {
		if n := t.colony[d.ID]; n >= d.MaxPerColony {
			return fmt.Errorf("%w: %s has %d of %d", domain.ErrColonyCapReached, d.ID, n, d.MaxPerColony)
		}
	}
	if d.MaxPerEmpire > 0 {
		if n := t.empire[d.ID]; n >= d.MaxPerEmpire {
			return fmt.Errorf("%w: %s has %d of %d", domain.ErrEmpireCapReached, d.ID, n, d.MaxPerEmpire)
		}
	}
	return nil
}
