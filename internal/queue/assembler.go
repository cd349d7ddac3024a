// Package queue assembles the ordered building list shown for one colony:
// existing buildings with their in-flight work, then the designs the colony
// may still queue.
package queue

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/osse101/BuildQueue_Go/internal/domain"
	"github.com/osse101/BuildQueue_Go/internal/eligibility"
)

// Provider is the catalog view the assembler needs
type Provider interface {
	List(kind domain.DesignKind) []domain.Design
	Design(kind domain.DesignKind, id string) (domain.Design, error)
}

// Input is the snapshot one assembly runs against
type Input struct {
	Colony domain.Colony
	Star   domain.Star
	Empire domain.EmpireSnapshot
}

// View is an assembled building list
type View struct {
	Entries []domain.Entry `json:"entries"`
	// Skipped holds one error per building or request whose design is not
	// in the catalog
	Skipped []error `json:"-"`
}

// Assembler merges catalog, eligibility and snapshot facts into a View
type Assembler struct {
	catalog Provider
	engine  *eligibility.Engine
	logger  *slog.Logger
}

// NewAssembler creates a new assembler. A nil logger falls back to the
// default slog logger.
func NewAssembler(catalog Provider, engine *eligibility.Engine, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	if engine == nil {
		engine = eligibility.NewEngine(logger)
	}
	return &Assembler{
		catalog: catalog,
		engine:  engine,
		logger:  logger.With("component", "queue"),
	}
}

// Assemble builds the entry list for in.Colony
func (a *Assembler) Assemble(in Input) View {
	var view View

	existing := make([]domain.Entry, 0, len(in.Colony.Buildings)+len(in.Star.BuildRequests))

	for i := range in.Colony.Buildings {
		b := in.Colony.Buildings[i]
		design, err := a.catalog.Design(domain.DesignKindBuilding, b.DesignID)
		if err != nil {
			view.skip(a.logger, fmt.Errorf("building %s: %w", b.Key, err))
			continue
		}
		active := a.engine.ActiveUpgradeFor(b, in.Star.BuildRequests)
		entry := domain.Entry{
			Kind:            domain.EntryKindExistingBuilding,
			Building:        &b,
			Design:          &design,
			UpgradeEligible: eligibility.UpgradeEligible(b, design, active),
		}
		if active != nil {
			req := *active
			entry.BuildRequest = &req
		}
		existing = append(existing, entry)
	}

	for i := range in.Star.BuildRequests {
		r := in.Star.BuildRequests[i]
		if r.ColonyKey != in.Colony.Key || !r.IsNewBuilding() {
			continue
		}
		design, err := a.catalog.Design(domain.DesignKindBuilding, r.DesignID)
		if err != nil {
			view.skip(a.logger, fmt.Errorf("build request %s: %w", r.Key, err))
			continue
		}
		existing = append(existing, domain.Entry{
			Kind:         domain.EntryKindExistingBuilding,
			BuildRequest: &r,
			Design:       &design,
		})
	}

	sort.SliceStable(existing, func(i, j int) bool {
		return existing[i].DesignID() < existing[j].DesignID()
	})

	eligible := a.engine.EligibleDesigns(eligibility.Input{
		Colony:         in.Colony,
		ColonyRequests: in.Star.BuildRequests,
		Empire:         in.Empire,
	}, a.catalog.List(domain.DesignKindBuilding))

	view.Entries = make([]domain.Entry, 0, len(existing)+len(eligible)+2)
	view.Entries = append(view.Entries, domain.HeadingEntry(domain.HeadingExistingBuildings))
	view.Entries = append(view.Entries, existing...)
	view.Entries = append(view.Entries, domain.HeadingEntry(domain.HeadingAvailableBuildings))
	for i := range eligible {
		d := eligible[i]
		view.Entries = append(view.Entries, domain.Entry{
			Kind:   domain.EntryKindNewBuildCandidate,
			Design: &d,
		})
	}

	return view
}

func (v *View) skip(logger *slog.Logger, err error) {
	logger.Warn("Skipping entry with unknown design", "error", err)
	v.Skipped = append(v.Skipped, err)
}

// Existing returns the entries between the two headings
func (v View) Existing() []domain.Entry {
	return v.section(domain.EntryKindExistingBuilding)
}

// Candidates returns the new-build candidates
func (v View) Candidates() []domain.Entry {
	return v.section(domain.EntryKindNewBuildCandidate)
}

func (v View) section(kind domain.EntryKind) []domain.Entry {
	var out []domain.Entry
	for _, e := range v.Entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
