package queue

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BuildQueue_Go/internal/catalog"
	"github.com/osse101/BuildQueue_Go/internal/domain"
	"github.com/osse101/BuildQueue_Go/internal/eligibility"
)

var start = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func upgrades(n int) []domain.Upgrade {
	out := make([]domain.Upgrade, n)
	for i := range out {
		out[i] = domain.Upgrade{BuildCost: domain.BuildCost{TimeInSeconds: int64(60 * (i + 2))}}
	}
	return out
}

func newCatalog(t *testing.T, designs ...domain.Design) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(designs)
	require.NoError(t, err)
	return c
}

func building(id string, level int) domain.Design {
	return domain.Design{ID: id, Kind: domain.DesignKindBuilding, Upgrades: upgrades(level)}
}

func newAssembler(c Provider, buf *bytes.Buffer) *Assembler {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewAssembler(c, eligibility.NewEngine(logger), logger)
}

func designIDs(entries []domain.Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.DesignID())
	}
	return ids
}

func assertHeadings(t *testing.T, v View) {
	t.Helper()
	require.NotEmpty(t, v.Entries)
	assert.Equal(t, domain.HeadingEntry(domain.HeadingExistingBuildings), v.Entries[0])

	available := 0
	seenAvailable := false
	for _, e := range v.Entries[1:] {
		switch e.Kind {
		case domain.EntryKindHeading:
			assert.Equal(t, domain.HeadingAvailableBuildings, e.Title)
			available++
			seenAvailable = true
		case domain.EntryKindExistingBuilding:
			assert.False(t, seenAvailable, "existing entry after available heading")
		case domain.EntryKindNewBuildCandidate:
			assert.True(t, seenAvailable, "candidate before available heading")
		}
	}
	assert.Equal(t, 1, available)
}

func TestAssemble_EmptyColony(t *testing.T) {
	c := newCatalog(t, building("farm", 2), building("academy", 0))
	a := newAssembler(c, &bytes.Buffer{})

	v := a.Assemble(Input{Colony: domain.Colony{Key: "c1", StarKey: "s1"}, Star: domain.Star{Key: "s1"}})

	assertHeadings(t, v)
	require.Len(t, v.Entries, 4)
	assert.Empty(t, v.Existing())
	assert.Equal(t, []string{"farm", "academy"}, designIDs(v.Candidates()))
	assert.Empty(t, v.Skipped)
}

func TestAssemble_CappedFarmAtLevelOne(t *testing.T) {
	// One farm at level 1 with two upgrades left and no active requests. The
	// farm is capped at one per colony so it drops out of the candidates; an
	// uncapped farm stays available, see TestAssemble_UnlimitedDesignStaysAvailable.
	farm := building("farm", 2)
	farm.MaxPerColony = 1
	c := newCatalog(t, farm, building("academy", 0))
	a := newAssembler(c, &bytes.Buffer{})

	colony := domain.Colony{
		Key:       "c1",
		StarKey:   "s1",
		Buildings: []domain.Building{{Key: "b1", ColonyKey: "c1", DesignID: "farm", Level: 1}},
	}
	v := a.Assemble(Input{
		Colony: colony,
		Star:   domain.Star{Key: "s1", Colonies: []domain.Colony{colony}},
		Empire: domain.EmpireSnapshot{Buildings: colony.Buildings},
	})

	assertHeadings(t, v)
	existing := v.Existing()
	require.Len(t, existing, 1)
	assert.Equal(t, "b1", existing[0].Building.Key)
	assert.Nil(t, existing[0].BuildRequest)
	assert.True(t, existing[0].UpgradeEligible)
	assert.Equal(t, "", existing[0].Verb())
	require.NotNil(t, existing[0].Design)
	assert.Equal(t, 2, existing[0].Design.NumUpgrades())

	assert.Equal(t, []string{"academy"}, designIDs(v.Candidates()))
}

func TestAssemble_UnlimitedDesignStaysAvailable(t *testing.T) {
	c := newCatalog(t, building("farm", 2))
	a := newAssembler(c, &bytes.Buffer{})

	colony := domain.Colony{
		Key:       "c1",
		Buildings: []domain.Building{{Key: "b1", ColonyKey: "c1", DesignID: "farm", Level: 1}},
	}
	v := a.Assemble(Input{Colony: colony, Star: domain.Star{Key: "s1"}})

	assert.Equal(t, []string{"farm"}, designIDs(v.Candidates()))
}

func TestAssemble_ShipyardScenario(t *testing.T) {
	shipyard := building("shipyard", 0)
	shipyard.MaxPerEmpire = 3
	c := newCatalog(t, shipyard, building("farm", 0))
	a := newAssembler(c, &bytes.Buffer{})

	var requests []domain.BuildRequest
	for i, colonyKey := range []string{"c1", "c2", "c3"} {
		requests = append(requests, domain.BuildRequest{
			Key:        "r" + string(rune('1'+i)),
			ColonyKey:  colonyKey,
			DesignKind: domain.DesignKindBuilding,
			DesignID:   "shipyard",
			StartTime:  start,
			Duration:   time.Hour,
			Count:      1,
		})
	}

	v := a.Assemble(Input{
		Colony: domain.Colony{Key: "c4", StarKey: "s4"},
		Star:   domain.Star{Key: "s4"},
		Empire: domain.EmpireSnapshot{BuildRequests: requests},
	})

	assertHeadings(t, v)
	assert.Equal(t, []string{"farm"}, designIDs(v.Candidates()))
}

func TestAssemble_SortsExistingByDesignID(t *testing.T) {
	c := newCatalog(t, building("refinery", 1), building("farm", 1), building("academy", 1))
	a := newAssembler(c, &bytes.Buffer{})

	colony := domain.Colony{
		Key: "c1",
		Buildings: []domain.Building{
			{Key: "b1", ColonyKey: "c1", DesignID: "refinery", Level: 1},
			{Key: "b2", ColonyKey: "c1", DesignID: "farm", Level: 1},
			{Key: "b3", ColonyKey: "c1", DesignID: "farm", Level: 2},
		},
	}
	star := domain.Star{
		Key: "s1",
		BuildRequests: []domain.BuildRequest{
			{Key: "r1", ColonyKey: "c1", DesignKind: domain.DesignKindBuilding, DesignID: "academy", StartTime: start, Duration: time.Minute},
			{Key: "r2", ColonyKey: "c1", DesignKind: domain.DesignKindBuilding, DesignID: "farm", StartTime: start, Duration: time.Minute},
			{Key: "r3", ColonyKey: "c2", DesignKind: domain.DesignKindBuilding, DesignID: "academy", StartTime: start, Duration: time.Minute},
			{Key: "r4", ColonyKey: "c1", DesignKind: domain.DesignKindShip, DesignID: "scout", StartTime: start, Duration: time.Minute, Count: 5},
		},
	}

	v := a.Assemble(Input{Colony: colony, Star: star})

	assertHeadings(t, v)
	existing := v.Existing()
	assert.Equal(t, []string{"academy", "farm", "farm", "farm", "refinery"}, designIDs(existing))

	// ties keep insertion order: buildings b2, b3 then request r2
	assert.Equal(t, "r1", existing[0].BuildRequest.Key)
	assert.Nil(t, existing[0].Building)
	assert.Equal(t, domain.VerbBuilding, existing[0].Verb())
	assert.Equal(t, "b2", existing[1].Building.Key)
	assert.Equal(t, "b3", existing[2].Building.Key)
	assert.Equal(t, "r2", existing[3].BuildRequest.Key)
	assert.Equal(t, "b1", existing[4].Building.Key)
	assert.Empty(t, v.Skipped)
}

func TestAssemble_AttachesActiveUpgrade(t *testing.T) {
	c := newCatalog(t, building("farm", 2))
	buf := &bytes.Buffer{}
	a := newAssembler(c, buf)

	colony := domain.Colony{
		Key:       "c1",
		Buildings: []domain.Building{{Key: "b1", ColonyKey: "c1", DesignID: "farm", Level: 1}},
	}
	star := domain.Star{
		Key: "s1",
		BuildRequests: []domain.BuildRequest{
			{Key: "r1", ColonyKey: "c1", DesignKind: domain.DesignKindBuilding, DesignID: "farm", ExistingBuildingKey: "b1", StartTime: start, Duration: time.Minute},
			{Key: "r2", ColonyKey: "c1", DesignKind: domain.DesignKindBuilding, DesignID: "farm", ExistingBuildingKey: "b1", StartTime: start, Duration: time.Minute},
		},
	}

	v := a.Assemble(Input{Colony: colony, Star: star})

	existing := v.Existing()
	require.Len(t, existing, 1)
	require.NotNil(t, existing[0].BuildRequest)
	assert.Equal(t, "r1", existing[0].BuildRequest.Key)
	assert.False(t, existing[0].UpgradeEligible)
	assert.Equal(t, domain.VerbUpgrading, existing[0].Verb())
	assert.Contains(t, buf.String(), "Multiple active requests reference one building")
}

func TestAssemble_TerminalBuildingNotUpgradeEligible(t *testing.T) {
	c := newCatalog(t, building("farm", 2))
	a := newAssembler(c, &bytes.Buffer{})

	colony := domain.Colony{
		Key:       "c1",
		Buildings: []domain.Building{{Key: "b1", ColonyKey: "c1", DesignID: "farm", Level: 3}},
	}
	v := a.Assemble(Input{Colony: colony, Star: domain.Star{Key: "s1"}})

	require.Len(t, v.Existing(), 1)
	assert.False(t, v.Existing()[0].UpgradeEligible)
}

func TestAssemble_SkipsUnknownDesigns(t *testing.T) {
	c := newCatalog(t, building("farm", 1))
	buf := &bytes.Buffer{}
	a := newAssembler(c, buf)

	colony := domain.Colony{
		Key: "c1",
		Buildings: []domain.Building{
			{Key: "b1", ColonyKey: "c1", DesignID: "farm", Level: 1},
			{Key: "b2", ColonyKey: "c1", DesignID: "warp_gate", Level: 1},
		},
	}
	star := domain.Star{
		Key: "s1",
		BuildRequests: []domain.BuildRequest{
			{Key: "r1", ColonyKey: "c1", DesignKind: domain.DesignKindBuilding, DesignID: "ghost", StartTime: start, Duration: time.Minute},
		},
	}

	v := a.Assemble(Input{Colony: colony, Star: star})

	assertHeadings(t, v)
	assert.Equal(t, []string{"farm"}, designIDs(v.Existing()))
	require.Len(t, v.Skipped, 2)
	for _, err := range v.Skipped {
		assert.ErrorIs(t, err, domain.ErrDesignNotFound)
	}
	assert.Contains(t, v.Skipped[0].Error(), "b2")
	assert.Contains(t, v.Skipped[1].Error(), "r1")
	assert.Contains(t, buf.String(), "Skipping entry with unknown design")
}

func TestAssemble_ColonyCapCountsQueuedBuilds(t *testing.T) {
	farm := building("farm", 0)
	farm.MaxPerColony = 2
	c := newCatalog(t, farm)
	a := newAssembler(c, &bytes.Buffer{})

	colony := domain.Colony{
		Key:       "c1",
		Buildings: []domain.Building{{Key: "b1", ColonyKey: "c1", DesignID: "farm", Level: 1}},
	}
	queued := domain.BuildRequest{Key: "r1", ColonyKey: "c1", DesignKind: domain.DesignKindBuilding, DesignID: "farm", StartTime: start, Duration: time.Minute}

	below := a.Assemble(Input{Colony: colony, Star: domain.Star{Key: "s1"}})
	assert.Equal(t, []string{"farm"}, designIDs(below.Candidates()))

	atCap := a.Assemble(Input{Colony: colony, Star: domain.Star{Key: "s1", BuildRequests: []domain.BuildRequest{queued}}})
	assert.Empty(t, atCap.Candidates())
}

func TestAssemble_Deterministic(t *testing.T) {
	c := newCatalog(t, building("farm", 1), building("academy", 1))
	a := newAssembler(c, &bytes.Buffer{})

	in := Input{
		Colony: domain.Colony{Key: "c1", Buildings: []domain.Building{
			{Key: "b1", ColonyKey: "c1", DesignID: "farm", Level: 1},
			{Key: "b2", ColonyKey: "c1", DesignID: "academy", Level: 1},
		}},
		Star: domain.Star{Key: "s1"},
	}

	assert.Equal(t, a.Assemble(in), a.Assemble(in))
}
