package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BuildQueue_Go/internal/domain"
)

const yamlCatalog = `
version: "1.0"
description: test catalog
designs:
  - id: farm
    kind: BUILDING
    max_per_colony: 2
    build_cost:
      time_in_seconds: 60
      resources:
        minerals: 10
    upgrades:
      - build_cost:
          time_in_seconds: 120
      - build_cost:
          time_in_seconds: 240
        dependencies:
          - design_id: ore_mine
            level: 2
  - id: ore_mine
    kind: BUILDING
    display_name: Deep Mine
    build_cost:
      time_in_seconds: 90
  - id: scout
    kind: SHIP
    build_cost:
      time_in_seconds: 30
`

const jsonCatalog = `{
  "version": "1.0",
  "designs": [
    {"id": "shipyard", "kind": "BUILDING", "max_per_empire": 1, "build_cost": {"time_in_seconds": 300}},
    {"id": "research_lab", "kind": "BUILDING", "build_cost": {"time_in_seconds": 45}}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestLoader(t *testing.T) Loader {
	t.Helper()
	l, err := NewLoader()
	require.NoError(t, err)
	return l
}

func TestLoader_LoadYAML(t *testing.T) {
	l := newTestLoader(t)

	c, err := l.Load(writeFile(t, "designs.yaml", yamlCatalog))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	farm, err := c.Design(domain.DesignKindBuilding, "farm")
	require.NoError(t, err)
	assert.Equal(t, "Farm", farm.DisplayName)
	assert.Equal(t, 2, farm.NumUpgrades())
	assert.Equal(t, 10, farm.BuildCost.Resources["minerals"])

	cost, ok := farm.NextLevelCost(2)
	require.True(t, ok)
	assert.Equal(t, int64(240), cost.TimeInSeconds)
	assert.Equal(t, []domain.Dependency{{DesignID: "ore_mine", Level: 2}}, farm.DependenciesFor(2))

	mine, err := c.Design(domain.DesignKindBuilding, "ore_mine")
	require.NoError(t, err)
	assert.Equal(t, "Deep Mine", mine.DisplayName)
}

func TestLoader_LoadJSON(t *testing.T) {
	l := newTestLoader(t)

	c, err := l.Load(writeFile(t, "designs.json", jsonCatalog))
	require.NoError(t, err)

	lab, err := c.Design(domain.DesignKindBuilding, "research_lab")
	require.NoError(t, err)
	assert.Equal(t, "Research Lab", lab.DisplayName)

	yard, err := c.Design(domain.DesignKindBuilding, "shipyard")
	require.NoError(t, err)
	assert.Equal(t, 1, yard.MaxPerEmpire)
}

func TestLoader_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{
			name: "unknown kind",
			data: `{"version": "1", "designs": [{"id": "farm", "kind": "FLEET", "build_cost": {"time_in_seconds": 1}}]}`,
			msg:  "schema validation failed",
		},
		{
			name: "negative time",
			data: `{"version": "1", "designs": [{"id": "farm", "kind": "BUILDING", "build_cost": {"time_in_seconds": -1}}]}`,
			msg:  "schema validation failed",
		},
		{
			name: "missing build cost",
			data: `{"version": "1", "designs": [{"id": "farm", "kind": "BUILDING"}]}`,
			msg:  "required",
		},
		{
			name: "unknown field",
			data: `{"version": "1", "designs": [{"id": "farm", "kind": "BUILDING", "colour": "red", "build_cost": {"time_in_seconds": 1}}]}`,
			msg:  "schema validation failed",
		},
	}

	l := newTestLoader(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Parse([]byte(tt.data), "json")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoader_EmptyDesignsRejected(t *testing.T) {
	l := newTestLoader(t)

	_, err := l.Parse([]byte(`{"version": "1", "designs": []}`), "json")
	assert.ErrorIs(t, err, domain.ErrInvalidDesign)
}

func TestLoader_CatalogRulesStillApply(t *testing.T) {
	l := newTestLoader(t)

	data := `{"version": "1", "designs": [
		{"id": "farm", "kind": "BUILDING", "build_cost": {"time_in_seconds": 1}},
		{"id": "farm", "kind": "BUILDING", "build_cost": {"time_in_seconds": 2}}
	]}`
	_, err := l.Parse([]byte(data), ".json")
	assert.ErrorIs(t, err, ErrDuplicateDesign)
}

func TestLoader_Errors(t *testing.T) {
	l := newTestLoader(t)

	_, err := l.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")

	_, err = l.Load(writeFile(t, "designs.toml", "version = 1"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = l.Parse([]byte("designs: [unclosed"), "yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ore Mine", DisplayName("ore_mine"))
	assert.Equal(t, "Farm", DisplayName("farm"))
	assert.Equal(t, "Space Elevator Hub", DisplayName("space_elevator_hub"))
}
