package domain

// DesignKind separates building designs from the other constructible kinds
// that share the build queue.
type DesignKind string

const (
	DesignKindBuilding DesignKind = "BUILDING"
	DesignKindShip     DesignKind = "SHIP"
)

// IsValid reports whether the kind is one the catalog understands
func (k DesignKind) IsValid() bool {
	switch k {
	case DesignKindBuilding, DesignKindShip:
		return true
	}
	return false
}

// BuildCost is the price of one construction step
type BuildCost struct {
	TimeInSeconds int64          `json:"time_in_seconds" yaml:"time_in_seconds"`
	Resources     map[string]int `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// Dependency requires a building of DesignID at Level or higher in the colony
type Dependency struct {
	DesignID string `json:"design_id" yaml:"design_id"`
	Level    int    `json:"level" yaml:"level"`
}

// Upgrade describes one level of a design's upgrade chain
type Upgrade struct {
	BuildCost    BuildCost    `json:"build_cost" yaml:"build_cost"`
	Dependencies []Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Design is an immutable catalog entry
type Design struct {
	ID           string       `json:"id"`
	Kind         DesignKind   `json:"kind"`
	DisplayName  string       `json:"display_name"`
	Description  string       `json:"description,omitempty"`
	SpriteName   string       `json:"sprite_name,omitempty"`
	MaxPerColony int          `json:"max_per_colony"` // 0 = unlimited
	MaxPerEmpire int          `json:"max_per_empire"` // 0 = unlimited
	BuildCost    BuildCost    `json:"build_cost"`
	Upgrades     []Upgrade    `json:"upgrades,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
}

// NumUpgrades returns the length of the upgrade chain
func (d Design) NumUpgrades() int {
	return len(d.Upgrades)
}

// HasNextLevel reports whether a building at level can still be upgraded
func (d Design) HasNextLevel(level int) bool {
	return level <= len(d.Upgrades)
}

// NextLevelCost returns the cost of moving a building from level to level+1.
// Level 0 (not yet built) costs the base build.
func (d Design) NextLevelCost(level int) (BuildCost, bool) {
	if level < 1 {
		return d.BuildCost, true
	}
	if level > len(d.Upgrades) {
		return BuildCost{}, false
	}
	return d.Upgrades[level-1].BuildCost, true
}

// DependenciesFor returns the dependencies of the step from level to level+1
func (d Design) DependenciesFor(level int) []Dependency {
	if level < 1 {
		return d.Dependencies
	}
	if level > len(d.Upgrades) {
		return nil
	}
	return d.Upgrades[level-1].Dependencies
}
