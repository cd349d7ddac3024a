package domain

// Building is a placed instance of a building design
type Building struct {
	Key       string `json:"key" yaml:"key"`
	ColonyKey string `json:"colony_key" yaml:"colony_key"`
	DesignID  string `json:"design_id" yaml:"design_id"`
	Level     int    `json:"level" yaml:"level"`
}

// Colony is a snapshot of one colony and the buildings placed in it
type Colony struct {
	Key       string     `json:"key" yaml:"key"`
	StarKey   string     `json:"star_key" yaml:"star_key"`
	Buildings []Building `json:"buildings" yaml:"buildings"`
}

// Star is a snapshot of a star system: its colonies and every active build
// request for those colonies
type Star struct {
	Key           string         `json:"key" yaml:"key"`
	Colonies      []Colony       `json:"colonies" yaml:"colonies"`
	BuildRequests []BuildRequest `json:"build_requests" yaml:"build_requests"`
}

// Colony returns the colony with the given key
func (s Star) Colony(key string) (Colony, bool) {
	for _, c := range s.Colonies {
		if c.Key == key {
			return c, true
		}
	}
	return Colony{}, false
}

// EmpireSnapshot holds the empire-wide facts needed for per-empire caps.
// Callers rebuild it from their live data on every computation.
type EmpireSnapshot struct {
	BuildRequests []BuildRequest `json:"build_requests"`
	Buildings     []Building     `json:"buildings"`
}

// DependenciesMet reports whether the colony satisfies every dependency
func (c Colony) DependenciesMet(deps []Dependency) bool {
	for _, dep := range deps {
		met := false
		for _, b := range c.Buildings {
			if b.DesignID == dep.DesignID && b.Level >= dep.Level {
				met = true
				break
			}
		}
		if !met {
			return false
		}
	}
	return true
}
