package domain

import "time"

// BuildRequest is one in-flight construction or upgrade job
type BuildRequest struct {
	Key                 string        `json:"key" yaml:"key"`
	ColonyKey           string        `json:"colony_key" yaml:"colony_key"`
	DesignKind          DesignKind    `json:"design_kind" yaml:"design_kind"`
	DesignID            string        `json:"design_id" yaml:"design_id"`
	ExistingBuildingKey string        `json:"existing_building_key,omitempty" yaml:"existing_building_key,omitempty"`
	StartTime           time.Time     `json:"start_time" yaml:"start_time"`
	Duration            time.Duration `json:"duration" yaml:"duration"`
	Count               int           `json:"count,omitempty" yaml:"count,omitempty"`
}

// IsUpgrade reports whether the request upgrades an existing building
func (r BuildRequest) IsUpgrade() bool {
	return r.ExistingBuildingKey != ""
}

// IsBuilding reports whether the request constructs or upgrades a building
func (r BuildRequest) IsBuilding() bool {
	return r.DesignKind == DesignKindBuilding
}

// IsNewBuilding reports whether the request places a new building
func (r BuildRequest) IsNewBuilding() bool {
	return r.IsBuilding() && !r.IsUpgrade()
}
