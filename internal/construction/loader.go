package construction

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/BuildQueue_Go/internal/domain"
)

// EmpireFile is the on-disk seed for the in-memory empire
type EmpireFile struct {
	Stars []domain.Star `yaml:"stars"`
}

// LoadEmpire reads a YAML empire fixture. Colony and building back-keys
// left empty in the file are filled in from their parents.
func LoadEmpire(path string) ([]domain.Star, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadEmpireFailed, err)
	}
	return ParseEmpire(data)
}

// ParseEmpire decodes and checks an empire fixture
func ParseEmpire(data []byte) ([]domain.Star, error) {
	var file EmpireFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEmpireFailed, err)
	}

	seen := make(map[string]string)
	claim := func(kind, key string) error {
		if key == "" {
			return fmt.Errorf("%w: %s with empty key", domain.ErrInvalidInput, kind)
		}
		if prev, dup := seen[kind+":"+key]; dup {
			return fmt.Errorf("%w: duplicate %s key '%s' (%s)", domain.ErrInvalidInput, kind, key, prev)
		}
		seen[kind+":"+key] = kind
		return nil
	}

	for si := range file.Stars {
		star := &file.Stars[si]
		if err := claim("star", star.Key); err != nil {
			return nil, err
		}

		buildings := make(map[string]bool)
		for ci := range star.Colonies {
			c := &star.Colonies[ci]
			if err := claim("colony", c.Key); err != nil {
				return nil, err
			}
			c.StarKey = star.Key
			for bi := range c.Buildings {
				b := &c.Buildings[bi]
				if err := claim("building", b.Key); err != nil {
					return nil, err
				}
				b.ColonyKey = c.Key
				if b.Level < 0 {
					return nil, fmt.Errorf("%w: building '%s' has negative level", domain.ErrInvalidInput, b.Key)
				}
				buildings[b.Key] = true
			}
		}

		upgrading := make(map[string]string)
		for ri := range star.BuildRequests {
			r := &star.BuildRequests[ri]
			if err := claim("request", r.Key); err != nil {
				return nil, err
			}
			if _, ok := star.Colony(r.ColonyKey); !ok {
				return nil, fmt.Errorf("%w: request '%s' targets colony '%s' not on star '%s'",
					domain.ErrInvalidInput, r.Key, r.ColonyKey, star.Key)
			}
			if !r.DesignKind.IsValid() {
				return nil, fmt.Errorf("%w: request '%s' has unknown kind %q", domain.ErrInvalidInput, r.Key, r.DesignKind)
			}
			if r.IsUpgrade() && !buildings[r.ExistingBuildingKey] {
				return nil, fmt.Errorf("%w: request '%s' upgrades unknown building '%s'",
					domain.ErrInvalidInput, r.Key, r.ExistingBuildingKey)
			}
			if r.IsUpgrade() {
				if first, dup := upgrading[r.ExistingBuildingKey]; dup {
					return nil, fmt.Errorf("%w: request '%s' upgrades building '%s' already upgraded by '%s'",
						domain.ErrInvalidInput, r.Key, r.ExistingBuildingKey, first)
				}
				upgrading[r.ExistingBuildingKey] = r.Key
			}
			if r.Count == 0 {
				r.Count = 1
			}
		}
	}

	return file.Stars, nil
}
