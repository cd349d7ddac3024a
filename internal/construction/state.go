package construction

import (
	"fmt"

	"github.com/osse101/BuildQueue_Go/internal/domain"
)

// empire is the mutable in-memory star graph. It is not safe for concurrent
// use; the service guards it.
type empire struct {
	stars     map[string]*domain.Star
	order     []string
	revisions map[string]uint64
	// generation changes on every mutation anywhere in the empire. Views
	// depend on empire-wide caps, so it is part of the view cache key.
	generation uint64
}

// newEmpire copies stars into a fresh empire. revisions seeds the per-star
// revision counters; stars missing from it start at zero.
func newEmpire(stars []domain.Star, revisions map[string]uint64) *empire {
	e := &empire{
		stars:     make(map[string]*domain.Star, len(stars)),
		revisions: make(map[string]uint64, len(stars)),
	}
	for _, s := range stars {
		star := cloneStar(s)
		e.stars[s.Key] = &star
		e.order = append(e.order, s.Key)
		e.revisions[s.Key] = revisions[s.Key]
	}
	return e
}

// touch records a mutation of the star and returns its new revision
func (e *empire) touch(starKey string) uint64 {
	e.generation++
	e.revisions[starKey]++
	return e.revisions[starKey]
}

// position returns the star's index in load order
func (e *empire) position(key string) int {
	for i, k := range e.order {
		if k == key {
			return i
		}
	}
	return -1
}

func (e *empire) star(key string) (*domain.Star, error) {
	s, ok := e.stars[key]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrStarNotFound, key)
	}
	return s, nil
}

// colony returns the star holding the colony and the colony's index in it
func (e *empire) colony(key string) (*domain.Star, int, error) {
	for _, starKey := range e.order {
		s := e.stars[starKey]
		for i := range s.Colonies {
			if s.Colonies[i].Key == key {
				return s, i, nil
			}
		}
	}
	return nil, 0, fmt.Errorf("%w: '%s'", domain.ErrColonyNotFound, key)
}

type buildingRef struct {
	star     *domain.Star
	colony   int
	building int
}

func (r buildingRef) get() *domain.Building {
	return &r.star.Colonies[r.colony].Buildings[r.building]
}

func (e *empire) building(key string) (buildingRef, error) {
	for _, starKey := range e.order {
		s := e.stars[starKey]
		for ci := range s.Colonies {
			for bi := range s.Colonies[ci].Buildings {
				if s.Colonies[ci].Buildings[bi].Key == key {
					return buildingRef{star: s, colony: ci, building: bi}, nil
				}
			}
		}
	}
	return buildingRef{}, fmt.Errorf("%w: '%s'", domain.ErrBuildingNotFound, key)
}

// request returns the star holding the request and the request's index
func (e *empire) request(key string) (*domain.Star, int, error) {
	for _, starKey := range e.order {
		s := e.stars[starKey]
		for i := range s.BuildRequests {
			if s.BuildRequests[i].Key == key {
				return s, i, nil
			}
		}
	}
	return nil, 0, fmt.Errorf("%w: '%s'", domain.ErrRequestNotFound, key)
}

// snapshot builds the empire-wide view used for per-empire caps
func (e *empire) snapshot() domain.EmpireSnapshot {
	var snap domain.EmpireSnapshot
	for _, starKey := range e.order {
		s := e.stars[starKey]
		snap.BuildRequests = append(snap.BuildRequests, s.BuildRequests...)
		for _, c := range s.Colonies {
			snap.Buildings = append(snap.Buildings, c.Buildings...)
		}
	}
	return snap
}

func (e *empire) activeRequests() int {
	n := 0
	for _, s := range e.stars {
		n += len(s.BuildRequests)
	}
	return n
}

func cloneStar(s domain.Star) domain.Star {
	out := s
	out.Colonies = make([]domain.Colony, len(s.Colonies))
	for i, c := range s.Colonies {
		out.Colonies[i] = cloneColony(c)
	}
	out.BuildRequests = append([]domain.BuildRequest(nil), s.BuildRequests...)
	return out
}

func cloneColony(c domain.Colony) domain.Colony {
	c.Buildings = append([]domain.Building(nil), c.Buildings...)
	return c
}
