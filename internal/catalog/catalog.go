// Package catalog holds the static table of constructible designs, keyed by
// kind and identifier.
package catalog

import (
	"fmt"

	"github.com/osse101/BuildQueue_Go/internal/domain"
)

// Catalog is an immutable lookup of designs. It is safe for concurrent use
// because nothing mutates it after New returns.
type Catalog struct {
	byKind map[domain.DesignKind]map[string]domain.Design
	order  map[domain.DesignKind][]string
}

// New validates designs and builds a catalog from them. Load order is kept
// per kind and drives List.
func New(designs []domain.Design) (*Catalog, error) {
	c := &Catalog{
		byKind: make(map[domain.DesignKind]map[string]domain.Design),
		order:  make(map[domain.DesignKind][]string),
	}

	for i, d := range designs {
		if err := validateDesign(i, d); err != nil {
			return nil, err
		}
		ids, ok := c.byKind[d.Kind]
		if !ok {
			ids = make(map[string]domain.Design)
			c.byKind[d.Kind] = ids
		}
		if _, dup := ids[d.ID]; dup {
			return nil, fmt.Errorf("%w: %s '%s'", ErrDuplicateDesign, d.Kind, d.ID)
		}
		ids[d.ID] = cloneDesign(d)
		c.order[d.Kind] = append(c.order[d.Kind], d.ID)
	}

	if err := c.checkDependencies(); err != nil {
		return nil, err
	}
	return c, nil
}

// Design returns the design of the given kind and id
func (c *Catalog) Design(kind domain.DesignKind, id string) (domain.Design, error) {
	d, ok := c.byKind[kind][id]
	if !ok {
		return domain.Design{}, fmt.Errorf("%w: %s '%s'", domain.ErrDesignNotFound, kind, id)
	}
	return cloneDesign(d), nil
}

// DesignsOf returns a copy of every design of kind, keyed by id
func (c *Catalog) DesignsOf(kind domain.DesignKind) map[string]domain.Design {
	result := make(map[string]domain.Design, len(c.byKind[kind]))
	for id, d := range c.byKind[kind] {
		result[id] = cloneDesign(d)
	}
	return result
}

// List returns the designs of kind in load order
func (c *Catalog) List(kind domain.DesignKind) []domain.Design {
	ids := c.order[kind]
	result := make([]domain.Design, 0, len(ids))
	for _, id := range ids {
		result = append(result, cloneDesign(c.byKind[kind][id]))
	}
	return result
}

// Len returns the total number of designs across all kinds
func (c *Catalog) Len() int {
	n := 0
	for _, ids := range c.order {
		n += len(ids)
	}
	return n
}

func validateDesign(index int, d domain.Design) error {
	if d.ID == "" {
		return fmt.Errorf(ErrFmtDesignAtIndexEmpty, domain.ErrInvalidDesign, index)
	}
	if !d.Kind.IsValid() {
		return fmt.Errorf(ErrFmtDesignInvalidKind, domain.ErrInvalidDesign, d.ID, d.Kind)
	}
	if d.MaxPerColony < 0 || d.MaxPerEmpire < 0 {
		return fmt.Errorf(ErrFmtDesignNegativeCap, domain.ErrInvalidDesign, d.ID)
	}
	if d.BuildCost.TimeInSeconds < 0 {
		return fmt.Errorf(ErrFmtDesignNegativeTime, domain.ErrInvalidDesign, d.ID)
	}
	for i, u := range d.Upgrades {
		if u.BuildCost.TimeInSeconds < 0 {
			return fmt.Errorf(ErrFmtUpgradeNegativeTime, domain.ErrInvalidDesign, d.ID, i+2)
		}
	}
	return nil
}

// checkDependencies ensures every dependency names a known building design
func (c *Catalog) checkDependencies() error {
	buildings := c.byKind[domain.DesignKindBuilding]
	for _, kind := range []domain.DesignKind{domain.DesignKindBuilding, domain.DesignKindShip} {
		for _, id := range c.order[kind] {
			d := c.byKind[kind][id]
			deps := append([]domain.Dependency{}, d.Dependencies...)
			for _, u := range d.Upgrades {
				deps = append(deps, u.Dependencies...)
			}
			for _, dep := range deps {
				if _, ok := buildings[dep.DesignID]; !ok {
					return fmt.Errorf("%w: %s depends on '%s'", ErrUnknownDependency, d.ID, dep.DesignID)
				}
			}
		}
	}
	return nil
}

func cloneDesign(d domain.Design) domain.Design {
	d.BuildCost = cloneCost(d.BuildCost)
	d.Dependencies = append([]domain.Dependency(nil), d.Dependencies...)
	if d.Upgrades != nil {
		upgrades := make([]domain.Upgrade, len(d.Upgrades))
		for i, u := range d.Upgrades {
			upgrades[i] = domain.Upgrade{
				BuildCost:    cloneCost(u.BuildCost),
				Dependencies: append([]domain.Dependency(nil), u.Dependencies...),
			}
		}
		d.Upgrades = upgrades
	}
	return d
}

func cloneCost(c domain.BuildCost) domain.BuildCost {
	if c.Resources == nil {
		return c
	}
	resources := make(map[string]int, len(c.Resources))
	for k, v := range c.Resources {
		resources[k] = v
	}
	c.Resources = resources
	return c
}
