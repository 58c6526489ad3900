package metricx

import (
	"fmt"
	"math"
)

type UnitDefinition struct {
	ID                string
	DisplayName       string
	Symbol            string
	FactorToCanonical float64 // e.g., 1 foot * 0.3048 = meters
}

// Category is a set of mutually convertible units. Every factor is relative
// to the single canonical unit of the category (the one with factor 1).
type Category struct {
	Name        string
	Description string
	Canonical   string
	units       []UnitDefinition
	index       map[string]int // unitID -> position in units
}

func NewCategory(name, description string, units ...UnitDefinition) (*Category, error) {
	c := &Category{
		Name:        name,
		Description: description,
		index:       make(map[string]int, len(units)),
	}
	for _, u := range units {
		if err := c.addUnit(u); err != nil {
			return nil, err
		}
	}
	if c.Canonical == "" {
		return nil, fmt.Errorf("%w: %s has no canonical unit", ErrInvalidCategory, name)
	}
	return c, nil
}

func MustCategory(name, description string, units ...UnitDefinition) *Category {
	c, err := NewCategory(name, description, units...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Category) addUnit(u UnitDefinition) error {
	if u.ID == "" {
		return fmt.Errorf("%w: %s has a unit without id", ErrInvalidCategory, c.Name)
	}
	if _, ok := c.index[u.ID]; ok {
		return fmt.Errorf("%w: %s lists %q twice", ErrInvalidCategory, c.Name, u.ID)
	}
	if !(u.FactorToCanonical > 0) || math.IsInf(u.FactorToCanonical, 0) {
		return fmt.Errorf("%w: %s factor for %q must be positive, got %v", ErrInvalidCategory, c.Name, u.ID, u.FactorToCanonical)
	}
	if u.FactorToCanonical == 1 {
		if c.Canonical != "" {
			return fmt.Errorf("%w: %s has two canonical units (%q, %q)", ErrInvalidCategory, c.Name, c.Canonical, u.ID)
		}
		c.Canonical = u.ID
	}
	c.index[u.ID] = len(c.units)
	c.units = append(c.units, u)
	return nil
}

func (c *Category) Unit(id string) (UnitDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return UnitDefinition{}, false
	}
	return c.units[i], true
}

// Units returns a copy in declaration order.
func (c *Category) Units() []UnitDefinition {
	return append([]UnitDefinition(nil), c.units...)
}

func (c *Category) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}
