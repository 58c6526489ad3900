package metricx

import "fmt"

const (
	CategoryLength = "length"
	CategoryMass   = "mass"
	CategoryArea   = "area"
)

var Length = MustCategory(CategoryLength, "Convert meters, feet, inches, miles",
	UnitDefinition{ID: "meter", DisplayName: "Meter", Symbol: "m", FactorToCanonical: 1},
	UnitDefinition{ID: "kilometer", DisplayName: "Kilometer", Symbol: "km", FactorToCanonical: 1000},
	UnitDefinition{ID: "centimeter", DisplayName: "Centimeter", Symbol: "cm", FactorToCanonical: 0.01},
	UnitDefinition{ID: "millimeter", DisplayName: "Millimeter", Symbol: "mm", FactorToCanonical: 0.001},
	UnitDefinition{ID: "micrometer", DisplayName: "Micrometer", Symbol: "μm", FactorToCanonical: 0.000001},
	UnitDefinition{ID: "nanometer", DisplayName: "Nanometer", Symbol: "nm", FactorToCanonical: 0.000000001},
	UnitDefinition{ID: "inch", DisplayName: "Inch", Symbol: "in", FactorToCanonical: 0.0254},
	UnitDefinition{ID: "foot", DisplayName: "Foot", Symbol: "ft", FactorToCanonical: 0.3048},
	UnitDefinition{ID: "yard", DisplayName: "Yard", Symbol: "yd", FactorToCanonical: 0.9144},
	UnitDefinition{ID: "mile", DisplayName: "Mile", Symbol: "mi", FactorToCanonical: 1609.344},
	UnitDefinition{ID: "nautical-mile", DisplayName: "Nautical Mile", Symbol: "nmi", FactorToCanonical: 1852},
	UnitDefinition{ID: "light-year", DisplayName: "Light Year", Symbol: "ly", FactorToCanonical: 9.461e15},
	UnitDefinition{ID: "astronomical-unit", DisplayName: "Astronomical Unit", Symbol: "AU", FactorToCanonical: 1.496e11},
)

var Mass = MustCategory(CategoryMass, "Convert kilograms, pounds, grams",
	UnitDefinition{ID: "kilogram", DisplayName: "Kilogram", Symbol: "kg", FactorToCanonical: 1},
	UnitDefinition{ID: "gram", DisplayName: "Gram", Symbol: "g", FactorToCanonical: 0.001},
	UnitDefinition{ID: "milligram", DisplayName: "Milligram", Symbol: "mg", FactorToCanonical: 0.000001},
	UnitDefinition{ID: "metric-ton", DisplayName: "Metric Ton", Symbol: "t", FactorToCanonical: 1000},
	UnitDefinition{ID: "pound", DisplayName: "Pound", Symbol: "lb", FactorToCanonical: 0.45359237},
	UnitDefinition{ID: "ounce", DisplayName: "Ounce", Symbol: "oz", FactorToCanonical: 0.028349523125},
	UnitDefinition{ID: "stone", DisplayName: "Stone", Symbol: "st", FactorToCanonical: 6.35029318},
)

var Area = MustCategory(CategoryArea, "Convert square meters, acres, hectares",
	UnitDefinition{ID: "square-meter", DisplayName: "Square Meter", Symbol: "m²", FactorToCanonical: 1},
	UnitDefinition{ID: "square-kilometer", DisplayName: "Square Kilometer", Symbol: "km²", FactorToCanonical: 1e6},
	UnitDefinition{ID: "square-centimeter", DisplayName: "Square Centimeter", Symbol: "cm²", FactorToCanonical: 1e-4},
	UnitDefinition{ID: "hectare", DisplayName: "Hectare", Symbol: "ha", FactorToCanonical: 1e4},
	UnitDefinition{ID: "acre", DisplayName: "Acre", Symbol: "ac", FactorToCanonical: 4046.8564224},
	UnitDefinition{ID: "square-foot", DisplayName: "Square Foot", Symbol: "ft²", FactorToCanonical: 0.09290304},
	UnitDefinition{ID: "square-inch", DisplayName: "Square Inch", Symbol: "in²", FactorToCanonical: 0.00064516},
	UnitDefinition{ID: "square-mile", DisplayName: "Square Mile", Symbol: "mi²", FactorToCanonical: 2589988.110336},
)

// Catalog indexes unit ids across categories. Unit ids are unique catalog-wide
// so a bare id is enough to resolve both the unit and its category.
type Catalog struct {
	categories []*Category
	byName     map[string]*Category
	byUnit     map[string]*Category
}

func NewCatalog(categories ...*Category) (*Catalog, error) {
	cat := &Catalog{
		byName: make(map[string]*Category, len(categories)),
		byUnit: make(map[string]*Category),
	}
	for _, c := range categories {
		if _, ok := cat.byName[c.Name]; ok {
			return nil, fmt.Errorf("%w: category %s registered twice", ErrInvalidCategory, c.Name)
		}
		for _, u := range c.units {
			if other, ok := cat.byUnit[u.ID]; ok {
				return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateUnit, u.ID, other.Name, c.Name)
			}
			cat.byUnit[u.ID] = c
		}
		cat.byName[c.Name] = c
		cat.categories = append(cat.categories, c)
	}
	return cat, nil
}

// DefaultCatalog holds every category the site offers.
func DefaultCatalog() *Catalog {
	cat, err := NewCatalog(Length, Mass, Area)
	if err != nil {
		panic(err)
	}
	return cat
}

func (cat *Catalog) Categories() []*Category {
	return append([]*Category(nil), cat.categories...)
}

func (cat *Catalog) Category(name string) (*Category, bool) {
	c, ok := cat.byName[name]
	return c, ok
}

// Lookup resolves a unit id to its definition and owning category.
func (cat *Catalog) Lookup(id string) (UnitDefinition, *Category, error) {
	c, ok := cat.byUnit[id]
	if !ok {
		return UnitDefinition{}, nil, fmt.Errorf("%w: %q", ErrInvalidUnitID, id)
	}
	u, _ := c.Unit(id)
	return u, c, nil
}
