package metricx

import (
	"fmt"
	"time"
)

// Convert goes through the canonical unit: value * from.Factor / to.Factor.
// Zero converts to zero for any pair of units.
func Convert(value float64, from, to UnitDefinition) float64 {
	if value == 0 {
		return 0
	}
	if from.FactorToCanonical == to.FactorToCanonical {
		return value
	}
	canonical := value * from.FactorToCanonical
	return canonical / to.FactorToCanonical
}

type Conversion struct {
	From   UnitDefinition
	To     UnitDefinition
	Record ConversionRecord
}

func (c Conversion) IsZero() bool {
	return c.Record.InputValue == 0
}

// Display renders the result line shown under the converter form.
func (c Conversion) Display() string {
	if c.IsZero() {
		return fmt.Sprintf("0 %s = 0 %s", c.From.DisplayName, c.To.DisplayName)
	}
	return fmt.Sprintf("%s %s (%s) = %s %s (%s)",
		c.Record.FormattedInput, c.From.DisplayName, c.From.Symbol,
		c.Record.FormattedOutput, c.To.DisplayName, c.To.Symbol)
}

// Swap returns the input for the next conversion after the swap button:
// the shown output becomes the input and the units trade places.
func (c Conversion) Swap() (value float64, fromID, toID string) {
	return ParseValue(c.Record.FormattedOutput), c.To.ID, c.From.ID
}

type Converter struct {
	catalog *Catalog
	now     func() time.Time
}

type ConverterOption func(*Converter)

func WithClock(now func() time.Time) ConverterOption {
	return func(c *Converter) { c.now = now }
}

func NewConverter(catalog *Catalog, opts ...ConverterOption) *Converter {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	c := &Converter{catalog: catalog, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) Catalog() *Catalog {
	return c.catalog
}

// Convert resolves both ids, checks they share a category and builds the record.
func (c *Converter) Convert(value float64, fromID, toID string) (Conversion, error) {
	from, fromCat, err := c.catalog.Lookup(fromID)
	if err != nil {
		return Conversion{}, err
	}
	to, toCat, err := c.catalog.Lookup(toID)
	if err != nil {
		return Conversion{}, err
	}
	if fromCat != toCat {
		return Conversion{}, fmt.Errorf("%w: %s is %s, %s is %s", ErrCrossCategory, fromID, fromCat.Name, toID, toCat.Name)
	}

	result := Convert(value, from, to)
	return Conversion{
		From:   from,
		To:     to,
		Record: NewRecord(fromCat.Name, from.ID, to.ID, value, result, c.now()),
	}, nil
}

func (c *Converter) ConvertText(text, fromID, toID string) (Conversion, error) {
	return c.Convert(ParseValue(text), fromID, toID)
}
