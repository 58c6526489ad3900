package metricx

import (
	"time"

	"github.com/google/uuid"
)

// ConversionRecord is one successful conversion. Records are never mutated
// after NewRecord returns them.
type ConversionRecord struct {
	ID              string
	Category        string
	FromUnit        string
	ToUnit          string
	InputValue      float64
	OutputValue     float64
	FormattedInput  string
	FormattedOutput string
	Timestamp       time.Time
}

func NewRecord(category, fromUnit, toUnit string, input, output float64, at time.Time) ConversionRecord {
	return ConversionRecord{
		ID:              uuid.New().String(),
		Category:        category,
		FromUnit:        fromUnit,
		ToUnit:          toUnit,
		InputValue:      input,
		OutputValue:     output,
		FormattedInput:  FormatNumber(input),
		FormattedOutput: FormatNumber(output),
		Timestamp:       at,
	}
}
