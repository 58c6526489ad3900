package metricx

import "fmt"

type QuickConversion struct {
	Key   string
	Value float64
	From  string
	To    string
}

var QuickConversions = []QuickConversion{
	{Key: "1m-ft", Value: 1, From: "meter", To: "foot"},
	{Key: "1km-mi", Value: 1, From: "kilometer", To: "mile"},
	{Key: "1in-cm", Value: 1, From: "inch", To: "centimeter"},
	{Key: "1ft-m", Value: 1, From: "foot", To: "meter"},
	{Key: "100cm-m", Value: 100, From: "centimeter", To: "meter"},
	{Key: "1mi-km", Value: 1, From: "mile", To: "kilometer"},
	{Key: "1yd-m", Value: 1, From: "yard", To: "meter"},
	{Key: "1nmi-km", Value: 1, From: "nautical-mile", To: "kilometer"},
}

func LookupQuick(key string) (QuickConversion, error) {
	for _, q := range QuickConversions {
		if q.Key == key {
			return q, nil
		}
	}
	return QuickConversion{}, fmt.Errorf("%w: %q", ErrUnknownPreset, key)
}

// Quick runs one of the preset buttons.
func (c *Converter) Quick(key string) (Conversion, error) {
	q, err := LookupQuick(key)
	if err != nil {
		return Conversion{}, err
	}
	return c.Convert(q.Value, q.From, q.To)
}
