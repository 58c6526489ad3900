package metricx_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"metricx"
)

var sampleValues = []float64{1, 42.5, -7, 0.001, 123456.789, 1e9}

func TestConvertIdentity(t *testing.T) {
	values := append([]float64{1e300, -1e-300}, sampleValues...)
	for _, c := range metricx.DefaultCatalog().Categories() {
		for _, u := range c.Units() {
			for _, v := range values {
				if got := metricx.Convert(v, u, u); got != v {
					t.Errorf("%s: Convert(%v, %s, %s) = %v", c.Name, v, u.ID, u.ID, got)
				}
			}
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for _, c := range metricx.DefaultCatalog().Categories() {
		units := c.Units()
		for _, a := range units {
			for _, b := range units {
				for _, v := range sampleValues {
					back := metricx.Convert(metricx.Convert(v, a, b), b, a)
					if rel := math.Abs(back-v) / math.Abs(v); rel >= 1e-9 {
						t.Errorf("%s -> %s -> %s: %v came back as %v", a.ID, b.ID, a.ID, v, back)
					}
				}
			}
		}
	}
}

func TestConvertZero(t *testing.T) {
	for _, a := range metricx.Length.Units() {
		for _, b := range metricx.Length.Units() {
			got := metricx.Convert(math.Copysign(0, -1), a, b)
			if got != 0 || math.Signbit(got) {
				t.Fatalf("Convert(-0, %s, %s) = %v", a.ID, b.ID, got)
			}
		}
	}
}

func TestConvertPropagatesNaNAndNegatives(t *testing.T) {
	m, _ := metricx.Length.Unit("meter")
	ft, _ := metricx.Length.Unit("foot")
	if got := metricx.Convert(math.NaN(), m, ft); !math.IsNaN(got) {
		t.Errorf("NaN became %v", got)
	}
	if got, want := metricx.Convert(-5, m, ft), -5/0.3048; got != want {
		t.Errorf("Convert(-5) = %v, want %v", got, want)
	}
}

func TestConverterScenarios(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	conv := metricx.NewConverter(nil, metricx.WithClock(func() time.Time { return at }))

	cases := []struct {
		value    float64
		from, to string
		output   string
		display  string
	}{
		{5, "meter", "foot", "16.40419948", "5 Meter (m) = 16.40419948 Foot (ft)"},
		{10, "kilometer", "mile", "6.21371192", "10 Kilometer (km) = 6.21371192 Mile (mi)"},
		{1, "mile", "meter", "1609.344", "1 Mile (mi) = 1609.344 Meter (m)"},
		{1, "light-year", "kilometer", "9.461000e+12", "1 Light Year (ly) = 9.461000e+12 Kilometer (km)"},
		{1, "inch", "micrometer", "25400", "1 Inch (in) = 25400 Micrometer (μm)"},
		{1, "light-year", "meter", "9.461e+15", "1 Light Year (ly) = 9.461e+15 Meter (m)"},
	}
	for _, tc := range cases {
		c, err := conv.Convert(tc.value, tc.from, tc.to)
		if err != nil {
			t.Fatalf("Convert(%v, %s, %s): %v", tc.value, tc.from, tc.to, err)
		}
		if c.Record.FormattedOutput != tc.output {
			t.Errorf("%s -> %s output = %q, want %q", tc.from, tc.to, c.Record.FormattedOutput, tc.output)
		}
		if got := c.Display(); got != tc.display {
			t.Errorf("display = %q, want %q", got, tc.display)
		}
		if !c.Record.Timestamp.Equal(at) {
			t.Errorf("timestamp = %v, want %v", c.Record.Timestamp, at)
		}
		if c.Record.ID == "" || c.Record.Category != metricx.CategoryLength {
			t.Errorf("record = %+v", c.Record)
		}
	}
}

func TestConverterErrors(t *testing.T) {
	conv := metricx.NewConverter(nil)

	if _, err := conv.Convert(1, "meter", "kilogram"); !errors.Is(err, metricx.ErrCrossCategory) {
		t.Errorf("meter -> kilogram: got %v, want ErrCrossCategory", err)
	}
	if _, err := conv.Convert(1, "parsec", "meter"); !errors.Is(err, metricx.ErrInvalidUnitID) {
		t.Errorf("parsec -> meter: got %v, want ErrInvalidUnitID", err)
	}
	if _, err := conv.Convert(1, "meter", ""); !errors.Is(err, metricx.ErrInvalidUnitID) {
		t.Errorf("meter -> empty: got %v, want ErrInvalidUnitID", err)
	}
}

func TestConverterZeroInput(t *testing.T) {
	conv := metricx.NewConverter(nil)
	c, err := conv.ConvertText("not a number", "meter", "foot")
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsZero() {
		t.Fatalf("expected zero conversion, got %+v", c.Record)
	}
	if got := c.Display(); got != "0 Meter = 0 Foot" {
		t.Errorf("display = %q", got)
	}
	if c.Record.FormattedOutput != "0" {
		t.Errorf("output = %q", c.Record.FormattedOutput)
	}
}

func TestConversionSwap(t *testing.T) {
	conv := metricx.NewConverter(nil)
	c, err := conv.Convert(5, "meter", "foot")
	if err != nil {
		t.Fatal(err)
	}
	value, from, to := c.Swap()
	if value != 16.40419948 || from != "foot" || to != "meter" {
		t.Errorf("Swap() = %v, %s, %s", value, from, to)
	}
}

func TestConversionSwapInfinite(t *testing.T) {
	conv := metricx.NewConverter(nil)
	c, err := conv.Convert(1e300, "light-year", "nanometer")
	if err != nil {
		t.Fatal(err)
	}
	if c.Record.FormattedOutput != "+Inf" {
		t.Fatalf("output = %q", c.Record.FormattedOutput)
	}
	if value, _, _ := c.Swap(); !math.IsInf(value, 1) {
		t.Errorf("Swap() value = %v, want +Inf", value)
	}
}

func TestConverterMass(t *testing.T) {
	conv := metricx.NewConverter(nil)
	c, err := conv.Convert(1, "pound", "gram")
	if err != nil {
		t.Fatal(err)
	}
	if c.Record.FormattedOutput != "453.59237" {
		t.Errorf("1 lb = %q g", c.Record.FormattedOutput)
	}
	if c.Record.Category != metricx.CategoryMass {
		t.Errorf("category = %q", c.Record.Category)
	}
}
