package metricx_test

import (
	"math"
	"testing"

	"metricx"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"mile in meters", 1609.344, "1609.344"},
		{"one", 1, "1"},
		{"meters to feet", 5 / 0.3048, "16.40419948"},
		{"kilometers to miles", 10000 / 1609.344, "6.21371192"},
		{"half", 0.5, "0.5"},
		{"negative fixed", -2.5, "-2.5"},
		{"lower fixed bound", 0.001, "0.001"},
		{"light year", 9.461e15, "9.461e+15"},
		{"huge negative", -2.5e20, "-2.500e+20"},
		{"million", 1e6, "1.000000e+6"},
		{"large", 123456789, "1.234568e+8"},
		{"inch in micrometer scale", 0.0000254, "2.540000e-5"},
		{"negative tiny", -0.0000254, "-2.540000e-5"},
		{"nanometer scale", 1.5e-10, "1.500000e-10"},
		{"fixed tie rounds away from zero", 0.001953125, "0.00195313"},
		{"negative fixed tie", -0.001953125, "-0.00195313"},
		{"large tie", 1234568.5, "1.234569e+6"},
		{"huge tie", 1.0005e15, "1.001e+15"},
		{"tiny exact binary", 1.52587890625e-5, "1.525879e-5"},
		{"nan", math.NaN(), "NaN"},
		{"inf", math.Inf(1), "+Inf"},
		{"negative inf", math.Inf(-1), "-Inf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := metricx.FormatNumber(tc.in); got != tc.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatFixedStripsTrailingZeros(t *testing.T) {
	if got := metricx.FormatFixed(2.50000000, 8); got != "2.5" {
		t.Errorf("FormatFixed(2.5) = %q", got)
	}
	if got := metricx.FormatFixed(3.280839895013123, 8); got != "3.2808399" {
		t.Errorf("FormatFixed(1/0.3048) = %q", got)
	}
	if got := metricx.FormatFixed(100, 8); got != "100" {
		t.Errorf("FormatFixed(100) = %q", got)
	}
}

func TestFormatRoundsBinaryValue(t *testing.T) {
	// 1.005 and 2.675 are stored just below the tie.
	if got := metricx.FormatFixed(1.005, 2); got != "1" {
		t.Errorf("FormatFixed(1.005, 2) = %q", got)
	}
	if got := metricx.FormatFixed(2.675, 2); got != "2.67" {
		t.Errorf("FormatFixed(2.675, 2) = %q", got)
	}
	if got := metricx.FormatFixed(0.125, 2); got != "0.13" {
		t.Errorf("FormatFixed(0.125, 2) = %q", got)
	}
	if got := metricx.FormatExponential(2.5, 0); got != "3e+0" {
		t.Errorf("FormatExponential(2.5, 0) = %q", got)
	}
	if got := metricx.FormatExponential(9.9996e20, 3); got != "1.000e+21" {
		t.Errorf("carry into the exponent: %q", got)
	}
}

func TestFormatExponentialNoPadding(t *testing.T) {
	if got := metricx.FormatExponential(1.496e11, 3); got != "1.496e+11" {
		t.Errorf("got %q", got)
	}
	if got := metricx.FormatExponential(3e-9, 6); got != "3.000000e-9" {
		t.Errorf("got %q", got)
	}
}
