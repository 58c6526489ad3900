package metricx

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	FixedPrecision    = 8
	LargePrecision    = 6
	HugePrecision     = 3
	TinyPrecision     = 6
	HugeThreshold     = 1e15
	LargeThreshold    = 1e6
	FixedMinThreshold = 0.001
)

// exactExponent is below the smallest binary exponent of a float64, so
// exactDecimal keeps every digit of the binary value.
const exactExponent = -1100

var ten = decimal.NewFromInt(10)

// FormatNumber picks fixed-point or exponential notation by magnitude.
func FormatNumber(value float64) string {
	if value == 0 {
		return "0"
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	abs := math.Abs(value)
	switch {
	case abs >= HugeThreshold:
		return FormatExponential(value, HugePrecision)
	case abs >= LargeThreshold:
		return FormatExponential(value, LargePrecision)
	case abs >= FixedMinThreshold:
		return FormatFixed(value, FixedPrecision)
	default:
		return FormatExponential(value, TinyPrecision)
	}
}

func exactDecimal(value float64) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(value, exactExponent)
}

// FormatFixed rounds to prec fraction digits, ties away from zero, and
// drops trailing zeros.
func FormatFixed(value float64, prec int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	s := exactDecimal(value).StringFixed(int32(prec))
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatExponential writes prec mantissa digits, ties away from zero, and an
// exponent without zero padding: 2.540000e-5.
func FormatExponential(value float64, prec int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	places := int32(prec)
	exact := exactDecimal(value)
	exp := 0
	if !exact.IsZero() {
		exp = exact.NumDigits() - 1 + int(exact.Exponent())
	}
	mantissa := exact.Shift(int32(-exp)).Round(places)
	if mantissa.Abs().GreaterThanOrEqual(ten) {
		exp++
		mantissa = exact.Shift(int32(-exp)).Round(places)
	}

	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	return mantissa.StringFixed(places) + "e" + sign + strconv.Itoa(exp)
}
