package metricx

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Infinity is the site's spelling, Inf is what FormatNumber writes.
var numberPrefix = regexp.MustCompile(`^[+-]?(Infinity|Inf|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseValue reads the leading number of a form field ("12abc" is 12).
// Text with no numeric prefix reads as 0, never as an error.
func ParseValue(text string) float64 {
	m := numberPrefix.FindString(strings.TrimSpace(text))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return 0
	}
	return f
}
