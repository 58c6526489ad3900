package metricx

import (
	"fmt"
	"time"
)

// TimeAgo labels a history row relative to now.
func TimeAgo(now, t time.Time) string {
	secs := int64(now.Sub(t) / time.Second)
	switch {
	case secs < 60:
		return "Just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
}

// HistoryLine is the headline of a history row, e.g. "1 mi → 1609.344 m".
// Unknown units fall back to their ids.
func HistoryLine(rec ConversionRecord, catalog *Catalog) string {
	return fmt.Sprintf("%s %s → %s %s",
		rec.FormattedInput, unitLabel(catalog, rec.FromUnit, true),
		rec.FormattedOutput, unitLabel(catalog, rec.ToUnit, true))
}

// HistoryDetail is the second line of a history row, e.g. "Mile to Meter".
func HistoryDetail(rec ConversionRecord, catalog *Catalog) string {
	return unitLabel(catalog, rec.FromUnit, false) + " to " + unitLabel(catalog, rec.ToUnit, false)
}

func unitLabel(catalog *Catalog, id string, symbol bool) string {
	if catalog == nil {
		return id
	}
	u, _, err := catalog.Lookup(id)
	if err != nil {
		return id
	}
	if symbol {
		return u.Symbol
	}
	return u.DisplayName
}
