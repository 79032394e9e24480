// Package forecast normalizes the CWA open-data payload shapes (36-hour
// general forecast, weekly agricultural forecast, tide forecast) into one
// timeline-of-slots model the rest of the application consumes.
package forecast

import (
	"strconv"
	"strings"
	"time"
)

// timeLayouts covers the timestamp formats CWA mixes across its datasets
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02",
}

// ParseTime parses a CWA timestamp string. Returns nil when the input is
// empty or matches no known layout; it never fails loudly.
func ParseTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// ParseFloat parses a numeric string, returning nil for empty or
// unparsable input.
func ParseFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// asString coerces a decoded JSON value to a string. CWA is inconsistent
// about whether numeric fields arrive as strings or numbers.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// asFloat coerces a decoded JSON value to a float, nil when not numeric
func asFloat(v any) *float64 {
	switch val := v.(type) {
	case float64:
		f := val
		return &f
	case string:
		return ParseFloat(val)
	default:
		return nil
	}
}

// meanOf averages whichever of min/max is present: both -> mean, one ->
// that value, neither -> nil.
func meanOf(min, max *float64) *float64 {
	switch {
	case min != nil && max != nil:
		avg := (*min + *max) / 2
		return &avg
	case min != nil:
		v := *min
		return &v
	case max != nil:
		v := *max
		return &v
	}
	return nil
}
