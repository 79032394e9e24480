package models

import (
	"strconv"
	"time"
)

// Source indicates where a forecast payload came from
type Source string

const (
	SourceLive   Source = "live"   // fetched from the CWA open-data API
	SourceCache  Source = "cache"  // most recent payload from the local SQLite cache
	SourceSample Source = "sample" // bundled sample file (general dataset only)
)

// Category determines which metric semantics a location's slots carry
type Category string

const (
	CategoryWeather Category = "weather" // temperatures in °C
	CategoryTide    Category = "tide"    // tide heights in meters
)

// DatasetType classifies a normalized result by the categories it contains
type DatasetType string

const (
	DatasetWeather DatasetType = "weather"
	DatasetTide    DatasetType = "tide"
	DatasetMixed   DatasetType = "mixed"
	DatasetUnknown DatasetType = "unknown"
)

// Slot represents one forecast period for a location.
// Pointer fields are nil when the upstream payload omits the value.
type Slot struct {
	StartTime *time.Time
	EndTime   *time.Time // nil for open-ended slots

	Weather     string // textual description, "" if absent
	WeatherCode string // source condition code, two-digit or unpadded

	PoP           *float64 // percentage 0-100; tide-strength proxy for tide data
	MinValue      *float64 // lower bound of the primary metric
	MaxValue      *float64 // upper bound of the primary metric
	AvgValue      *float64 // mean of present min/max
	ApparentValue *float64 // apparent temperature, or mean tide height

	Comfort string // comfort index text, or tide event description
	Unit    string // "°C" or "m", fixed per category
}

// Location represents one geographic area with its forecast timeline.
// Locations are rebuilt fresh on every normalization pass.
type Location struct {
	Name       string
	Parameters map[string]string // auxiliary source metadata (lat/lon, ids)
	Category   Category
	Timeline   []Slot // chronologically ordered, never empty after normalization
}

// Forecast is the normalized result handed to the presentation layer
type Forecast struct {
	Locations   []Location
	IssueTime   *time.Time
	DatasetType DatasetType
	Source      Source
	Notice      string // failure explanation when Source is cache or sample
}

// Latitude returns the location's latitude parameter, if present and numeric
func (l *Location) Latitude() (float64, bool) {
	return paramFloat(l.Parameters, "Latitude")
}

// Longitude returns the location's longitude parameter, if present and numeric
func (l *Location) Longitude() (float64, bool) {
	return paramFloat(l.Parameters, "Longitude")
}

func paramFloat(params map[string]string, key string) (float64, bool) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// InferIssueTime returns the earliest first-slot start time across locations,
// which approximates the dataset's publication time.
func InferIssueTime(locations []Location) *time.Time {
	var earliest *time.Time
	for _, loc := range locations {
		if len(loc.Timeline) == 0 {
			continue
		}
		start := loc.Timeline[0].StartTime
		if start == nil {
			continue
		}
		if earliest == nil || start.Before(*earliest) {
			earliest = start
		}
	}
	return earliest
}

// DetermineDatasetType classifies locations as weather, tide, or mixed
func DetermineDatasetType(locations []Location) DatasetType {
	if len(locations) == 0 {
		return DatasetUnknown
	}
	allWeather, allTide := true, true
	for _, loc := range locations {
		if loc.Category != CategoryWeather {
			allWeather = false
		}
		if loc.Category != CategoryTide {
			allTide = false
		}
	}
	switch {
	case allTide:
		return DatasetTide
	case allWeather:
		return DatasetWeather
	default:
		return DatasetMixed
	}
}
