package forecast

import (
	"encoding/json"
	"sort"

	"github.com/ngmaloney/cwa-terminal/internal/models"
)

// Weekly agricultural forecast shape: a resource (sometimes wrapped in a
// list) holding data.agrWeatherForecasts.weatherForecasts.location, where
// each location maps element names to daily entries.

type agrPayload struct {
	Resource json.RawMessage `json:"resource"`
}

type agrResource struct {
	Data struct {
		AgrWeatherForecasts struct {
			WeatherForecasts struct {
				Location json.RawMessage `json:"location"`
			} `json:"weatherForecasts"`
		} `json:"agrWeatherForecasts"`
	} `json:"data"`
}

type agrLocation struct {
	LocationName    string                `json:"locationName"`
	WeatherElements map[string]agrElement `json:"weatherElements"`
}

type agrElement struct {
	Daily []agrDaily `json:"daily"`
}

type agrDaily struct {
	DataDate    string `json:"dataDate"`
	Weather     string `json:"weather"`
	WeatherID   any    `json:"weatherid"`
	Temperature any    `json:"temperature"`
}

func normalizeAgricultural(payload []byte) []models.Location {
	var doc agrPayload
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil
	}

	resources := decodeList[agrResource](doc.Resource)
	if len(resources) == 0 {
		return nil
	}
	resource := resources[0]

	var locations []models.Location
	for _, raw := range decodeList[agrLocation](resource.Data.AgrWeatherForecasts.WeatherForecasts.Location) {
		loc := parseAgrLocation(raw)
		if len(loc.Timeline) > 0 {
			locations = append(locations, loc)
		}
	}
	return locations
}

func parseAgrLocation(raw agrLocation) models.Location {
	name := raw.LocationName
	if name == "" {
		name = placeholderName
	}
	return models.Location{
		Name:       name,
		Parameters: map[string]string{},
		Category:   models.CategoryWeather,
		Timeline:   buildAgrTimeline(raw.WeatherElements),
	}
}

// buildAgrTimeline merges the Wx and MinT/MaxT daily entries by date.
// Element names other than those three are ignored.
func buildAgrTimeline(elements map[string]agrElement) []models.Slot {
	type dayEntry struct {
		weather     string
		weatherCode string
		minValue    *float64
		maxValue    *float64
	}
	days := make(map[string]*dayEntry)
	day := func(date string) *dayEntry {
		if entry, ok := days[date]; ok {
			return entry
		}
		entry := &dayEntry{}
		days[date] = entry
		return entry
	}

	for name, element := range elements {
		for _, daily := range element.Daily {
			if daily.DataDate == "" {
				continue
			}
			switch name {
			case "Wx":
				entry := day(daily.DataDate)
				entry.weather = daily.Weather
				entry.weatherCode = asString(daily.WeatherID)
			case "MinT":
				day(daily.DataDate).minValue = asFloat(daily.Temperature)
			case "MaxT":
				day(daily.DataDate).maxValue = asFloat(daily.Temperature)
			}
		}
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	slots := make([]models.Slot, 0, len(dates))
	for _, date := range dates {
		entry := days[date]
		slot := models.Slot{
			StartTime:   ParseTime(date),
			Weather:     entry.weather,
			WeatherCode: entry.weatherCode,
			MinValue:    entry.minValue,
			MaxValue:    entry.maxValue,
			AvgValue:    meanOf(entry.minValue, entry.maxValue),
			Unit:        "°C",
		}
		slots = append(slots, slot)
	}
	return slots
}

// decodeList decodes JSON that may be either a single object or a list of
// objects into a slice. CWA flips between the two without warning.
func decodeList[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single T
	if err := json.Unmarshal(raw, &single); err == nil {
		return []T{single}
	}
	return nil
}
