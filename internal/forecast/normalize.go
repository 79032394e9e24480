package forecast

import (
	"encoding/json"
	"sort"

	"github.com/ngmaloney/cwa-terminal/internal/models"
)

// placeholderName is used when a payload omits a location's name
const placeholderName = "未知地區"

// Normalize converts a raw CWA payload into normalized locations. The three
// payload shapes (general forecast, agricultural forecast, tide forecast)
// are detected in that order; locations with an empty timeline are dropped
// and the remainder is sorted by name. A payload matching no shape yields an
// empty slice rather than an error — partial data beats failure here.
func Normalize(payload []byte) []models.Location {
	if locations := normalizeGeneral(payload); len(locations) > 0 {
		return sortByName(locations)
	}
	if locations := normalizeAgricultural(payload); len(locations) > 0 {
		return sortByName(locations)
	}
	return sortByName(normalizeTide(payload))
}

func sortByName(locations []models.Location) []models.Location {
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Name < locations[j].Name
	})
	return locations
}

// General 36-hour forecast shape: records.location[].weatherElement[].time[]

type generalPayload struct {
	Records struct {
		Location []generalLocation `json:"location"`
	} `json:"records"`
}

type generalLocation struct {
	LocationName   string           `json:"locationName"`
	Parameter      []parameterPair  `json:"parameter"`
	WeatherElement []weatherElement `json:"weatherElement"`
}

type parameterPair struct {
	ParameterName  any `json:"parameterName"`
	ParameterValue any `json:"parameterValue"`
}

type weatherElement struct {
	ElementName string      `json:"elementName"`
	Time        []timeEntry `json:"time"`
}

func normalizeGeneral(payload []byte) []models.Location {
	var doc generalPayload
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil
	}

	var locations []models.Location
	for _, raw := range doc.Records.Location {
		loc := parseGeneralLocation(raw)
		if len(loc.Timeline) > 0 {
			locations = append(locations, loc)
		}
	}
	return locations
}

func parseGeneralLocation(raw generalLocation) models.Location {
	elements := make(map[string][]timeEntry)
	var ordered []string
	for _, element := range raw.WeatherElement {
		if element.ElementName == "" {
			continue
		}
		if _, seen := elements[element.ElementName]; !seen {
			ordered = append(ordered, element.ElementName)
		}
		elements[element.ElementName] = element.Time
	}

	parameters := make(map[string]string)
	for _, param := range raw.Parameter {
		name := asString(param.ParameterName)
		if name == "" {
			continue
		}
		parameters[name] = asString(param.ParameterValue)
	}

	name := raw.LocationName
	if name == "" {
		name = placeholderName
	}

	return models.Location{
		Name:       name,
		Parameters: parameters,
		Category:   models.CategoryWeather,
		Timeline:   buildTimeline(elements, ordered),
	}
}
