package forecast

import "github.com/ngmaloney/cwa-terminal/internal/models"

// referencePriority decides which element series defines the slot boundaries
var referencePriority = []string{"Wx", "WeatherDescription", "MinT", "MaxT"}

// timeEntry is one entry of a per-element time series. The value lives in
// one of three containers depending on the dataset vintage: a parameter
// object, an elementValue list, or a bare value field.
type timeEntry struct {
	StartTime    string         `json:"startTime"`
	DataTime     string         `json:"dataTime"`
	EndTime      string         `json:"endTime"`
	Parameter    *parameterPair `json:"parameter"`
	ElementValue []elementValue `json:"elementValue"`
	Value        any            `json:"value"`
}

type elementValue struct {
	Value    any `json:"value"`
	Measures any `json:"measures"`
}

// extract pulls the entry's value, checking the containers in order. For
// parameter objects preferValue selects parameterValue over parameterName
// (used for condition codes vs condition text).
func (e *timeEntry) extract(preferValue bool) string {
	if e == nil {
		return ""
	}
	if e.Parameter != nil {
		name := asString(e.Parameter.ParameterName)
		value := asString(e.Parameter.ParameterValue)
		if preferValue {
			if value != "" {
				return value
			}
			return name
		}
		if name != "" {
			return name
		}
		return value
	}
	if len(e.ElementValue) > 0 {
		if s := asString(e.ElementValue[0].Value); s != "" {
			return s
		}
		return asString(e.ElementValue[0].Measures)
	}
	return asString(e.Value)
}

// referenceSeries picks the series that establishes slot count and
// boundaries: the first non-empty series in priority order, else the first
// series in document order.
func referenceSeries(elements map[string][]timeEntry, ordered []string) []timeEntry {
	for _, key := range referencePriority {
		if series := elements[key]; len(series) > 0 {
			return series
		}
	}
	if len(ordered) > 0 {
		return elements[ordered[0]]
	}
	return nil
}

// elementEntry returns the i-th entry of the first candidate series that is
// long enough. Series shorter than the reference are tolerated: a missing
// index simply yields nil.
func elementEntry(elements map[string][]timeEntry, index int, candidates ...string) *timeEntry {
	for _, key := range candidates {
		series := elements[key]
		if index >= 0 && index < len(series) {
			return &series[index]
		}
	}
	return nil
}

// buildTimeline walks the reference series and merges the parallel element
// series index-wise into ordered slots.
func buildTimeline(elements map[string][]timeEntry, ordered []string) []models.Slot {
	reference := referenceSeries(elements, ordered)
	slots := make([]models.Slot, 0, len(reference))
	for i := range reference {
		ref := &reference[i]

		startRaw := ref.StartTime
		if startRaw == "" {
			startRaw = ref.DataTime
		}

		// The reference series usually is the weather element itself;
		// when it carries no parameter block, look the weather up by name.
		weatherEntry := ref
		if ref.Parameter == nil {
			weatherEntry = elementEntry(elements, i, "Wx", "WeatherDescription")
		}

		slot := models.Slot{
			StartTime:     ParseTime(startRaw),
			EndTime:       ParseTime(ref.EndTime),
			Weather:       weatherEntry.extract(false),
			WeatherCode:   weatherEntry.extract(true),
			PoP:           ParseFloat(elementEntry(elements, i, "PoP", "PoP12h").extract(false)),
			MinValue:      ParseFloat(elementEntry(elements, i, "MinT").extract(false)),
			MaxValue:      ParseFloat(elementEntry(elements, i, "MaxT").extract(false)),
			ApparentValue: ParseFloat(elementEntry(elements, i, "AT", "ApparentT").extract(false)),
			Comfort:       elementEntry(elements, i, "CI").extract(false),
			Unit:          "°C",
		}
		slot.AvgValue = meanOf(slot.MinValue, slot.MaxValue)
		slots = append(slots, slot)
	}
	return slots
}
