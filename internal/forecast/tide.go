package forecast

import (
	"encoding/json"
	"strings"

	"github.com/ngmaloney/cwa-terminal/internal/models"
)

// Tide forecast shape: forecasts live under records.TideForecasts on the
// datastore API, or under cwaopendata.Resources.Resource[0].Data on the
// file API. Heights arrive in centimeters above TWVD.

const maxTideDays = 3

// tideRangeProxy maps the tide-range descriptor to a rough percentage so
// tide slots can reuse the PoP display column.
var tideRangeProxy = map[string]float64{
	"大": 90,
	"中": 60,
	"小": 30,
}

type tidePayload struct {
	Records struct {
		TideForecasts []tideForecast `json:"TideForecasts"`
	} `json:"records"`
	CwaOpenData struct {
		Resources struct {
			Resource json.RawMessage `json:"Resource"`
		} `json:"Resources"`
	} `json:"cwaopendata"`
}

type tideResource struct {
	Data struct {
		TideForecasts []tideForecast `json:"TideForecasts"`
	} `json:"Data"`
}

type tideForecast struct {
	Location tideLocation `json:"Location"`
}

type tideLocation struct {
	LocationName string `json:"LocationName"`
	LocationID   any    `json:"LocationId"`
	Latitude     any    `json:"Latitude"`
	Longitude    any    `json:"Longitude"`
	TimePeriods  struct {
		Daily []tideDaily `json:"Daily"`
	} `json:"TimePeriods"`
}

type tideDaily struct {
	Date      string     `json:"Date"`
	TideRange string     `json:"TideRange"`
	Time      []tideTime `json:"Time"`
}

type tideTime struct {
	DateTime    string `json:"DateTime"`
	Tide        string `json:"Tide"`
	TideHeights struct {
		AboveTWVD any `json:"AboveTWVD"`
	} `json:"TideHeights"`
}

func normalizeTide(payload []byte) []models.Location {
	var locations []models.Location
	for _, raw := range extractTideForecasts(payload) {
		loc := parseTideLocation(raw)
		if len(loc.Timeline) > 0 {
			locations = append(locations, loc)
		}
	}
	return locations
}

// extractTideForecasts tries the datastore shape first, then the file-API
// shape. An unrecognized payload yields nothing.
func extractTideForecasts(payload []byte) []tideForecast {
	var doc tidePayload
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil
	}
	if len(doc.Records.TideForecasts) > 0 {
		return doc.Records.TideForecasts
	}
	resources := decodeList[tideResource](doc.CwaOpenData.Resources.Resource)
	if len(resources) == 0 {
		return nil
	}
	return resources[0].Data.TideForecasts
}

func parseTideLocation(raw tideForecast) models.Location {
	name := raw.Location.LocationName
	if name == "" {
		name = placeholderName
	}

	parameters := make(map[string]string)
	for key, value := range map[string]any{
		"LocationId": raw.Location.LocationID,
		"Latitude":   raw.Location.Latitude,
		"Longitude":  raw.Location.Longitude,
	} {
		if s := asString(value); s != "" {
			parameters[key] = s
		}
	}

	return models.Location{
		Name:       name,
		Parameters: parameters,
		Category:   models.CategoryTide,
		Timeline:   buildTideTimeline(raw.Location.TimePeriods.Daily),
	}
}

// buildTideTimeline produces one slot per day for up to three days. Heights
// are converted from centimeters to meters; the slot's min/max/avg come
// from the day's height extremes and ApparentValue carries the mean height.
func buildTideTimeline(daily []tideDaily) []models.Slot {
	if len(daily) > maxTideDays {
		daily = daily[:maxTideDays]
	}

	slots := make([]models.Slot, 0, len(daily))
	for _, day := range daily {
		if len(day.Time) == 0 {
			continue
		}

		var heights []float64
		for _, entry := range day.Time {
			if h := asFloat(entry.TideHeights.AboveTWVD); h != nil {
				heights = append(heights, *h)
			}
		}

		var minHeight, maxHeight, avgHeight *float64
		if len(heights) > 0 {
			lo, hi, sum := heights[0], heights[0], 0.0
			for _, h := range heights {
				if h < lo {
					lo = h
				}
				if h > hi {
					hi = h
				}
				sum += h
			}
			minHeight = centimetersToMeters(lo)
			maxHeight = centimetersToMeters(hi)
			avgHeight = centimetersToMeters(sum / float64(len(heights)))
		}

		slot := models.Slot{
			StartTime:     ParseTime(day.Time[0].DateTime),
			EndTime:       ParseTime(day.Time[len(day.Time)-1].DateTime),
			Weather:       day.TideRange + "潮",
			PoP:           tideRangeToProbability(day.TideRange),
			MinValue:      minHeight,
			MaxValue:      maxHeight,
			ApparentValue: avgHeight,
			Comfort:       describeDailyTide(day.Time),
			Unit:          "m",
		}
		slot.AvgValue = meanOf(minHeight, maxHeight)
		if slot.AvgValue == nil {
			slot.AvgValue = avgHeight
		}
		slots = append(slots, slot)
	}
	return slots
}

func centimetersToMeters(cm float64) *float64 {
	m := cm / 100
	return &m
}

// tideRangeToProbability maps 大/中/小 to 90/60/30, nil otherwise
func tideRangeToProbability(tideRange string) *float64 {
	if v, ok := tideRangeProxy[strings.TrimSpace(tideRange)]; ok {
		return &v
	}
	return nil
}

// describeDailyTide summarizes up to the first three tide events of a day
// as "HH:MM滿潮" style pairs, or an em placeholder when none qualify.
func describeDailyTide(events []tideTime) string {
	if len(events) > 3 {
		events = events[:3]
	}
	var parts []string
	for _, entry := range events {
		ts := ParseTime(entry.DateTime)
		if ts == nil || entry.Tide == "" {
			continue
		}
		parts = append(parts, ts.Format("15:04")+entry.Tide)
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, "、")
}
