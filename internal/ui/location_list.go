package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/ngmaloney/cwa-terminal/internal/models"
)

// locationItem wraps a normalized location for use in a list
type locationItem struct {
	location models.Location
}

// FilterValue implements list.Item; searching matches the location name
// and its auxiliary parameters (source ids, coordinates).
func (i locationItem) FilterValue() string {
	parts := []string{i.location.Name}
	for _, value := range i.location.Parameters {
		parts = append(parts, value)
	}
	return strings.Join(parts, " ")
}

// Title implements list.DefaultItem
func (i locationItem) Title() string {
	slot := i.location.Timeline[0]
	return fmt.Sprintf("%s %s｜%s", slot.Icon(), i.location.Name,
		formatMetricRange(slot.MinValue, slot.MaxValue, slot.Unit))
}

// Description implements list.DefaultItem
func (i locationItem) Description() string {
	slot := i.location.Timeline[0]
	if i.location.Category == models.CategoryTide {
		return fmt.Sprintf("%s｜潮汐指標 %s", orPlaceholder(slot.Weather), formatPercentage(slot.PoP))
	}
	return fmt.Sprintf("%s｜降雨機率 %s", orPlaceholder(slot.Weather), formatPercentage(slot.PoP))
}

// createLocationList builds the selector list, preselecting the configured
// default location when present.
func createLocationList(locations []models.Location, defaultName string, width, height int) list.Model {
	items := make([]list.Item, len(locations))
	selected := 0
	for i, location := range locations {
		items[i] = locationItem{location: location}
		if location.Name == defaultName {
			selected = i
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "縣市列表"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Select(selected)

	return l
}
