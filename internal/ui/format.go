package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/ngmaloney/cwa-terminal/internal/models"
)

const placeholder = "—"

// formatMetricRange renders a min/max pair like "18.0°C ~ 24.0°C",
// collapsing to a single value when the bounds effectively coincide.
func formatMetricRange(min, max *float64, unit string) string {
	switch {
	case min == nil && max == nil:
		return placeholder
	case min == nil:
		return formatValue(max, unit)
	case max == nil:
		return formatValue(min, unit)
	}
	if math.Abs(*max-*min) < 0.1 {
		mid := (*min + *max) / 2
		return formatValue(&mid, unit)
	}
	return fmt.Sprintf("%.1f%s ~ %.1f%s", *min, unit, *max, unit)
}

// formatValue renders a single metric value with its unit
func formatValue(v *float64, unit string) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprintf("%.1f%s", *v, unit)
}

// formatPercentage renders a probability-like value, rounded
func formatPercentage(v *float64) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprintf("%.0f%%", math.Round(*v))
}

// formatSlotTime renders a slot boundary as MM/DD HH:MM
func formatSlotTime(t *time.Time) string {
	if t == nil {
		return placeholder
	}
	return t.Format("01/02 15:04")
}

// slotRange renders "start – end" for a slot
func slotRange(slot models.Slot) string {
	return formatSlotTime(slot.StartTime) + " – " + formatSlotTime(slot.EndTime)
}

// orPlaceholder substitutes the em placeholder for empty strings
func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// padCell pads (or truncates) a table cell to a display width. CJK
// characters are double-width, so byte or rune counts won't line up.
func padCell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
