package ui

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/ngmaloney/cwa-terminal/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestFormatMetricRange(t *testing.T) {
	tests := []struct {
		name string
		min  *float64
		max  *float64
		unit string
		want string
	}{
		{"both bounds", floatPtr(18), floatPtr(24), "°C", "18.0°C ~ 24.0°C"},
		{"coincident bounds collapse", floatPtr(21), floatPtr(21.05), "°C", "21.0°C"},
		{"min only", floatPtr(18), nil, "°C", "18.0°C"},
		{"max only", nil, floatPtr(1.5), "m", "1.5m"},
		{"neither", nil, nil, "°C", "—"},
		{"negative tide range", floatPtr(-0.5), floatPtr(1.5), "m", "-0.5m ~ 1.5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMetricRange(tt.min, tt.max, tt.unit); got != tt.want {
				t.Errorf("formatMetricRange = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	if got := formatPercentage(floatPtr(29.6)); got != "30%" {
		t.Errorf("formatPercentage = %q, want 30%%", got)
	}
	if got := formatPercentage(nil); got != "—" {
		t.Errorf("formatPercentage(nil) = %q, want placeholder", got)
	}
}

func TestFormatSlotTime(t *testing.T) {
	ts := time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC)
	if got := formatSlotTime(&ts); got != "05/20 18:00" {
		t.Errorf("formatSlotTime = %q", got)
	}
	if got := formatSlotTime(nil); got != "—" {
		t.Errorf("formatSlotTime(nil) = %q, want placeholder", got)
	}
}

func TestSlotRange(t *testing.T) {
	start := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	slot := models.Slot{StartTime: &start}
	if got := slotRange(slot); got != "05/20 12:00 – —" {
		t.Errorf("slotRange = %q", got)
	}
}

func TestOrPlaceholder(t *testing.T) {
	if got := orPlaceholder(""); got != "—" {
		t.Errorf("orPlaceholder(\"\") = %q", got)
	}
	if got := orPlaceholder("舒適"); got != "舒適" {
		t.Errorf("orPlaceholder = %q", got)
	}
}

func TestPadCellCJKWidth(t *testing.T) {
	// Every cell must land on the same display width regardless of how
	// many double-width runes it contains.
	for _, s := range []string{"臺北市", "Keelung", "新北市貢寮區", ""} {
		if got := runewidth.StringWidth(padCell(s, 12)); got != 12 {
			t.Errorf("padCell(%q, 12) display width = %d, want 12", s, got)
		}
	}

	// Overlong content is truncated with an ellipsis, still on width.
	long := padCell("高雄市鳳山區五甲一路", 8)
	if got := runewidth.StringWidth(long); got != 8 {
		t.Errorf("truncated cell width = %d, want 8", got)
	}
}
