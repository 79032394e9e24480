package forecast

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantNil bool
	}{
		{
			name:  "ISO 8601 with offset",
			input: "2025-05-20T12:00:00+08:00",
			want:  time.Date(2025, 5, 20, 12, 0, 0, 0, time.FixedZone("", 8*3600)),
		},
		{
			name:  "ISO 8601 without offset",
			input: "2025-05-20T12:00:00",
			want:  time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "space separated",
			input: "2025-05-20 12:00:00",
			want:  time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "space separated with offset",
			input: "2025-05-20 12:00:00+08:00",
			want:  time.Date(2025, 5, 20, 12, 0, 0, 0, time.FixedZone("", 8*3600)),
		},
		{
			name:  "bare date",
			input: "2025-05-20",
			want:  time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{name: "empty", input: "", wantNil: true},
		{name: "whitespace only", input: "   ", wantNil: true},
		{name: "garbage", input: "not a time", wantNil: true},
		{name: "unsupported layout", input: "20/05/2025", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTime(tt.input)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParseTime(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseTime(%q) = nil, want %v", tt.input, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		want  *float64
	}{
		{"18", floatPtr(18)},
		{"21.5", floatPtr(21.5)},
		{"-3.2", floatPtr(-3.2)},
		{" 30 ", floatPtr(30)},
		{"", nil},
		{"N/A", nil},
		{"一百", nil},
	}

	for _, tt := range tests {
		got := ParseFloat(tt.input)
		if (got == nil) != (tt.want == nil) {
			t.Errorf("ParseFloat(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		if got != nil && *got != *tt.want {
			t.Errorf("ParseFloat(%q) = %v, want %v", tt.input, *got, *tt.want)
		}
	}
}

func TestMeanOf(t *testing.T) {
	tests := []struct {
		name string
		min  *float64
		max  *float64
		want *float64
	}{
		{"both present", floatPtr(18), floatPtr(24), floatPtr(21)},
		{"only min", floatPtr(18), nil, floatPtr(18)},
		{"only max", nil, floatPtr(24), floatPtr(24)},
		{"neither", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := meanOf(tt.min, tt.max)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("meanOf() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("meanOf() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestAsString(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{"晴", "晴"},
		{float64(26), "26"},
		{float64(1.5), "1.5"},
		{true, "true"},
		{nil, ""},
		{[]any{"x"}, ""},
	}

	for _, tt := range tests {
		if got := asString(tt.input); got != tt.want {
			t.Errorf("asString(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
