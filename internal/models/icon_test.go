package models

import "testing"

func TestSlotIcon(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		weather string
		want    string
	}{
		{"padded and unpadded codes agree", "08", "", "⛈️"},
		{"unpadded code", "8", "", "⛈️"},
		{"clear sky code", "01", "", "☀️"},
		{"two digit code", "12", "", "🌨️"},
		{"unmapped code falls back to text", "99", "陰短暫雨", "🌧️"},
		{"tide text", "", "大潮", "🌊"},
		{"thunder beats rain", "", "午後雷陣雨", "⛈️"},
		{"clear text", "", "晴時多雲", "☀️"},
		{"cloudy text", "", "多雲", "☁️"},
		{"overcast text", "", "陰天", "☁️"},
		{"snow text", "", "降雪", "❄️"},
		{"no signal", "", "", "🌡️"},
		{"unknown text", "", "鋒面通過", "🌡️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := Slot{WeatherCode: tt.code, Weather: tt.weather}
			if got := slot.Icon(); got != tt.want {
				t.Errorf("Icon() = %q, want %q", got, tt.want)
			}
		})
	}
}
