package models

import "strings"

// weatherIconMap maps CWA condition codes to display icons. CWA emits both
// zero-padded ("08") and unpadded ("8") forms depending on the dataset.
var weatherIconMap = map[string]string{
	"1":  "☀️",
	"01": "☀️",
	"2":  "🌤️",
	"02": "🌤️",
	"3":  "⛅",
	"03": "⛅",
	"4":  "🌥️",
	"04": "🌥️",
	"5":  "☁️",
	"05": "☁️",
	"6":  "🌧️",
	"06": "🌧️",
	"7":  "🌦️",
	"07": "🌦️",
	"8":  "⛈️",
	"08": "⛈️",
	"9":  "🌫️",
	"09": "🌫️",
	"10": "❄️",
	"11": "🌬️",
	"12": "🌨️",
}

// Icon resolves the display icon for a slot. The condition code is tried
// first (unpadded form, then as-is), then keywords in the weather text.
func (s Slot) Icon() string {
	if s.WeatherCode != "" {
		if icon, ok := weatherIconMap[strings.TrimLeft(s.WeatherCode, "0")]; ok {
			return icon
		}
		if icon, ok := weatherIconMap[s.WeatherCode]; ok {
			return icon
		}
	}

	text := strings.TrimSpace(s.Weather)
	switch {
	case strings.Contains(text, "潮"):
		return "🌊"
	case strings.Contains(text, "雷"):
		return "⛈️"
	case strings.Contains(text, "雨"):
		return "🌧️"
	case strings.Contains(text, "晴"):
		return "☀️"
	case strings.Contains(text, "雲"), strings.Contains(text, "陰"):
		return "☁️"
	case strings.Contains(text, "雪"):
		return "❄️"
	}
	return "🌡️"
}
