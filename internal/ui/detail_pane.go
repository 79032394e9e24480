package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/cwa-terminal/internal/models"
)

// renderDetailPane renders the forecast detail for the selected location:
// headline metrics, one card per slot, and a details table.
func renderDetailPane(location models.Location, width int) string {
	isTide := location.Category == models.CategoryTide

	var content strings.Builder

	suffix := "詳細預報"
	if isTide {
		suffix = "潮汐預報"
	}
	content.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", location.Name, suffix)))
	content.WriteString("\n\n")

	if len(location.Timeline) == 0 {
		content.WriteString(mutedStyle.Render("此地區暫無時間序列資料"))
		return paneStyle.Width(width).Render(content.String())
	}

	content.WriteString(renderMetrics(location.Timeline[0], isTide))
	content.WriteString("\n\n")
	content.WriteString(renderSlotCards(location.Timeline, isTide))
	content.WriteString("\n")
	content.WriteString(renderDetailTable(location.Timeline, isTide))

	return paneStyle.Width(width).Render(content.String())
}

// renderMetrics renders the current slot's headline numbers
func renderMetrics(slot models.Slot, isTide bool) string {
	type metric struct {
		label string
		value string
	}

	var metrics []metric
	if isTide {
		metrics = []metric{
			{"平均潮高", formatValue(slot.AvgValue, slot.Unit)},
			{"最大潮高", formatValue(slot.MaxValue, slot.Unit)},
			{"最小潮高", formatValue(slot.MinValue, slot.Unit)},
			{"潮汐強度", orPlaceholder(firstNonEmpty(slot.Weather, slot.Comfort))},
		}
	} else {
		metrics = []metric{
			{"平均溫度", formatValue(slot.AvgValue, slot.Unit)},
			{"體感溫度", formatValue(slot.ApparentValue, slot.Unit)},
			{"降雨機率", formatPercentage(slot.PoP)},
			{"舒適度", orPlaceholder(slot.Comfort)},
		}
	}

	cells := make([]string, 0, len(metrics))
	for _, metric := range metrics {
		cells = append(cells, labelStyle.Render(metric.label)+"\n"+valueStyle.Render(metric.value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(cells, "   ")...)
}

// renderSlotCards renders one compact card per forecast period
func renderSlotCards(timeline []models.Slot, isTide bool) string {
	metricLabel, secondLabel, thirdLabel := "溫度", "體感", "降雨機率"
	if isTide {
		metricLabel, secondLabel, thirdLabel = "潮高", "平均潮高", "潮汐指標"
	}

	cards := make([]string, 0, len(timeline))
	for _, slot := range timeline {
		second := slot.ApparentValue

		var card strings.Builder
		card.WriteString(mutedStyle.Render(slotRange(slot)))
		card.WriteString("\n")
		card.WriteString(slot.Icon() + " " + valueStyle.Bold(true).Render(orPlaceholder(slot.Weather)))
		card.WriteString("\n")
		card.WriteString(fmt.Sprintf("%s：%s", metricLabel, formatMetricRange(slot.MinValue, slot.MaxValue, slot.Unit)))
		card.WriteString("\n")
		card.WriteString(fmt.Sprintf("%s：%s", secondLabel, formatValue(second, slot.Unit)))
		card.WriteString("\n")
		card.WriteString(fmt.Sprintf("%s：%s", thirdLabel, formatPercentage(slot.PoP)))

		cards = append(cards, cardStyle.Render(card.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderDetailTable renders the timeline as an aligned table. Column
// alignment uses display width so CJK text lines up.
func renderDetailTable(timeline []models.Slot, isTide bool) string {
	extraHeader := "體感/降雨"
	if isTide {
		extraHeader = "潮汐強度(%)"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("詳細資料"))
	b.WriteString("\n")

	header := padCell("起始", 12) + padCell("結束", 12) + padCell("描述", 20) +
		padCell("指標值", 18) + padCell("補充", 22) + extraHeader
	b.WriteString(mutedStyle.Render(header))
	b.WriteString("\n")

	for _, slot := range timeline {
		var extra string
		if isTide {
			extra = formatPercentage(slot.PoP)
		} else {
			extra = formatValue(slot.ApparentValue, slot.Unit) + " / " + formatPercentage(slot.PoP)
		}

		row := padCell(formatSlotTime(slot.StartTime), 12) +
			padCell(formatSlotTime(slot.EndTime), 12) +
			padCell(slot.Icon()+" "+orPlaceholder(slot.Weather), 20) +
			padCell(formatMetricRange(slot.MinValue, slot.MaxValue, slot.Unit), 18) +
			padCell(orPlaceholder(slot.Comfort), 22) +
			extra
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// interleave inserts a separator between rendered cells
func interleave(cells []string, sep string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, cell := range cells {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, cell)
	}
	return out
}
