package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/cwa-terminal/internal/cwa"
	"github.com/ngmaloney/cwa-terminal/internal/loader"
	"github.com/ngmaloney/cwa-terminal/internal/models"
)

// forecastLoadedMsg is sent when the forecast pipeline finishes
type forecastLoadedMsg struct {
	forecast *models.Forecast
	err      error
}

// loadForecast runs the retrieval/normalization pipeline off the UI loop
func loadForecast(l *loader.Loader, dataset cwa.Dataset) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		forecast, err := l.LoadForecast(ctx, dataset)
		return forecastLoadedMsg{forecast: forecast, err: err}
	}
}
