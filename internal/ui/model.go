package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/cwa-terminal/internal/cwa"
	"github.com/ngmaloney/cwa-terminal/internal/loader"
	"github.com/ngmaloney/cwa-terminal/internal/models"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // running the retrieval/normalization pipeline
	StateDisplay                 // showing the normalized forecast
	StateError                   // pipeline failed with no fallback left
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	dataset         cwa.Dataset
	defaultLocation string
	loader          *loader.Loader

	spinner      spinner.Model
	locationList list.Model
	forecast     *models.Forecast
}

// NewModel creates the application model for one dataset
func NewModel(l *loader.Loader, dataset cwa.Dataset, defaultLocation string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		state:           StateLoading,
		dataset:         dataset,
		defaultLocation: defaultLocation,
		loader:          l,
		spinner:         s,
	}
}

// Init starts the spinner and kicks off the first load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadForecast(m.loader, m.dataset))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateDisplay {
			m.locationList.SetSize(m.listWidth(), m.height-8)
		}
		return m, nil

	case forecastLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("資料載入失敗: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.forecast = msg.forecast
		m.locationList = createLocationList(m.forecast.Locations, m.defaultLocation, m.listWidth(), m.height-8)
		m.state = StateDisplay
		return m, nil

	case tea.KeyMsg:
		// Don't treat typed filter text as commands
		filtering := m.state == StateDisplay && m.locationList.FilterState() == list.Filtering

		if !filtering {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "r":
				// Force-refresh: drop the freshness window, reload
				m.loader.Invalidate()
				m.state = StateLoading
				return m, tea.Batch(m.spinner.Tick, loadForecast(m.loader, m.dataset))
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.state {
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateDisplay:
		m.locationList, cmd = m.locationList.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "載入中..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateError:
		return m.viewError()
	case StateDisplay:
		return m.viewDisplay()
	}
	return ""
}

func (m Model) viewLoading() string {
	return fmt.Sprintf("\n  %s 載入資料中...\n", m.spinner.View())
}

func (m Model) viewError() string {
	return fmt.Sprintf("\n  %s\n\n%s",
		errorStyle.Render(fmt.Sprintf("✗ %v", m.err)),
		helpStyle.Render("  r: 重試  q: 離開"))
}

func (m Model) viewDisplay() string {
	header := m.renderHeader()

	listPane := paneStyle.Width(m.listWidth()).Render(m.locationList.View())

	var detail string
	if item, ok := m.locationList.SelectedItem().(locationItem); ok {
		detail = renderDetailPane(item.location, m.width-m.listWidth()-4)
	} else {
		detail = paneStyle.Render(mutedStyle.Render("沒有符合條件的地區"))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detail)
	help := helpStyle.Render("  ↑/↓: 選擇  /: 搜尋  r: 重新整理  q: 離開")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

// renderHeader renders the title line plus source and notice banners
func (m Model) renderHeader() string {
	lines := []string{titleStyle.Render("⛅ " + m.dataset.Name)}

	if m.forecast.IssueTime != nil {
		lines = append(lines, mutedStyle.Render(
			fmt.Sprintf("資料發布時間：%s (臺北時間)", m.forecast.IssueTime.Format("2006-01-02 15:04"))))
	}

	if m.forecast.Notice != "" {
		lines = append(lines, noticeStyle.Render("即時資料取得失敗，切換至備援資料："+m.forecast.Notice))
	}
	switch m.forecast.Source {
	case models.SourceCache:
		lines = append(lines, mutedStyle.Render("顯示來自 SQLite 快取的資料"))
	case models.SourceSample:
		lines = append(lines, mutedStyle.Render("顯示內建範例檔的資料"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) listWidth() int {
	w := m.width / 3
	if w < 36 {
		w = 36
	}
	return w
}
