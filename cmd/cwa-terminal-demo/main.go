package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/cwa-terminal/internal/cache"
	"github.com/ngmaloney/cwa-terminal/internal/cwa"
	"github.com/ngmaloney/cwa-terminal/internal/loader"
	"github.com/ngmaloney/cwa-terminal/internal/ui"
)

// This demo runs the full pipeline against a canned payload, no network or
// API key required.
func main() {
	dir, err := os.MkdirTemp("", "cwa-terminal-demo")
	if err != nil {
		fmt.Printf("Error creating temp dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	store := cache.NewStore(filepath.Join(dir, "demo.db"))
	l := loader.New(staticFetcher{}, store, dir, "demo", clockwork.NewRealClock())

	p := tea.NewProgram(ui.NewModel(l, cwa.DatasetGeneral, "臺北市"), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}

// staticFetcher serves the embedded payload instead of calling the API
type staticFetcher struct{}

func (staticFetcher) FetchForecast(_ context.Context, _ cwa.Dataset) ([]byte, error) {
	return []byte(demoPayload), nil
}

const demoPayload = `{
  "success": "true",
  "records": {
    "location": [
      {
        "locationName": "臺北市",
        "weatherElement": [
          {
            "elementName": "Wx",
            "time": [
              {
                "startTime": "2026-08-26 12:00:00",
                "endTime": "2026-08-26 18:00:00",
                "parameter": {"parameterName": "多雲時晴", "parameterValue": "3"}
              },
              {
                "startTime": "2026-08-26 18:00:00",
                "endTime": "2026-08-27 06:00:00",
                "parameter": {"parameterName": "多雲短暫陣雨", "parameterValue": "8"}
              }
            ]
          },
          {
            "elementName": "MinT",
            "time": [
              {
                "startTime": "2026-08-26 12:00:00",
                "endTime": "2026-08-26 18:00:00",
                "parameter": {"parameterName": "27", "parameterValue": "C"}
              },
              {
                "startTime": "2026-08-26 18:00:00",
                "endTime": "2026-08-27 06:00:00",
                "parameter": {"parameterName": "25", "parameterValue": "C"}
              }
            ]
          },
          {
            "elementName": "MaxT",
            "time": [
              {
                "startTime": "2026-08-26 12:00:00",
                "endTime": "2026-08-26 18:00:00",
                "parameter": {"parameterName": "33", "parameterValue": "C"}
              },
              {
                "startTime": "2026-08-26 18:00:00",
                "endTime": "2026-08-27 06:00:00",
                "parameter": {"parameterName": "29", "parameterValue": "C"}
              }
            ]
          },
          {
            "elementName": "PoP",
            "time": [
              {
                "startTime": "2026-08-26 12:00:00",
                "endTime": "2026-08-26 18:00:00",
                "parameter": {"parameterName": "20", "parameterValue": "percent"}
              },
              {
                "startTime": "2026-08-26 18:00:00",
                "endTime": "2026-08-27 06:00:00",
                "parameter": {"parameterName": "60", "parameterValue": "percent"}
              }
            ]
          },
          {
            "elementName": "CI",
            "time": [
              {
                "startTime": "2026-08-26 12:00:00",
                "endTime": "2026-08-26 18:00:00",
                "parameter": {"parameterName": "悶熱"}
              },
              {
                "startTime": "2026-08-26 18:00:00",
                "endTime": "2026-08-27 06:00:00",
                "parameter": {"parameterName": "舒適"}
              }
            ]
          }
        ]
      },
      {
        "locationName": "高雄市",
        "weatherElement": [
          {
            "elementName": "Wx",
            "time": [
              {
                "startTime": "2026-08-26 12:00:00",
                "endTime": "2026-08-26 18:00:00",
                "parameter": {"parameterName": "晴時多雲", "parameterValue": "2"}
              }
            ]
          },
          {
            "elementName": "MinT",
            "time": [
              {
                "startTime": "2026-08-26 12:00:00",
                "endTime": "2026-08-26 18:00:00",
                "parameter": {"parameterName": "28", "parameterValue": "C"}
              }
            ]
          },
          {
            "elementName": "MaxT",
            "time": [
              {
                "startTime": "2026-08-26 12:00:00",
                "endTime": "2026-08-26 18:00:00",
                "parameter": {"parameterName": "34", "parameterValue": "C"}
              }
            ]
          }
        ]
      }
    ]
  }
}`
