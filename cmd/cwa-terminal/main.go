package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/cwa-terminal/internal/cache"
	"github.com/ngmaloney/cwa-terminal/internal/config"
	"github.com/ngmaloney/cwa-terminal/internal/cwa"
	"github.com/ngmaloney/cwa-terminal/internal/loader"
	"github.com/ngmaloney/cwa-terminal/internal/ui"
)

func main() {
	datasetFlag := flag.String("dataset", "forecast", "Dataset to display: forecast, agriculture, or tide")
	flag.Parse()

	var dataset cwa.Dataset
	switch *datasetFlag {
	case "forecast":
		dataset = cwa.DatasetGeneral
	case "agriculture":
		dataset = cwa.DatasetAgriculture
	case "tide":
		dataset = cwa.DatasetTide
	default:
		fmt.Printf("Unknown dataset %q (want forecast, agriculture, or tide)\n", *datasetFlag)
		os.Exit(1)
	}

	cfg := config.Load()

	client := cwa.NewClient(cfg.APIKey, cfg.StrictSSL)
	store := cache.NewStore(cfg.DBPath)
	l := loader.New(client, store, cfg.SampleDir, cfg.APIKey, clockwork.NewRealClock())

	p := tea.NewProgram(ui.NewModel(l, dataset, cfg.DefaultLocation), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
