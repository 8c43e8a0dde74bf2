package main

import (
	"flag"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"nrclassify/internal/classify"
	"nrclassify/internal/config"
	"nrclassify/internal/loader"
	"nrclassify/internal/loader/file"
	"nrclassify/internal/loader/httpapi"
	"nrclassify/internal/report"
	"nrclassify/internal/scoring"
	"nrclassify/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/nrclassify/config.yaml if not provided)")
	flag.Parse()
	ids := flag.Args()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ld := buildLoader(cfg)
	scorer := scoring.NewScorer(scoring.Tables{
		NRGeneric:   cfg.Keywords.NRGeneric,
		NRSpecific:  cfg.Keywords.NRSpecific,
		Coactivator: cfg.Keywords.Coactivator,
		Corepressor: cfg.Keywords.Corepressor,
	})
	svc := classify.New(ld, scorer)

	results := svc.ClassifyBatch(ids)
	m := tui.New(svc, results, report.Summary(results))
	if err := tea.NewProgram(m).Start(); err != nil {
		log.Fatal(err)
	}
}

func buildLoader(cfg *config.AppConfig) loader.Loader {
	switch cfg.Loader.Type {
	case "file", "":
		dataDir := ""
		if cfg.Loader.File != nil {
			dataDir = cfg.Loader.File.DataDir
		}
		if env := os.Getenv("NRCLASSIFY_DATA_DIR"); env != "" {
			dataDir = env
		}
		return file.New(dataDir)
	case "http":
		if cfg.Loader.HTTP == nil {
			log.Fatalf("http loader config missing")
		}
		client, err := httpapi.NewClient(httpapi.Config{
			BaseURL: cfg.Loader.HTTP.BaseURL,
			Timeout: time.Duration(cfg.Loader.HTTP.TimeoutSecs) * time.Second,
		})
		if err != nil {
			log.Fatalf("http loader init failed: %v", err)
		}
		return client
	default:
		log.Fatalf("unknown loader: %s", cfg.Loader.Type)
	}
	return nil
}
