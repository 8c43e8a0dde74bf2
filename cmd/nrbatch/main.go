package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"nrclassify/internal/classify"
	"nrclassify/internal/config"
	"nrclassify/internal/loader"
	"nrclassify/internal/loader/file"
	"nrclassify/internal/loader/httpapi"
	"nrclassify/internal/report"
	"nrclassify/internal/scoring"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "", "Path to YAML config file")
	dataDir := flag.String("data", "", "Override the file loader data directory")
	flag.Parse()
	ids := flag.Args()
	if len(ids) == 0 {
		fmt.Println("Usage: nrbatch [--config=config.yaml] [--data=dir] ID1 [ID2 ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if *cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(*cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *dataDir != "" {
		if cfg.Loader.File == nil {
			cfg.Loader.File = &config.FileLoaderConfig{}
		}
		cfg.Loader.File.DataDir = *dataDir
	}

	var ld loader.Loader
	switch cfg.Loader.Type {
	case "file", "":
		dir := ""
		if cfg.Loader.File != nil {
			dir = cfg.Loader.File.DataDir
		}
		if env := os.Getenv("NRCLASSIFY_DATA_DIR"); env != "" && *dataDir == "" {
			dir = env
		}
		ld = file.New(dir)
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
		ld = client
	default:
		log.Fatalf("unknown loader: %s", cfg.Loader.Type)
	}

	scorer := scoring.NewScorer(scoring.Tables{
		NRGeneric:   cfg.Keywords.NRGeneric,
		NRSpecific:  cfg.Keywords.NRSpecific,
		Coactivator: cfg.Keywords.Coactivator,
		Corepressor: cfg.Keywords.Corepressor,
	})
	svc := classify.New(ld, scorer)

	fmt.Print(report.Render(svc.ClassifyBatch(ids)))
}
