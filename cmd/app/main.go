package main

import (
	"flag"
	"log"
	"os"
	"time"

	"FormPull/internal/di"
	"FormPull/pkg/config"
	"FormPull/pkg/util"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	date := flag.String("date", "", "race date YYYY-MM-DD (default: today)")
	allTracks := flag.Bool("all-tracks", false, "include all international meetings")
	once := flag.Bool("once", false, "run the pipeline once and exit without serving HTTP")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *allTracks {
		cfg.TAB.AllTracks = true
	}

	raceDate := *date
	if raceDate == "" {
		raceDate = os.Getenv("FORMPULL_DATE")
	}
	if raceDate == "" {
		raceDate = time.Now().Format(util.DateLayout)
	}
	if _, ok := util.ParseTime(raceDate); !ok {
		log.Fatalf("invalid date %q, want YYYY-MM-DD", raceDate)
	}

	log.Printf("env=%s date=%s jurisdiction=%s", cfg.Environment, raceDate, cfg.TAB.Jurisdiction)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(raceDate, *once); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
