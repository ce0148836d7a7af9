package main

import (
	"flag"
	"log"
	"os"

	"stratosim/internal/di"
	"stratosim/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s history=%v kafka=%v jobs=%v",
		cfg.Environment, cfg.History.Enabled, cfg.Kafka.Enabled, cfg.Jobs.Enabled)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
