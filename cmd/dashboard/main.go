package main

import (
	"log"

	"github.com/joho/godotenv"

	"diascope/internal/config"
	"diascope/internal/dataset"
	"diascope/ui"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	table, err := dataset.Load(cfg.Data.File)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	app, err := ui.NewApp(table, ui.Config{
		Port:           cfg.Server.Port,
		ExportRowLimit: cfg.Export.RowLimit,
	})
	if err != nil {
		log.Fatalf("Failed to create dashboard app: %v", err)
	}

	log.Printf("Starting dashboard on http://localhost:%s", cfg.Server.Port)
	log.Fatal(app.Start())
}
