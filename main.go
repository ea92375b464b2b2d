package main

import (
	"fmt"
	"log"

	"github.com/parts-pile/car-sales/config"
	"github.com/parts-pile/car-sales/dataset"
	h "github.com/parts-pile/car-sales/handlers"
	"github.com/parts-pile/car-sales/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// Initialize dataset cache
	store, err := dataset.NewStore(nil, cfg.CacheMaxCost)
	if err != nil {
		log.Fatalf("Failed to initialize dataset cache: %v", err)
	}
	defer store.Close()

	// A source that cannot be loaded at startup is fatal
	if _, err := store.Get(cfg.DataSource); err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	h.Init(store, cfg.DataSource)
	app := server.New(cfg)

	fmt.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
