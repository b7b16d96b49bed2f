package main

import (
	"flag"
	"log"

	"github.com/alex909w/eventify/internal/events/repository"
	"github.com/alex909w/eventify/internal/store"
	"github.com/alex909w/eventify/pkg/config"
)

func main() {
	var force bool
	flag.BoolVar(&force, "force", false, "Overwrite existing event data")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := store.Init(cfg.Store); err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	log.Println("🌱 Seeding demo event catalog...")

	if !force {
		if _, err := store.DB.Get(store.KeyEvents); err == nil {
			log.Println("Event catalog already present, use -force to overwrite")
			return
		}
	}

	summaries := repository.SeedSummaries()
	batch := store.NewBatch()
	if err := repository.StageSummaries(&batch, summaries); err != nil {
		log.Fatalf("Failed to stage summaries: %v", err)
	}
	for _, summary := range summaries {
		detail, ok := repository.SeedDetail(summary.ID)
		if !ok {
			continue
		}
		if err := repository.StageDetail(&batch, detail); err != nil {
			log.Fatalf("Failed to stage event %s: %v", summary.ID, err)
		}
	}
	if err := store.DB.Apply(batch); err != nil {
		log.Fatalf("Failed to write seed data: %v", err)
	}

	log.Printf("✅ Seeded %d events", len(summaries))
}
