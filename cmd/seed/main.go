package main

import (
	"context"
	"log"
	"time"

	"talent-rank/internal/config"
	dbpostgres "talent-rank/internal/database/postgres"
	"talent-rank/internal/database/seeder"
	"talent-rank/internal/domain/skillgraph"
)

// Applies the schema and seeds the skill ontology without starting the
// server. Useful for provisioning a fresh database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	graph := skillgraph.FromFile(cfg.Ranking.OntologyPath, log.Default())

	runner := seeder.Runner{Seeders: seeder.Defaults(graph)}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("seeding complete | skills=%d", len(graph.Skills()))
}
