package app

import (
	"context"
	"log"
	"time"

	"talent-rank/internal/config"
	"talent-rank/internal/database"
	dbpostgres "talent-rank/internal/database/postgres"
	"talent-rank/internal/database/seeder"
	"talent-rank/internal/domain/skillgraph"
	"talent-rank/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Graph  *skillgraph.Graph
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	graph := skillgraph.FromFile(cfg.Ranking.OntologyPath, logger)

	runner := seeder.Runner{Seeders: seeder.Defaults(graph)}
	if err := runner.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Graph:  graph,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
