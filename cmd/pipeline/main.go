package main

import (
	"context"
	"flag"
	"log"
	"time"

	"talent-rank/internal/app"
	"talent-rank/internal/config"
	"talent-rank/internal/domain/ranking"
	"talent-rank/internal/pipeline"
	"talent-rank/internal/repository"
	"talent-rank/internal/usecase"
)

// Re-ranks every stored job against the candidate pool from the command
// line, outside the HTTP server. Suited for cron.
func main() {
	workers := flag.Int("workers", 4, "concurrent ranking workers")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	jobRepo := repository.NewPostgresJobRepository(c.DB)
	candidateRepo := repository.NewPostgresCandidateRepository(c.DB)
	rankingRepo := repository.NewPostgresRankingRepository(c.DB)
	runRepo := repository.NewPostgresPipelineRunRepository(c.DB)

	weights := ranking.Weights{
		Skill:      cfg.Ranking.SkillWeight,
		Experience: cfg.Ranking.ExperienceWeight,
		Seniority:  cfg.Ranking.SeniorityWeight,
	}
	rankingUC := usecase.NewRankingUsecase(
		jobRepo, candidateRepo, rankingRepo, c.Cache,
		weights, cfg.Ranking.BiasMitigation, c.Logger,
	)
	p := pipeline.NewRankingPipeline(jobRepo, rankingUC, runRepo, nil, *workers, c.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := p.RunAll(ctx); err != nil {
		log.Fatalf("batch ranking failed: %v", err)
	}
}
