package v1

import (
	"log"

	"talent-rank/internal/config"
	"talent-rank/internal/database"
	"talent-rank/internal/delivery/http/handler"
	"talent-rank/internal/delivery/http/middleware"
	"talent-rank/internal/domain/extraction"
	"talent-rank/internal/domain/ranking"
	"talent-rank/internal/domain/skillgraph"
	"talent-rank/internal/importer"
	"talent-rank/internal/infrastructure/cache"
	"talent-rank/internal/parsing"
	"talent-rank/internal/pipeline"
	"talent-rank/internal/pkg/jwt"
	"talent-rank/internal/repository"
	"talent-rank/internal/usecase"
	"talent-rank/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Dependencies struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Graph  *skillgraph.Graph
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(r fiber.Router, deps Dependencies) {
	if r == nil {
		return
	}

	cfg := deps.Config

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	recruiterRepo := repository.NewPostgresRecruiterRepository(deps.DB)
	candidateRepo := repository.NewPostgresCandidateRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	rankingRepo := repository.NewPostgresRankingRepository(deps.DB)
	runRepo := repository.NewPostgresPipelineRunRepository(deps.DB)

	parser := parsing.NewParser(deps.Logger)
	extractor := extraction.NewExtractor(deps.Graph, cfg.Ranking.GraphDepth, deps.Logger)
	weights := ranking.Weights{
		Skill:      cfg.Ranking.SkillWeight,
		Experience: cfg.Ranking.ExperienceWeight,
		Seniority:  cfg.Ranking.SeniorityWeight,
	}

	authUC := usecase.NewAuthUsecase(recruiterRepo, jwtSvc)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, parser, extractor, deps.Cache, deps.Logger)
	jobImporter := importer.NewJobPostImporter(deps.Graph, deps.Logger)
	jobUC := usecase.NewJobUsecase(jobRepo, deps.Graph, jobImporter, deps.Cache, deps.Logger)
	rankingUC := usecase.NewRankingUsecase(
		jobRepo, candidateRepo, rankingRepo, deps.Cache,
		weights, cfg.Ranking.BiasMitigation, deps.Logger,
	)
	rankingPipe := pipeline.NewRankingPipeline(jobRepo, rankingUC, runRepo, deps.Hub, 4, deps.Logger)

	authHandler := handler.NewAuthHandler(authUC)
	candidateHandler := handler.NewCandidateHandler(candidateUC)
	jobHandler := handler.NewJobHandler(jobUC)
	rankingHandler := handler.NewRankingHandler(rankingUC, rankingPipe)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	candidatesGroup := protected.Group("/candidates")
	candidateHandler.RegisterRoutes(candidatesGroup)

	jobsGroup := protected.Group("/jobs")
	jobHandler.RegisterRoutes(jobsGroup)
	rankingHandler.RegisterRoutes(jobsGroup)
}
