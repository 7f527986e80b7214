package routes

import (
	"talent-rank/internal/delivery/http/handler"
	v1 "talent-rank/internal/delivery/http/routes/v1"
	"talent-rank/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps   v1.Dependencies
	health *handler.HealthHandler
}

func NewRegistry(deps v1.Dependencies) *Registry {
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(deps.DB, deps.Cache),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.deps.Hub == nil {
		return
	}
	wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
	app.Get("/ws/rankings", wsHandler.HandleRankingsWS)
}
