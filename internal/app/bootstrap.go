package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"talent-rank/internal/config"
	"talent-rank/internal/delivery/http/middleware"
	"talent-rank/internal/delivery/http/routes"
	v1 "talent-rank/internal/delivery/http/routes/v1"
	"talent-rank/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Hub       *ws.Hub
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	hub := ws.NewHub(c.Logger)
	go hub.Run()

	registerGlobalMiddleware(f, c)

	registry := routes.NewRegistry(v1.Dependencies{
		Config: c.Config,
		DB:     c.DB,
		Cache:  c.Cache,
		Graph:  c.Graph,
		Hub:    hub,
		Logger: c.Logger,
	})
	registry.Register(f)

	return &App{Fiber: f, Container: c, Hub: hub}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := newLogger(cfg)

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func newLogger(cfg config.Config) *log.Logger {
	prefix := strings.TrimSpace(cfg.App.AppName)
	if prefix != "" {
		prefix += " "
	}
	return log.New(os.Stdout, prefix, log.LstdFlags|log.Lmsgprefix)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
