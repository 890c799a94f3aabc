// Package server boots the HTTP server: configuration, logging, database,
// cache, storage, middleware stack, and the route table.
package server

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/vanij/app/routes"
	"github.com/shashiranjanraj/vanij/config"
	"github.com/shashiranjanraj/vanij/pkg/bind"
	"github.com/shashiranjanraj/vanij/pkg/cache"
	"github.com/shashiranjanraj/vanij/pkg/database"
	"github.com/shashiranjanraj/vanij/pkg/logger"
	"github.com/shashiranjanraj/vanij/pkg/metrics"
	"github.com/shashiranjanraj/vanij/pkg/middleware"
	"github.com/shashiranjanraj/vanij/pkg/reqid"
	"github.com/shashiranjanraj/vanij/pkg/router"
	"github.com/shashiranjanraj/vanij/pkg/storage"
)

// Start boots every subsystem and blocks serving HTTP.
func Start() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdownLogs := logger.Setup(cfg)
	defer shutdownLogs()

	if err := database.Connect(cfg); err != nil {
		return err
	}

	// Redis is an accelerator, not a dependency. Reports fall back to the
	// database when it is down.
	if err := cache.Connect(cfg); err != nil {
		logger.Warn("cache unavailable, serving without it", "error", err)
	}

	storage.Connect(cfg)
	bind.MaxBodyBytes = cfg.MaxBodyBytes

	r := NewRouter(cfg)

	addr := ":" + cfg.AppPort
	logger.Info("server listening", "addr", addr, "env", cfg.AppEnv)
	return http.ListenAndServe(addr, r.Handler())
}

// NewRouter assembles the middleware stack and route table. Split out from
// Start so tests and the route:list command can build the router without
// binding a socket.
func NewRouter(cfg *config.Config) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute),
		middleware.CORS(middleware.DefaultCORSOptions(cfg.CORSOrigins)),
	)

	routes.RegisterAPI(r, cfg)
	return r
}
