package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/volumepulse/config"
	"github.com/guttosm/volumepulse/internal/api"
	"github.com/guttosm/volumepulse/internal/middleware"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the volume service (sources, optional snapshot storage).
//   - Creates the HTTP handler layer and the Gin router.
//   - Applies the configured rate limit.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	svc, db, err := BuildVolumeService(cfg)
	if err != nil {
		return nil, nil, err
	}

	middleware.SetRateLimit(cfg.Server.RateLimit, time.Minute)

	handler := api.NewHandler(svc, cfg.Markets.Live)
	router := api.NewRouter(handler, cfg.Server.RequestTimeout)

	var ping func() error
	if db != nil {
		ping = db.Ping
	}
	api.NewHealthHandler(ping).Register(router)

	cleanup := func() {
		if db != nil {
			_ = db.Close()
		}
	}

	return router, cleanup, nil
}
