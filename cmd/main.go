package main

//
//  @title           volumepulse API
//  @version         1.0
//  @description     Bitcoin market volume aggregated by currency.
//  @termsOfService  https://github.com/guttosm/volumepulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/volumepulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        volume
//  @tag.description Volume aggregation by currency
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/volumepulse/config"
	_ "github.com/guttosm/volumepulse/docs" // swagger docs
	"github.com/guttosm/volumepulse/internal/app"
	"github.com/guttosm/volumepulse/internal/logger"
	"github.com/guttosm/volumepulse/internal/service"
)

const shutdownTimeout = 10 * time.Second

// newServer builds the HTTP server for the given router and port.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serve runs the server until ctx is cancelled or the listener fails, then
// shuts it down gracefully and releases resources through cleanup.
func serve(ctx context.Context, server *http.Server, cleanup func()) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		cleanup()
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.L().Info().Msg("server exited gracefully")
	return nil
}

// printVolumes aggregates once and writes the indented result to w.
func printVolumes(ctx context.Context, svc service.VolumeService, live bool, w io.Writer) error {
	snap, err := svc.GetVolumeByCurrency(ctx, live)
	if err != nil {
		return err
	}
	out, err := snap.Volumes.MarshalIndent()
	if err != nil {
		return fmt.Errorf("encode volumes: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

// main is the entry point of the volumepulse application.
//
// Modes (selected via --mode flag):
//   - print:    Aggregates once and prints the volume by currency as JSON on stdout.
//   - snapshot: Aggregates once and stores the result in Postgres.
//   - api:      Starts the REST API.
//
// Flags:
//   - --live:    Use the live markets feed. Defaults to MARKETS_LIVE.
//   - --fixture: Fixture path. Defaults to MARKETS_FIXTURE_PATH.
//   - --port:    Port for the API server. Defaults to SERVER_PORT.
func main() {
	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "print", "Mode: print, snapshot or api")
	live := flag.Bool("live", config.AppConfig.Markets.Live, "Aggregate the live markets feed instead of the fixture")
	fixture := flag.String("fixture", config.AppConfig.Markets.FixturePath, "Path of the markets fixture")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	config.AppConfig.Markets.Live = *live
	config.AppConfig.Markets.FixturePath = *fixture
	config.AppConfig.Server.Port = *port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "print":
		// stdout carries only the result
		logger.SetOutput(os.Stderr)

		cfg := config.AppConfig
		cfg.Postgres.Enabled = false
		svc, _, err := app.BuildVolumeService(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("init error")
		}
		if err := printVolumes(ctx, svc, *live, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("aggregation failed")
		}

	case "snapshot":
		cfg := config.AppConfig
		cfg.Postgres.Enabled = true
		svc, db, err := app.BuildVolumeService(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		snap, err := svc.GetVolumeByCurrency(ctx, *live)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("snapshot failed")
		}
		logger.L().Info().
			Str("snapshot_id", snap.ID).
			Str("source", snap.Source).
			Int("currencies", snap.Volumes.Len()).
			Msg("snapshot stored")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		if err := serve(ctx, newServer(router, *port), cleanup); err != nil {
			logger.L().Fatal().Err(err).Msg("server error")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
