package app

import (
	"database/sql"
	"fmt"

	"github.com/guttosm/volumepulse/config"
	"github.com/guttosm/volumepulse/internal/service"
	"github.com/guttosm/volumepulse/internal/source"
	"github.com/guttosm/volumepulse/internal/storage"
)

// BuildVolumeService wires the market sources and, when snapshots are enabled,
// the Postgres-backed repository into a VolumeService.
//
// Returns:
//   - service.VolumeService: ready to serve aggregations.
//   - *sql.DB: the open connection pool, nil when snapshots are disabled.
//   - error: if the database cannot be reached.
func BuildVolumeService(cfg config.Config) (service.VolumeService, *sql.DB, error) {
	live := source.NewLiveSource(cfg.Markets.APIURL, cfg.Markets.Timeout)
	fixture := source.NewFixtureSource(cfg.Markets.FixturePath)

	if !cfg.Postgres.Enabled {
		return service.NewVolumeService(live, fixture, nil), nil, nil
	}

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewSnapshotRepository(db)
	return service.NewVolumeService(live, fixture, repo), db, nil
}
