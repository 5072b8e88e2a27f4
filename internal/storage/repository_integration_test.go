//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/volumepulse/internal/domain/models"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "volumepulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=volumepulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/volumepulse?sslmode=disable", host, port.Port())
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// internal/storage → ../../db/migrations
	if err := goose.Up(db, filepath.Join("..", "..", "db", "migrations")); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func TestSnapshotRepository_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	repo := NewSnapshotRepository(db)
	ctx := context.Background()

	none, err := repo.GetLatestSnapshot(ctx)
	if err != nil || none != nil {
		t.Fatalf("empty table: want nil,nil got %+v, %v", none, err)
	}

	base := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)
	snaps := []*models.Snapshot{
		{Source: "fixture", TakenAt: base, Markets: 2, Volumes: models.NewVolumeByCurrency(map[string]float64{"USD": 1})},
		{Source: "live", TakenAt: base.Add(time.Minute), Markets: 5, Volumes: models.NewVolumeByCurrency(map[string]float64{"USD": 15, "EUR": 3, "JPY": 101})},
		{Source: "live", TakenAt: base.Add(-time.Hour), Markets: 0},
	}
	for _, s := range snaps {
		if err := repo.InsertSnapshot(ctx, s); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	latest, err := repo.GetLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != snaps[1].ID || latest.Markets != 5 || !latest.TakenAt.Equal(snaps[1].TakenAt) {
		t.Fatalf("unexpected latest: %+v", latest)
	}
	if got := latest.Volumes.String(); got != snaps[1].Volumes.String() {
		t.Fatalf("volumes=%s want %s", got, snaps[1].Volumes.String())
	}

	if err := repo.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
