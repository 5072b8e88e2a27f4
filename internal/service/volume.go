package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/volumepulse/internal/domain/models"
	"github.com/guttosm/volumepulse/internal/logger"
	"github.com/guttosm/volumepulse/internal/metrics"
	"github.com/guttosm/volumepulse/internal/source"
	"github.com/guttosm/volumepulse/internal/storage"
)

const defaultFetchTimeout = 30 * time.Second

// ErrSnapshotsDisabled is returned by LatestSnapshot when no repository is configured.
var ErrSnapshotsDisabled = errors.New("snapshot persistence is disabled")

// VolumeService acquires market data and aggregates it by currency.
type VolumeService interface {
	GetVolumeByCurrency(ctx context.Context, live bool) (*models.Snapshot, error)
	LatestSnapshot(ctx context.Context) (*models.Snapshot, error)
}

type volumeService struct {
	live    source.MarketSource
	fixture source.MarketSource
	repo    storage.SnapshotRepository // nil disables persistence
	group   singleflight.Group
	now     func() time.Time

	fetchTimeout time.Duration // bounds a shared fetch once detached from its callers
}

// NewVolumeService wires the two market sources and an optional repository.
// With a nil repo, snapshots are computed but never stored.
func NewVolumeService(live, fixture source.MarketSource, repo storage.SnapshotRepository) VolumeService {
	return &volumeService{
		live:    live,
		fixture: fixture,
		repo:    repo,
		now:     func() time.Time { return time.Now().UTC() },

		fetchTimeout: defaultFetchTimeout,
	}
}

// GetVolumeByCurrency runs one acquire-then-aggregate pass.
//
// Behavior:
//   - Selects the live or fixture source.
//   - Concurrent calls for the same source share a single acquisition.
//   - Any acquisition or parse failure aborts the call; nothing is aggregated.
//   - When a repository is configured, the snapshot is persisted and a
//     persistence failure is returned as an error.
func (s *volumeService) GetVolumeByCurrency(ctx context.Context, live bool) (*models.Snapshot, error) {
	src := source.Select(live, s.live, s.fixture)
	if src == nil {
		return nil, fmt.Errorf("no market source configured (live=%t)", live)
	}
	name := src.Name()
	log := logger.With("volume_service")

	start := time.Now()
	v, shared, err := s.acquire(ctx, src)
	metrics.AcquisitionDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AcquisitionFailuresTotal.WithLabelValues(name, failureKind(err)).Inc()
		log.Error().Err(err).Str("source", name).Msg("market acquisition failed")
		return nil, fmt.Errorf("acquire markets from %s: %w", name, err)
	}
	markets := v.([]models.Market)

	volumes, skipped := aggregate(markets)
	snap := &models.Snapshot{
		Source:  name,
		TakenAt: s.now(),
		Markets: len(markets),
		Volumes: volumes,
	}

	metrics.AggregationsTotal.WithLabelValues(name).Inc()
	metrics.MarketsSkippedTotal.Add(float64(skipped))
	metrics.AggregationCurrencies.Set(float64(volumes.Len()))

	log.Info().
		Str("source", name).
		Int("records", len(markets)).
		Int("skipped", skipped).
		Int("currencies", volumes.Len()).
		Bool("shared", shared).
		Dur("elapsed", time.Since(start)).
		Msg("volume aggregated")

	if s.repo != nil {
		if err := s.repo.InsertSnapshot(ctx, snap); err != nil {
			log.Error().Err(err).Str("source", name).Msg("persist snapshot failed")
			return nil, fmt.Errorf("persist snapshot: %w", err)
		}
		log.Debug().Str("snapshot_id", snap.ID).Msg("snapshot persisted")
	}

	return snap, nil
}

// acquire joins the in-flight fetch for src, or starts one. The fetch is
// detached from the caller that started it and bounded by fetchTimeout.
// Each caller stops waiting when its own ctx ends.
func (s *volumeService) acquire(ctx context.Context, src source.MarketSource) (any, bool, error) {
	ch := s.group.DoChan(src.Name(), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return src.Markets(fetchCtx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// LatestSnapshot returns the most recently persisted snapshot, or nil if none exists.
func (s *volumeService) LatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	if s.repo == nil {
		return nil, ErrSnapshotsDisabled
	}
	return s.repo.GetLatestSnapshot(ctx)
}

func failureKind(err error) string {
	var fe *source.FixtureError
	switch {
	case errors.As(err, &fe):
		return metrics.KindFixture
	case errors.Is(err, source.ErrMalformedRecord):
		return metrics.KindMalformed
	case errors.Is(err, source.ErrAcquisitionFailed):
		return metrics.KindAcquisition
	default:
		return metrics.KindOther
	}
}
