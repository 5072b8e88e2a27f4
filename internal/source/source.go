package source

import (
	"context"

	"github.com/guttosm/volumepulse/internal/domain/models"
)

// Source names reported by the built-in implementations.
const (
	NameLive    = "live"
	NameFixture = "fixture"
)

// MarketSource supplies a fully materialized list of market records.
type MarketSource interface {
	Name() string
	Markets(ctx context.Context) ([]models.Market, error)
}

// Select returns live when useLive is set and fixture otherwise.
func Select(useLive bool, live, fixture MarketSource) MarketSource {
	if useLive {
		return live
	}
	return fixture
}
