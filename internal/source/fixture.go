package source

import (
	"context"
	"fmt"
	"os"

	"github.com/guttosm/volumepulse/internal/domain/models"
	"github.com/guttosm/volumepulse/internal/logger"
)

// FixtureSource loads markets from a JSON document on disk. It is
// deterministic and meant for tests and offline runs.
type FixtureSource struct {
	Path string
}

// NewFixtureSource returns a FixtureSource reading path.
func NewFixtureSource(path string) *FixtureSource {
	return &FixtureSource{Path: path}
}

func (f *FixtureSource) Name() string { return NameFixture }

// Markets reads and decodes the fixture file.
//
// Errors:
//   - *FixtureError when the file cannot be opened or read.
//   - ErrMalformedRecord (wrapped) when the content does not decode.
func (f *FixtureSource) Markets(ctx context.Context) ([]models.Market, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.Path)
	if err != nil {
		return nil, &FixtureError{Path: f.Path, Err: err}
	}
	defer func() { _ = file.Close() }()

	markets, err := DecodeMarkets(file)
	if err != nil {
		if isReadError(err) {
			return nil, &FixtureError{Path: f.Path, Err: err}
		}
		return nil, fmt.Errorf("fixture %s: %w", f.Path, err)
	}

	logger.L().Debug().Str("path", f.Path).Int("markets", len(markets)).Msg("fixture loaded")
	return markets, nil
}
