package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/guttosm/volumepulse/internal/domain/models"
	"github.com/guttosm/volumepulse/internal/logger"
)

// maxErrorBody bounds how much of a failed response is echoed into the error.
const maxErrorBody = 512

// LiveSource fetches the current market listing from a remote JSON feed.
type LiveSource struct {
	URL    string
	Client *http.Client
}

// NewLiveSource returns a LiveSource for url whose requests time out after timeout.
func NewLiveSource(url string, timeout time.Duration) *LiveSource {
	return &LiveSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (l *LiveSource) Name() string { return NameLive }

// Markets performs one GET against the feed. There are no retries: any
// transport failure, non-2xx status or unreadable body returns
// ErrAcquisitionFailed, and an undecodable body returns ErrMalformedRecord.
func (l *LiveSource) Markets(ctx context.Context) ([]models.Market, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrAcquisitionFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s", ErrAcquisitionFailed, resp.StatusCode, body)
	}

	markets, err := DecodeMarkets(resp.Body)
	if err != nil {
		if isReadError(err) {
			return nil, fmt.Errorf("%w: %v", ErrAcquisitionFailed, err)
		}
		return nil, err
	}

	logger.L().Debug().
		Str("url", l.URL).
		Int("markets", len(markets)).
		Dur("elapsed", time.Since(start)).
		Msg("live markets fetched")
	return markets, nil
}

// isReadError reports whether a DecodeMarkets failure came from the reader
// rather than from the document content.
func isReadError(err error) bool {
	return err != nil && !errors.Is(err, ErrMalformedRecord)
}
