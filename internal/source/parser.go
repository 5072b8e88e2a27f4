package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/volumepulse/internal/domain/models"
)

// rawMarket keeps every consumed field raw so that presence and JSON type
// can be checked explicitly. Unknown fields are ignored by encoding/json.
type rawMarket struct {
	Symbol   json.RawMessage `json:"symbol"`
	Currency json.RawMessage `json:"currency"`
	Volume   json.RawMessage `json:"volume"`
}

// DecodeMarkets parses a JSON array of market objects.
//
// It is STRICT: the first record without a string "currency" or a numeric
// "volume" fails the whole document with ErrMalformedRecord. Volumes may be
// JSON numbers or strings holding a number (some feeds quote them).
func DecodeMarkets(r io.Reader) ([]models.Market, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markets: %w", err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: document is not a JSON array: %v", ErrMalformedRecord, err)
	}
	if items == nil {
		// a bare null unmarshals into a nil slice without error
		return nil, fmt.Errorf("%w: document is not a JSON array", ErrMalformedRecord)
	}

	markets := make([]models.Market, 0, len(items))
	for i, item := range items {
		m, err := recordToMarket(item)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedRecord, i, err)
		}
		markets = append(markets, m)
	}
	return markets, nil
}

// recordToMarket converts one raw JSON element into a models.Market.
func recordToMarket(item json.RawMessage) (models.Market, error) {
	var m models.Market

	var raw rawMarket
	if err := json.Unmarshal(item, &raw); err != nil {
		return m, fmt.Errorf("not an object: %v", err)
	}

	// currency: required JSON string
	if isAbsent(raw.Currency) {
		return m, fmt.Errorf("missing currency")
	}
	if err := json.Unmarshal(raw.Currency, &m.Currency); err != nil {
		return m, fmt.Errorf("currency is not a string: %s", raw.Currency)
	}

	// volume: required number or numeric string
	if isAbsent(raw.Volume) {
		return m, fmt.Errorf("missing volume")
	}
	v, err := parseVolume(raw.Volume)
	if err != nil {
		return m, err
	}
	m.Volume = v

	// symbol: optional, anything but a string is ignored
	if !isAbsent(raw.Symbol) {
		_ = json.Unmarshal(raw.Symbol, &m.Symbol)
	}

	return m, nil
}

func parseVolume(raw json.RawMessage) (float64, error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("volume is not numeric: %s", raw)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("volume is not numeric: %q", s)
	}
	return v, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
