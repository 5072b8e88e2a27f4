package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// CurrencyVolume is one entry of a VolumeByCurrency.
type CurrencyVolume struct {
	Currency string  `json:"currency" example:"USD"`
	Volume   float64 `json:"volume" example:"15.0"`
}

// VolumeByCurrency maps currency codes to total traded volume, ordered by
// ascending currency code.
//
// The zero value is an empty mapping. Values are built with
// NewVolumeByCurrency and never mutated afterwards.
type VolumeByCurrency struct {
	entries []CurrencyVolume
}

// NewVolumeByCurrency builds an ordered mapping from an unordered set of totals.
func NewVolumeByCurrency(totals map[string]float64) VolumeByCurrency {
	entries := make([]CurrencyVolume, 0, len(totals))
	for currency, volume := range totals {
		entries = append(entries, CurrencyVolume{Currency: currency, Volume: volume})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Currency < entries[j].Currency
	})
	return VolumeByCurrency{entries: entries}
}

// Len returns the number of currencies.
func (v VolumeByCurrency) Len() int { return len(v.entries) }

// Get returns the total for a currency.
func (v VolumeByCurrency) Get(currency string) (float64, bool) {
	i := sort.Search(len(v.entries), func(i int) bool {
		return v.entries[i].Currency >= currency
	})
	if i < len(v.entries) && v.entries[i].Currency == currency {
		return v.entries[i].Volume, true
	}
	return 0, false
}

// Currencies returns the currency codes in ascending order.
func (v VolumeByCurrency) Currencies() []string {
	out := make([]string, len(v.entries))
	for i, e := range v.entries {
		out[i] = e.Currency
	}
	return out
}

// Entries returns a copy of the ordered entries.
func (v VolumeByCurrency) Entries() []CurrencyVolume {
	return append([]CurrencyVolume(nil), v.entries...)
}

// MarshalJSON renders the mapping as a JSON object whose keys keep the
// ascending currency order.
func (v VolumeByCurrency) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range v.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Currency)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Volume)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalIndent renders the mapping as JSON indented with two spaces.
// Non-finite totals are an error.
func (v VolumeByCurrency) MarshalIndent() ([]byte, error) {
	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// String returns MarshalIndent's output, or the encoding error text.
func (v VolumeByCurrency) String() string {
	out, err := v.MarshalIndent()
	if err != nil {
		return "!(" + err.Error() + ")"
	}
	return string(out)
}
