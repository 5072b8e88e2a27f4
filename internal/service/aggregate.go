package service

import "github.com/guttosm/volumepulse/internal/domain/models"

// Aggregate sums the traded volume of markets per currency.
//
// Only markets with a strictly positive volume count; a currency whose
// markets all report zero or negative volume is absent from the result.
// Volumes of one currency are added in input order. The result is ordered
// by ascending currency code. markets is never modified.
func Aggregate(markets []models.Market) models.VolumeByCurrency {
	v, _ := aggregate(markets)
	return v
}

// aggregate also reports how many markets were skipped.
func aggregate(markets []models.Market) (models.VolumeByCurrency, int) {
	totals := make(map[string]float64)
	skipped := 0
	for _, m := range markets {
		if !(m.Volume > 0) {
			skipped++
			continue
		}
		totals[m.Currency] += m.Volume
	}
	return models.NewVolumeByCurrency(totals), skipped
}
