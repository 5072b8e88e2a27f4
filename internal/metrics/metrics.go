package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Failure kinds used as the "kind" label of AcquisitionFailuresTotal.
const (
	KindAcquisition = "acquisition"
	KindMalformed   = "malformed"
	KindFixture     = "fixture"
	KindOther       = "other"
)

var (
	// AggregationsTotal counts completed aggregations per market source.
	AggregationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "volumepulse_aggregations_total",
		Help: "Total number of completed volume aggregations",
	}, []string{"source"})

	// AcquisitionFailuresTotal counts aborted aggregations by source and failure kind.
	AcquisitionFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "volumepulse_acquisition_failures_total",
		Help: "Total number of aggregations aborted while acquiring market data",
	}, []string{"source", "kind"})

	// MarketsSkippedTotal counts market records excluded for a non-positive volume.
	MarketsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "volumepulse_markets_skipped_total",
		Help: "Total number of market records skipped because their volume was not positive",
	})

	// AggregationCurrencies is the number of currencies in the latest aggregation.
	AggregationCurrencies = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "volumepulse_aggregation_currencies",
		Help: "Number of currencies in the most recent aggregation",
	})

	// AcquisitionDuration observes how long fetching market data took.
	AcquisitionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "volumepulse_acquisition_duration_seconds",
		Help:    "Duration of market data acquisition",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
)

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
