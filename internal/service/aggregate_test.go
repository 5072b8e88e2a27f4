package service

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guttosm/volumepulse/internal/domain/models"
)

func m(currency string, volume float64) models.Market {
	return models.Market{Currency: currency, Volume: volume}
}

func TestAggregate_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   []models.Market
		want string
	}{
		{
			name: "sum per currency",
			in:   []models.Market{m("USD", 10), m("USD", 5), m("EUR", 3)},
			want: `{"EUR":3,"USD":15}`,
		},
		{
			name: "negative only",
			in:   []models.Market{m("USD", -2)},
			want: `{}`,
		},
		{
			name: "zero only",
			in:   []models.Market{m("BTC", 0), m("BTC", 0)},
			want: `{}`,
		},
		{
			name: "empty",
			in:   []models.Market{},
			want: `{}`,
		},
		{
			name: "nil",
			in:   nil,
			want: `{}`,
		},
		{
			name: "sorted by code not insertion",
			in:   []models.Market{m("JPY", 100.5), m("USD", 1), m("JPY", 0.5)},
			want: `{"JPY":101,"USD":1}`,
		},
		{
			name: "positive and non positive mixed",
			in:   []models.Market{m("USD", -1), m("USD", 2), m("USD", 0), m("CAD", 0)},
			want: `{"USD":2}`,
		},
		{
			name: "codes are not normalized",
			in:   []models.Market{m("usd", 1), m("USD", 2), m("", 4)},
			want: `{"":4,"USD":2,"usd":1}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(tc.in)
			b, err := got.MarshalJSON()
			require.NoError(t, err)
			require.Equal(t, tc.want, string(b))
		})
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	in := []models.Market{m("USD", 10), m("EUR", -1), m("USD", 5)}
	before := append([]models.Market(nil), in...)

	_ = Aggregate(in)
	require.Equal(t, before, in)
}

func TestAggregate_Idempotent(t *testing.T) {
	in := randomMarkets(rand.New(rand.NewSource(7)), 200)
	require.Equal(t, Aggregate(in), Aggregate(in))
}

func TestAggregate_SkippedCount(t *testing.T) {
	_, skipped := aggregate([]models.Market{m("USD", 1), m("USD", 0), m("EUR", -3)})
	require.Equal(t, 2, skipped)
}

func TestAggregate_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		in := randomMarkets(rng, rng.Intn(100))
		got := Aggregate(in)

		// expected sums in input order
		want := make(map[string]float64)
		for _, r := range in {
			if r.Volume > 0 {
				want[r.Currency] += r.Volume
			}
		}

		require.Equal(t, len(want), got.Len())
		currencies := got.Currencies()
		require.True(t, sort.StringsAreSorted(currencies))
		for j := 1; j < len(currencies); j++ {
			require.Less(t, currencies[j-1], currencies[j])
		}
		for _, e := range got.Entries() {
			require.Greater(t, e.Volume, 0.0)
			require.Equal(t, want[e.Currency], e.Volume)
		}
	}
}

func randomMarkets(rng *rand.Rand, n int) []models.Market {
	codes := []string{"USD", "EUR", "JPY", "BTC", "GBP", "AUD"}
	out := make([]models.Market, n)
	for i := range out {
		out[i] = models.Market{
			Currency: codes[rng.Intn(len(codes))],
			Volume:   rng.Float64()*200 - 50,
		}
		if rng.Intn(10) == 0 {
			out[i].Volume = 0
		}
	}
	return out
}
