package source

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/guttosm/volumepulse/internal/domain/models"
)

func TestDecodeMarkets_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		want      []models.Market
		malformed bool
	}{
		{name: "empty array", in: `[]`, want: []models.Market{}},
		{
			name: "extra fields ignored",
			in:   `[{"currency":"USD","volume":10.5,"symbol":"bitstampUSD","bid":1,"ask":null}]`,
			want: []models.Market{{Symbol: "bitstampUSD", Currency: "USD", Volume: 10.5}},
		},
		{
			name: "quoted volume accepted",
			in:   `[{"currency":"EUR","volume":"3.25"}]`,
			want: []models.Market{{Currency: "EUR", Volume: 3.25}},
		},
		{
			name: "zero and negative kept for the aggregator",
			in:   `[{"currency":"BTC","volume":0},{"currency":"USD","volume":-2}]`,
			want: []models.Market{{Currency: "BTC", Volume: 0}, {Currency: "USD", Volume: -2}},
		},
		{
			name: "non string symbol ignored",
			in:   `[{"currency":"USD","volume":1,"symbol":42}]`,
			want: []models.Market{{Currency: "USD", Volume: 1}},
		},
		{name: "missing volume", in: `[{"currency":"USD"}]`, malformed: true},
		{name: "null volume", in: `[{"currency":"USD","volume":null}]`, malformed: true},
		{name: "missing currency", in: `[{"volume":1}]`, malformed: true},
		{name: "numeric currency", in: `[{"currency":840,"volume":1}]`, malformed: true},
		{name: "non numeric volume", in: `[{"currency":"USD","volume":"lots"}]`, malformed: true},
		{name: "boolean volume", in: `[{"currency":"USD","volume":true}]`, malformed: true},
		{name: "NaN string volume", in: `[{"currency":"USD","volume":"NaN"}]`, malformed: true},
		{name: "record not an object", in: `[1]`, malformed: true},
		{name: "null record", in: `[null]`, malformed: true},
		{name: "object document", in: `{"currency":"USD","volume":1}`, malformed: true},
		{name: "null document", in: `null`, malformed: true},
		{name: "truncated", in: `[{"currency":"USD",`, malformed: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeMarkets(strings.NewReader(tc.in))
			if tc.malformed {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrMalformedRecord)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeMarkets_OneBadRecordFailsAll(t *testing.T) {
	in := `[{"currency":"USD","volume":1},{"currency":"EUR","volume":2},{"currency":"JPY"}]`
	got, err := DecodeMarkets(strings.NewReader(in))
	require.ErrorIs(t, err, ErrMalformedRecord)
	require.Contains(t, err.Error(), "record 2")
	require.Nil(t, got)
}

func TestDecodeMarkets_ReadError(t *testing.T) {
	_, err := DecodeMarkets(iotest.ErrReader(errors.New("disk gone")))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrMalformedRecord))
	require.True(t, isReadError(err))
}
