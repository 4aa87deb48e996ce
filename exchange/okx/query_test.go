package okx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedQuery(t *testing.T) {
	t.Parallel()

	params := Params{}.Add("b", "2").Add("a", "1")

	for _, path := range []string{
		FillsURL, BillsURL, BillsArchiveURL, InterestAccruedURL, AssetBillsURL,
		DepositHistoryURL, WithdrawalHistoryURL,
	} {
		assert.Equal(t, path+"?a=1&b=2&", sortedQuery(path, params), path)
	}

	assert.Equal(t, "b", params[0].Key, "sorting must not reorder the caller's params")
}

func TestOrderedQuery(t *testing.T) {
	t.Parallel()

	params := Params{}.Add("b", "2").Add("a", "1")

	assert.Equal(t, PositionsURL+"?b=2&a=1&", orderedQuery(PositionsURL, params))
	assert.Equal(t, PositionsURL+"?", orderedQuery(PositionsURL, nil))
}

func TestInstrumentsQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/api/v5/public/instruments?instType=SPOT", instrumentsQuery("SPOT", nil))
	assert.Equal(t,
		"/api/v5/public/instruments?instType=SPOT&ccy=BTC",
		instrumentsQuery("SPOT", Params{}.Add("ccy", "BTC")),
	)
	assert.Equal(t,
		"/api/v5/public/instruments?instType=SWAP&uly=BTC-USD&instId=BTC-USD-SWAP",
		instrumentsQuery("SWAP", Params{}.Add("uly", "BTC-USD").Add("instId", "BTC-USD-SWAP")),
	)
}

func TestAddIf(t *testing.T) {
	t.Parallel()

	params := Params{}.AddIf("ccy", "").AddIf("instId", "BTC-USDT")

	assert.Equal(t, Params{{Key: "instId", Value: "BTC-USDT"}}, params)
}

func TestSortedIsStable(t *testing.T) {
	t.Parallel()

	params := Params{}.Add("x", "1").Add("a", "2").Add("x", "3")

	assert.Equal(t, FillsURL+"?a=2&x=1&x=3&", sortedQuery(FillsURL, params))
}

func TestEscape(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"BTC-USDT":          "BTC-USDT",
		"1672531200123":     "1672531200123",
		"BTC-USDT,ETH-USDT": "BTC-USDT,ETH-USDT",
		"a_b.c~d":           "a_b.c~d",
		"BTC USDT":          "BTC%20USDT",
		"BTC#1":             "BTC%231",
		"a&b=c":             "a%26b%3Dc",
		"50%?":              "50%25%3F",
		"1+1":               "1%2B1",
		"中":                 "%E4%B8%AD",
		"":                  "",
	} {
		assert.Equal(t, want, escape(in), in)
	}
}

func TestQueryBuildersEscape(t *testing.T) {
	t.Parallel()

	params := Params{}.Add("ccy", "BTC USDT").Add("tag", "a#b")

	assert.Equal(t, FillsURL+"?ccy=BTC%20USDT&tag=a%23b&", sortedQuery(FillsURL, params))
	assert.Equal(t, PositionsURL+"?ccy=BTC%20USDT&tag=a%23b&", orderedQuery(PositionsURL, params))
	assert.Equal(t,
		"/api/v5/public/instruments?instType=SP%20OT&ccy=BTC%20USDT&tag=a%23b",
		instrumentsQuery("SP OT", params),
	)
}
