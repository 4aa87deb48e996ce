package okx

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lukehollenback/okexacct/exchange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	t.Parallel()

	var n Number

	require.NoError(t, json.Unmarshal([]byte(`"1.25"`), &n))
	assert.True(t, n.Equal(decimal.RequireFromString("1.25")))

	require.NoError(t, json.Unmarshal([]byte(`""`), &n))
	assert.True(t, n.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`3`), &n))
	assert.True(t, n.Equal(decimal.NewFromInt(3)))

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
}

func TestMilliTime(t *testing.T) {
	t.Parallel()

	var m MilliTime

	require.NoError(t, json.Unmarshal([]byte(`"1672531200123"`), &m))
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 123000000, time.UTC), m.Time)

	require.NoError(t, json.Unmarshal([]byte(`""`), &m))
	assert.True(t, m.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &m))
}

func TestDecodeBalanceDetails(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[
		{"ccy":"BTC","eq":"1.5","cashBal":"1.5","availBal":"1.4","frozenBal":"0.1","eqUsd":"30000","uTime":"1672531200000"},
		{"ccy":"USDT","eq":"100","eqUsd":"100.5","availEq":""}
	]`)

	details, err := DecodeBalanceDetails(raw)
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, "BTC", details[0].Currency)
	assert.True(t, details[0].FrozenBalance.Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, int64(1672531200000), details[0].UpdateTime.UnixMilli())
	assert.True(t, details[1].AvailableEquity.IsZero())

	assert.True(t, TotalEquityUSD(details).Equal(decimal.RequireFromString("30100.5")))
	assert.True(t, TotalEquityUSD(nil).IsZero())
}

func TestDecodeFillsAndBills(t *testing.T) {
	t.Parallel()

	fills, err := DecodeFills(json.RawMessage(`[{"instId":"BTC-USDT","fillPx":"20000","fillSz":"0.01","side":"buy","fee":"-0.2","ts":"1672531200000"}]`))
	require.NoError(t, err)
	require.Len(t, fills, 1)
	assert.Equal(t, "buy", fills[0].Side)
	assert.True(t, fills[0].Fee.Equal(decimal.RequireFromString("-0.2")))

	bills, err := DecodeBills(json.RawMessage(`[{"billId":"1","ccy":"USDT","balChg":"-5","bal":"95"}]`))
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.True(t, bills[0].BalanceChange.Equal(decimal.NewFromInt(-5)))

	positions, err := DecodePositions(json.RawMessage(`[{"instId":"BTC-USD-SWAP","pos":"2","lever":"10"}]`))
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.True(t, positions[0].Leverage.Equal(decimal.NewFromInt(10)))
}

func TestDecodeRejectsWrongShape(t *testing.T) {
	t.Parallel()

	_, err := DecodeFills(json.RawMessage(`{"not":"a list"}`))
	require.Error(t, err)
	assert.True(t, exchange.IsKind(err, exchange.UnexpectedResponse))
}
