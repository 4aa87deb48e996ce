package okx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/lukehollenback/okexacct/constants"
	"github.com/lukehollenback/okexacct/exchange"
	"github.com/shopspring/decimal"
)

//
// Number is a decimal that the exchange sends as a string. Empty strings and null decode to zero,
// since the exchange uses "" for fields that do not apply to an instrument.
//
type Number struct {
	decimal.Decimal
}

func (o *Number) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		o.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("failed to parse number (%s): %w", data, err)
	}

	o.Decimal = d

	return nil
}

//
// MilliTime is a Unix timestamp in milliseconds, sent as a string.
//
type MilliTime struct {
	time.Time
}

func (o *MilliTime) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" || s == "0" {
		o.Time = time.Time{}
		return nil
	}

	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse millisecond timestamp (%s): %w", data, err)
	}

	o.Time = time.UnixMilli(ms).UTC()

	return nil
}

// BalanceDetail is one currency entry of the balance "details" array.
type BalanceDetail struct {
	Currency         string    `json:"ccy"`
	Equity           Number    `json:"eq"`
	CashBalance      Number    `json:"cashBal"`
	AvailableBalance Number    `json:"availBal"`
	AvailableEquity  Number    `json:"availEq"`
	FrozenBalance    Number    `json:"frozenBal"`
	UnrealizedPnL    Number    `json:"upl"`
	EquityUSD        Number    `json:"eqUsd"`
	UpdateTime       MilliTime `json:"uTime"`
}

// Position is one entry of the positions response.
type Position struct {
	InstrumentType string    `json:"instType"`
	InstrumentID   string    `json:"instId"`
	MarginMode     string    `json:"mgnMode"`
	PositionID     string    `json:"posId"`
	PositionSide   string    `json:"posSide"`
	Position       Number    `json:"pos"`
	Currency       string    `json:"ccy"`
	AveragePrice   Number    `json:"avgPx"`
	UnrealizedPnL  Number    `json:"upl"`
	Leverage       Number    `json:"lever"`
	UpdateTime     MilliTime `json:"uTime"`
}

// Fill is one transaction detail of the fills response.
type Fill struct {
	InstrumentType string    `json:"instType"`
	InstrumentID   string    `json:"instId"`
	TradeID        string    `json:"tradeId"`
	OrderID        string    `json:"ordId"`
	BillID         string    `json:"billId"`
	FillPrice      Number    `json:"fillPx"`
	FillSize       Number    `json:"fillSz"`
	Side           string    `json:"side"`
	PositionSide   string    `json:"posSide"`
	ExecType       string    `json:"execType"`
	FeeCurrency    string    `json:"feeCcy"`
	Fee            Number    `json:"fee"`
	Timestamp      MilliTime `json:"ts"`
}

// Bill is one ledger entry of the account bills and bills-archive responses.
type Bill struct {
	BillID         string    `json:"billId"`
	Currency       string    `json:"ccy"`
	InstrumentType string    `json:"instType"`
	InstrumentID   string    `json:"instId"`
	Type           string    `json:"type"`
	SubType        string    `json:"subType"`
	Balance        Number    `json:"bal"`
	BalanceChange  Number    `json:"balChg"`
	Size           Number    `json:"sz"`
	Price          Number    `json:"px"`
	Fee            Number    `json:"fee"`
	Timestamp      MilliTime `json:"ts"`
}

func DecodeBalanceDetails(data json.RawMessage) ([]BalanceDetail, error) {
	return decodeList[BalanceDetail](data)
}

func DecodePositions(data json.RawMessage) ([]Position, error) {
	return decodeList[Position](data)
}

func DecodeFills(data json.RawMessage) ([]Fill, error) {
	return decodeList[Fill](data)
}

func DecodeBills(data json.RawMessage) ([]Bill, error) {
	return decodeList[Bill](data)
}

//
// TotalEquityUSD sums the USD valuation of every currency in the balance details.
//
func TotalEquityUSD(details []BalanceDetail) decimal.Decimal {
	total := constants.Zero()

	for _, d := range details {
		total = total.Add(d.EquityUSD.Decimal)
	}

	return total
}

func decodeList[T any](data json.RawMessage) ([]T, error) {
	var out []T

	if err := json.Unmarshal(data, &out); err != nil {
		return nil, exchange.NewUnexpectedResponseError(data, err)
	}

	return out, nil
}
