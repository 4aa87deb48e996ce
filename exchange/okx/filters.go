package okx

import (
	"strconv"
	"time"
)

// Every filter below lists the optional query parameters its endpoint recognises. Unset (zero)
// fields are left off the query. Anything else the exchange accepts can be passed through Extra,
// which is appended verbatim after the recognised fields.

// PositionsFilter narrows /api/v5/account/positions.
type PositionsFilter struct {
	InstType string // MARGIN, SWAP, FUTURES, OPTION
	InstID   string
	PosID    string
	Extra    Params
}

func (o *PositionsFilter) Params() Params {
	if o == nil {
		return nil
	}

	return Params{}.
		AddIf("instType", o.InstType).
		AddIf("instId", o.InstID).
		AddIf("posId", o.PosID).
		concat(o.Extra)
}

// FillsFilter narrows /api/v5/trade/fills.
type FillsFilter struct {
	InstType   string
	Uly        string
	InstFamily string
	InstID     string
	OrdID      string
	After      string // bill ID cursor
	Before     string // bill ID cursor
	Begin      time.Time
	End        time.Time
	Limit      int
	Extra      Params
}

func (o *FillsFilter) Params() Params {
	if o == nil {
		return nil
	}

	return Params{}.
		AddIf("instType", o.InstType).
		AddIf("uly", o.Uly).
		AddIf("instFamily", o.InstFamily).
		AddIf("instId", o.InstID).
		AddIf("ordId", o.OrdID).
		AddIf("after", o.After).
		AddIf("before", o.Before).
		AddIf("begin", millis(o.Begin)).
		AddIf("end", millis(o.End)).
		AddIf("limit", count(o.Limit)).
		concat(o.Extra)
}

// BillsFilter narrows both /api/v5/account/bills and /api/v5/account/bills-archive.
type BillsFilter struct {
	InstType string
	Ccy      string
	MgnMode  string // isolated, cross
	CtType   string // linear, inverse
	Type     string
	SubType  string
	After    string
	Before   string
	Begin    time.Time
	End      time.Time
	Limit    int
	Extra    Params
}

func (o *BillsFilter) Params() Params {
	if o == nil {
		return nil
	}

	return Params{}.
		AddIf("instType", o.InstType).
		AddIf("ccy", o.Ccy).
		AddIf("mgnMode", o.MgnMode).
		AddIf("ctType", o.CtType).
		AddIf("type", o.Type).
		AddIf("subType", o.SubType).
		AddIf("after", o.After).
		AddIf("before", o.Before).
		AddIf("begin", millis(o.Begin)).
		AddIf("end", millis(o.End)).
		AddIf("limit", count(o.Limit)).
		concat(o.Extra)
}

// InterestAccruedFilter narrows /api/v5/account/interest-accrued.
type InterestAccruedFilter struct {
	Type    string // 1: VIP loans, 2: market loans
	Ccy     string
	InstID  string
	MgnMode string
	After   time.Time
	Before  time.Time
	Limit   int
	Extra   Params
}

func (o *InterestAccruedFilter) Params() Params {
	if o == nil {
		return nil
	}

	return Params{}.
		AddIf("type", o.Type).
		AddIf("ccy", o.Ccy).
		AddIf("instId", o.InstID).
		AddIf("mgnMode", o.MgnMode).
		AddIf("after", millis(o.After)).
		AddIf("before", millis(o.Before)).
		AddIf("limit", count(o.Limit)).
		concat(o.Extra)
}

// AssetBillsFilter narrows /api/v5/asset/bills.
type AssetBillsFilter struct {
	Ccy      string
	Type     string
	ClientID string
	After    time.Time
	Before   time.Time
	Limit    int
	Extra    Params
}

func (o *AssetBillsFilter) Params() Params {
	if o == nil {
		return nil
	}

	return Params{}.
		AddIf("ccy", o.Ccy).
		AddIf("type", o.Type).
		AddIf("clientId", o.ClientID).
		AddIf("after", millis(o.After)).
		AddIf("before", millis(o.Before)).
		AddIf("limit", count(o.Limit)).
		concat(o.Extra)
}

// InstrumentsFilter carries the optional filters of /api/v5/public/instruments.
type InstrumentsFilter struct {
	Uly        string
	InstFamily string
	InstID     string
	Extra      Params
}

func (o *InstrumentsFilter) Params() Params {
	if o == nil {
		return nil
	}

	return Params{}.
		AddIf("uly", o.Uly).
		AddIf("instFamily", o.InstFamily).
		AddIf("instId", o.InstID).
		concat(o.Extra)
}

// DepositHistoryFilter narrows /api/v5/asset/deposit-history.
type DepositHistoryFilter struct {
	Ccy    string
	DepID  string
	TxID   string
	Type   string
	State  string
	After  time.Time
	Before time.Time
	Limit  int
	Extra  Params
}

func (o *DepositHistoryFilter) Params() Params {
	if o == nil {
		return nil
	}

	return Params{}.
		AddIf("ccy", o.Ccy).
		AddIf("depId", o.DepID).
		AddIf("txId", o.TxID).
		AddIf("type", o.Type).
		AddIf("state", o.State).
		AddIf("after", millis(o.After)).
		AddIf("before", millis(o.Before)).
		AddIf("limit", count(o.Limit)).
		concat(o.Extra)
}

// WithdrawalHistoryFilter narrows /api/v5/asset/withdrawal-history.
type WithdrawalHistoryFilter struct {
	Ccy      string
	WdID     string
	ClientID string
	TxID     string
	Type     string
	State    string
	After    time.Time
	Before   time.Time
	Limit    int
	Extra    Params
}

func (o *WithdrawalHistoryFilter) Params() Params {
	if o == nil {
		return nil
	}

	return Params{}.
		AddIf("ccy", o.Ccy).
		AddIf("wdId", o.WdID).
		AddIf("clientId", o.ClientID).
		AddIf("txId", o.TxID).
		AddIf("type", o.Type).
		AddIf("state", o.State).
		AddIf("after", millis(o.After)).
		AddIf("before", millis(o.Before)).
		AddIf("limit", count(o.Limit)).
		concat(o.Extra)
}

func (o Params) concat(extra Params) Params {
	return append(o, extra...)
}

func millis(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return strconv.FormatInt(t.UnixMilli(), 10)
}

func count(n int) string {
	if n <= 0 {
		return ""
	}

	return strconv.Itoa(n)
}
