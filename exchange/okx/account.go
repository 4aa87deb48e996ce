package okx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/buger/jsonparser"
	"github.com/lukehollenback/okexacct/exchange"
)

//
// Balances retrieves the account balance and returns the "details" array of its first entry, which
// holds one object per currency. An empty response yields an EmptyResult error.
//
func (o *Client) Balances(ctx context.Context) (json.RawMessage, error) {
	data, err := o.Get(ctx, BalanceURL)
	if err != nil {
		return nil, err
	}

	return balanceDetails(data)
}

// balanceDetails extracts data[0].details.
func balanceDetails(data json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, exchange.NewUnexpectedResponseError(data, nil)
	}

	if _, _, _, err := jsonparser.Get(trimmed, "[0]"); err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return nil, exchange.NewEmptyResultError("the balance response held no accounts")
		}

		return nil, exchange.NewUnexpectedResponseError(data, err)
	}

	value, dataType, _, err := jsonparser.Get(trimmed, "[0]", "details")
	if err != nil {
		return nil, exchange.NewUnexpectedResponseError(data, err)
	}

	return rawValue(value, dataType), nil
}

//
// Positions retrieves open positions. Its query keeps the filter's field order instead of sorting,
// matching what the exchange has always been sent for this endpoint.
//
func (o *Client) Positions(ctx context.Context, filter *PositionsFilter) (json.RawMessage, error) {
	return o.Get(ctx, orderedQuery(PositionsURL, filter.Params()))
}

// Fills retrieves transaction details from the last three days.
func (o *Client) Fills(ctx context.Context, filter *FillsFilter) (json.RawMessage, error) {
	return o.Get(ctx, sortedQuery(FillsURL, filter.Params()))
}

// Bills retrieves account bills from the last seven days.
func (o *Client) Bills(ctx context.Context, filter *BillsFilter) (json.RawMessage, error) {
	return o.Get(ctx, sortedQuery(BillsURL, filter.Params()))
}

// BillsArchive retrieves account bills from the last three months.
func (o *Client) BillsArchive(ctx context.Context, filter *BillsFilter) (json.RawMessage, error) {
	return o.Get(ctx, sortedQuery(BillsArchiveURL, filter.Params()))
}

func (o *Client) InterestAccrued(ctx context.Context, filter *InterestAccruedFilter) (json.RawMessage, error) {
	return o.Get(ctx, sortedQuery(InterestAccruedURL, filter.Params()))
}
