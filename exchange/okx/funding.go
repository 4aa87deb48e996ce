package okx

import (
	"context"
	"encoding/json"
)

// AssetBills retrieves the funding account's bills.
func (o *Client) AssetBills(ctx context.Context, filter *AssetBillsFilter) (json.RawMessage, error) {
	return o.Get(ctx, sortedQuery(AssetBillsURL, filter.Params()))
}

func (o *Client) DepositHistory(ctx context.Context, filter *DepositHistoryFilter) (json.RawMessage, error) {
	return o.Get(ctx, sortedQuery(DepositHistoryURL, filter.Params()))
}

func (o *Client) WithdrawalHistory(ctx context.Context, filter *WithdrawalHistoryFilter) (json.RawMessage, error) {
	return o.Get(ctx, sortedQuery(WithdrawalHistoryURL, filter.Params()))
}
