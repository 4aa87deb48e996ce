package okx

import (
	"context"
	"encoding/json"

	"github.com/lukehollenback/okexacct/exchange"
)

//
// Instruments retrieves the instruments of the provided type (SPOT, MARGIN, SWAP, FUTURES, OPTION).
// instType always leads the query; every other filter follows in field order.
//
func (o *Client) Instruments(ctx context.Context, instType string, filter *InstrumentsFilter) (json.RawMessage, error) {
	if instType == "" {
		return nil, exchange.NewInvalidRequestError("missing required parameter instType")
	}

	return o.Get(ctx, instrumentsQuery(instType, filter.Params()))
}
