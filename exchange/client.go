package exchange

import (
	"context"
	"encoding/json"
)

//
// AccountClient generically provides an interface to an object that can be used to read the state
// of an account held on a cryptocurrency exchange through its REST API: balances, positions, fills
// and the ledgers behind them.
//
// Whenever an endpoint fails, the error component of the response will be a non-nil *Error whose
// Kind says what went wrong.
//
type AccountClient interface {

	//
	// Auth provides the relevant exchange's API key, secret and passphrase to the client. They are
	// only stored for use in request headers; nothing is sent to the exchange.
	//
	Auth(key string, secret string, passphrase string)

	//
	// Balances retrieves the per-currency balance details of the account.
	//
	Balances(ctx context.Context) (json.RawMessage, error)

	//
	// Get performs a single signed GET against the provided path (including any query string) and
	// returns the unwrapped payload.
	//
	Get(ctx context.Context, pathWithQuery string) (json.RawMessage, error)
}
