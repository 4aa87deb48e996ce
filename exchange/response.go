package exchange

import (
	"encoding/json"
	"net/http"
)

//
// Response generically provides an interface to an object that represents a response from a call to
// an exchange's API endpoint.
//
type Response interface {

	//
	// Raw provides the raw HTTP response from the endpoint call that was made.
	//
	Raw() *http.Response

	//
	// Body provides the bytes that were read from the response body.
	//
	Body() []byte

	//
	// Data provides the payload unwrapped from the response envelope (if there was one).
	//
	Data() json.RawMessage
}
