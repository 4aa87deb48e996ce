package okx

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/buger/jsonparser"
	"github.com/lukehollenback/okexacct/exchange"
)

var _ exchange.Response = (*Response)(nil)

//
// Response implements the exchange.Response interface for wrapped responses from the OKX API.
//
type Response struct {
	response *http.Response
	body     []byte
	data     json.RawMessage
}

func (o *Response) Raw() *http.Response {
	return o.response
}

func (o *Response) Body() []byte {
	return o.body
}

func (o *Response) Data() json.RawMessage {
	return o.data
}

//
// unwrap pulls the raw "data" member out of a JSON object. The second return is false when the body
// is not a single well-formed object or has no such member.
//
func unwrap(body []byte) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, false
	}

	value, dataType, _, err := jsonparser.Get(trimmed, "data")
	if err != nil {
		return nil, false
	}

	return rawValue(value, dataType), true
}

// rawValue undoes jsonparser stripping the quotes off string values.
func rawValue(value []byte, dataType jsonparser.ValueType) json.RawMessage {
	if dataType == jsonparser.String {
		quoted := make([]byte, 0, len(value)+2)
		quoted = append(quoted, '"')
		quoted = append(quoted, value...)
		quoted = append(quoted, '"')

		return quoted
	}

	return json.RawMessage(value)
}
