package okx

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/lukehollenback/okexacct/exchange"
)

var _ exchange.APIError = (*APIError)(nil)

//
// APIError implements the exchange.APIError interface for the code/msg pair the exchange puts in
// every response envelope.
//
type APIError struct {
	ErrCode    string
	ErrMessage string
}

func (o *APIError) Code() string {
	return o.ErrCode
}

func (o *APIError) Message() string {
	return o.ErrMessage
}

func (o *APIError) Error() string {
	return fmt.Sprintf(
		"the OKX endpoint returned an API error (code: %s, message: %s)",
		o.ErrCode, o.ErrMessage,
	)
}

//
// populated returns whether or not the structure appears to actually hold an error. A code of "0"
// is the exchange's way of saying success.
//
func (o *APIError) populated() bool {
	return o.ErrCode != "" && o.ErrCode != "0"
}

//
// authentication reports whether the code is one of the 501xx codes the exchange uses for rejected
// keys, passphrases, timestamps and signatures.
//
func (o *APIError) authentication() bool {
	return len(o.ErrCode) == 5 && strings.HasPrefix(o.ErrCode, "501")
}

// parseAPIError reads the envelope's code and msg. Missing fields are left empty.
func parseAPIError(body []byte) *APIError {
	o := &APIError{}

	if v, err := jsonparser.GetString(body, "code"); err == nil {
		o.ErrCode = v
	} else if n, err := jsonparser.GetInt(body, "code"); err == nil {
		o.ErrCode = fmt.Sprint(n)
	}

	if v, err := jsonparser.GetString(body, "msg"); err == nil {
		o.ErrMessage = v
	}

	return o
}
