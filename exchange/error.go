package exchange

import (
	"errors"
	"fmt"
)

//
// ErrorKind is an enum that classifies why a call against an exchange's API did not produce a
// payload.
//
type ErrorKind int

const (
	TransportFailure      ErrorKind = iota // The request never completed (DNS, refused, timeout, ...).
	AuthenticationFailure                  // The exchange rejected the credentials or signature.
	UnexpectedResponse                     // The response did not carry the expected payload.
	EmptyResult                            // The payload was there but held nothing to return.
	InvalidRequest                         // The call was rejected locally and never sent.
)

var errorKindNames = [...]string{
	"TransportFailure", "AuthenticationFailure", "UnexpectedResponse", "EmptyResult", "InvalidRequest",
}

func (o ErrorKind) String() string {
	if o < 0 || int(o) >= len(errorKindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(o))
	}

	return errorKindNames[o]
}

//
// Error is the single error type returned by exchange clients. Detail holds whatever the exchange
// actually sent (the raw body for unexpected responses) and Err the underlying cause, if any.
//
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func NewTransportError(err error) *Error {
	return &Error{Kind: TransportFailure, Detail: err.Error(), Err: err}
}

func NewAuthenticationError(body []byte, cause error) *Error {
	return &Error{Kind: AuthenticationFailure, Detail: string(body), Err: cause}
}

func NewUnexpectedResponseError(body []byte, cause error) *Error {
	return &Error{Kind: UnexpectedResponse, Detail: string(body), Err: cause}
}

func NewEmptyResultError(what string) *Error {
	return &Error{Kind: EmptyResult, Detail: what}
}

func NewInvalidRequestError(detail string) *Error {
	return &Error{Kind: InvalidRequest, Detail: detail}
}

func (o *Error) Error() string {
	switch o.Kind {
	case TransportFailure:
		return fmt.Sprintf("transport failure: %s", o.Detail)
	case AuthenticationFailure:
		return fmt.Sprintf("authentication failure: %s", o.Detail)
	case EmptyResult:
		return fmt.Sprintf("empty result: %s", o.Detail)
	case InvalidRequest:
		return fmt.Sprintf("invalid request: %s", o.Detail)
	}

	return fmt.Sprintf("Invalid Response: %s", o.Detail)
}

func (o *Error) Unwrap() error {
	return o.Err
}

//
// IsKind reports whether any error in err's chain is an *Error of the provided kind.
//
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == kind
}
