package constants

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

const (
	LogPrefixFmt = "%-17s "
	LogFlags     = log.Ldate | log.Ltime | log.Lmsgprefix
)

var zero = decimal.Zero

//
// NewLogger creates a logger whose lines are prefixed with the padded name of the component that
// owns it.
//
func NewLogger(name string) *log.Logger {
	return log.New(log.Writer(), fmt.Sprintf(LogPrefixFmt, name), LogFlags)
}

func Zero() decimal.Decimal {
	return zero
}
