package okx

import (
	"sort"
	"strings"
)

//
// Param is a single key=value pair of a query string.
//
type Param struct {
	Key   string
	Value string
}

//
// Params is an ordered list of query parameters. Insertion order is kept; sorting only happens in
// the builders that call for it.
//
type Params []Param

// Add appends key=value and returns the extended list.
func (o Params) Add(key string, value string) Params {
	return append(o, Param{Key: key, Value: value})
}

//
// AddIf appends key=value only when value is non-empty. Filters use it so that unset fields never
// reach the wire.
//
func (o Params) AddIf(key string, value string) Params {
	if value == "" {
		return o
	}

	return o.Add(key, value)
}

// Sorted returns a copy ordered by key. Equal keys keep their relative order.
func (o Params) Sorted() Params {
	sorted := make(Params, len(o))
	copy(sorted, o)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	return sorted
}

//
// orderedQuery appends every parameter to path as "key=value&" in insertion order. The path always
// gets the "?" and the last pair keeps its trailing "&"; the exchange signs over these literal bytes.
// Keys and values are percent-encoded, see escape.
//
func orderedQuery(path string, params Params) string {
	var b strings.Builder

	b.WriteString(path)
	b.WriteString("?")

	for _, p := range params {
		b.WriteString(escape(p.Key))
		b.WriteString("=")
		b.WriteString(escape(p.Value))
		b.WriteString("&")
	}

	return b.String()
}

// sortedQuery is orderedQuery over the parameters in key order.
func sortedQuery(path string, params Params) string {
	return orderedQuery(path, params.Sorted())
}

//
// instrumentsQuery always leads with the mandatory instType and joins any further filters with "&",
// without a trailing separator.
//
func instrumentsQuery(instType string, params Params) string {
	var b strings.Builder

	b.WriteString(InstrumentsURL)
	b.WriteString("?instType=")
	b.WriteString(escape(instType))

	for _, p := range params {
		b.WriteString("&")
		b.WriteString(escape(p.Key))
		b.WriteString("=")
		b.WriteString(escape(p.Value))
	}

	return b.String()
}

const upperhex = "0123456789ABCDEF"

//
// escape percent-encodes every byte of s outside the unreserved set (letters, digits, "-._~") and
// the comma the exchange uses for lists. Spaces become %20, and "&", "=", "#" and "?" inside a
// value can no longer split the query or cut it short. Instrument IDs and millisecond timestamps
// come out unchanged.
//
func escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !keep(s[i]) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if keep(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

func keep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}

	switch c {
	case '-', '.', '_', '~', ',':
		return true
	}

	return false
}
