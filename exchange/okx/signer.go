package okx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

//
// Credentials holds the three secrets the exchange requires on every private request. They are never
// modified after being handed to a client.
//
type Credentials struct {
	Key        string
	Secret     string
	Passphrase string
}

//
// Headers holds the four authentication headers produced by Sign.
//
type Headers struct {
	Key        string
	Sign       string
	Timestamp  string
	Passphrase string
}

//
// Sign computes the authentication headers for a request. The path must be exactly the request-URI
// that will be written on the wire (path plus raw query string), otherwise the exchange rejects the
// signature. The body is appended only when non-empty.
//
func Sign(creds Credentials, now time.Time, method string, pathWithQuery string, body string) Headers {
	ts := Timestamp(now)

	var payload strings.Builder
	payload.WriteString(ts)
	payload.WriteString(strings.ToUpper(method))
	payload.WriteString(pathWithQuery)
	if body != "" {
		payload.WriteString(body)
	}

	mac := hmac.New(sha256.New, []byte(creds.Secret))
	mac.Write([]byte(payload.String()))

	return Headers{
		Key:        creds.Key,
		Sign:       base64.StdEncoding.EncodeToString(mac.Sum(nil)),
		Timestamp:  ts,
		Passphrase: creds.Passphrase,
	}
}

// Timestamp formats t the way the exchange expects in OK-ACCESS-TIMESTAMP.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

//
// Apply sets the headers on req. The map is written directly so the names go out exactly as the
// exchange documents them instead of in canonical MIME form.
//
func (o Headers) Apply(req *http.Request) {
	req.Header[AccessKeyHeader] = []string{o.Key}
	req.Header[AccessSignHeader] = []string{o.Sign}
	req.Header[AccessTimestampHeader] = []string{o.Timestamp}
	req.Header[AccessPassphraseHeader] = []string{o.Passphrase}
}
