package okx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/okexacct/constants"
	"github.com/lukehollenback/okexacct/exchange"
	"github.com/lukehollenback/okexacct/structs/evictingqueue"
)

var logger = constants.NewLogger(Name)

var _ exchange.AccountClient = (*Client)(nil)

//
// Config holds everything a Client needs. Only the credentials are required; an empty Endpoint
// means the production origin and a nil HTTPClient means a fresh http.Client with the transport's
// default behaviour (no timeout).
//
type Config struct {
	Endpoint   string
	Key        string
	Secret     string
	Passphrase string
	HTTPClient *http.Client

	// Simulated routes requests to the exchange's demo trading environment.
	Simulated bool

	// Verbose logs one line per call.
	Verbose bool

	// TrailSize is how many calls Recent remembers.
	TrailSize int

	// Now is the clock used for request timestamps. Defaults to time.Now.
	Now func() time.Time
}

//
// Call records one round trip made by the client.
//
type Call struct {
	At     time.Time
	Method string
	Path   string
	Status int
	Err    error
}

//
// Client implements the exchange.AccountClient interface for the OKX v5 REST API. One Client owns
// one set of credentials and one http.Client; it is safe to use from several goroutines.
//
type Client struct {
	mu         *sync.RWMutex
	endpoint   string
	creds      Credentials
	httpClient *http.Client
	simulated  bool
	verbose    bool
	now        func() time.Time
	trail      *evictingqueue.Queue[Call]
}

func NewClient(cfg *Config) *Client {
	o := &Client{
		mu:         &sync.RWMutex{},
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		httpClient: cfg.HTTPClient,
		simulated:  cfg.Simulated,
		verbose:    cfg.Verbose,
		now:        cfg.Now,
	}

	if o.endpoint == "" {
		o.endpoint = BaseURL
	}

	if o.httpClient == nil {
		o.httpClient = &http.Client{}
	}

	if o.now == nil {
		o.now = time.Now
	}

	trailSize := cfg.TrailSize
	if trailSize <= 0 {
		trailSize = DefaultTrailSize
	}

	o.trail = evictingqueue.New[Call](trailSize)
	o.Auth(cfg.Key, cfg.Secret, cfg.Passphrase)

	return o
}

func (o *Client) Auth(key string, secret string, passphrase string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.creds = Credentials{Key: key, Secret: secret, Passphrase: passphrase}
}

// Endpoint returns the origin requests are sent to.
func (o *Client) Endpoint() string {
	return o.endpoint
}

// Recent returns the most recent calls, oldest first.
func (o *Client) Recent() []Call {
	return o.trail.Snapshot()
}

//
// Last returns the most recent call and true, or a zero Call and false before the first request.
//
func (o *Client) Last() (Call, bool) {
	return o.trail.Get(o.trail.Len() - 1)
}

//
// Get performs a signed GET of the provided path (query string included) and returns the "data"
// member of the response.
//
func (o *Client) Get(ctx context.Context, pathWithQuery string) (json.RawMessage, error) {
	resp, err := o.request(ctx, http.MethodGet, pathWithQuery, "")
	if err != nil {
		return nil, err
	}

	return resp.Data(), nil
}

//
// request makes the specified request to the OKX API and returns a wrapped response (parsed as much
// as generically possible) and/or an *exchange.Error if something went wrong.
//
func (o *Client) request(ctx context.Context, method string, pathWithQuery string, body string) (*Response, error) {
	//
	// Build the request. The signature is computed over the request-URI Go will actually write, so
	// whatever the URL parser does to the path is reflected in what gets signed.
	//
	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, o.endpoint+pathWithQuery, reqBody)
	if err != nil {
		return nil, o.record(method, pathWithQuery, 0, exchange.NewTransportError(err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if o.simulated {
		req.Header[SimulatedTradingHeader] = []string{"1"}
	}

	o.mu.RLock()
	creds := o.creds
	o.mu.RUnlock()

	Sign(creds, o.now(), req.Method, req.URL.RequestURI(), body).Apply(req)

	//
	// Send it off.
	//
	httpResp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, o.record(method, pathWithQuery, 0, exchange.NewTransportError(err))
	}
	defer httpResp.Body.Close()

	wrapped := &Response{response: httpResp}

	wrapped.body, err = io.ReadAll(httpResp.Body)
	if err != nil {
		return wrapped, o.record(method, pathWithQuery, httpResp.StatusCode, exchange.NewTransportError(err))
	}

	//
	// Anything with a "data" member is a success, whatever the status code says.
	//
	if data, ok := unwrap(wrapped.body); ok {
		wrapped.data = data

		return wrapped, o.record(method, pathWithQuery, httpResp.StatusCode, nil)
	}

	return wrapped, o.record(method, pathWithQuery, httpResp.StatusCode, classify(httpResp.StatusCode, wrapped.body))
}

//
// classify turns a response without a payload into the matching *exchange.Error.
//
func classify(status int, body []byte) *exchange.Error {
	var cause error

	apiErr := parseAPIError(body)
	if apiErr.populated() {
		cause = apiErr
	} else if status != http.StatusOK {
		cause = exchange.NewHTTPError(status, body)
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden || apiErr.authentication() {
		return exchange.NewAuthenticationError(body, cause)
	}

	return exchange.NewUnexpectedResponseError(body, cause)
}

//
// record adds the call to the trail, logs it when verbose, and hands back err so callers can return
// it directly.
//
func (o *Client) record(method string, path string, status int, err *exchange.Error) error {
	call := Call{
		At:     o.now(),
		Method: method,
		Path:   path,
		Status: status,
	}

	if err != nil {
		call.Err = err
	}

	o.trail.Add(call)

	if o.verbose {
		statusMsg := aurora.Green(status)
		if status != http.StatusOK {
			statusMsg = aurora.Red(status)
		}

		if err != nil {
			logger.Printf("%s %s ↝ %d %s", method, path, statusMsg, aurora.Bold(aurora.Red(err.Kind)))
		} else {
			logger.Printf("%s %s ↝ %d", method, path, statusMsg)
		}
	}

	if err == nil {
		return nil
	}

	return err
}
