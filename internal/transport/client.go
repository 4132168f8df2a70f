// Package transport is the HTTP collaborator of the query executor: one
// endpoint per query kind with a paged list call and a count call against
// the engine REST API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/procrest/engine-client-go/internal/ratelimit"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the engine REST root, e.g. http://localhost:8080/engine-rest.
	BaseURL string

	Timeout       time.Duration
	Auth          Auth
	Rates         ratelimit.CallRates
	ErrorDecoding ErrorDecoding

	// DeserializeValues asks the engine to deserialize object variables
	// before returning them.
	DeserializeValues bool

	// HTTPClient replaces the instrumented default client (for testing).
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the engine REST API.
type Client struct {
	baseURL           *url.URL
	httpClient        *http.Client
	limiter           *ratelimit.CallLimiter
	errors            ErrorDecoding
	deserializeValues bool
	logger            *slog.Logger
}

// New creates an engine client. Without opts.HTTPClient the client is traced
// with otelhttp and authenticated per opts.Auth. Requests carry an X-Request-ID.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("transport: base URL is required")
	}
	u, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("transport: invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("transport: base URL %q must be http or https", opts.BaseURL)
	}

	var httpClient http.Client
	if opts.HTTPClient != nil {
		httpClient = *opts.HTTPClient
	} else {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		rt, err := opts.Auth.roundTripper(otelhttp.NewTransport(http.DefaultTransport), timeout)
		if err != nil {
			return nil, err
		}
		httpClient = http.Client{Transport: rt, Timeout: timeout}
	}
	if httpClient.Transport == nil {
		httpClient.Transport = http.DefaultTransport
	}
	httpClient.Transport = requestIDTransport{base: httpClient.Transport}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	decoding := opts.ErrorDecoding
	if decoding.HTTPCodes == nil {
		decoding.HTTPCodes = DefaultErrorDecoding().HTTPCodes
	}
	return &Client{
		baseURL:           u,
		httpClient:        &httpClient,
		limiter:           ratelimit.NewCallLimiter(opts.Rates),
		errors:            decoding,
		deserializeValues: opts.DeserializeValues,
		logger:            logger,
	}, nil
}

// call is one engine request.
type call struct {
	class  string // ratelimit call class
	method string
	path   string
	query  url.Values
	body   any
}

func (c call) op() string {
	return c.method + " " + c.path
}

func (c *Client) url(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do sends the call and decodes a 2xx JSON response into out.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	if err := c.limiter.Wait(ctx, cl.class); err != nil {
		return fmt.Errorf("transport: %s: %w", cl.op(), err)
	}

	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("transport: %s: encode request: %w", cl.op(), err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, c.url(cl.path, cl.query), body)
	if err != nil {
		return fmt.Errorf("transport: %s: build request: %w", cl.op(), err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.remote(cl.op(), fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "engine call",
		"op", cl.op(),
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return c.decodeError(cl.op(), resp.StatusCode, data)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.remote(cl.op(), fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func pageParams(firstResult, maxResults int) url.Values {
	return url.Values{
		"firstResult": {strconv.Itoa(firstResult)},
		"maxResults":  {strconv.Itoa(maxResults)},
	}
}
