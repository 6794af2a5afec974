package http

import (
	"context"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abdul-hamid-achik/requeasy/packages/log"
)

var defaultRoots = &EmbeddedRoots{}

// DefaultClient backs the package-level Get and Post helpers.
var DefaultClient = NewClient()

// Client issues one request per call over a fresh connection. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	transport      *Transport
	logger         *slog.Logger
	defaultHeaders []string
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		transport: &Transport{
			Dialer: &net.Dialer{},
			TLS:    defaultRoots,
		},
		logger: log.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTLSConfigProvider replaces the embedded root bundle with another trust policy.
func WithTLSConfigProvider(p TLSConfigProvider) ClientOption {
	return func(c *Client) {
		c.transport.TLS = p
	}
}

func WithDialer(d Dialer) ClientOption {
	return func(c *Client) {
		c.transport.Dialer = d
	}
}

func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultHeaders sets header lines sent on every POST and PUT that
// carries no header lines of its own.
func WithDefaultHeaders(lines ...string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders = append(c.defaultHeaders, lines...)
	}
}

// Do performs the request. Malformed input, connection failures and
// stream errors are all returned to the caller; nothing is retried.
func (c *Client) Do(req *Request) (*Response, error) {
	target, err := ParseURL(req.URL)
	if err != nil {
		return nil, err
	}

	headers := req.Headers
	if len(headers) == 0 {
		headers = c.defaultHeaders
	}

	logger := log.WithRequestID(c.logger, uuid.NewString())
	payload := BuildRequest(target.Host, target.Path, req.Body, req.Method, headers)
	ctx := context.Background()
	if logger.Enabled(ctx, log.LevelTrace) {
		for i, line := range strings.Split(payload, crlf) {
			logger.Log(ctx, log.LevelTrace, "request line", "index", i, "line", line)
		}
	}

	start := time.Now()
	raw, err := c.transport.RoundTrip(target, []byte(payload))
	duration := time.Since(start)
	if err != nil {
		logger.Debug("request failed",
			"method", methodOrGet(req.Method),
			"addr", target.SocketAddress,
			log.DurationKey, duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	resp, err := ParseResponse(DecodeLossy(raw))
	if err != nil {
		logger.Debug("response malformed",
			"method", methodOrGet(req.Method),
			"addr", target.SocketAddress,
			"bytes", len(raw),
			log.DurationKey, duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	logger.Debug("request completed",
		"method", methodOrGet(req.Method),
		"addr", target.SocketAddress,
		"tls", target.Secure(),
		"bytes", len(raw),
		log.DurationKey, duration.Milliseconds(),
	)
	return resp, nil
}

func methodOrGet(method string) string {
	if method == "" {
		return "GET"
	}
	return method
}

func (c *Client) Get(url string) (*Response, error) {
	return c.Do(NewRequest("GET", url))
}

func (c *Client) Post(url, body string) (*Response, error) {
	return c.Do(NewRequest("POST", url).SetBody(body))
}

func (c *Client) Put(url, body string) (*Response, error) {
	return c.Do(NewRequest("PUT", url).SetBody(body))
}

func (c *Client) Delete(url string) (*Response, error) {
	return c.Do(NewRequest("DELETE", url))
}

// Get issues a GET with no body and no extra headers using DefaultClient.
func Get(url string) (*Response, error) {
	return DefaultClient.Get(url)
}

// Post issues a POST with the given body and default headers using DefaultClient.
func Post(url, body string) (*Response, error) {
	return DefaultClient.Post(url, body)
}
