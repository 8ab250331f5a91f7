package xrpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/xrpl-gmp/bridge/sdk"
	sdkerrors "github.com/xrpl-gmp/bridge/sdk/errors"
)

const (
	// DefaultLedgerOffset is how many ledgers past the latest validated one a transaction stays
	// eligible for inclusion.
	DefaultLedgerOffset = 20

	// DefaultMaxFeeDrops caps the autofilled fee at 2 XRP.
	DefaultMaxFeeDrops = 2_000_000

	DefaultPollInterval   = time.Second
	DefaultRequestTimeout = 30 * time.Second
)

var (
	ErrNotConnected = errors.New("client is not connected")

	_ sdk.LedgerClient = (*Client)(nil)
)

// RPCError is an error response returned by the node.
type RPCError struct {
	Code    string
	Message string
}

func (e *RPCError) Error() string {
	if e.Message == "" {
		return "rpc error: " + e.Code
	}

	return fmt.Sprintf("rpc error: %s: %s", e.Code, e.Message)
}

// transport sends a single command and returns its result object.
type transport interface {
	request(ctx context.Context, command string, params map[string]any) (json.RawMessage, error)
	close() error
}

// Client talks to an XRPL node over JSON-RPC (http, https) or WebSocket (ws, wss).
type Client struct {
	url string

	httpClient   *http.Client
	dialer       *websocket.Dialer
	pollInterval   time.Duration
	requestTimeout time.Duration
	ledgerOffset   uint32
	maxFeeDrops  uint64

	mu        sync.Mutex
	transport transport
}

type Option func(*Client)

// WithHTTPClient sets the client used by the JSON-RPC transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithDialer sets the dialer used by the WebSocket transport.
func WithDialer(dialer *websocket.Dialer) Option {
	return func(c *Client) {
		c.dialer = dialer
	}
}

// WithPollInterval sets how often SubmitAndWait checks for validation.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = interval
	}
}

// WithRequestTimeout bounds every single request, including the polls made while waiting for
// validation. A zero timeout leaves requests bounded only by their context.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = timeout
	}
}

// WithLedgerOffset sets the LastLedgerSequence offset applied by Autofill.
func WithLedgerOffset(offset uint32) Option {
	return func(c *Client) {
		c.ledgerOffset = offset
	}
}

// WithMaxFee caps the fee Autofill may set.
func WithMaxFee(drops uint64) Option {
	return func(c *Client) {
		c.maxFeeDrops = drops
	}
}

// NewClient returns a client for the node at rawURL. No connection is made until Connect.
func NewClient(rawURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger url %q: %w", rawURL, err)
	}

	switch parsed.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("invalid ledger url %q: unsupported scheme %q", rawURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid ledger url %q: missing host", rawURL)
	}

	c := &Client{
		url:          rawURL,
		httpClient:   &http.Client{Timeout: DefaultRequestTimeout},
		dialer:       websocket.DefaultDialer,
		pollInterval:   DefaultPollInterval,
		requestTimeout: DefaultRequestTimeout,
		ledgerOffset:   DefaultLedgerOffset,
		maxFeeDrops:    DefaultMaxFeeDrops,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// URL returns the node endpoint.
func (c *Client) URL() string {
	return c.url
}

// Connect opens the connection. JSON-RPC connections are stateless, Connect only prepares the
// transport; WebSocket connections are dialed here. Calling Connect on a connected client is a
// no-op.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transport != nil {
		return nil
	}

	parsed, err := url.Parse(c.url)
	if err != nil {
		return sdkerrors.NewNetworkError("connect", err)
	}

	switch parsed.Scheme {
	case "ws", "wss":
		conn, resp, err := c.dialer.DialContext(ctx, c.url, nil)
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		if err != nil {
			return sdkerrors.NewNetworkError("connect", err)
		}
		c.transport = &wsTransport{conn: conn}
	default:
		c.transport = &httpTransport{url: c.url, client: c.httpClient}
	}

	sdk.LoggerFrom(ctx).Debugf("Connected to %s", c.url)

	return nil
}

// Disconnect closes the connection. It is a no-op on a client that is not connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transport == nil {
		return nil
	}

	err := c.transport.close()
	c.transport = nil
	if err != nil {
		return sdkerrors.NewNetworkError("disconnect", err)
	}

	return nil
}

// Request sends command with params and decodes its result into out. Node errors are returned
// as *RPCError. A request that outlives the client's request timeout fails with
// context.DeadlineExceeded.
func (c *Client) Request(ctx context.Context, command string, params map[string]any, out any) error {
	c.mu.Lock()
	t := c.transport
	c.mu.Unlock()

	if t == nil {
		return ErrNotConnected
	}

	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	result, err := t.request(ctx, command, params)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", command, err)
	}

	return nil
}

// resultError extracts the error a node embeds in a result object.
func resultError(result json.RawMessage) error {
	var status struct {
		Status       string `json:"status"`
		Error        string `json:"error"`
		ErrorMessage string `json:"error_message"`
	}
	if err := json.Unmarshal(result, &status); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	if status.Error != "" || status.Status == "error" {
		return &RPCError{Code: status.Error, Message: status.ErrorMessage}
	}

	return nil
}
