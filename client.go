package agreements

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/alinrajpoot/paypal-agreements/internal/observability"
)

// Base endpoints for the two PayPal environments.
const (
	LiveEndpoint    = "https://api-m.paypal.com"
	SandboxEndpoint = "https://api-m.sandbox.paypal.com"
)

// Environment variables read by NewFromEnv.
const (
	EnvClientID     = "PAYPAL_CLIENT_ID"
	EnvClientSecret = "PAYPAL_CLIENT_SECRET"
	EnvSandbox      = "PAYPAL_SANDBOX"
)

type credentials struct {
	clientID string
	secret   string
}

func (c credentials) valid() bool {
	return c.clientID != "" && c.secret != ""
}

// Client is a facade over the billing-agreement workflow.  It holds the
// processor credentials and the cached AuthSession those credentials were
// exchanged for.  A Client is safe for use by multiple goroutines.
//
// The zero value is not configured and every operation on it fails with
// ErrNotConfigured; use New or call Configure first.
type Client struct {
	config

	mu       sync.Mutex
	creds    credentials
	endpoint string
	session  *AuthSession
	group    singleflight.Group
}

// New returns a Client configured for the given credentials.  The sandbox
// flag selects between SandboxEndpoint and LiveEndpoint.
func New(clientID, secret string, sandbox bool, opts ...Option) (*Client, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config: *cfg,
	}
	c.Configure(clientID, secret, sandbox)

	return c, nil
}

// NewFromEnv builds a Client from the PAYPAL_CLIENT_ID, PAYPAL_CLIENT_SECRET
// and PAYPAL_SANDBOX environment variables.  PAYPAL_SANDBOX is optional and
// defaults to false.
func NewFromEnv(opts ...Option) (*Client, error) {
	clientID, ok := os.LookupEnv(EnvClientID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEnvVarNotFound, EnvClientID)
	}

	secret, ok := os.LookupEnv(EnvClientSecret)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEnvVarNotFound, EnvClientSecret)
	}

	var sandbox bool

	if v, ok := os.LookupEnv(EnvSandbox); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvSandbox, v, err)
		}

		sandbox = parsed
	}

	return New(clientID, secret, sandbox, opts...)
}

// Configure replaces the client's credentials and environment.  Any cached
// AuthSession is invalidated, so the next operation performs a fresh token
// exchange.
func (c *Client) Configure(clientID, secret string, sandbox bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.creds = credentials{
		clientID: clientID,
		secret:   secret,
	}

	c.endpoint = LiveEndpoint
	if sandbox {
		c.endpoint = SandboxEndpoint
	}

	if c.config.endpoint != "" {
		c.endpoint = c.config.endpoint
	}

	c.session = nil
}

// InvalidateSession drops the cached AuthSession.  The next operation
// re-authenticates.  Call this when the processor starts rejecting the
// bearer token, e.g. after its TTL elapsed.
func (c *Client) InvalidateSession() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = nil
}

func (c *Client) httpClient() *http.Client {
	if c.config.client != nil {
		return c.config.client
	}

	return http.DefaultClient
}

func (c *Client) logger() *slog.Logger {
	if c.config.log != nil {
		return c.config.log
	}

	return slog.New(observability.NewNoopHandler())
}

func (c *Client) nowFunc() NowFunc {
	if c.config.now != nil {
		return c.config.now
	}

	return time.Now
}
