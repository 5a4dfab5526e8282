package agreements

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alinrajpoot/paypal-agreements/internal/observability"
)

// NowFunc supplies the current time.  It exists so that tests can pin the
// agreement start date to a known value.
type NowFunc func() time.Time

type config struct {
	client   *http.Client
	log      *slog.Logger
	now      NowFunc
	endpoint string
}

// Option represents a means of altering the default configuration of a
// Client.
type Option func(*config) error

func newConfig(opts ...Option) (*config, error) {
	var errs error

	cfg := &config{
		client: &http.Client{
			Transport: http.DefaultTransport,
		},
		log: slog.New(observability.NewNoopHandler()),
		now: time.Now,
	}

	for _, opt := range opts {
		errs = errors.Join(errs, opt(cfg))
	}

	if errs != nil {
		return nil, errs
	}

	return cfg, nil
}

// WithHTTPClient is an Option that allows the user to provide a custom
// http.Client for all calls to the processor.  Timeouts, retries and TLS
// configuration belong to this client; the library performs none itself.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) error {
		c.client = client

		return nil
	}
}

// WithLogger is an Option that allows the user to provide an slog.Logger
// that can be used to observe the internal operation of the client.
//
// If not provided, a No-Op logger is used.  Under normal operation, this
// library writes one line of INFO-level logging for each completed
// operation.  Debug-level logging provides a log record for each HTTP
// call that's made.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) error {
		c.log = log

		return nil
	}
}

// WithNowFunc is an Option that replaces the clock used to compute the
// agreement start date.
func WithNowFunc(now NowFunc) Option {
	return func(c *config) error {
		c.now = now

		return nil
	}
}

// WithEndpoint is an Option that overrides the base endpoint selected by
// the sandbox flag.  It is intended for tests and non-standard hosts.
func WithEndpoint(endpoint string) Option {
	return func(c *config) error {
		c.endpoint = strings.TrimRight(endpoint, "/")

		return nil
	}
}
