package casino

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Client binds merchant credentials to a dispatcher. Facades of every
// sub-system are built on top of one Client. It is immutable after
// NewClient and safe for concurrent use.
type Client struct {
	creds      MerchantCredentials
	dispatcher Dispatcher
	log        zerolog.Logger
	now        func() time.Time
}

type clientOptions struct {
	httpClient    *http.Client
	timeout       time.Duration
	dispatcher    Dispatcher
	retries       uint64
	retryInterval time.Duration
	logger        *zerolog.Logger
	now           func() time.Time
}

// Option configures a Client.
type Option func(*clientOptions)

// WithTimeout bounds every backend round trip. The default is no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) { o.timeout = timeout }
}

// WithHTTPClient sends requests through a caller supplied HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = client }
}

// WithDispatcher replaces the transport entirely.
func WithDispatcher(d Dispatcher) Option {
	return func(o *clientOptions) { o.dispatcher = d }
}

// WithRetry wraps the transport in a RetryDispatcher. Only read operations
// are retried.
func WithRetry(maxRetries uint64, interval time.Duration) Option {
	return func(o *clientOptions) {
		o.retries = maxRetries
		o.retryInterval = interval
	}
}

// WithLogger sets the logger used by the client and its transport.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) { o.logger = &logger }
}

// WithClock overrides the time source used by date pre-checks.
func WithClock(now func() time.Time) Option {
	return func(o *clientOptions) { o.now = now }
}

// NewClient creates a client for the given merchant.
func NewClient(creds MerchantCredentials, opts ...Option) *Client {
	o := clientOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	logger := log.Logger
	if o.logger != nil {
		logger = *o.logger
	}
	logger = logger.With().Int64("merchant_id", creds.MerchantID()).Logger()

	dispatcher := o.dispatcher
	if dispatcher == nil {
		if o.httpClient != nil {
			dispatcher = NewHTTPDispatcherWithClient(o.httpClient, logger)
		} else {
			dispatcher = NewHTTPDispatcher(o.timeout, logger)
		}
	}
	if o.retries > 0 {
		dispatcher = NewRetryDispatcher(dispatcher, o.retries, o.retryInterval, logger)
	}

	return &Client{
		creds:      creds,
		dispatcher: dispatcher,
		log:        logger,
		now:        o.now,
	}
}

// Credentials returns the merchant credentials the client signs with.
func (c *Client) Credentials() MerchantCredentials {
	return c.creds
}

// Now returns the client's current time.
func (c *Client) Now() time.Time {
	return c.now()
}

// Logger returns the client logger.
func (c *Client) Logger() zerolog.Logger {
	return c.log
}
