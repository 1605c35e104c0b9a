// Package retry runs operations under avast/retry-go with exponential backoff
// by default. Zero attempts retries until the operation succeeds or the
// context ends, which is how the supervisor keeps services alive.
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Operation is one attempt. It receives the context given to Execute.
type Operation func(ctx context.Context) error

// Retry runs an Operation until it succeeds or the policy gives up.
type Retry interface {
	// Execute returns nil on the first successful attempt. Otherwise it
	// returns the last attempt's error, or the context error once ctx is done.
	Execute(ctx context.Context, op Operation) error
}

type config struct {
	attempts   uint
	delay      time.Duration
	maxDelay   time.Duration
	fixedDelay bool
	retryIf    func(err error) bool
	onRetry    func(attempt uint, err error)
}

// Option configures New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a policy making 3 attempts with backoff starting at 1s and
// capped at 5s, retrying every error.
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

func (r *retrier) Execute(ctx context.Context, op Operation) error {
	delayType := retry.BackOffDelay
	if r.cfg.fixedDelay {
		delayType = retry.FixedDelay
	}

	options := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(true),
	}
	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}
	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(func() error { return op(ctx) }, options...)
}

// WithAttempts sets the total number of attempts. Zero means unlimited.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the wait before the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the backoff.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithFixedDelay waits exactly the configured delay between attempts.
func WithFixedDelay() Option {
	return func(c *config) {
		c.fixedDelay = true
	}
}

// WithRetryIf retries only errors accepted by fn; any other error is
// returned immediately.
func WithRetryIf(fn func(err error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithOnRetry calls fn after every failed attempt that will be retried.
// attempt is zero-based.
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
