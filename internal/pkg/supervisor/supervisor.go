// Package supervisor keeps long-running services alive. A service that
// returns an error is restarted after a fixed delay, forever, until its
// context is canceled.
package supervisor

import (
	"context"
	"time"

	"github.com/gabapcia/valwatch/internal/pkg/logger"
	"github.com/gabapcia/valwatch/internal/pkg/resilience/retry"
)

// RunFunc is a blocking service entrypoint. It must return nil only when ctx
// is done; any other return is treated as a crash.
type RunFunc func(ctx context.Context) error

// Run invokes fn and restarts it after delay every time it fails. It returns
// nil once ctx is canceled. name scopes the log entries.
func Run(ctx context.Context, name string, delay time.Duration, fn RunFunc) error {
	ctx = logger.Derive(ctx, "service", name)

	r := retry.New(
		retry.WithAttempts(0),
		retry.WithDelay(delay),
		retry.WithFixedDelay(),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Error(ctx, "service crashed, restarting",
				"restart.attempt", attempt+1,
				"restart.delay", delay,
				"error", err,
			)
		}),
	)

	logger.Info(ctx, "service starting")

	err := r.Execute(ctx, retry.Operation(fn))
	if ctx.Err() != nil {
		logger.Info(ctx, "service stopped")
		return nil
	}

	return err
}
