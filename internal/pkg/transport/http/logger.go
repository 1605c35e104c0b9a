package http

import (
	"context"

	"github.com/gabapcia/valwatch/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// leveledLogger forwards retryablehttp's records to the application logger.
// Failed attempts are reported at warn: the client logs them at error before
// it retries.
type leveledLogger struct {
	ctx context.Context
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	logger.Warn(l.ctx, msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn(l.ctx, msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	logger.Info(l.ctx, msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug(l.ctx, msg, keysAndValues...)
}
