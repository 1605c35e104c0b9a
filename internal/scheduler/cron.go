package scheduler

import (
	"context"

	"github.com/gabapcia/valwatch/internal/pkg/logger"
)

// cronLogger routes cron's internal logging through the application logger.
type cronLogger struct {
	ctx context.Context
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(l.ctx, "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	logger.Error(l.ctx, "cron: "+msg, append(keysAndValues, "error", err)...)
}
