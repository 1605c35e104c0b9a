// Package postgres implements the relational side of valwatch on top of
// gorm: notification rules and their channels, notification rows, the
// validator audit log, the indexed chain event feed and network metadata.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/valwatch/internal/pkg/resilience/retry"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type client struct {
	db    *gorm.DB
	retry retry.Retry
}

func (c *client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the tables used by valwatch and seeds the
// default networks.
func (c *client) Migrate(ctx context.Context) error {
	err := c.db.WithContext(ctx).AutoMigrate(
		&networkModel{},
		&ruleModel{},
		&ruleValidatorModel{},
		&ruleChannelModel{},
		&notificationModel{},
		&auditEventModel{},
		&chainEventModel{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return c.seedNetworks(ctx)
}

// newClient wraps an open gorm connection. MarkSent retries transient
// Postgres failures with retry.
func newClient(db *gorm.DB) *client {
	return &client{
		db: db,
		retry: retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(100*time.Millisecond),
			retry.WithMaxDelay(time.Second),
			retry.WithRetryIf(isRetryable),
		),
	}
}

// NewClient opens a Postgres connection pool for dsn and verifies it with a ping.
func NewClient(ctx context.Context, dsn string, maxOpenConns int) (*client, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return newClient(db), nil
}
