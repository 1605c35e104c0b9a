// Package redis implements the shared-cache side of valwatch on top of
// go-redis: validator snapshots and id sets written by the validator list
// updater, the finalized height and its pub/sub channel, and the chain event
// inspector checkpoint.
package redis

import (
	"context"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
)

// Config addresses the cache. KeyPrefix namespaces every key the client
// reads or writes, e.g. "subvt:polkadot".
type Config struct {
	Addr      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

type client struct {
	conn   *redis.Client
	prefix string
}

func (c *client) Close() error {
	return c.conn.Close()
}

// key joins parts under the prefix: key("active", "account_id_set") is
// "{prefix}:active:account_id_set".
func (c *client) key(parts ...string) string {
	var b strings.Builder
	b.WriteString(c.prefix)
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}

// NewClient connects and PINGs the server. The connection is released when
// the PING fails.
func NewClient(ctx context.Context, cfg Config) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Addr, err)
	}

	return &client{conn: conn, prefix: cfg.KeyPrefix}, nil
}
