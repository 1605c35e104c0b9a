package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/valwatch/internal/chainevents"

	"github.com/redis/go-redis/v9"
)

// chaineventsKeyPrefix is the namespace prefix for the chain event inspector checkpoints.
const chaineventsKeyPrefix = "chainevents"

// chaineventsCheckpointKey constructs the Redis key used to store the last
// inspected block height of a network. The format is:
//
//	"<prefix>:chainevents:checkpoint:<network>"
func (c *client) chaineventsCheckpointKey(network string) string {
	return c.key(chaineventsKeyPrefix, "checkpoint", network)
}

// SaveCheckpoint persists the last block height whose chain events were
// inspected for network, so the inspector resumes from it after a restart.
// The checkpoint is stored with no expiration.
//
// Parameters:
//   - ctx: context for timeout and cancellation.
//   - network: the network name (e.g., "polkadot", "kusama").
//   - height: the last inspected block height.
//
// Returns:
//   - An error if the Redis operation fails.
func (c *client) SaveCheckpoint(ctx context.Context, network string, height uint64) error {
	return c.conn.Set(ctx, c.chaineventsCheckpointKey(network), height, 0).Err()
}

// LoadLatestCheckpoint retrieves the last inspected block height for network.
//
// If no checkpoint exists yet, it returns chainevents.ErrNoCheckpointFound.
func (c *client) LoadLatestCheckpoint(ctx context.Context, network string) (uint64, error) {
	val, err := c.conn.Get(ctx, c.chaineventsCheckpointKey(network)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = chainevents.ErrNoCheckpointFound
		}

		return 0, err
	}

	height, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid checkpoint %q: %w", val, err)
	}

	return height, nil
}

// Compile-time assertion to ensure client implements the CheckpointStorage interface.
var _ chainevents.CheckpointStorage = new(client)
