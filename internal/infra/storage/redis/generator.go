package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/valwatch/internal/generator"
	"github.com/gabapcia/valwatch/internal/pkg/logger"
	"github.com/gabapcia/valwatch/internal/pkg/x/chflow"

	"github.com/redis/go-redis/v9"
)

// LatestFinalizedHeight reads "<prefix>:finalized_block_number".
//
// Returns generator.ErrNoFinalizedHeight when the key does not exist yet.
func (c *client) LatestFinalizedHeight(ctx context.Context) (uint64, error) {
	val, err := c.conn.Get(ctx, c.key("finalized_block_number")).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = generator.ErrNoFinalizedHeight
		}
		return 0, err
	}

	height, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid finalized height %q: %w", val, err)
	}

	return height, nil
}

// SubscribeFinalizedHeights subscribes to "<prefix>:publish:finalized_block_number"
// and streams every published height. The subscription is confirmed before
// returning. The returned channel is closed when ctx is done or the
// subscription ends; messages that are not valid heights are logged and dropped.
func (c *client) SubscribeFinalizedHeights(ctx context.Context) (<-chan uint64, error) {
	pubsub := c.conn.Subscribe(ctx, c.key("publish", "finalized_block_number"))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	heights := make(chan uint64)
	go func() {
		defer close(heights)
		defer pubsub.Close()

		chflow.Forward(ctx, pubsub.Channel(), heights, func(msg *redis.Message) (uint64, bool) {
			height, err := strconv.ParseUint(msg.Payload, 10, 64)
			if err != nil {
				logger.Warn(ctx, "invalid finalized height published", "payload", msg.Payload, "error", err)
				return 0, false
			}
			return height, true
		})
	}()

	return heights, nil
}

// Compile-time assertion to ensure *client satisfies the generator.HeightSource interface.
var _ generator.HeightSource = new(client)
