package postgres

import (
	"context"

	"github.com/gabapcia/valwatch/internal/chainevents"
)

// EventsByBlockHash returns the indexed events of a block in extrinsic order.
func (c *client) EventsByBlockHash(ctx context.Context, network, blockHash string) ([]chainevents.FeedEvent, error) {
	var models []chainEventModel
	err := c.db.WithContext(ctx).
		Where("network = ? AND block_hash = ?", network, blockHash).
		Order("event_index ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]chainevents.FeedEvent, 0, len(models))
	for _, m := range models {
		result = append(result, m.toFeedEvent())
	}

	return result, nil
}

// Compile-time assertion to ensure *client satisfies the chainevents.EventFeed interface.
var _ chainevents.EventFeed = new(client)
