package postgres

import (
	"context"
	"time"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/scheduler"

	"gorm.io/gorm/clause"
)

// InsertNotification inserts n unless a row for the same rule channel and
// event key already exists. It reports whether a row was created.
func (c *client) InsertNotification(ctx context.Context, n notification.Notification) (bool, error) {
	m := fromNotification(n)
	m.ID = 0
	m.SentAt = nil

	res := c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rule_channel_id"}, {Name: "event_key"}},
			DoNothing: true,
		}).
		Create(&m)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// QueryDue returns the unsent notifications of periodType created before
// the given instant, ordered by block height and id.
func (c *client) QueryDue(ctx context.Context, periodType notification.PeriodType, before time.Time) ([]notification.Notification, error) {
	var models []notificationModel
	err := c.db.WithContext(ctx).
		Where("period_type = ? AND sent_at IS NULL AND created_at < ?", string(periodType), before).
		Order("block_height ASC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]notification.Notification, 0, len(models))
	for _, m := range models {
		result = append(result, m.toNotification())
	}

	return result, nil
}

// MarkSent flags the given notifications as delivered with messageID.
// Rows already marked keep their original values. Transient Postgres
// failures are retried.
func (c *client) MarkSent(ctx context.Context, ids []uint64, messageID string, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	return c.retry.Execute(ctx, func(ctx context.Context) error {
		return c.db.WithContext(ctx).
			Model(&notificationModel{}).
			Where("id IN ? AND sent_at IS NULL", ids).
			Updates(map[string]any{
				"sent_at":    sentAt,
				"message_id": messageID,
			}).Error
	})
}

// Compile-time assertion to ensure *client satisfies the scheduler.NotificationStorage interface.
var _ scheduler.NotificationStorage = new(client)
