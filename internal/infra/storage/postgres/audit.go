package postgres

import (
	"context"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/snapdiff"

	"gorm.io/gorm/clause"
)

// SaveAuditEvent appends ev to the validator audit log. An event already
// recorded under the same key is ignored.
func (c *client) SaveAuditEvent(ctx context.Context, ev notification.Event) error {
	m := auditEventModel{
		EventKey:    ev.Key(),
		Network:     ev.Network,
		Account:     ev.Account,
		TypeCode:    string(ev.Type),
		BlockHeight: ev.BlockHeight,
		Data:        ev.Data,
	}

	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_key"}},
			DoNothing: true,
		}).
		Create(&m).Error
}

// Compile-time assertion to ensure *client satisfies the snapdiff.AuditStorage interface.
var _ snapdiff.AuditStorage = new(client)
