package postgres

import (
	"context"
	"errors"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/sender"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultNetworks = []networkModel{
	{Name: "polkadot", DisplayName: "Polkadot", TokenTicker: "DOT", TokenDecimals: 10, SS58Prefix: 0},
	{Name: "kusama", DisplayName: "Kusama", TokenTicker: "KSM", TokenDecimals: 12, SS58Prefix: 2},
	{Name: "westend", DisplayName: "Westend", TokenTicker: "WND", TokenDecimals: 12, SS58Prefix: 42},
}

func (c *client) seedNetworks(ctx context.Context) error {
	networks := make([]networkModel, len(defaultNetworks))
	copy(networks, defaultNetworks)

	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&networks).Error
}

// Network returns the metadata of the named network.
//
// Returns sender.ErrNetworkNotFound when the network is unknown.
func (c *client) Network(ctx context.Context, name string) (notification.Network, error) {
	var m networkModel
	err := c.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notification.Network{}, sender.ErrNetworkNotFound
		}
		return notification.Network{}, err
	}

	return m.toNetwork(), nil
}

// Compile-time assertion to ensure *client satisfies the sender.NetworkStorage interface.
var _ sender.NetworkStorage = new(client)
