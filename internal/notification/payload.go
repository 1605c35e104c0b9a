package notification

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidPayload is returned when an event payload cannot be decoded.
var ErrInvalidPayload = errors.New("invalid event payload")

// StakeSummary is the payload of discovered, removed and activity events.
type StakeSummary struct {
	IsActive       bool            `json:"is_active"`
	SelfStake      decimal.Decimal `json:"self_stake"`
	TotalStake     decimal.Decimal `json:"total_stake"`
	NominatorCount int             `json:"nominator_count"`
}

// SessionKeysChange carries the previous and new session keys, hex encoded.
type SessionKeysChange struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// NominationChange describes a nomination gained, lost or resized.
// PreviousAmount is only set for amount changes.
type NominationChange struct {
	Nominator      string           `json:"nominator"`
	Amount         decimal.Decimal  `json:"amount"`
	PreviousAmount *decimal.Decimal `json:"previous_amount,omitempty"`
	NominatorCount int              `json:"nominator_count"`
}

// RankChange is the payload of ranking_validator_rank_change.
type RankChange struct {
	Previous *uint64 `json:"previous,omitempty"`
	Current  uint64  `json:"current"`
}

// LocationChange is the payload of ranking_validator_location_change.
type LocationChange struct {
	Previous *string `json:"previous,omitempty"`
	Current  string  `json:"current"`
}

// ValidityChange is the payload of ranking_validator_validity_change.
type ValidityChange struct {
	Previous *bool `json:"previous,omitempty"`
	Current  bool  `json:"current"`
}

// BinaryVersionChange is the payload of ranking_validator_binary_version_change.
type BinaryVersionChange struct {
	Previous *string `json:"previous,omitempty"`
	Current  string  `json:"current"`
}

// CommissionChange is the payload of chain_validator_commission_changed.
// Commission is expressed in parts per billion.
type CommissionChange struct {
	PreviousPerBillion *uint32 `json:"previous_per_billion,omitempty"`
	CurrentPerBillion  uint32  `json:"current_per_billion"`
}

// IdentityChange is the payload of chain_validator_identity_changed.
type IdentityChange struct {
	Display *string `json:"display,omitempty"`
}

// Chilled is the payload of chain_validator_chilled.
type Chilled struct {
	ExtrinsicIndex *uint32 `json:"extrinsic_index,omitempty"`
}

// BlockAuthorship is the payload of chain_validator_block_authorship.
type BlockAuthorship struct {
	BlockHash string `json:"block_hash"`
}

// PayoutStakers is the payload of chain_validator_payout_stakers.
type PayoutStakers struct {
	Era    uint32          `json:"era"`
	Caller string          `json:"caller,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// Referendum is the payload of the referendum type codes.
type Referendum struct {
	ReferendumID uint32 `json:"referendum_id"`
	Track        string `json:"track,omitempty"`
}
