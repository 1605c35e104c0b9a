package snapdiff

import (
	"github.com/gabapcia/valwatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// Nomination is a single nominator backing a validator.
type Nomination struct {
	Nominator string          `json:"nominator"`
	Amount    decimal.Decimal `json:"amount"`
}

// Snapshot is the last materialized state of one validator, as published by
// the validator list updater in the shared cache.
//
// Ranking fields come from a third-party ranking provider and are optional.
// CandidateRecordID identifies the provider record the other ranking fields
// belong to; ranking changes are only reported while it stays the same.
type Snapshot struct {
	AccountID         string         `json:"account_id"`
	IsActive          bool           `json:"is_active"`
	ActiveNextSession bool           `json:"active_next_session"`
	IsParaValidator   bool           `json:"is_para_validator"`
	NextSessionKeys   types.HexBytes `json:"next_session_keys"`

	CandidateRecordID *uint64 `json:"candidate_record_id,omitempty"`
	Rank              *uint64 `json:"rank,omitempty"`
	Location          *string `json:"location,omitempty"`
	IsValid           *bool   `json:"is_valid,omitempty"`
	BinaryVersion     *string `json:"binary_version,omitempty"`

	SelfStake   decimal.Decimal `json:"self_stake"`
	TotalStake  decimal.Decimal `json:"total_stake"`
	Nominations []Nomination    `json:"nominations"`

	BlockHeight uint64 `json:"block_height"`
}
