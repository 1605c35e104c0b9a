// Package notification defines the notification domain: the closed set of
// event type codes and delivery channels, user rules, semantic events and
// the persisted notification rows that the scheduler delivers.
//
// It also hosts the Factory, which turns every semantic event into one
// notification row per matching rule channel.
package notification

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"
)

// ErrUnknownTypeCode is returned when a type code is not part of the closed set.
var ErrUnknownTypeCode = errors.New("unknown notification type code")

// TypeCode identifies the kind of change an event describes.
type TypeCode string

const (
	TypeValidatorDiscovered            TypeCode = "chain_validator_discovered"
	TypeValidatorRemoved               TypeCode = "chain_validator_removed"
	TypeValidatorActive                TypeCode = "chain_validator_active"
	TypeValidatorInactive              TypeCode = "chain_validator_inactive"
	TypeValidatorActiveNextSession     TypeCode = "chain_validator_active_next_session"
	TypeValidatorInactiveNextSession   TypeCode = "chain_validator_inactive_next_session"
	TypeValidatorStartedParaValidating TypeCode = "chain_validator_started_para_validating"
	TypeValidatorStoppedParaValidating TypeCode = "chain_validator_stopped_para_validating"
	TypeValidatorSessionKeysChanged    TypeCode = "chain_validator_session_keys_changed"
	TypeValidatorNewNomination         TypeCode = "chain_validator_new_nomination"
	TypeValidatorLostNomination        TypeCode = "chain_validator_lost_nomination"
	TypeValidatorNominationAmount      TypeCode = "chain_validator_nomination_amount_change"
	TypeValidatorCommissionChanged     TypeCode = "chain_validator_commission_changed"
	TypeValidatorIdentityChanged       TypeCode = "chain_validator_identity_changed"
	TypeValidatorChilled               TypeCode = "chain_validator_chilled"
	TypeValidatorBlockAuthorship       TypeCode = "chain_validator_block_authorship"
	TypeValidatorPayoutStakers         TypeCode = "chain_validator_payout_stakers"
	TypeRankingRankChange              TypeCode = "ranking_validator_rank_change"
	TypeRankingLocationChange          TypeCode = "ranking_validator_location_change"
	TypeRankingValidityChange          TypeCode = "ranking_validator_validity_change"
	TypeRankingBinaryVersionChange     TypeCode = "ranking_validator_binary_version_change"
	TypeReferendumConfirmed            TypeCode = "referendum_confirmed"
	TypeReferendumRejected             TypeCode = "referendum_rejected"
	TypeReferendumCancelled            TypeCode = "referendum_cancelled"
)

// typeCodes is the closed set of supported type codes, in declaration order.
var typeCodes = []TypeCode{
	TypeValidatorDiscovered,
	TypeValidatorRemoved,
	TypeValidatorActive,
	TypeValidatorInactive,
	TypeValidatorActiveNextSession,
	TypeValidatorInactiveNextSession,
	TypeValidatorStartedParaValidating,
	TypeValidatorStoppedParaValidating,
	TypeValidatorSessionKeysChanged,
	TypeValidatorNewNomination,
	TypeValidatorLostNomination,
	TypeValidatorNominationAmount,
	TypeValidatorCommissionChanged,
	TypeValidatorIdentityChanged,
	TypeValidatorChilled,
	TypeValidatorBlockAuthorship,
	TypeValidatorPayoutStakers,
	TypeRankingRankChange,
	TypeRankingLocationChange,
	TypeRankingValidityChange,
	TypeRankingBinaryVersionChange,
	TypeReferendumConfirmed,
	TypeReferendumRejected,
	TypeReferendumCancelled,
}

// TypeCodes returns every supported type code.
func TypeCodes() []TypeCode {
	return slices.Clone(typeCodes)
}

// Valid reports whether t belongs to the closed set of type codes.
func (t TypeCode) Valid() bool {
	return slices.Contains(typeCodes, t)
}

// IsNetworkWide reports whether events of this type have no subject account.
func (t TypeCode) IsNetworkWide() bool {
	switch t {
	case TypeReferendumConfirmed, TypeReferendumRejected, TypeReferendumCancelled:
		return true
	default:
		return false
	}
}

// ParseTypeCode converts s into a TypeCode, rejecting unknown values.
func ParseTypeCode(s string) (TypeCode, error) {
	t := TypeCode(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTypeCode, s)
	}
	return t, nil
}

// Channel is a delivery channel. The set is closed.
type Channel string

const (
	ChannelTelegram Channel = "telegram"
	ChannelAPNS     Channel = "apns"
	ChannelFCM      Channel = "fcm"
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
)

// Channels returns every supported channel.
func Channels() []Channel {
	return []Channel{ChannelTelegram, ChannelAPNS, ChannelFCM, ChannelEmail, ChannelSMS}
}

// Valid reports whether c is a supported channel.
func (c Channel) Valid() bool {
	return slices.Contains(Channels(), c)
}

// PeriodType controls when a notification is delivered.
type PeriodType string

const (
	// PeriodImmediate rows are delivered one by one as soon as possible.
	PeriodImmediate PeriodType = "immediate"

	// PeriodHour rows are delivered grouped at hour boundaries.
	PeriodHour PeriodType = "hour"

	// PeriodDay rows are delivered grouped at day boundaries.
	PeriodDay PeriodType = "day"
)

// Valid reports whether p is a supported period type.
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodImmediate, PeriodHour, PeriodDay:
		return true
	default:
		return false
	}
}

// RuleChannel is a delivery endpoint of a rule: a channel plus the target on
// that channel (chat id, device token, e-mail address or phone number).
type RuleChannel struct {
	ID      uint64
	Channel Channel
	Target  string
}

// Rule is a user subscription to one type code on one network.
//
// A rule without Validators is global and matches every account.
// Period is the multiplier for hour and day rules (every N hours/days) and
// is ignored for immediate rules.
type Rule struct {
	ID         uint64
	UserID     uint64
	Network    string
	TypeCode   TypeCode
	Validators []string
	PeriodType PeriodType
	Period     uint16
	Enabled    bool
	Channels   []RuleChannel
	CreatedAt  time.Time
}

// IsGlobal reports whether the rule matches every account.
func (r Rule) IsGlobal() bool {
	return len(r.Validators) == 0
}

// Event is a semantic change detected at a finalized height.
//
// Account is empty for network-wide events such as referenda. Data holds the
// type-specific payload (see payload.go) and may be empty. EventIndex is the
// position of the on-chain event inside its block and is only set for events
// read from the chain event feed.
type Event struct {
	Network     string          `json:"network"`
	Type        TypeCode        `json:"type_code"`
	Account     string          `json:"account_id,omitempty"`
	BlockHeight uint64          `json:"block_height"`
	BlockHash   string          `json:"block_hash,omitempty"`
	EventIndex  *uint32         `json:"event_index,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// NewEvent builds an Event, marshaling data as its payload. A nil data
// produces an event without payload.
func NewEvent(network string, typeCode TypeCode, account string, height uint64, data any) (Event, error) {
	ev := Event{
		Network:     network,
		Type:        typeCode,
		Account:     account,
		BlockHeight: height,
	}

	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return Event{}, fmt.Errorf("marshal %s payload: %w", typeCode, err)
		}
		ev.Data = raw
	}

	return ev, nil
}

// Key returns a deterministic identifier of the event instance. Two events
// with the same network, type, account, height, event index and payload
// share a key.
func (e Event) Key() string {
	parts := []string{e.Network, string(e.Type), e.Account, strconv.FormatUint(e.BlockHeight, 10)}
	if e.EventIndex != nil {
		parts = append(parts, "#"+strconv.FormatUint(uint64(*e.EventIndex), 10))
	}

	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{'|'})
	}
	h.Write(e.Data)
	return hex.EncodeToString(h.Sum(nil))
}

// Decode unmarshals the event payload into v.
func (e Event) Decode(v any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("%w: %s has no payload", ErrInvalidPayload, e.Type)
	}

	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return nil
}

// Notification is a persisted delivery job: one row per rule channel and
// event instance. It is immutable after creation except for the sent marker.
type Notification struct {
	ID            uint64
	UserID        uint64
	RuleID        uint64
	RuleChannelID uint64
	Network       string
	TypeCode      TypeCode
	PeriodType    PeriodType
	Period        uint16
	Channel       Channel
	Target        string
	Account       string
	BlockHeight   uint64
	EventKey      string
	Payload       json.RawMessage
	CreatedAt     time.Time
	SentAt        *time.Time
	MessageID     string
}

// Event decodes the serialized event stored in the notification payload.
func (n Notification) Event() (Event, error) {
	var ev Event
	if err := json.Unmarshal(n.Payload, &ev); err != nil {
		return Event{}, fmt.Errorf("%w: notification %d: %w", ErrInvalidPayload, n.ID, err)
	}
	return ev, nil
}

// Network is the display metadata of a monitored chain.
type Network struct {
	Name          string
	DisplayName   string
	TokenTicker   string
	TokenDecimals uint8
	SS58Prefix    uint16
}
