package chainevents

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/valwatch/internal/notification"
)

// ErrUnsupportedKind is returned when a feed row kind has no type code.
var ErrUnsupportedKind = errors.New("unsupported chain event kind")

// Feed row kinds written by the chain indexer.
const (
	KindValidatorPrefsSet = "staking.validator_prefs_set"
	KindChilled           = "staking.chilled"
	KindPayoutStakers     = "staking.payout_stakers"
	KindIdentitySet       = "identity.identity_set"
	KindIdentityCleared   = "identity.identity_cleared"
	KindBlockAuthored     = "block.authored"
	KindReferendaConfirm  = "referenda.confirmed"
	KindReferendaReject   = "referenda.rejected"
	KindReferendaCancel   = "referenda.cancelled"
)

// FeedEvent is one row of the chain event feed: an on-chain event of a block,
// already decoded by the indexer into a JSON payload.
type FeedEvent struct {
	ID         uint64
	BlockHash  string
	EventIndex uint32
	Kind       string
	Account    string
	Data       json.RawMessage
}

// toEvent converts a feed row into a semantic event. It returns false when
// the row carries no change worth reporting (e.g. validator preferences set
// with an unchanged commission).
func toEvent(network string, height uint64, blockHash string, row FeedEvent) (notification.Event, bool, error) {
	var (
		typeCode notification.TypeCode
		data     any
	)

	switch row.Kind {
	case KindValidatorPrefsSet:
		var payload notification.CommissionChange
		if err := decode(row, &payload); err != nil {
			return notification.Event{}, false, err
		}
		if payload.PreviousPerBillion != nil && *payload.PreviousPerBillion == payload.CurrentPerBillion {
			return notification.Event{}, false, nil
		}
		typeCode, data = notification.TypeValidatorCommissionChanged, payload

	case KindIdentitySet, KindIdentityCleared:
		var payload notification.IdentityChange
		if row.Kind == KindIdentitySet {
			if err := decode(row, &payload); err != nil {
				return notification.Event{}, false, err
			}
		}
		typeCode, data = notification.TypeValidatorIdentityChanged, payload

	case KindChilled:
		var payload notification.Chilled
		if len(row.Data) > 0 {
			if err := decode(row, &payload); err != nil {
				return notification.Event{}, false, err
			}
		}
		typeCode, data = notification.TypeValidatorChilled, payload

	case KindBlockAuthored:
		typeCode, data = notification.TypeValidatorBlockAuthorship, notification.BlockAuthorship{BlockHash: blockHash}

	case KindPayoutStakers:
		var payload notification.PayoutStakers
		if err := decode(row, &payload); err != nil {
			return notification.Event{}, false, err
		}
		typeCode, data = notification.TypeValidatorPayoutStakers, payload

	case KindReferendaConfirm, KindReferendaReject, KindReferendaCancel:
		var payload notification.Referendum
		if err := decode(row, &payload); err != nil {
			return notification.Event{}, false, err
		}
		typeCode, data = referendumTypeCodes[row.Kind], payload

	default:
		return notification.Event{}, false, fmt.Errorf("%w: %q", ErrUnsupportedKind, row.Kind)
	}

	account := row.Account
	if typeCode.IsNetworkWide() {
		account = ""
	}

	ev, err := notification.NewEvent(network, typeCode, account, height, data)
	if err != nil {
		return notification.Event{}, false, err
	}
	ev.BlockHash = blockHash
	index := row.EventIndex
	ev.EventIndex = &index

	return ev, true, nil
}

var referendumTypeCodes = map[string]notification.TypeCode{
	KindReferendaConfirm: notification.TypeReferendumConfirmed,
	KindReferendaReject:  notification.TypeReferendumRejected,
	KindReferendaCancel:  notification.TypeReferendumCancelled,
}

func decode(row FeedEvent, v any) error {
	if err := json.Unmarshal(row.Data, v); err != nil {
		return fmt.Errorf("%w: feed event %d (%s): %w", notification.ErrInvalidPayload, row.ID, row.Kind, err)
	}
	return nil
}
