package snapdiff

import (
	"errors"
	"slices"

	"github.com/gabapcia/valwatch/internal/notification"

	"github.com/shopspring/decimal"
)

// eventBuilder accumulates the events of one account at one height.
type eventBuilder struct {
	network string
	account string
	height  uint64

	events []notification.Event
	errs   []error
}

func (b *eventBuilder) add(typeCode notification.TypeCode, data any) {
	ev, err := notification.NewEvent(b.network, typeCode, b.account, b.height, data)
	if err != nil {
		b.errs = append(b.errs, err)
		return
	}
	b.events = append(b.events, ev)
}

func (b *eventBuilder) result() ([]notification.Event, error) {
	return b.events, errors.Join(b.errs...)
}

func stakeSummary(s Snapshot) notification.StakeSummary {
	return notification.StakeSummary{
		IsActive:       s.IsActive,
		SelfStake:      s.SelfStake,
		TotalStake:     s.TotalStake,
		NominatorCount: len(s.Nominations),
	}
}

// diffSnapshots compares two states of the same validator and returns the
// semantic events between them, in a fixed order. Every tracked field is
// checked independently, so a snapshot differing in N tracked fields yields N
// groups of events. Stake totals are informational and never produce events.
func diffSnapshots(network string, height uint64, last, current Snapshot) ([]notification.Event, error) {
	b := &eventBuilder{network: network, account: current.AccountID, height: height}

	if last.ActiveNextSession != current.ActiveNextSession {
		if current.ActiveNextSession {
			b.add(notification.TypeValidatorActiveNextSession, stakeSummary(current))
		} else {
			b.add(notification.TypeValidatorInactiveNextSession, stakeSummary(current))
		}
	}

	if last.IsActive != current.IsActive {
		if current.IsActive {
			b.add(notification.TypeValidatorActive, stakeSummary(current))
		} else {
			b.add(notification.TypeValidatorInactive, stakeSummary(current))
		}
	}

	if last.IsParaValidator != current.IsParaValidator {
		if current.IsParaValidator {
			b.add(notification.TypeValidatorStartedParaValidating, nil)
		} else {
			b.add(notification.TypeValidatorStoppedParaValidating, nil)
		}
	}

	if !last.NextSessionKeys.Equal(current.NextSessionKeys) {
		b.add(notification.TypeValidatorSessionKeysChanged, notification.SessionKeysChange{
			Previous: last.NextSessionKeys.String(),
			Current:  current.NextSessionKeys.String(),
		})
	}

	diffNominations(b, last.Nominations, current.Nominations)

	if sameCandidate(last.CandidateRecordID, current.CandidateRecordID) {
		diffRanking(b, last, current)
	}

	return b.result()
}

func diffNominations(b *eventBuilder, last, current []Nomination) {
	lastByNominator := make(map[string]decimal.Decimal, len(last))
	for _, n := range last {
		lastByNominator[n.Nominator] = n.Amount
	}

	currentByNominator := make(map[string]decimal.Decimal, len(current))
	for _, n := range current {
		currentByNominator[n.Nominator] = n.Amount
	}

	count := len(currentByNominator)

	for _, nominator := range sortedKeys(currentByNominator) {
		amount := currentByNominator[nominator]

		previous, existed := lastByNominator[nominator]
		switch {
		case !existed:
			b.add(notification.TypeValidatorNewNomination, notification.NominationChange{
				Nominator:      nominator,
				Amount:         amount,
				NominatorCount: count,
			})
		case !previous.Equal(amount):
			b.add(notification.TypeValidatorNominationAmount, notification.NominationChange{
				Nominator:      nominator,
				Amount:         amount,
				PreviousAmount: &previous,
				NominatorCount: count,
			})
		}
	}

	for _, nominator := range sortedKeys(lastByNominator) {
		if _, ok := currentByNominator[nominator]; ok {
			continue
		}

		b.add(notification.TypeValidatorLostNomination, notification.NominationChange{
			Nominator:      nominator,
			Amount:         lastByNominator[nominator],
			NominatorCount: count,
		})
	}
}

// diffRanking reports ranking field changes. A field that becomes absent is
// never reported; a field that appears is reported once, without a previous value.
func diffRanking(b *eventBuilder, last, current Snapshot) {
	if current.Rank != nil && !equalPtr(last.Rank, current.Rank) {
		b.add(notification.TypeRankingRankChange, notification.RankChange{
			Previous: last.Rank,
			Current:  *current.Rank,
		})
	}

	if current.Location != nil && !equalPtr(last.Location, current.Location) {
		b.add(notification.TypeRankingLocationChange, notification.LocationChange{
			Previous: last.Location,
			Current:  *current.Location,
		})
	}

	if current.IsValid != nil && !equalPtr(last.IsValid, current.IsValid) {
		b.add(notification.TypeRankingValidityChange, notification.ValidityChange{
			Previous: last.IsValid,
			Current:  *current.IsValid,
		})
	}

	if current.BinaryVersion != nil && !equalPtr(last.BinaryVersion, current.BinaryVersion) {
		b.add(notification.TypeRankingBinaryVersionChange, notification.BinaryVersionChange{
			Previous: last.BinaryVersion,
			Current:  *current.BinaryVersion,
		})
	}
}

func sameCandidate(last, current *uint64) bool {
	return equalPtr(last, current)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
