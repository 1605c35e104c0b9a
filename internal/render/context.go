package render

import (
	"fmt"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/pkg/ss58"
	"github.com/gabapcia/valwatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// Context is the flat set of values a template is executed with.
type Context map[string]any

var titles = map[notification.TypeCode]string{
	notification.TypeValidatorDiscovered:            "New validator",
	notification.TypeValidatorRemoved:               "Validator removed",
	notification.TypeValidatorActive:                "Validator active",
	notification.TypeValidatorInactive:              "Validator inactive",
	notification.TypeValidatorActiveNextSession:     "Validator active next session",
	notification.TypeValidatorInactiveNextSession:   "Validator inactive next session",
	notification.TypeValidatorStartedParaValidating: "Started para-validating",
	notification.TypeValidatorStoppedParaValidating: "Stopped para-validating",
	notification.TypeValidatorSessionKeysChanged:    "Session keys changed",
	notification.TypeValidatorNewNomination:         "New nomination",
	notification.TypeValidatorLostNomination:        "Lost nomination",
	notification.TypeValidatorNominationAmount:      "Nomination amount changed",
	notification.TypeValidatorCommissionChanged:     "Commission changed",
	notification.TypeValidatorIdentityChanged:       "Identity changed",
	notification.TypeValidatorChilled:               "Validator chilled",
	notification.TypeValidatorBlockAuthorship:       "Block authored",
	notification.TypeValidatorPayoutStakers:         "Staking payout",
	notification.TypeRankingRankChange:              "Rank changed",
	notification.TypeRankingLocationChange:          "Location changed",
	notification.TypeRankingValidityChange:          "Validity changed",
	notification.TypeRankingBinaryVersionChange:     "Node version changed",
	notification.TypeReferendumConfirmed:            "Referendum confirmed",
	notification.TypeReferendumRejected:             "Referendum rejected",
	notification.TypeReferendumCancelled:            "Referendum cancelled",
}

// Title returns the short human title of typeCode.
func Title(typeCode notification.TypeCode) string {
	if title, ok := titles[typeCode]; ok {
		return title
	}
	return string(typeCode)
}

// formatter formats chain values with the metadata of one network.
type formatter struct {
	network notification.Network
}

// amount renders a planck amount as a fixed-point token amount, e.g.
// "1.5000 DOT".
func (f formatter) amount(v decimal.Decimal) string {
	s := v.Shift(-int32(f.network.TokenDecimals)).StringFixed(4)
	if f.network.TokenTicker == "" {
		return s
	}
	return s + " " + f.network.TokenTicker
}

// address renders a hex account id as an SS58 address of the network.
// Values that are not hex account ids are returned unchanged.
func (f formatter) address(account string) string {
	pub, err := types.HexBytesFromString(account)
	if err != nil {
		return account
	}

	addr, err := ss58.Encode(pub, f.network.SS58Prefix)
	if err != nil {
		return account
	}

	return addr
}

// perBillionPercent renders a commission in parts per billion as a percentage.
func perBillionPercent(v uint32) string {
	return decimal.New(int64(v), -7).StringFixed(2) + "%"
}

func baseContext(network notification.Network, typeCode notification.TypeCode) Context {
	return Context{
		"chain":     network.DisplayName,
		"network":   network.Name,
		"ticker":    network.TokenTicker,
		"type_code": string(typeCode),
		"title":     Title(typeCode),
	}
}

// NewContext builds the template context of ev: network metadata, the
// subject validator and the fields of the type-specific payload.
func NewContext(network notification.Network, ev notification.Event) (Context, error) {
	fill, ok := fillers[ev.Type]
	if !ok {
		return nil, fmt.Errorf("%w: no context for %s", ErrNotImplemented, ev.Type)
	}

	f := formatter{network: network}

	ctx := baseContext(network, ev.Type)
	ctx["block_height"] = ev.BlockHeight
	if ev.BlockHash != "" {
		ctx["block_hash"] = ev.BlockHash
		ctx["block_hash_short"] = ss58.Condense(ev.BlockHash)
	}
	if ev.Account != "" {
		addr := f.address(ev.Account)
		ctx["address"] = addr
		ctx["address_short"] = ss58.Condense(addr)
	}

	if err := fill(ev, f, ctx); err != nil {
		return nil, err
	}

	return ctx, nil
}

type filler func(ev notification.Event, f formatter, ctx Context) error

var fillers = map[notification.TypeCode]filler{
	notification.TypeValidatorDiscovered:            fillStake,
	notification.TypeValidatorRemoved:               fillStake,
	notification.TypeValidatorActive:                fillStake,
	notification.TypeValidatorInactive:              fillStake,
	notification.TypeValidatorActiveNextSession:     fillStake,
	notification.TypeValidatorInactiveNextSession:   fillStake,
	notification.TypeValidatorStartedParaValidating: fillNothing,
	notification.TypeValidatorStoppedParaValidating: fillNothing,
	notification.TypeValidatorSessionKeysChanged:    fillSessionKeys,
	notification.TypeValidatorNewNomination:         fillNomination,
	notification.TypeValidatorLostNomination:        fillNomination,
	notification.TypeValidatorNominationAmount:      fillNomination,
	notification.TypeValidatorCommissionChanged:     fillCommission,
	notification.TypeValidatorIdentityChanged:       fillIdentity,
	notification.TypeValidatorChilled:               fillNothing,
	notification.TypeValidatorBlockAuthorship:       fillNothing,
	notification.TypeValidatorPayoutStakers:         fillPayout,
	notification.TypeRankingRankChange:              fillRank,
	notification.TypeRankingLocationChange:          fillLocation,
	notification.TypeRankingValidityChange:          fillValidity,
	notification.TypeRankingBinaryVersionChange:     fillBinaryVersion,
	notification.TypeReferendumConfirmed:            fillReferendum,
	notification.TypeReferendumRejected:             fillReferendum,
	notification.TypeReferendumCancelled:            fillReferendum,
}

func fillNothing(notification.Event, formatter, Context) error { return nil }

func fillStake(ev notification.Event, f formatter, ctx Context) error {
	var p notification.StakeSummary
	if err := ev.Decode(&p); err != nil {
		return err
	}

	ctx["is_active"] = p.IsActive
	ctx["self_stake"] = f.amount(p.SelfStake)
	ctx["total_stake"] = f.amount(p.TotalStake)
	ctx["nominator_count"] = p.NominatorCount
	return nil
}

func fillSessionKeys(ev notification.Event, _ formatter, ctx Context) error {
	var p notification.SessionKeysChange
	if err := ev.Decode(&p); err != nil {
		return err
	}

	ctx["previous"] = p.Previous
	ctx["previous_short"] = ss58.Condense(p.Previous)
	ctx["current"] = p.Current
	ctx["current_short"] = ss58.Condense(p.Current)
	return nil
}

func fillNomination(ev notification.Event, f formatter, ctx Context) error {
	var p notification.NominationChange
	if err := ev.Decode(&p); err != nil {
		return err
	}

	nominator := f.address(p.Nominator)
	ctx["nominator"] = nominator
	ctx["nominator_short"] = ss58.Condense(nominator)
	ctx["amount"] = f.amount(p.Amount)
	ctx["nominator_count"] = p.NominatorCount
	ctx["has_previous"] = p.PreviousAmount != nil
	if p.PreviousAmount != nil {
		ctx["previous_amount"] = f.amount(*p.PreviousAmount)
	}
	return nil
}

func fillCommission(ev notification.Event, _ formatter, ctx Context) error {
	var p notification.CommissionChange
	if err := ev.Decode(&p); err != nil {
		return err
	}

	ctx["current"] = perBillionPercent(p.CurrentPerBillion)
	ctx["has_previous"] = p.PreviousPerBillion != nil
	if p.PreviousPerBillion != nil {
		ctx["previous"] = perBillionPercent(*p.PreviousPerBillion)
	}
	return nil
}

func fillIdentity(ev notification.Event, _ formatter, ctx Context) error {
	var p notification.IdentityChange
	if err := ev.Decode(&p); err != nil {
		return err
	}

	if p.Display != nil {
		ctx["display"] = *p.Display
	}
	return nil
}

func fillPayout(ev notification.Event, f formatter, ctx Context) error {
	var p notification.PayoutStakers
	if err := ev.Decode(&p); err != nil {
		return err
	}

	ctx["era"] = p.Era
	ctx["amount"] = f.amount(p.Amount)
	if p.Caller != "" {
		caller := f.address(p.Caller)
		ctx["caller"] = caller
		ctx["caller_short"] = ss58.Condense(caller)
	}
	return nil
}

func fillRank(ev notification.Event, _ formatter, ctx Context) error {
	var p notification.RankChange
	if err := ev.Decode(&p); err != nil {
		return err
	}

	ctx["current"] = p.Current
	ctx["has_previous"] = p.Previous != nil
	if p.Previous != nil {
		ctx["previous"] = *p.Previous
	}
	return nil
}

func fillLocation(ev notification.Event, _ formatter, ctx Context) error {
	var p notification.LocationChange
	if err := ev.Decode(&p); err != nil {
		return err
	}

	ctx["current"] = p.Current
	ctx["has_previous"] = p.Previous != nil
	if p.Previous != nil {
		ctx["previous"] = *p.Previous
	}
	return nil
}

func fillValidity(ev notification.Event, _ formatter, ctx Context) error {
	var p notification.ValidityChange
	if err := ev.Decode(&p); err != nil {
		return err
	}

	ctx["current"] = p.Current
	ctx["has_previous"] = p.Previous != nil
	if p.Previous != nil {
		ctx["previous"] = *p.Previous
	}
	return nil
}

func fillBinaryVersion(ev notification.Event, _ formatter, ctx Context) error {
	var p notification.BinaryVersionChange
	if err := ev.Decode(&p); err != nil {
		return err
	}

	ctx["current"] = p.Current
	ctx["has_previous"] = p.Previous != nil
	if p.Previous != nil {
		ctx["previous"] = *p.Previous
	}
	return nil
}

func fillReferendum(ev notification.Event, _ formatter, ctx Context) error {
	var p notification.Referendum
	if err := ev.Decode(&p); err != nil {
		return err
	}

	ctx["referendum_id"] = p.ReferendumID
	if p.Track != "" {
		ctx["track"] = p.Track
	}
	return nil
}
