package rules

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/pkg/ss58"
	"github.com/gabapcia/valwatch/internal/pkg/types"
	"github.com/gabapcia/valwatch/internal/pkg/validator"
)

var (
	// ErrRuleNotFound is returned when a rule does not exist or belongs to
	// another user.
	ErrRuleNotFound = errors.New("notification rule not found")

	// ErrInvalidAccount is returned when a validator account is neither a
	// 32-byte hex account id nor an SS58 address.
	ErrInvalidAccount = errors.New("invalid validator account")

	// ErrInvalidPeriod is returned when the period multiplier does not fit
	// the period type.
	ErrInvalidPeriod = errors.New("invalid period")
)

func init() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(validator.RegisterStringValidation("type_code", func(s string) bool {
		return notification.TypeCode(s).Valid()
	}))
	must(validator.RegisterStringValidation("channel", func(s string) bool {
		return notification.Channel(s).Valid()
	}))
	must(validator.RegisterStringValidation("period_type", func(s string) bool {
		return notification.PeriodType(s).Valid()
	}))
}

// ChannelInput is a delivery endpoint of a new rule.
type ChannelInput struct {
	Channel notification.Channel `validate:"channel"`
	Target  string               `validate:"required"`
}

// RuleInput describes a new notification rule.
//
// Validators may hold hex account ids or SS58 addresses; leaving it empty
// creates a global rule. Period is the every-N multiplier of hour and day
// rules and defaults to 1.
type RuleInput struct {
	UserID     uint64                  `validate:"required"`
	Network    string                  `validate:"required"`
	TypeCode   notification.TypeCode   `validate:"type_code"`
	Validators []string                `validate:"dive,required"`
	PeriodType notification.PeriodType `validate:"period_type"`
	Period     uint16
	Channels   []ChannelInput `validate:"required,min=1,dive"`
}

// RuleStorage defines the persistence interface for notification rules.
type RuleStorage interface {
	// CreateRule stores a rule with its validators and channels and returns
	// it with the generated identifiers.
	CreateRule(ctx context.Context, r notification.Rule) (notification.Rule, error)

	// DeleteRule removes the rule ruleID owned by userID.
	//
	// Should return ErrRuleNotFound if there is no such rule.
	DeleteRule(ctx context.Context, userID, ruleID uint64) error

	// ListRules returns every rule owned by userID.
	ListRules(ctx context.Context, userID uint64) ([]notification.Rule, error)
}

// maxPeriod is the largest multiplier accepted per period type.
var maxPeriod = map[notification.PeriodType]uint16{
	notification.PeriodHour: 24,
	notification.PeriodDay:  366,
}

// normalizeAccount converts an SS58 address or a hex account id into the
// lowercase 0x-prefixed hex form used as validator key.
func normalizeAccount(account string) (string, error) {
	if strings.HasPrefix(account, "0x") || strings.HasPrefix(account, "0X") {
		raw, err := types.HexBytesFromString(account)
		if err != nil || len(raw) != 32 {
			return "", fmt.Errorf("%w: %q", ErrInvalidAccount, account)
		}
		return raw.String(), nil
	}

	pub, _, err := ss58.Decode(account)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidAccount, account, err)
	}

	return types.HexBytes(pub).String(), nil
}

// buildRule validates in and converts it into a rule ready for persistence.
func buildRule(in RuleInput) (notification.Rule, error) {
	if err := validator.Validate(in); err != nil {
		return notification.Rule{}, err
	}

	period := in.Period
	switch {
	case in.PeriodType == notification.PeriodImmediate:
		period = 1
	case period == 0:
		period = 1
	case period > maxPeriod[in.PeriodType]:
		return notification.Rule{}, fmt.Errorf("%w: %d exceeds %d for %s rules", ErrInvalidPeriod, period, maxPeriod[in.PeriodType], in.PeriodType)
	}

	rule := notification.Rule{
		UserID:     in.UserID,
		Network:    in.Network,
		TypeCode:   in.TypeCode,
		PeriodType: in.PeriodType,
		Period:     period,
		Enabled:    true,
	}

	seen := types.NewSet[string]()
	for _, account := range in.Validators {
		normalized, err := normalizeAccount(account)
		if err != nil {
			return notification.Rule{}, err
		}
		if seen.Has(normalized) {
			continue
		}
		seen.Add(normalized)
		rule.Validators = append(rule.Validators, normalized)
	}

	for _, ch := range in.Channels {
		rule.Channels = append(rule.Channels, notification.RuleChannel{
			Channel: ch.Channel,
			Target:  ch.Target,
		})
	}

	return rule, nil
}

// AddRule validates in and stores the resulting rule.
func (s *service) AddRule(ctx context.Context, in RuleInput) (notification.Rule, error) {
	rule, err := buildRule(in)
	if err != nil {
		return notification.Rule{}, err
	}

	if rule.TypeCode.IsNetworkWide() && len(rule.Validators) > 0 {
		return notification.Rule{}, fmt.Errorf("%w: %s events have no validator", ErrInvalidAccount, rule.TypeCode)
	}

	return s.storage.CreateRule(ctx, rule)
}

// RemoveRule deletes the rule ruleID of userID.
func (s *service) RemoveRule(ctx context.Context, userID, ruleID uint64) error {
	return s.storage.DeleteRule(ctx, userID, ruleID)
}

// ListRules returns the rules of userID.
func (s *service) ListRules(ctx context.Context, userID uint64) ([]notification.Rule, error) {
	return s.storage.ListRules(ctx, userID)
}
