package postgres

import (
	"context"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/rules"
)

const ruleHasValidators = "EXISTS (SELECT 1 FROM notification_rule_validators v WHERE v.rule_id = notification_rules.id)"

// ResolveRules returns the enabled rules of typeCode on network that match
// account: global rules, plus the rules listing account when it is set.
func (c *client) ResolveRules(ctx context.Context, typeCode notification.TypeCode, network, account string) ([]notification.Rule, error) {
	q := c.db.WithContext(ctx).
		Model(&ruleModel{}).
		Where("network = ? AND type_code = ? AND enabled = ?", network, string(typeCode), true)

	if account == "" {
		q = q.Where("NOT " + ruleHasValidators)
	} else {
		q = q.Where(
			"(NOT "+ruleHasValidators+" OR EXISTS (SELECT 1 FROM notification_rule_validators v WHERE v.rule_id = notification_rules.id AND v.account = ?))",
			account,
		)
	}

	var models []ruleModel
	err := q.Preload("Validators").
		Preload("Channels").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]notification.Rule, 0, len(models))
	for _, m := range models {
		result = append(result, m.toRule())
	}

	return result, nil
}

// CreateRule stores r together with its validators and channels and returns
// it with the generated identifiers.
func (c *client) CreateRule(ctx context.Context, r notification.Rule) (notification.Rule, error) {
	m := fromRule(r)
	if err := c.db.WithContext(ctx).Create(&m).Error; err != nil {
		return notification.Rule{}, err
	}
	return m.toRule(), nil
}

// DeleteRule removes a rule owned by userID. Pending notifications of the
// rule are kept.
//
// Returns rules.ErrRuleNotFound when no such rule exists.
func (c *client) DeleteRule(ctx context.Context, userID, ruleID uint64) error {
	db := c.db.WithContext(ctx)

	var rule ruleModel
	res := db.Where("id = ? AND user_id = ?", ruleID, userID).Limit(1).Find(&rule)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return rules.ErrRuleNotFound
	}

	return db.Select("Validators", "Channels").Delete(&rule).Error
}

// ListRules returns every rule of userID ordered by id.
func (c *client) ListRules(ctx context.Context, userID uint64) ([]notification.Rule, error) {
	var models []ruleModel
	err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Validators").
		Preload("Channels").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]notification.Rule, 0, len(models))
	for _, m := range models {
		result = append(result, m.toRule())
	}

	return result, nil
}

// Compile-time assertions to ensure *client satisfies the rule storage interfaces.
var (
	_ notification.RuleStorage = new(client)
	_ rules.RuleStorage        = new(client)
)
