// Package rules manages the notification rules users subscribe with.
package rules

import (
	"context"

	"github.com/gabapcia/valwatch/internal/notification"
)

// Service defines the interface for creating, removing and listing the
// notification rules of a user.
//
// Implementations are responsible for validating input and delegating
// persistence to the configured RuleStorage.
type Service interface {
	// AddRule creates a rule.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - in: the rule description; validated before persistence.
	//
	// Returns:
	//   - The stored rule with its identifiers.
	//   - An error if validation fails or the rule cannot be stored.
	AddRule(ctx context.Context, in RuleInput) (notification.Rule, error)

	// RemoveRule deletes a rule owned by userID. Notifications already
	// created from it are still delivered.
	//
	// Returns ErrRuleNotFound if the user has no such rule.
	RemoveRule(ctx context.Context, userID, ruleID uint64) error

	// ListRules returns every rule owned by userID.
	ListRules(ctx context.Context, userID uint64) ([]notification.Rule, error)
}

type service struct {
	storage RuleStorage
}

var _ Service = (*service)(nil)

// New creates a rule service backed by storage.
func New(storage RuleStorage) *service {
	return &service{
		storage: storage,
	}
}
