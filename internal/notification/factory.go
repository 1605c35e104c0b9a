package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/valwatch/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrRuleResolution is returned by HandleEvent when the matching rules could
// not be loaded. The event is skipped; processing of other events continues.
var ErrRuleResolution = errors.New("rule resolution failed")

// RuleStorage defines the relational store the Factory depends on.
type RuleStorage interface {
	// ResolveRules returns the enabled rules of the given type code and network
	// that apply to account.
	//
	// Parameters:
	//   - ctx: context for cancellation and timeout control.
	//   - typeCode: type code of the event being handled.
	//   - network: network the event was observed on.
	//   - account: subject account, or "" for network-wide events.
	//
	// Returns:
	//   - Global rules plus the rules listing account when account is set;
	//     only global rules when it is empty.
	//   - An error if the lookup fails.
	ResolveRules(ctx context.Context, typeCode TypeCode, network, account string) ([]Rule, error)

	// InsertNotification persists a notification row. Inserting a row whose
	// (rule channel, event key) pair already exists is a no-op.
	//
	// Returns:
	//   - true if a new row was created, false if it already existed.
	//   - An error if the insert fails.
	InsertNotification(ctx context.Context, n Notification) (bool, error)
}

// Factory turns semantic events into persisted notification rows.
type Factory interface {
	// HandleEvent resolves the rules matching ev and inserts one notification
	// per rule channel. Insert failures for one channel do not prevent the
	// remaining inserts; all of them are joined into the returned error.
	HandleEvent(ctx context.Context, ev Event) error
}

type factory struct {
	storage RuleStorage

	created metric.Int64Counter
}

var _ Factory = (*factory)(nil)

func (f *factory) HandleEvent(ctx context.Context, ev Event) error {
	rules, err := f.storage.ResolveRules(ctx, ev.Type, ev.Network, ev.Account)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRuleResolution, ev.Type, err)
	}

	if len(rules) == 0 {
		return nil
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	eventKey := ev.Key()

	var errs []error
	for _, rule := range rules {
		for _, ch := range rule.Channels {
			n := Notification{
				UserID:        rule.UserID,
				RuleID:        rule.ID,
				RuleChannelID: ch.ID,
				Network:       ev.Network,
				TypeCode:      ev.Type,
				PeriodType:    rule.PeriodType,
				Period:        rule.Period,
				Channel:       ch.Channel,
				Target:        ch.Target,
				Account:       ev.Account,
				BlockHeight:   ev.BlockHeight,
				EventKey:      eventKey,
				Payload:       payload,
			}

			inserted, err := f.storage.InsertNotification(ctx, n)
			if err != nil {
				errs = append(errs, fmt.Errorf("rule %d channel %d: %w", rule.ID, ch.ID, err))
				continue
			}

			if !inserted {
				logger.Debug(ctx, "notification already exists",
					"rule.id", rule.ID,
					"rule_channel.id", ch.ID,
					"event.key", eventKey,
				)
				continue
			}

			f.created.Add(ctx, 1, metric.WithAttributes(
				attribute.String("type_code", string(ev.Type)),
				attribute.String("channel", string(ch.Channel)),
				attribute.String("period_type", string(rule.PeriodType)),
			))
		}
	}

	return errors.Join(errs...)
}

// NewFactory returns a Factory backed by storage.
func NewFactory(storage RuleStorage) *factory {
	meter := otel.Meter("github.com/gabapcia/valwatch/internal/notification")
	created, _ := meter.Int64Counter("valwatch.notifications.created",
		metric.WithDescription("Notification rows created from events"),
	)

	return &factory{
		storage: storage,
		created: created,
	}
}
