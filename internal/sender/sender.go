// Package sender delivers notifications through their channel provider.
//
// The sender renders the notification payload with the renderer family that
// fits the channel and hands the result to the provider registered for the
// channel. Provider failures are reported with typed errors so callers can
// tell transient failures from permanent ones.
package sender

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/pkg/logger"
	"github.com/gabapcia/valwatch/internal/render"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	// ErrTransientProvider is returned when the provider could not be reached
	// or asked to retry later.
	ErrTransientProvider = errors.New("transient provider failure")

	// ErrInvalidTarget is returned when the provider refused the target
	// (unknown chat, expired device token, malformed address or number).
	ErrInvalidTarget = errors.New("invalid delivery target")

	// ErrProviderRejected is returned when the provider refused the message
	// for any other reason.
	ErrProviderRejected = errors.New("provider rejected message")

	// ErrChannelNotConfigured is returned when no provider is registered for
	// the notification channel.
	ErrChannelNotConfigured = errors.New("channel not configured")

	// ErrNetworkNotFound is returned by NetworkStorage for unknown networks.
	ErrNetworkNotFound = errors.New("network not found")
)

// StatusError classifies a failed HTTP provider response: 429 and 5xx are
// transient, everything else is a rejection.
func StatusError(status int, detail string) error {
	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d: %s", ErrTransientProvider, status, detail)
	}
	return fmt.Errorf("%w: status %d: %s", ErrProviderRejected, status, detail)
}

// Message is a rendered message addressed to one channel target.
type Message struct {
	Target  string
	Subject string
	Body    string
	HTML    bool
}

// Provider delivers messages on one channel.
type Provider interface {
	// Deliver sends msg and returns the provider message id.
	Deliver(ctx context.Context, msg Message) (string, error)
}

// NetworkStorage returns the display metadata of a network.
type NetworkStorage interface {
	// Network returns ErrNetworkNotFound for unknown networks.
	Network(ctx context.Context, name string) (notification.Network, error)
}

// Service delivers notifications.
type Service interface {
	// Send renders and delivers a single notification.
	Send(ctx context.Context, n notification.Notification) (string, error)

	// SendGrouped renders the notifications, in the given order, as one
	// summary and delivers it to target. Rows whose payload cannot be decoded
	// are left out of the summary and reported in GroupDelivery.Skipped,
	// also when an error is returned.
	SendGrouped(ctx context.Context, network string, typeCode notification.TypeCode, channel notification.Channel, target string, ns []notification.Notification) (GroupDelivery, error)
}

// GroupDelivery reports how a grouped send used its rows. Included lists the
// rows rendered into the summary, Skipped the rows left out because their
// payload is unreadable.
type GroupDelivery struct {
	MessageID string
	Included  []uint64
	Skipped   []uint64
}

type service struct {
	renderer  render.Renderer
	networks  NetworkStorage
	providers map[notification.Channel]Provider

	sent   metric.Int64Counter
	failed metric.Int64Counter
}

var _ Service = (*service)(nil)

// family returns the single-message template family of channel.
func family(channel notification.Channel) render.Family {
	if channel == notification.ChannelTelegram {
		return render.FamilyChat
	}
	return render.FamilyPlain
}

func (s *service) deliver(ctx context.Context, channel notification.Channel, typeCode notification.TypeCode, provider Provider, msg Message) (string, error) {
	attrs := metric.WithAttributes(
		attribute.String("channel", string(channel)),
		attribute.String("type_code", string(typeCode)),
	)

	id, err := provider.Deliver(ctx, msg)
	if err != nil {
		s.failed.Add(ctx, 1, attrs)
		return "", err
	}

	s.sent.Add(ctx, 1, attrs)
	return id, nil
}

func (s *service) Send(ctx context.Context, n notification.Notification) (string, error) {
	provider, ok := s.providers[n.Channel]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrChannelNotConfigured, n.Channel)
	}

	network, err := s.networks.Network(ctx, n.Network)
	if err != nil {
		return "", fmt.Errorf("load network %s: %w", n.Network, err)
	}

	ev, err := n.Event()
	if err != nil {
		return "", err
	}

	content, err := s.renderer.RenderSingle(network, ev, family(n.Channel))
	if err != nil {
		return "", err
	}

	return s.deliver(ctx, n.Channel, n.TypeCode, provider, Message{
		Target:  n.Target,
		Subject: content.Subject,
		Body:    content.Body,
		HTML:    content.HTML,
	})
}

func (s *service) SendGrouped(ctx context.Context, networkName string, typeCode notification.TypeCode, channel notification.Channel, target string, ns []notification.Notification) (GroupDelivery, error) {
	var res GroupDelivery

	provider, ok := s.providers[channel]
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrChannelNotConfigured, channel)
	}

	network, err := s.networks.Network(ctx, networkName)
	if err != nil {
		return res, fmt.Errorf("load network %s: %w", networkName, err)
	}

	events := make([]notification.Event, 0, len(ns))
	for _, n := range ns {
		ev, err := readable(network, n)
		if err != nil {
			logger.Error(ctx, "leaving unreadable notification out of summary",
				"notification.id", n.ID,
				"error", err,
			)
			res.Skipped = append(res.Skipped, n.ID)
			continue
		}

		events = append(events, ev)
		res.Included = append(res.Included, n.ID)
	}

	if len(events) == 0 {
		return res, fmt.Errorf("%w: no readable notification in group", notification.ErrInvalidPayload)
	}

	content, err := s.renderer.RenderGroup(network, typeCode, events)
	if err != nil {
		return res, err
	}

	res.MessageID, err = s.deliver(ctx, channel, typeCode, provider, Message{
		Target:  target,
		Subject: content.Subject,
		Body:    content.Body,
		HTML:    content.HTML,
	})
	return res, err
}

// readable decodes the event of n and checks its payload renders.
func readable(network notification.Network, n notification.Notification) (notification.Event, error) {
	ev, err := n.Event()
	if err != nil {
		return notification.Event{}, err
	}

	if _, err := render.NewContext(network, ev); errors.Is(err, notification.ErrInvalidPayload) {
		return notification.Event{}, fmt.Errorf("notification %d: %w", n.ID, err)
	}

	return ev, nil
}

// New creates a sender. providers is the explicit channel lookup table;
// channels absent from it fail with ErrChannelNotConfigured.
func New(renderer render.Renderer, networks NetworkStorage, providers map[notification.Channel]Provider) *service {
	meter := otel.Meter("github.com/gabapcia/valwatch/internal/sender")
	sent, _ := meter.Int64Counter("valwatch.notifications.sent",
		metric.WithDescription("Messages delivered by channel providers"),
	)
	failed, _ := meter.Int64Counter("valwatch.notifications.failed",
		metric.WithDescription("Messages channel providers failed to deliver"),
	)

	return &service{
		renderer:  renderer,
		networks:  networks,
		providers: providers,
		sent:      sent,
		failed:    failed,
	}
}
