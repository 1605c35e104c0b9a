// Package scheduler pulls due notifications from storage and hands them to
// the sender.
//
// Immediate notifications are polled on a short fixed interval and sent one
// by one. Hourly and daily notifications are collected at period boundaries
// driven by cron, grouped per recipient and sent as one summary per group.
// A row is marked sent only after the sender succeeds, so any failure leaves
// it to be offered again on the next wake.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/pkg/logger"
	"github.com/gabapcia/valwatch/internal/sender"

	"github.com/alitto/pond/v2"
	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// NotificationStorage reads due notifications and settles delivered ones.
type NotificationStorage interface {
	// QueryDue returns the unsent rows of periodType created before the
	// given instant, ordered by block height then id.
	QueryDue(ctx context.Context, periodType notification.PeriodType, before time.Time) ([]notification.Notification, error)

	// MarkSent stamps the rows with the provider message id.
	MarkSent(ctx context.Context, ids []uint64, messageID string, sentAt time.Time) error
}

// Sender delivers rendered notifications.
type Sender interface {
	Send(ctx context.Context, n notification.Notification) (string, error)
	SendGrouped(ctx context.Context, network string, typeCode notification.TypeCode, channel notification.Channel, target string, ns []notification.Notification) (sender.GroupDelivery, error)
}

// Service runs the delivery loops.
type Service interface {
	// RunImmediate polls immediate notifications until ctx is done.
	RunImmediate(ctx context.Context) error

	// RunPeriodic delivers the notifications of periodType that are due at
	// the given boundary.
	RunPeriodic(ctx context.Context, periodType notification.PeriodType, boundary time.Time) error

	// Start runs the immediate loop and the periodic cron jobs until ctx is
	// done.
	Start(ctx context.Context) error

	// Close waits for in-flight grouped sends and releases the worker pool.
	Close()
}

type config struct {
	interval time.Duration
	hourSpec string
	daySpec  string
	workers  int
	limits   map[notification.Channel]int
	now      func() time.Time
}

// Option configures the scheduler.
type Option func(*config)

// WithInterval sets the immediate polling interval. Default: 1s.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithHourSpec sets the cron spec of the hour boundary job. Default: "0 * * * *".
func WithHourSpec(spec string) Option {
	return func(c *config) {
		c.hourSpec = spec
	}
}

// WithDaySpec sets the cron spec of the day boundary job. Default: "0 0 * * *".
func WithDaySpec(spec string) Option {
	return func(c *config) {
		c.daySpec = spec
	}
}

// WithWorkers bounds the number of groups sent concurrently. Default: 8.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithGroupLimit caps how many rows of channel go into one summary. Larger
// groups are sent as several summaries in chronological order. Defaults:
// telegram 40, apns 20, fcm 20, sms 10, email 500.
func WithGroupLimit(channel notification.Channel, n int) Option {
	return func(c *config) {
		c.limits[channel] = n
	}
}

type service struct {
	storage NotificationStorage
	sender  Sender
	pool    pond.Pool

	interval time.Duration
	hourSpec string
	daySpec  string
	limits   map[notification.Channel]int
	now      func() time.Time

	tracer    trace.Tracer
	delivered metric.Int64Counter
}

var _ Service = (*service)(nil)

// settle marks ids as sent. A failure here means the rows are offered again
// and delivered twice, which is logged and tolerated.
func (s *service) settle(ctx context.Context, ids []uint64, messageID string) {
	if err := s.storage.MarkSent(ctx, ids, messageID, s.now()); err != nil {
		logger.Error(ctx, "failed to mark notifications as sent",
			"notification.ids", ids,
			"message.id", messageID,
			"error", err,
		)
	}
}

// outcome logs a failed send and reports whether the rows must be settled
// anyway. Invalid targets and unreadable payloads never recover, so their
// rows are settled without a message id; every other failure leaves the rows
// for the next wake.
func outcome(ctx context.Context, err error) bool {
	switch {
	case errors.Is(err, sender.ErrInvalidTarget):
		logger.Warn(ctx, "dropping notification for invalid target", "error", err)
		return true
	case errors.Is(err, notification.ErrInvalidPayload):
		logger.Error(ctx, "dropping notification with unreadable payload", "error", err)
		return true
	case errors.Is(err, sender.ErrTransientProvider):
		logger.Warn(ctx, "transient send failure, will retry", "error", err)
	default:
		logger.Error(ctx, "failed to send notification", "error", err)
	}
	return false
}

func (s *service) sendOne(ctx context.Context, n notification.Notification) {
	ctx = logger.Derive(ctx,
		"notification.id", n.ID,
		"channel", n.Channel,
		"type_code", n.TypeCode,
	)

	messageID, err := s.sender.Send(ctx, n)
	if err != nil && !outcome(ctx, err) {
		return
	}

	s.settle(ctx, []uint64{n.ID}, messageID)
	s.delivered.Add(ctx, 1, metric.WithAttributes(attribute.String("period_type", string(notification.PeriodImmediate))))
}

// pollImmediate sends every unsent immediate notification once.
func (s *service) pollImmediate(ctx context.Context) error {
	due, err := s.storage.QueryDue(ctx, notification.PeriodImmediate, s.now())
	if err != nil {
		return fmt.Errorf("query immediate notifications: %w", err)
	}

	for _, n := range due {
		if ctx.Err() != nil {
			return nil
		}
		s.sendOne(ctx, n)
	}

	return nil
}

func (s *service) RunImmediate(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.pollImmediate(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *service) sendGroup(ctx context.Context, periodType notification.PeriodType, key groupKey, ns []notification.Notification) {
	ctx = logger.Derive(ctx,
		"user.id", key.userID,
		"channel", key.channel,
		"network", key.network,
		"type_code", key.typeCode,
		"notifications", len(ns),
	)

	res, err := s.sender.SendGrouped(ctx, key.network, key.typeCode, key.channel, key.target, ns)
	if len(res.Skipped) > 0 {
		logger.Error(ctx, "dropping notifications with unreadable payload", "notification.ids", res.Skipped)
		s.settle(ctx, res.Skipped, "")
	}

	if err != nil && !outcome(ctx, err) {
		return
	}

	if len(res.Included) == 0 {
		return
	}

	s.settle(ctx, res.Included, res.MessageID)
	s.delivered.Add(ctx, int64(len(res.Included)), metric.WithAttributes(attribute.String("period_type", string(periodType))))
}

func (s *service) RunPeriodic(ctx context.Context, periodType notification.PeriodType, boundary time.Time) error {
	ctx, span := s.tracer.Start(ctx, "scheduler.RunPeriodic", trace.WithAttributes(
		attribute.String("period_type", string(periodType)),
		attribute.String("boundary", boundary.Format(time.RFC3339)),
	))
	defer span.End()

	due, err := s.storage.QueryDue(ctx, periodType, boundary)
	if err != nil {
		return fmt.Errorf("query %s notifications: %w", periodType, err)
	}

	groups := split(group(eligible(due, periodType, boundary)), s.limits)
	if len(groups) == 0 {
		return nil
	}

	logger.Info(ctx, "delivering periodic notifications",
		"period_type", periodType,
		"boundary", boundary,
		"groups", len(groups),
	)

	g := s.pool.NewGroupContext(ctx)
	for _, grp := range groups {
		g.Submit(func() {
			s.sendGroup(ctx, periodType, grp.key, grp.notifications)
		})
	}

	return g.Wait()
}

// job adapts RunPeriodic to a cron job fired at a boundary.
func (s *service) job(ctx context.Context, periodType notification.PeriodType) cron.FuncJob {
	return func() {
		boundary := s.now().UTC().Truncate(time.Minute)
		if err := s.RunPeriodic(ctx, periodType, boundary); err != nil {
			logger.Error(ctx, "periodic delivery failed",
				"period_type", periodType,
				"error", err,
			)
		}
	}
}

func (s *service) Start(ctx context.Context) error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLogger{ctx: ctx}),
		cron.WithChain(cron.Recover(cronLogger{ctx: ctx}), cron.SkipIfStillRunning(cronLogger{ctx: ctx})),
	)

	for periodType, spec := range map[notification.PeriodType]string{
		notification.PeriodHour: s.hourSpec,
		notification.PeriodDay:  s.daySpec,
	} {
		if _, err := c.AddJob(spec, s.job(ctx, periodType)); err != nil {
			return fmt.Errorf("schedule %s job %q: %w", periodType, spec, err)
		}
	}

	c.Start()
	defer func() {
		<-c.Stop().Done()
	}()

	return s.RunImmediate(ctx)
}

func (s *service) Close() {
	s.pool.StopAndWait()
}

// New creates a scheduler delivering the rows of storage through sender.
func New(storage NotificationStorage, sender Sender, opts ...Option) *service {
	cfg := config{
		interval: time.Second,
		hourSpec: "0 * * * *",
		daySpec:  "0 0 * * *",
		workers:  8,
		limits: map[notification.Channel]int{
			notification.ChannelTelegram: 40,
			notification.ChannelAPNS:     20,
			notification.ChannelFCM:      20,
			notification.ChannelSMS:      10,
			notification.ChannelEmail:    500,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter("github.com/gabapcia/valwatch/internal/scheduler")
	delivered, _ := meter.Int64Counter("valwatch.notifications.delivered",
		metric.WithDescription("Notification rows settled by the scheduler"),
	)

	return &service{
		storage:   storage,
		sender:    sender,
		pool:      pond.NewPool(cfg.workers),
		interval:  cfg.interval,
		hourSpec:  cfg.hourSpec,
		daySpec:   cfg.daySpec,
		limits:    cfg.limits,
		now:       cfg.now,
		tracer:    otel.Tracer("github.com/gabapcia/valwatch/internal/scheduler"),
		delivered: delivered,
	}
}
