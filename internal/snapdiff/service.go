// Package snapdiff detects semantic changes in the validator set.
//
// The engine keeps an in-memory mirror of the last validator snapshots it
// has seen. On every new finalized height it reads the current snapshots from
// the shared cache, compares them against the mirror, updates the mirror and
// hands the resulting events to an EventHandler.
package snapdiff

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/pkg/logger"
	"github.com/gabapcia/valwatch/internal/pkg/types"

	"github.com/alitto/pond/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrStaleHeight is returned by Observe when the height is not greater
	// than the last observed one.
	ErrStaleHeight = errors.New("stale block height")

	// ErrNotLoaded is returned by Observe when Load has not completed.
	ErrNotLoaded = errors.New("snapshot mirror not loaded")
)

// SnapshotStorage reads validator snapshots from the shared cache.
type SnapshotStorage interface {
	// AccountIDs returns the accounts currently listed in the active and
	// inactive key spaces.
	AccountIDs(ctx context.Context) (active, inactive []string, err error)

	// FetchSnapshots returns the snapshots of the given accounts from the
	// active or inactive key space. Accounts without a stored snapshot are
	// absent from the result.
	FetchSnapshots(ctx context.Context, active bool, accounts []string) (map[string]Snapshot, error)
}

// EventHandler receives every event the engine emits.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev notification.Event) error
}

// AuditStorage records an append-only history of emitted events.
type AuditStorage interface {
	SaveAuditEvent(ctx context.Context, ev notification.Event) error
}

// Result summarizes one Observe call.
type Result struct {
	Height     uint64
	Discovered []string
	Removed    []string
	Skipped    []string
	Events     []notification.Event
}

// Service is the diff engine.
type Service interface {
	// Load fills the mirror from the shared cache without emitting events.
	// It must be called before Observe and may be called again to rebuild
	// the mirror from scratch.
	Load(ctx context.Context, height uint64) error

	// Observe diffs the current cache contents against the mirror at the
	// given finalized height and dispatches the resulting events.
	//
	// The mirror is updated before the handler runs, so a failing handler
	// never causes the same transition to be reported twice.
	Observe(ctx context.Context, height uint64) (Result, error)

	// Close stops the dispatch workers.
	Close()
}

type nopAuditStorage struct{}

func (nopAuditStorage) SaveAuditEvent(context.Context, notification.Event) error { return nil }

type config struct {
	batchSize int
	workers   int
	audit     AuditStorage
}

// Option configures the engine.
type Option func(*config)

// WithBatchSize sets how many snapshots are requested from the cache per call.
// Default: 500.
func WithBatchSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithWorkers sets how many accounts have their events dispatched concurrently.
// Default: 8.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithAuditStorage records every emitted event in a. Audit failures are
// logged and otherwise ignored.
func WithAuditStorage(a AuditStorage) Option {
	return func(c *config) {
		c.audit = a
	}
}

type service struct {
	network string

	storage SnapshotStorage
	handler EventHandler
	audit   AuditStorage
	pool    pond.Pool

	batchSize int

	// mirror is owned by the goroutine calling Load and Observe.
	mirror     map[string]Snapshot
	lastHeight uint64
	loaded     bool

	tracer  trace.Tracer
	emitted metric.Int64Counter
}

var _ Service = (*service)(nil)

// fetch reads the snapshots of every listed account, in batches. An account
// listed in both key spaces is read from the active one.
func (s *service) fetch(ctx context.Context, active, inactive []string) (map[string]Snapshot, error) {
	snapshots := make(map[string]Snapshot, len(active)+len(inactive))

	activeSet := types.NewSet(active...)
	inactive = slices.DeleteFunc(slices.Clone(inactive), activeSet.Has)

	for _, part := range []struct {
		active   bool
		accounts []string
	}{
		{active: true, accounts: active},
		{active: false, accounts: inactive},
	} {
		for batch := range slices.Chunk(part.accounts, s.batchSize) {
			found, err := s.storage.FetchSnapshots(ctx, part.active, batch)
			if err != nil {
				return nil, fmt.Errorf("fetch snapshots: %w", err)
			}
			maps.Copy(snapshots, found)
		}
	}

	return snapshots, nil
}

func (s *service) Load(ctx context.Context, height uint64) error {
	ctx, span := s.tracer.Start(ctx, "snapdiff.Load", trace.WithAttributes(attribute.Int64("block.height", int64(height))))
	defer span.End()

	active, inactive, err := s.storage.AccountIDs(ctx)
	if err != nil {
		return fmt.Errorf("read account ids: %w", err)
	}

	snapshots, err := s.fetch(ctx, active, inactive)
	if err != nil {
		return err
	}

	s.mirror = snapshots
	s.lastHeight = height
	s.loaded = true

	logger.Info(ctx, "validator mirror loaded",
		"network", s.network,
		"block.height", height,
		"validators", len(snapshots),
	)

	return nil
}

// apply diffs current against the mirror and updates it. listed holds every
// account present in the id sets; listed accounts missing from current keep
// their mirror entry and are reported as skipped.
func (s *service) apply(ctx context.Context, height uint64, listed types.Set[string], current map[string]Snapshot) (Result, map[string][]notification.Event) {
	var (
		result    = Result{Height: height}
		byAccount = make(map[string][]notification.Event)
	)

	mirrored := types.NewSet(slices.Collect(maps.Keys(s.mirror))...)

	for _, account := range sortedSet(mirrored.Difference(listed)) {
		last := s.mirror[account]
		delete(s.mirror, account)

		ev, err := notification.NewEvent(s.network, notification.TypeValidatorRemoved, account, height, stakeSummary(last))
		if err != nil {
			logger.Error(ctx, "failed to build removal event", "validator.account", account, "error", err)
			continue
		}

		result.Removed = append(result.Removed, account)
		byAccount[account] = []notification.Event{ev}
	}

	for _, account := range sortedSet(listed) {
		snapshot, ok := current[account]
		if !ok {
			logger.Warn(ctx, "validator snapshot missing from cache, keeping previous state",
				"validator.account", account,
				"block.height", height,
			)
			result.Skipped = append(result.Skipped, account)
			continue
		}

		if snapshot.AccountID == "" {
			snapshot.AccountID = account
		}

		last, known := s.mirror[account]
		s.mirror[account] = snapshot

		if !known {
			ev, err := notification.NewEvent(s.network, notification.TypeValidatorDiscovered, account, height, stakeSummary(snapshot))
			if err != nil {
				logger.Error(ctx, "failed to build discovery event", "validator.account", account, "error", err)
				continue
			}

			result.Discovered = append(result.Discovered, account)
			byAccount[account] = []notification.Event{ev}
			continue
		}

		events, err := diffSnapshots(s.network, height, last, snapshot)
		if err != nil {
			logger.Error(ctx, "failed to build change events", "validator.account", account, "error", err)
		}

		if len(events) > 0 {
			byAccount[account] = events
		}
	}

	for _, account := range slices.Sorted(maps.Keys(byAccount)) {
		result.Events = append(result.Events, byAccount[account]...)
	}

	return result, byAccount
}

// handle records and forwards one event. Failures are logged; the event is
// skipped and processing continues.
func (s *service) handle(ctx context.Context, ev notification.Event) {
	if err := s.audit.SaveAuditEvent(ctx, ev); err != nil {
		logger.Warn(ctx, "failed to save audit event",
			"event.type", ev.Type,
			"validator.account", ev.Account,
			"error", err,
		)
	}

	s.emitted.Add(ctx, 1, metric.WithAttributes(attribute.String("type_code", string(ev.Type))))

	if err := s.handler.HandleEvent(ctx, ev); err != nil {
		logger.Error(ctx, "failed to handle event, skipping",
			"event.type", ev.Type,
			"validator.account", ev.Account,
			"block.height", ev.BlockHeight,
			"error", err,
		)
	}
}

// dispatch hands the events to the handler. Accounts are processed
// concurrently; the events of one account keep their order.
func (s *service) dispatch(ctx context.Context, byAccount map[string][]notification.Event) error {
	if len(byAccount) == 0 {
		return nil
	}

	group := s.pool.NewGroupContext(ctx)
	for _, events := range byAccount {
		group.Submit(func() {
			for _, ev := range events {
				s.handle(ctx, ev)
			}
		})
	}

	return group.Wait()
}

func (s *service) Observe(ctx context.Context, height uint64) (Result, error) {
	if !s.loaded {
		return Result{}, ErrNotLoaded
	}

	if height <= s.lastHeight {
		return Result{}, fmt.Errorf("%w: %d <= %d", ErrStaleHeight, height, s.lastHeight)
	}

	ctx, span := s.tracer.Start(ctx, "snapdiff.Observe", trace.WithAttributes(attribute.Int64("block.height", int64(height))))
	defer span.End()

	active, inactive, err := s.storage.AccountIDs(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read account ids: %w", err)
	}

	current, err := s.fetch(ctx, active, inactive)
	if err != nil {
		return Result{}, err
	}

	listed := types.NewSet(active...)
	listed.Add(inactive...)

	result, byAccount := s.apply(ctx, height, listed, current)
	s.lastHeight = height

	if err := s.dispatch(ctx, byAccount); err != nil {
		return result, fmt.Errorf("dispatch events: %w", err)
	}

	logger.Debug(ctx, "validator set observed",
		"network", s.network,
		"block.height", height,
		"events", len(result.Events),
		"discovered", len(result.Discovered),
		"removed", len(result.Removed),
	)

	return result, nil
}

func (s *service) Close() {
	s.pool.StopAndWait()
}

func sortedSet(set types.Set[string]) []string {
	return types.Sorted(set)
}

// New creates a diff engine for network that reads snapshots from storage
// and forwards events to handler.
func New(network string, storage SnapshotStorage, handler EventHandler, opts ...Option) *service {
	cfg := config{
		batchSize: 500,
		workers:   8,
		audit:     nopAuditStorage{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter("github.com/gabapcia/valwatch/internal/snapdiff")
	emitted, _ := meter.Int64Counter("valwatch.events.emitted",
		metric.WithDescription("Validator change events emitted by the diff engine"),
	)

	return &service{
		network:   network,
		storage:   storage,
		handler:   handler,
		audit:     cfg.audit,
		pool:      pond.NewPool(cfg.workers),
		batchSize: cfg.batchSize,
		mirror:    make(map[string]Snapshot),
		tracer:    otel.Tracer("github.com/gabapcia/valwatch/internal/snapdiff"),
		emitted:   emitted,
	}
}
