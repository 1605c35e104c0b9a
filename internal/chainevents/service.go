// Package chainevents turns the indexed on-chain event feed into semantic
// validator events.
//
// Snapshot diffing cannot see actions that leave no trace in the validator
// snapshot (commission updates, identity changes, chill extrinsics, block
// authorship, payouts and referenda outcomes). The inspector reads those from
// the relational event feed, block by block, and resumes after a restart from
// the last checkpoint it saved.
package chainevents

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BlockHashResolver maps a block height to its canonical hash.
type BlockHashResolver interface {
	BlockHash(ctx context.Context, height uint64) (string, error)
}

// EventFeed reads the indexed events of a block.
type EventFeed interface {
	EventsByBlockHash(ctx context.Context, network, blockHash string) ([]FeedEvent, error)
}

// EventHandler receives every event the inspector emits.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev notification.Event) error
}

// Service inspects finalized blocks.
type Service interface {
	// Inspect processes every block after the last checkpoint up to and
	// including height. Without a checkpoint only height is processed.
	Inspect(ctx context.Context, height uint64) error
}

type config struct {
	checkpoint CheckpointStorage
	maxCatchUp uint64
}

// Option configures the inspector.
type Option func(*config)

// WithCheckpointStorage persists progress in s so Inspect resumes where the
// previous process stopped. Default: no persistence.
func WithCheckpointStorage(s CheckpointStorage) Option {
	return func(c *config) {
		c.checkpoint = s
	}
}

// WithMaxCatchUp limits how many blocks a single Inspect call walks when
// the checkpoint lags behind. Older blocks are skipped. Default: 100.
func WithMaxCatchUp(n uint64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxCatchUp = n
		}
	}
}

type service struct {
	network string

	resolver   BlockHashResolver
	feed       EventFeed
	handler    EventHandler
	checkpoint CheckpointStorage
	maxCatchUp uint64

	tracer trace.Tracer
}

var _ Service = (*service)(nil)

// startHeight returns the first block to inspect for a call targeting height.
func (s *service) startHeight(ctx context.Context, height uint64) (uint64, error) {
	last, err := s.checkpoint.LoadLatestCheckpoint(ctx, s.network)
	if errors.Is(err, ErrNoCheckpointFound) {
		return height, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load checkpoint: %w", err)
	}

	start := last + 1
	if height >= start && height-start >= s.maxCatchUp {
		skipped := height - start - s.maxCatchUp + 1
		logger.Warn(ctx, "checkpoint too far behind, skipping blocks",
			"network", s.network,
			"checkpoint", last,
			"block.height", height,
			"skipped", skipped,
		)
		start += skipped
	}

	return start, nil
}

// inspectBlock emits the events of one block. Malformed feed rows and handler
// failures are logged and skipped.
func (s *service) inspectBlock(ctx context.Context, height uint64) error {
	blockHash, err := s.resolver.BlockHash(ctx, height)
	if err != nil {
		return fmt.Errorf("resolve block hash %d: %w", height, err)
	}

	rows, err := s.feed.EventsByBlockHash(ctx, s.network, blockHash)
	if err != nil {
		return fmt.Errorf("read event feed %s: %w", blockHash, err)
	}

	for _, row := range rows {
		ev, ok, err := toEvent(s.network, height, blockHash, row)
		if err != nil {
			logger.Warn(ctx, "skipping chain event",
				"feed.id", row.ID,
				"feed.kind", row.Kind,
				"error", err,
			)
			continue
		}
		if !ok {
			continue
		}

		if err := s.handler.HandleEvent(ctx, ev); err != nil {
			logger.Error(ctx, "failed to handle event, skipping",
				"event.type", ev.Type,
				"validator.account", ev.Account,
				"block.height", height,
				"error", err,
			)
		}
	}

	return nil
}

func (s *service) Inspect(ctx context.Context, height uint64) error {
	ctx, span := s.tracer.Start(ctx, "chainevents.Inspect", trace.WithAttributes(attribute.Int64("block.height", int64(height))))
	defer span.End()

	start, err := s.startHeight(ctx, height)
	if err != nil {
		return err
	}

	for h := start; h <= height; h++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.inspectBlock(ctx, h); err != nil {
			return err
		}

		if err := s.checkpoint.SaveCheckpoint(ctx, s.network, h); err != nil {
			logger.Error(ctx, "failed to save checkpoint",
				"network", s.network,
				"block.height", h,
				"error", err,
			)
		}
	}

	return nil
}

// New creates an inspector for network.
func New(network string, resolver BlockHashResolver, feed EventFeed, handler EventHandler, opts ...Option) *service {
	cfg := config{
		checkpoint: nopCheckpoint{},
		maxCatchUp: 100,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		network:    network,
		resolver:   resolver,
		feed:       feed,
		handler:    handler,
		checkpoint: cfg.checkpoint,
		maxCatchUp: cfg.maxCatchUp,
		tracer:     otel.Tracer("github.com/gabapcia/valwatch/internal/chainevents"),
	}
}
