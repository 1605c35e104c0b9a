// Package generator drives event generation for one network.
//
// It follows the finalized height published by the indexer and, for every
// new height, runs the diff engine over the validator snapshots and the
// chain event inspector over the finalized blocks.
package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/valwatch/internal/pkg/logger"
	"github.com/gabapcia/valwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/valwatch/internal/snapdiff"
)

var (
	// ErrNoFinalizedHeight is returned by HeightSource.LatestFinalizedHeight
	// when the indexer has not published any height yet.
	ErrNoFinalizedHeight = errors.New("no finalized height available")

	// ErrSubscriptionClosed is returned by Run when the height stream ends
	// while the context is still alive.
	ErrSubscriptionClosed = errors.New("finalized height subscription closed")
)

// HeightSource exposes the finalized height of the indexed chain.
type HeightSource interface {
	// LatestFinalizedHeight returns the last published finalized height, or
	// ErrNoFinalizedHeight if none was published yet.
	LatestFinalizedHeight(ctx context.Context) (uint64, error)

	// SubscribeFinalizedHeights streams every newly published finalized
	// height until ctx is done.
	SubscribeFinalizedHeights(ctx context.Context) (<-chan uint64, error)
}

// DiffEngine is the subset of snapdiff.Service the generator drives.
type DiffEngine interface {
	Load(ctx context.Context, height uint64) error
	Observe(ctx context.Context, height uint64) (snapdiff.Result, error)
}

// BlockInspector is the subset of chainevents.Service the generator drives.
type BlockInspector interface {
	Inspect(ctx context.Context, height uint64) error
}

// Service runs the generation loop.
type Service interface {
	// Run blocks until ctx is done or an unrecoverable error occurs. It is
	// meant to be restarted by a supervisor on error.
	Run(ctx context.Context) error
}

type service struct {
	network   string
	heights   HeightSource
	engine    DiffEngine
	inspector BlockInspector
}

var _ Service = (*service)(nil)

// initialHeight returns the latest finalized height, waiting for the first
// publication when the indexer has not written one yet.
func (s *service) initialHeight(ctx context.Context, stream <-chan uint64) (uint64, bool, error) {
	height, err := s.heights.LatestFinalizedHeight(ctx)
	if err == nil {
		return height, true, nil
	}
	if !errors.Is(err, ErrNoFinalizedHeight) {
		return 0, false, fmt.Errorf("read finalized height: %w", err)
	}

	logger.Info(ctx, "waiting for the first finalized height", "network", s.network)

	height, ok := chflow.Receive(ctx, stream)
	return height, ok, nil
}

// process handles a single new finalized height.
func (s *service) process(ctx context.Context, height uint64) error {
	result, err := s.engine.Observe(ctx, height)
	if errors.Is(err, snapdiff.ErrStaleHeight) {
		logger.Debug(ctx, "skipping stale finalized height", "block.height", height)
		return nil
	}
	if err != nil {
		return fmt.Errorf("observe height %d: %w", height, err)
	}

	if err := s.inspector.Inspect(ctx, height); err != nil {
		return fmt.Errorf("inspect height %d: %w", height, err)
	}

	logger.Info(ctx, "finalized height processed",
		"block.height", height,
		"events", len(result.Events),
	)

	return nil
}

func (s *service) Run(ctx context.Context) error {
	ctx = logger.Derive(ctx, "network", s.network)

	stream, err := s.heights.SubscribeFinalizedHeights(ctx)
	if err != nil {
		return fmt.Errorf("subscribe finalized heights: %w", err)
	}

	height, ok, err := s.initialHeight(ctx, stream)
	if err != nil {
		return err
	}
	if !ok {
		return s.closed(ctx)
	}

	if err := s.engine.Load(ctx, height); err != nil {
		return fmt.Errorf("load validator mirror: %w", err)
	}

	if err := s.inspector.Inspect(ctx, height); err != nil {
		return fmt.Errorf("inspect height %d: %w", height, err)
	}

	for {
		height, ok := chflow.Receive(ctx, stream)
		if !ok {
			return s.closed(ctx)
		}

		if err := s.process(ctx, height); err != nil {
			return err
		}
	}
}

// closed reports why the height stream stopped.
func (s *service) closed(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	return ErrSubscriptionClosed
}

// New creates a generator for network.
func New(network string, heights HeightSource, engine DiffEngine, inspector BlockInspector) *service {
	return &service{
		network:   network,
		heights:   heights,
		engine:    engine,
		inspector: inspector,
	}
}
