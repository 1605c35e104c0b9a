package chainevents

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no checkpoint
// has been saved for a network yet.
var ErrNoCheckpointFound = errors.New("no checkpoint found for network")

// CheckpointStorage persists and retrieves the last block height whose chain
// events were inspected, per network.
type CheckpointStorage interface {
	// SaveCheckpoint records height as the last inspected block of network.
	// Saving the same height more than once must be harmless.
	SaveCheckpoint(ctx context.Context, network string, height uint64) error

	// LoadLatestCheckpoint returns the last inspected block of network.
	//
	// If no checkpoint exists for the network, LoadLatestCheckpoint should
	// return ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, network string) (uint64, error)
}

// nopCheckpoint is a no-op implementation of CheckpointStorage.
// It performs no persistence and always returns ErrNoCheckpointFound, so
// every Inspect call only looks at the height it was given.
type nopCheckpoint struct{}

// SaveCheckpoint is a no-op.
func (nopCheckpoint) SaveCheckpoint(context.Context, string, uint64) error {
	return nil
}

// LoadLatestCheckpoint always returns ErrNoCheckpointFound, as no state is persisted.
func (nopCheckpoint) LoadLatestCheckpoint(context.Context, string) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
