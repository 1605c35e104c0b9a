// Package substrate queries Substrate nodes over JSON-RPC.
package substrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/valwatch/internal/chainevents"
	"github.com/gabapcia/valwatch/internal/pkg/transport/jsonrpc"
)

// ErrBlockNotFound is returned when the node does not know a block at the
// requested height.
var ErrBlockNotFound = errors.New("block not found")

type client struct {
	conn jsonrpc.Client
}

// BlockHash returns the canonical hash of the block at height using
// chain_getBlockHash.
func (c *client) BlockHash(ctx context.Context, height uint64) (string, error) {
	hash, err := jsonrpc.Call[*string](ctx, c.conn, "chain_getBlockHash", height)
	if err != nil {
		return "", err
	}

	if hash == nil || *hash == "" {
		return "", fmt.Errorf("%w: height %d", ErrBlockNotFound, height)
	}

	return *hash, nil
}

// Ensure client implements the chainevents.BlockHashResolver interface at compile time.
var _ chainevents.BlockHashResolver = (*client)(nil)

// NewClient creates a Substrate client over conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
