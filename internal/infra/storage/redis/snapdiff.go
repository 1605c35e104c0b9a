package redis

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/valwatch/internal/pkg/logger"
	"github.com/gabapcia/valwatch/internal/snapdiff"
)

func keySpace(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// AccountIDs returns the members of the active and inactive account id sets
// ("<prefix>:active:account_id_set" and "<prefix>:inactive:account_id_set")
// read in a single pipeline.
func (c *client) AccountIDs(ctx context.Context) ([]string, []string, error) {
	pipe := c.conn.Pipeline()
	activeCmd := pipe.SMembers(ctx, c.key(keySpace(true), "account_id_set"))
	inactiveCmd := pipe.SMembers(ctx, c.key(keySpace(false), "account_id_set"))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, nil, err
	}

	return activeCmd.Val(), inactiveCmd.Val(), nil
}

// FetchSnapshots reads the snapshot blobs of accounts from one key space
// with a single MGET of "<prefix>:<active|inactive>:validator:<account>".
//
// Accounts without a stored blob are absent from the result. A blob that
// cannot be decoded is logged and treated as absent.
func (c *client) FetchSnapshots(ctx context.Context, active bool, accounts []string) (map[string]snapdiff.Snapshot, error) {
	snapshots := make(map[string]snapdiff.Snapshot, len(accounts))
	if len(accounts) == 0 {
		return snapshots, nil
	}

	space := keySpace(active)

	keys := make([]string, len(accounts))
	for i, account := range accounts {
		keys[i] = c.key(space, "validator", account)
	}

	values, err := c.conn.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var snapshot snapdiff.Snapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
			logger.Warn(ctx, "invalid validator snapshot in cache",
				"validator.account", accounts[i],
				"key", keys[i],
				"error", err,
			)
			continue
		}

		if snapshot.AccountID == "" {
			snapshot.AccountID = accounts[i]
		}

		snapshots[accounts[i]] = snapshot
	}

	return snapshots, nil
}

// Compile-time assertion to ensure *client satisfies the snapdiff.SnapshotStorage interface.
var _ snapdiff.SnapshotStorage = new(client)
