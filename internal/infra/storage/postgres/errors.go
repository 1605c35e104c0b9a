package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// retryableCodes lists the SQLSTATE codes of failures that may succeed when
// the statement is executed again.
var retryableCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"08000": {}, // connection_exception
	"08001": {}, // sqlclient_unable_to_establish_sqlconnection
	"08003": {}, // connection_does_not_exist
	"08006": {}, // connection_failure
	"53000": {}, // insufficient_resources
	"53300": {}, // too_many_connections
	"57014": {}, // query_canceled
	"57P03": {}, // cannot_connect_now
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	_, ok := retryableCodes[pgErr.Code]
	return ok
}
