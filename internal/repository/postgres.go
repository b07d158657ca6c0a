package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres class 23505, unique_violation. Every account table carries a
// unique index on email, so this is the only constraint we map.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
