package txmanager

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes that indicate a transient conflict between
// concurrent transactions.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

// IsRetryable reports whether err is a transient conflict worth retrying:
// a serialization failure, a deadlock, or a unique-constraint violation
// caused by a concurrent insert (e.g. two requests deriving the same
// booking number before either commits).
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case codeSerializationFailure, codeDeadlockDetected, codeUniqueViolation:
		return true
	}
	return false
}
