package lifecycle

import (
	"context"

	"github.com/nikmy/meowmatch/internal/locks"
	"github.com/nikmy/meowmatch/pkg/errors"
)

var (
	// ErrStaleMatch means the matched requests or slots changed between
	// match and commit. Matching again may succeed.
	ErrStaleMatch = errors.Error("stale match")

	ErrProvisioning      = errors.Error("meeting room provisioning failed")
	ErrInterviewNotFound = errors.Error("interview not found")
	ErrNotParticipant    = errors.Error("owner does not participate in the interview")
	ErrInvalidPair       = errors.Error("invalid matched pair")
)

// IsRetryable reports whether the operation may succeed if repeated.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStaleMatch) ||
		errors.Is(err, locks.ErrNotAcquired) ||
		errors.Is(err, context.DeadlineExceeded)
}

type provisioningError struct {
	cause error
}

func (e provisioningError) Error() string {
	return ErrProvisioning.Error() + ": " + e.cause.Error()
}

func (e provisioningError) Unwrap() []error {
	return []error{ErrProvisioning, e.cause}
}

func stale(format string, args ...any) error {
	return errors.Wrapf(ErrStaleMatch, format, args...)
}
