package scheduler

import "github.com/nikmy/meowmatch/pkg/errors"

var (
	ErrValidation      = errors.Error("invalid request")
	ErrRequestNotFound = errors.Error("request not found")

	// ErrTryAgain means every commit attempt lost a race. The request
	// is kept and stays open for matching.
	ErrTryAgain = errors.Error("matching contended, try again later")
)

func invalid(format string, args ...any) error {
	return errors.Wrapf(ErrValidation, format, args...)
}
