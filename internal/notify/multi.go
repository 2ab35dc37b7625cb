package notify

import (
	"context"

	"github.com/nikmy/meowmatch/pkg/errors"
)

// Multi fans events out to every notifier. One failing notifier does not
// prevent delivery through the others.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, events ...Event) error {
	errs := make([]error, 0, len(m))
	for _, n := range m {
		errs = append(errs, n.Notify(ctx, events...))
	}
	return errors.Join(errs...)
}
