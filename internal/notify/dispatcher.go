package notify

import (
	"context"
	"time"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

const defaultDispatchTimeout = 5 * time.Second

func NewDispatcher(n Notifier, timeout time.Duration, log logger.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	return &Dispatcher{
		notifier: n,
		timeout:  timeout,
		log:      log.With("notify"),
	}
}

// Dispatcher sends events after the fact. Errors are logged and dropped,
// and caller cancellation does not cut delivery short.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	log      logger.Logger
}

func (d *Dispatcher) Dispatch(ctx context.Context, events ...Event) {
	if d == nil || d.notifier == nil || len(events) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	err := d.notifier.Notify(ctx, events...)
	if err != nil {
		d.log.Error(errors.WrapFailf(err, "deliver %d %s event(s)", len(events), events[0].Kind))
	}
}
