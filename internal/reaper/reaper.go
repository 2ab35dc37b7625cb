// Package reaper retires whatever time has made obsolete: expired
// requests, past slots nobody took and interviews which never completed.
// A sweep is idempotent, so running it twice in a row changes nothing.
package reaper

import (
	"context"
	"time"

	"github.com/nikmy/meowmatch/internal/lifecycle"
	"github.com/nikmy/meowmatch/internal/locks"
	"github.com/nikmy/meowmatch/internal/metrics"
	"github.com/nikmy/meowmatch/internal/notify"
	"github.com/nikmy/meowmatch/internal/repo"
	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/pkg/clock"
	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

type expirer interface {
	Expire(ctx context.Context, interviewID string) error
}

func New(
	cfg Config,
	store repo.Client,
	locker locks.Locker,
	interviews expirer,
	events *notify.Dispatcher,
	clk clock.Clock,
	m *metrics.Metrics,
	log logger.Logger,
) *Reaper {
	return &Reaper{
		cfg:        cfg.withDefaults(),
		store:      store,
		locker:     locker,
		interviews: interviews,
		events:     events,
		clock:      clk,
		metrics:    m,
		log:        log.With("reaper"),
	}
}

type Reaper struct {
	cfg        Config
	store      repo.Client
	locker     locks.Locker
	interviews expirer
	events     *notify.Dispatcher
	clock      clock.Clock
	metrics    *metrics.Metrics
	log        logger.Logger
}

type Report struct {
	ExpiredRequests   int
	ConsumedSlots     int
	ExpiredInterviews int
}

func (r Report) Empty() bool {
	return r == Report{}
}

// Sweep does one pass. Items failing to retire are reported in the error
// and left for the next pass; the rest are processed anyway.
func (r *Reaper) Sweep(ctx context.Context) (Report, error) {
	now := r.clock.Now()

	var (
		report Report
		errs   []error
		err    error
	)

	report.ExpiredRequests, err = r.expireRequests(ctx, now)
	errs = append(errs, err)

	report.ExpiredInterviews, err = r.expireInterviews(ctx, now)
	errs = append(errs, err)

	report.ConsumedSlots, err = r.consumeSlots(ctx, now)
	errs = append(errs, err)

	if !report.Empty() {
		r.log.Infof(
			"sweep: %d requests expired, %d interviews expired, %d slots consumed",
			report.ExpiredRequests, report.ExpiredInterviews, report.ConsumedSlots,
		)
	}

	return report, errors.Join(errs...)
}

func (r *Reaper) expireRequests(ctx context.Context, now time.Time) (int, error) {
	expired, err := r.store.Requests().FindExpired(ctx, now)
	if err != nil {
		return 0, errors.WrapFail(err, "find expired requests")
	}

	var (
		count int
		errs  []error
	)
	for _, req := range expired {
		done, err := r.expireRequest(ctx, req.ID, now)
		if err != nil {
			errs = append(errs, errors.WrapFailf(err, "expire request %s", req.ID))
			continue
		}
		if !done {
			continue
		}

		count++
		r.metrics.Reaped.WithLabelValues("request").Inc()
		r.events.Dispatch(ctx, notify.Event{
			Kind:      notify.KindExpired,
			OwnerID:   req.OwnerID,
			RequestID: req.ID,
			At:        now,
		})
	}

	return count, errors.Join(errs...)
}

func (r *Reaper) expireRequest(ctx context.Context, id string, now time.Time) (bool, error) {
	unlock, err := locks.LockAll(ctx, r.locker, locks.RequestKey(id))
	if err != nil {
		return false, err
	}
	defer unlock()

	var done bool
	err = r.store.RunTxn(ctx, func(ctx context.Context) error {
		req, err := r.store.Requests().Get(ctx, id)
		if err != nil {
			return err
		}
		if req == nil || !req.Active || req.ExpiresAt.After(now) {
			return nil
		}

		req.Active = false
		done = true
		return r.store.Requests().Save(ctx, *req)
	})
	return done, err
}

func (r *Reaper) expireInterviews(ctx context.Context, now time.Time) (int, error) {
	stale, err := r.store.Interviews().FindStartedBefore(ctx, now.Add(-*r.cfg.StaleAfter))
	if err != nil {
		return 0, errors.WrapFail(err, "find stale interviews")
	}

	var (
		count int
		errs  []error
	)
	for _, iv := range stale {
		err := r.interviews.Expire(ctx, iv.ID)
		switch {
		case err == nil:
			count++
			r.metrics.Reaped.WithLabelValues("interview").Inc()
		case errors.Is(err, lifecycle.ErrInterviewNotFound):
		default:
			errs = append(errs, errors.WrapFailf(err, "expire interview %s", iv.ID))
		}
	}

	return count, errors.Join(errs...)
}

func (r *Reaper) consumeSlots(ctx context.Context, now time.Time) (int, error) {
	past, err := r.store.Slots().FindPastAvailable(ctx, now)
	if err != nil {
		return 0, errors.WrapFail(err, "find past slots")
	}

	var (
		count int
		errs  []error
	)
	for _, slot := range past {
		done, err := r.consumeSlot(ctx, slot, now)
		if err != nil {
			errs = append(errs, errors.WrapFailf(err, "consume slot %s", slot.Key()))
			continue
		}
		if done {
			count++
			r.metrics.Reaped.WithLabelValues("slot").Inc()
		}
	}

	return count, errors.Join(errs...)
}

func (r *Reaper) consumeSlot(ctx context.Context, slot models.TimeSlot, now time.Time) (bool, error) {
	unlock, err := locks.LockAll(ctx, r.locker, locks.SlotKey(slot.Key()))
	if err != nil {
		return false, err
	}
	defer unlock()

	var done bool
	err = r.store.RunTxn(ctx, func(ctx context.Context) error {
		current, err := r.store.Slots().Get(ctx, slot.RequestID, slot.TimePoint)
		if err != nil {
			return err
		}
		if current == nil || current.Status != models.SlotAvailable || current.TimePoint.After(now) {
			return nil
		}

		current.Status = models.SlotConsumed
		done = true
		return r.store.Slots().SaveTimeSlots(ctx, []models.TimeSlot{*current})
	})
	return done, err
}
