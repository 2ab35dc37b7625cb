// Package scheduler accepts interview requests and keeps them matched:
// every change which may open a new match triggers on-demand matching.
package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nikmy/meowmatch/internal/lifecycle"
	"github.com/nikmy/meowmatch/internal/locks"
	"github.com/nikmy/meowmatch/internal/repo"
	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/pkg/clock"
	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
	"github.com/nikmy/meowmatch/pkg/timeslots"
)

type matcher interface {
	Match(ctx context.Context, req models.InterviewRequest) (*models.MatchedPair, error)
}

type interviewLifecycle interface {
	Commit(ctx context.Context, pair models.MatchedPair) (*models.Interview, error)
	Reject(ctx context.Context, interviewID string, rejectingOwnerID string) error
	Complete(ctx context.Context, interviewID string) error
}

func New(
	cfg Config,
	store repo.Client,
	locker locks.Locker,
	engine matcher,
	lc interviewLifecycle,
	clk clock.Clock,
	log logger.Logger,
) *Service {
	return &Service{
		cfg:       cfg.withDefaults(),
		store:     store,
		locker:    locker,
		engine:    engine,
		lifecycle: lc,
		clock:     clk,
		log:       log.With("scheduler"),
	}
}

type Service struct {
	cfg       Config
	store     repo.Client
	locker    locks.Locker
	engine    matcher
	lifecycle interviewLifecycle
	clock     clock.Clock
	log       logger.Logger
}

// Result is the request state after an operation together with
// interviews the operation managed to schedule.
type Result struct {
	Request   models.InterviewRequest
	Scheduled []models.Interview
}

// Submit persists a new request with its slots and matches it right away.
// A request is reused until it has as many sessions as desired, so one
// submission may schedule several interviews.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Result, error) {
	now := s.clock.Now()

	err := s.validate(&sub, now)
	if err != nil {
		return nil, err
	}

	req := models.InterviewRequest{
		ID:                  uuid.NewString(),
		OwnerID:             sub.OwnerID,
		Role:                sub.Role,
		SpecializationID:    sub.SpecializationID,
		MasteryLevel:        sub.MasteryLevel,
		AverageScore:        sub.AverageScore,
		DesiredSessionCount: sub.DesiredSessionCount,
		AvailableTimePoints: sub.AvailableTimePoints,
		Blacklist:           sub.Blacklist,
		Active:              true,
		ExpiresAt:           sub.ExpiresAt,
		CreatedAt:           now,
	}

	err = s.store.RunTxn(ctx, func(ctx context.Context) error {
		err := s.store.Requests().Create(ctx, req)
		if err != nil {
			return errors.WrapFail(err, "create request")
		}
		return errors.WrapFail(
			s.store.Slots().SaveTimeSlots(ctx, models.NewSlots(req.ID, req.AvailableTimePoints)),
			"create time slots",
		)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("request %s submitted by %s as %s", req.ID, req.OwnerID, req.Role)
	return s.matchAll(ctx, req.ID)
}

// Activate resumes a paused request and matches it.
func (s *Service) Activate(ctx context.Context, requestID string) (*Result, error) {
	err := s.modify(ctx, requestID, func(ctx context.Context, req *models.InterviewRequest) error {
		now := s.clock.Now()
		if !req.ExpiresAt.After(now) {
			return invalid("request %s has expired", requestID)
		}
		if req.DesiredSessionCount <= 0 {
			return invalid("request %s has all sessions scheduled", requestID)
		}

		req.Active = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.matchAll(ctx, requestID)
}

// Pause takes the request out of matching. Scheduled interviews stay.
func (s *Service) Pause(ctx context.Context, requestID string) (*models.InterviewRequest, error) {
	var paused models.InterviewRequest
	err := s.modify(ctx, requestID, func(_ context.Context, req *models.InterviewRequest) error {
		req.Active = false
		paused = *req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &paused, nil
}

// UpdateAvailability replaces the set of offered time points. Upcoming
// points assigned to interviews can't be withdrawn, past assigned points
// are kept as history whether offered again or not.
func (s *Service) UpdateAvailability(ctx context.Context, requestID string, points []time.Time) (*Result, error) {
	err := s.modify(ctx, requestID, func(ctx context.Context, req *models.InterviewRequest) error {
		now := s.clock.Now()

		normalized := timeslots.Normalize(points)
		if len(normalized) == 0 {
			return invalid("no available time points")
		}

		for _, p := range req.AssignedTimePoints {
			if !p.After(now) {
				normalized = timeslots.Union(normalized, []time.Time{p})
				continue
			}
			if !timeslots.Contains(normalized, p) {
				return invalid("time point %s is assigned to an interview", p.Format(time.RFC3339))
			}
		}

		added := timeslots.Exclude(normalized, req.AvailableTimePoints)
		if len(added) > 0 && !added[0].After(now) {
			return invalid("time point %s is in the past", added[0].Format(time.RFC3339))
		}
		removed := timeslots.Exclude(req.AvailableTimePoints, normalized)

		err := s.store.Slots().DeleteTimeSlots(ctx, req.ID, removed)
		if err != nil {
			return errors.WrapFail(err, "delete withdrawn time slots")
		}
		err = s.store.Slots().SaveTimeSlots(ctx, models.NewSlots(req.ID, added))
		if err != nil {
			return errors.WrapFail(err, "save new time slots")
		}

		req.AvailableTimePoints = normalized
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.matchAll(ctx, requestID)
}

func (s *Service) GetRequest(ctx context.Context, requestID string) (*models.InterviewRequest, error) {
	req, err := s.store.Requests().Get(ctx, requestID)
	if err != nil {
		return nil, errors.WrapFailf(err, "get request %s", requestID)
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}

func (s *Service) GetInterview(ctx context.Context, interviewID string) (*models.Interview, error) {
	iv, err := s.store.Interviews().Get(ctx, interviewID)
	if err != nil {
		return nil, errors.WrapFailf(err, "get interview %s", interviewID)
	}
	if iv == nil {
		return nil, lifecycle.ErrInterviewNotFound
	}
	return iv, nil
}

func (s *Service) ListInterviews(ctx context.Context, ownerID string) ([]models.Interview, error) {
	ivs, err := s.store.Interviews().FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.WrapFailf(err, "find interviews of %s", ownerID)
	}
	return ivs, nil
}

func (s *Service) Reject(ctx context.Context, interviewID string, ownerID string) error {
	return s.lifecycle.Reject(ctx, interviewID, ownerID)
}

func (s *Service) Complete(ctx context.Context, interviewID string) error {
	return s.lifecycle.Complete(ctx, interviewID)
}

// modify applies change to the request under its lock in a transaction.
// Commits lock the request too, so a change never interleaves with one.
func (s *Service) modify(
	ctx context.Context,
	requestID string,
	change func(ctx context.Context, req *models.InterviewRequest) error,
) error {
	unlock, err := locks.LockAll(ctx, s.locker, locks.RequestKey(requestID))
	if err != nil {
		return err
	}
	defer unlock()

	return s.store.RunTxn(ctx, func(ctx context.Context) error {
		req, err := s.store.Requests().Get(ctx, requestID)
		if err != nil {
			return errors.WrapFailf(err, "get request %s", requestID)
		}
		if req == nil {
			return ErrRequestNotFound
		}

		err = change(ctx, req)
		if err != nil {
			return err
		}

		return errors.WrapFailf(s.store.Requests().Save(ctx, *req), "save request %s", requestID)
	})
}

// matchAll commits matches for the request while it wants more sessions
// and a compatible counterpart exists. A commit lost to a concurrent one
// is retried with a fresh match a bounded number of times.
func (s *Service) matchAll(ctx context.Context, requestID string) (*Result, error) {
	var (
		res   Result
		stale int
	)

	for {
		req, err := s.store.Requests().Get(ctx, requestID)
		if err != nil {
			return nil, errors.WrapFailf(err, "get request %s", requestID)
		}
		if req == nil {
			return nil, ErrRequestNotFound
		}
		res.Request = *req

		pair, err := s.engine.Match(ctx, *req)
		if err != nil {
			return &res, errors.WrapFail(err, "match request")
		}
		if pair == nil {
			return &res, nil
		}

		iv, err := s.lifecycle.Commit(ctx, *pair)
		if err == nil {
			res.Scheduled = append(res.Scheduled, *iv)
			stale = 0
			continue
		}
		if !errors.Is(err, lifecycle.ErrStaleMatch) {
			return &res, errors.WrapFail(err, "commit match")
		}

		stale++
		s.log.Debugf("stale match for %s, attempt %d: %s", requestID, stale, err)
		if stale >= s.cfg.MaxCommitAttempts {
			return &res, errors.Wrapf(ErrTryAgain, "%d commit attempts failed", stale)
		}
	}
}
