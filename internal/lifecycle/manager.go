// Package lifecycle moves a matched pair of requests through the interview
// state machine:
//
//	OPEN --commit--> MATCHED --reject/expire--> OPEN
//	                   |  \--complete--> (slots stay assigned)
//	                   \-- last session --> SATISFIED
//
// Every transition takes exclusive locks on the requests and slots it
// touches in ascending key order, then mutates the store in a single
// transaction. A started transition is not interrupted by the caller:
// it either commits or rolls back completely.
package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nikmy/meowmatch/internal/locks"
	"github.com/nikmy/meowmatch/internal/metrics"
	"github.com/nikmy/meowmatch/internal/notify"
	"github.com/nikmy/meowmatch/internal/repo"
	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/internal/rooms"
	"github.com/nikmy/meowmatch/pkg/clock"
	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
	"github.com/nikmy/meowmatch/pkg/timeslots"
)

func New(
	cfg Config,
	store repo.Client,
	locker locks.Locker,
	provisioner rooms.Provisioner,
	events *notify.Dispatcher,
	clk clock.Clock,
	m *metrics.Metrics,
	log logger.Logger,
) *Manager {
	return &Manager{
		cfg:     cfg.withDefaults(),
		store:   store,
		locker:  locker,
		rooms:   provisioner,
		events:  events,
		clock:   clk,
		metrics: m,
		log:     log.With("lifecycle"),
	}
}

type Manager struct {
	cfg     Config
	store   repo.Client
	locker  locks.Locker
	rooms   rooms.Provisioner
	events  *notify.Dispatcher
	clock   clock.Clock
	metrics *metrics.Metrics
	log     logger.Logger
}

// Commit turns a matched pair into a scheduled interview. Both requests
// and both slots are re-validated under locks, so a pair found by a
// lock-free match may turn out stale.
func (m *Manager) Commit(ctx context.Context, pair models.MatchedPair) (*models.Interview, error) {
	started := time.Now()

	interview, err := m.commit(ctx, pair)

	switch {
	case err == nil:
		m.metrics.ObserveCommit(started, "committed")
	case errors.Is(err, ErrStaleMatch):
		m.metrics.ObserveCommit(started, "stale")
	case errors.Is(err, ErrProvisioning):
		m.metrics.ObserveCommit(started, "provisioning_failed")
	case errors.Is(err, locks.ErrNotAcquired), errors.Is(err, context.DeadlineExceeded):
		m.metrics.ObserveCommit(started, "lock_failed")
	default:
		m.metrics.ObserveCommit(started, "error")
	}

	return interview, err
}

func (m *Manager) commit(ctx context.Context, pair models.MatchedPair) (*models.Interview, error) {
	c, i, at := pair.Candidate, pair.Interviewer, pair.AgreedTimePoint
	if c.Role != models.RoleCandidate || i.Role != models.RoleInterviewer || c.OwnerID == i.OwnerID {
		return nil, ErrInvalidPair
	}

	unlock, err := m.lock(ctx,
		locks.RequestKey(c.ID),
		locks.RequestKey(i.ID),
		locks.SlotKey(models.SlotKey(c.ID, at)),
		locks.SlotKey(models.SlotKey(i.ID, at)),
	)
	if err != nil {
		return nil, err
	}
	defer unlock()

	ctx, cancel := m.detach(ctx)
	defer cancel()

	var (
		interview models.Interview
		room      *rooms.Room
	)

	err = m.store.RunTxn(ctx, func(ctx context.Context) error {
		now := m.clock.Now()
		if !at.After(now) {
			return stale("time point %s has passed", at.Format(time.RFC3339))
		}

		candidate, candidateSlot, err := m.loadForCommit(ctx, c.ID, at, now)
		if err != nil {
			return err
		}
		interviewer, interviewerSlot, err := m.loadForCommit(ctx, i.ID, at, now)
		if err != nil {
			return err
		}

		if !candidate.Compatible(interviewer) {
			return stale("requests %s and %s are not compatible anymore", c.ID, i.ID)
		}
		if candidate.Blacklisted(interviewer.OwnerID) || interviewer.Blacklisted(candidate.OwnerID) {
			return stale("owners of %s and %s blacklisted each other", c.ID, i.ID)
		}

		interview = models.Interview{
			ID:                   uuid.NewString(),
			CandidateRequestID:   candidate.ID,
			InterviewerRequestID: interviewer.ID,
			CandidateID:          candidate.OwnerID,
			InterviewerID:        interviewer.OwnerID,
			StartTime:            at,
			EndTime:              at.Add(m.cfg.InterviewDuration),
			CreatedAt:            now,
		}

		provisioned, err := m.rooms.Provision(ctx, rooms.Booking{
			InterviewID:  interview.ID,
			Start:        interview.StartTime,
			Duration:     m.cfg.InterviewDuration,
			Participants: []string{candidate.OwnerID, interviewer.OwnerID},
		})
		if err != nil {
			return provisioningError{cause: err}
		}
		room = &provisioned
		interview.RoomID, interview.RoomURL = provisioned.ID, provisioned.URL

		for _, req := range []*models.InterviewRequest{&candidate, &interviewer} {
			req.DesiredSessionCount--
			if req.DesiredSessionCount == 0 {
				req.Active = false
			}
			req.AssignedTimePoints = timeslots.Union(req.AssignedTimePoints, []time.Time{at})

			err = m.store.Requests().Save(ctx, *req)
			if err != nil {
				return errors.WrapFailf(err, "save request %s", req.ID)
			}
		}

		candidateSlot.Status, candidateSlot.InterviewID = models.SlotAssigned, interview.ID
		interviewerSlot.Status, interviewerSlot.InterviewID = models.SlotAssigned, interview.ID

		err = m.store.Slots().SaveTimeSlots(ctx, []models.TimeSlot{candidateSlot, interviewerSlot})
		if err != nil {
			return errors.WrapFail(err, "assign time slots")
		}

		return errors.WrapFail(m.store.Interviews().Create(ctx, interview), "create interview")
	})
	if err != nil {
		if room != nil {
			m.releaseRoom(ctx, room.ID)
		}
		return nil, err
	}

	m.log.Infof(
		"interview %s scheduled at %s for %s and %s",
		interview.ID, at.Format(time.RFC3339), interview.CandidateID, interview.InterviewerID,
	)

	now := m.clock.Now()
	m.events.Dispatch(ctx,
		m.scheduledEvent(interview, interview.CandidateID, c.ID, now),
		m.scheduledEvent(interview, interview.InterviewerID, i.ID, now),
	)

	return &interview, nil
}

func (m *Manager) loadForCommit(
	ctx context.Context,
	requestID string,
	at time.Time,
	now time.Time,
) (models.InterviewRequest, models.TimeSlot, error) {
	req, err := m.store.Requests().Get(ctx, requestID)
	if err != nil {
		return models.InterviewRequest{}, models.TimeSlot{}, errors.WrapFailf(err, "get request %s", requestID)
	}
	if req == nil {
		return models.InterviewRequest{}, models.TimeSlot{}, stale("request %s not found", requestID)
	}
	if !req.Eligible(now) {
		return models.InterviewRequest{}, models.TimeSlot{}, stale("request %s is not eligible", requestID)
	}
	if !timeslots.Contains(req.FreeTimePoints(now), at) {
		return models.InterviewRequest{}, models.TimeSlot{}, stale("time point is not free for request %s", requestID)
	}

	slot, err := m.store.Slots().Get(ctx, requestID, at)
	if err != nil {
		return models.InterviewRequest{}, models.TimeSlot{}, errors.WrapFailf(err, "get slot of request %s", requestID)
	}
	if slot == nil || slot.Status != models.SlotAvailable {
		return models.InterviewRequest{}, models.TimeSlot{}, stale("slot of request %s is not available", requestID)
	}

	return *req, *slot, nil
}

// Reject tears the interview down on behalf of one of its participants.
// Both owners blacklist each other permanently.
func (m *Manager) Reject(ctx context.Context, interviewID string, rejectingOwnerID string) error {
	iv, err := m.store.Interviews().Get(ctx, interviewID)
	if err != nil {
		return errors.WrapFailf(err, "get interview %s", interviewID)
	}
	if iv == nil {
		return ErrInterviewNotFound
	}
	if !iv.Participant(rejectingOwnerID) {
		return ErrNotParticipant
	}

	return m.teardown(ctx, *iv, rejectingOwnerID)
}

// Expire tears down an interview whose start has passed without
// completion. Nobody is blacklisted.
func (m *Manager) Expire(ctx context.Context, interviewID string) error {
	iv, err := m.store.Interviews().Get(ctx, interviewID)
	if err != nil {
		return errors.WrapFailf(err, "get interview %s", interviewID)
	}
	if iv == nil {
		return ErrInterviewNotFound
	}

	return m.teardown(ctx, *iv, "")
}

// teardown is the compensating transition for reject and expiry. An empty
// rejectedBy marks a system expiry.
func (m *Manager) teardown(ctx context.Context, iv models.Interview, rejectedBy string) error {
	ids := iv.RequestIDs()
	unlock, err := m.lock(ctx,
		locks.InterviewKey(iv.ID),
		locks.RequestKey(ids[0]),
		locks.RequestKey(ids[1]),
		locks.SlotKey(models.SlotKey(ids[0], iv.StartTime)),
		locks.SlotKey(models.SlotKey(ids[1], iv.StartTime)),
	)
	if err != nil {
		return err
	}
	defer unlock()

	ctx, cancel := m.detach(ctx)
	defer cancel()

	now := m.clock.Now()
	err = m.store.RunTxn(ctx, func(ctx context.Context) error {
		found, err := m.store.Interviews().Delete(ctx, iv.ID)
		if err != nil {
			return errors.WrapFailf(err, "delete interview %s", iv.ID)
		}
		if !found {
			return ErrInterviewNotFound
		}

		var slots []models.TimeSlot
		for _, side := range []struct{ requestID, counterpart string }{
			{ids[0], iv.InterviewerID},
			{ids[1], iv.CandidateID},
		} {
			slot, err := m.releaseSide(ctx, side.requestID, side.counterpart, iv, rejectedBy != "", now)
			if err != nil {
				return err
			}
			if slot != nil {
				slots = append(slots, *slot)
			}
		}

		return errors.WrapFail(m.store.Slots().SaveTimeSlots(ctx, slots), "release time slots")
	})
	if err != nil {
		return err
	}

	m.releaseRoom(ctx, iv.RoomID)

	if rejectedBy != "" {
		m.log.Infof("interview %s rejected by %s", iv.ID, rejectedBy)
		m.metrics.Rejections.WithLabelValues("rejected").Inc()
		m.events.Dispatch(ctx, notify.Event{
			Kind:          notify.KindRejected,
			OwnerID:       iv.Counterpart(rejectedBy),
			InterviewID:   iv.ID,
			CounterpartID: rejectedBy,
			RejectedBy:    rejectedBy,
			StartTime:     iv.StartTime,
			At:            now,
		})
		return nil
	}

	m.log.Infof("interview %s expired without completion", iv.ID)
	m.metrics.Rejections.WithLabelValues("expired").Inc()
	m.events.Dispatch(ctx,
		notify.Event{
			Kind:          notify.KindInterviewExpired,
			OwnerID:       iv.CandidateID,
			InterviewID:   iv.ID,
			RequestID:     iv.CandidateRequestID,
			CounterpartID: iv.InterviewerID,
			StartTime:     iv.StartTime,
			At:            now,
		},
		notify.Event{
			Kind:          notify.KindInterviewExpired,
			OwnerID:       iv.InterviewerID,
			InterviewID:   iv.ID,
			RequestID:     iv.InterviewerRequestID,
			CounterpartID: iv.CandidateID,
			StartTime:     iv.StartTime,
			At:            now,
		},
	)
	return nil
}

// releaseSide gives the session back to one of the requests and returns
// its slot to be saved. A future slot becomes available again, a past one
// is consumed.
func (m *Manager) releaseSide(
	ctx context.Context,
	requestID string,
	counterpart string,
	iv models.Interview,
	blacklist bool,
	now time.Time,
) (*models.TimeSlot, error) {
	req, err := m.store.Requests().Get(ctx, requestID)
	if err != nil {
		return nil, errors.WrapFailf(err, "get request %s", requestID)
	}
	if req == nil {
		m.log.Warnf("request %s of interview %s is gone", requestID, iv.ID)
		return nil, nil
	}

	req.DesiredSessionCount++
	req.AssignedTimePoints = timeslots.Remove(req.AssignedTimePoints, iv.StartTime)
	req.Active = req.ExpiresAt.After(now)
	if blacklist {
		req.AddToBlacklist(counterpart)
	}

	err = m.store.Requests().Save(ctx, *req)
	if err != nil {
		return nil, errors.WrapFailf(err, "save request %s", requestID)
	}

	slot, err := m.store.Slots().Get(ctx, requestID, iv.StartTime)
	if err != nil {
		return nil, errors.WrapFailf(err, "get slot of request %s", requestID)
	}
	if slot == nil || slot.InterviewID != iv.ID {
		return nil, nil
	}

	slot.InterviewID = ""
	slot.Status = models.SlotAvailable
	if !iv.StartTime.After(now) {
		slot.Status = models.SlotConsumed
	}
	return slot, nil
}

// Complete marks the interview as held. Slots stay assigned.
func (m *Manager) Complete(ctx context.Context, interviewID string) error {
	unlock, err := m.lock(ctx, locks.InterviewKey(interviewID))
	if err != nil {
		return err
	}
	defer unlock()

	ctx, cancel := m.detach(ctx)
	defer cancel()

	var iv *models.Interview
	err = m.store.RunTxn(ctx, func(ctx context.Context) error {
		iv, err = m.store.Interviews().Get(ctx, interviewID)
		if err != nil {
			return errors.WrapFailf(err, "get interview %s", interviewID)
		}
		if iv == nil {
			return ErrInterviewNotFound
		}

		_, err = m.store.Interviews().Delete(ctx, interviewID)
		return errors.WrapFailf(err, "delete interview %s", interviewID)
	})
	if err != nil {
		return err
	}

	m.releaseRoom(ctx, iv.RoomID)
	m.log.Infof("interview %s completed", interviewID)
	return nil
}

func (m *Manager) lock(ctx context.Context, keys ...string) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.LockTimeout)
	defer cancel()

	unlock, err := locks.LockAll(ctx, m.locker, keys...)
	if err != nil {
		return nil, errors.WrapFail(err, "acquire locks")
	}
	return unlock, nil
}

// detach makes ctx immune to caller cancellation while keeping its values.
func (m *Manager) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), m.cfg.CommitTimeout)
}

func (m *Manager) releaseRoom(ctx context.Context, roomID string) {
	if roomID == "" {
		return
	}

	err := m.rooms.Release(ctx, roomID)
	if err != nil {
		m.log.Warn(errors.WrapFailf(err, "release room %s", roomID))
	}
}

func (m *Manager) scheduledEvent(iv models.Interview, ownerID, requestID string, now time.Time) notify.Event {
	return notify.Event{
		Kind:          notify.KindScheduled,
		OwnerID:       ownerID,
		InterviewID:   iv.ID,
		RequestID:     requestID,
		CounterpartID: iv.Counterpart(ownerID),
		StartTime:     iv.StartTime,
		RoomURL:       iv.RoomURL,
		At:            now,
	}
}
