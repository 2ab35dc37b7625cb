package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nikmy/meowmatch/internal/lifecycle"
	"github.com/nikmy/meowmatch/internal/locks"
	"github.com/nikmy/meowmatch/internal/matching"
	"github.com/nikmy/meowmatch/internal/metrics"
	"github.com/nikmy/meowmatch/internal/repo"
	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/internal/rooms"
	"github.com/nikmy/meowmatch/pkg/clock"
	"github.com/nikmy/meowmatch/pkg/logger"
)

var now = time.Date(2030, time.March, 1, 8, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return time.Date(2030, time.March, 1, hour, 0, 0, 0, time.UTC)
}

func hours(hs ...int) []time.Time {
	points := make([]time.Time, 0, len(hs))
	for _, h := range hs {
		points = append(points, at(h))
	}
	return points
}

var testConfig = Config{
	MaxCommitAttempts: 3,
	Specializations:   []string{"backend", "frontend"},
	MinMastery:        1,
	MaxMastery:        5,
}

type fixture struct {
	store   repo.Client
	clock   *clock.Manual
	service *Service
}

func setup(t *testing.T) fixture {
	t.Helper()

	store, err := repo.NewMemoryClient(logger.NewStub(), repo.MemoryConfig{})
	require.NoError(t, err)

	clk := clock.NewManual(now)
	m := metrics.NewNop()
	locker := locks.NewLocal()

	engine, err := matching.New(matching.Config{}, store.Requests(), clk, m, logger.NewStub())
	require.NoError(t, err)

	lc := lifecycle.New(
		lifecycle.Config{}, store, locker,
		rooms.NewStatic(rooms.StaticConfig{BaseURL: "https://meet"}),
		nil, clk, m, logger.NewStub(),
	)

	return fixture{
		store:   store,
		clock:   clk,
		service: New(testConfig, store, locker, engine, lc, clk, logger.NewStub()),
	}
}

func submission(owner string, role models.Role, mastery int, points ...time.Time) Submission {
	return Submission{
		OwnerID:             owner,
		Role:                role,
		SpecializationID:    "backend",
		MasteryLevel:        mastery,
		DesiredSessionCount: 1,
		AvailableTimePoints: points,
	}
}

func TestService_Submit_validation(t *testing.T) {
	type testcase struct {
		name   string
		modify func(s *Submission)
	}

	tests := [...]testcase{
		{name: "no owner", modify: func(s *Submission) { s.OwnerID = "" }},
		{name: "unknown role", modify: func(s *Submission) { s.Role = 5 }},
		{name: "no specialization", modify: func(s *Submission) { s.SpecializationID = "" }},
		{name: "unknown specialization", modify: func(s *Submission) { s.SpecializationID = "cobol" }},
		{name: "mastery too low", modify: func(s *Submission) { s.MasteryLevel = 0 }},
		{name: "mastery too high", modify: func(s *Submission) { s.MasteryLevel = 6 }},
		{name: "negative score", modify: func(s *Submission) { s.AverageScore = -1 }},
		{name: "no sessions wanted", modify: func(s *Submission) { s.DesiredSessionCount = 0 }},
		{name: "no time points", modify: func(s *Submission) { s.AvailableTimePoints = nil }},
		{name: "past time point", modify: func(s *Submission) { s.AvailableTimePoints = hours(7, 10) }},
		{name: "expired", modify: func(s *Submission) { s.ExpiresAt = now.Add(-time.Minute) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			sub := submission("alice", models.RoleCandidate, 2, at(10))
			tt.modify(&sub)

			_, err := f.service.Submit(context.Background(), sub)
			require.ErrorIs(t, err, ErrValidation)

			stored, err := f.store.Requests().FindExpired(context.Background(), now.Add(365*24*time.Hour))
			require.NoError(t, err)
			require.Empty(t, stored, "nothing must be persisted")
		})
	}
}

func TestService_Submit_example(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.service.Submit(ctx, submission("alice", models.RoleCandidate, 2, at(11), at(10), at(10)))
	require.NoError(t, err)
	require.Empty(t, first.Scheduled)
	require.Equal(t, hours(10, 11), first.Request.AvailableTimePoints)
	require.True(t, first.Request.Active)
	require.True(t, now.Add(testConfig.withDefaults().DefaultTTL).Equal(first.Request.ExpiresAt))

	slots, err := f.store.Slots().FindByRequest(ctx, first.Request.ID)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	second, err := f.service.Submit(ctx, submission("bob", models.RoleInterviewer, 3, at(11), at(12)))
	require.NoError(t, err)
	require.Len(t, second.Scheduled, 1)

	iv := second.Scheduled[0]
	require.True(t, at(11).Equal(iv.StartTime))
	require.Equal(t, first.Request.ID, iv.CandidateRequestID)
	require.Equal(t, second.Request.ID, iv.InterviewerRequestID)
	require.Contains(t, iv.RoomURL, "https://meet/")

	require.False(t, second.Request.Active)
	require.Zero(t, second.Request.DesiredSessionCount)

	got, err := f.service.GetInterview(ctx, iv.ID)
	require.NoError(t, err)
	require.Equal(t, iv, *got)

	for _, owner := range []string{"alice", "bob"} {
		ivs, err := f.service.ListInterviews(ctx, owner)
		require.NoError(t, err)
		require.Len(t, ivs, 1)
	}
}

func TestService_Submit_severalSessions(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.service.Submit(ctx, submission("bob", models.RoleInterviewer, 3, at(10)))
	require.NoError(t, err)
	carol := submission("carol", models.RoleInterviewer, 3, at(10), at(12))
	carol.DesiredSessionCount = 2
	_, err = f.service.Submit(ctx, carol)
	require.NoError(t, err)

	sub := submission("alice", models.RoleCandidate, 2, at(10), at(12), at(14))
	sub.DesiredSessionCount = 3

	res, err := f.service.Submit(ctx, sub)
	require.NoError(t, err)
	require.Len(t, res.Scheduled, 2)
	require.True(t, at(10).Equal(res.Scheduled[0].StartTime))
	require.True(t, at(12).Equal(res.Scheduled[1].StartTime))

	require.Equal(t, 1, res.Request.DesiredSessionCount)
	require.True(t, res.Request.Active)
	require.Equal(t, hours(10, 12), res.Request.AssignedTimePoints)
}

func TestService_retriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	f := setup(t)

	lc := NewMocklifecycleManager(ctrl)
	lc.EXPECT().
		Commit(gomock.Any(), gomock.Any()).
		Times(testConfig.MaxCommitAttempts).
		Return(nil, lifecycle.ErrStaleMatch)

	engine, err := matching.New(matching.Config{}, f.store.Requests(), f.clock, metrics.NewNop(), logger.NewStub())
	require.NoError(t, err)
	s := New(testConfig, f.store, locks.NewLocal(), engine, lc, f.clock, logger.NewStub())

	_, err = s.Submit(ctx, submission("bob", models.RoleInterviewer, 3, at(10)))
	require.NoError(t, err)

	res, err := s.Submit(ctx, submission("alice", models.RoleCandidate, 2, at(10)))
	require.ErrorIs(t, err, ErrTryAgain)
	require.True(t, res.Request.Active, "request stays open after contention")
}

func TestService_PauseActivate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	interviewer, err := f.service.Submit(ctx, submission("bob", models.RoleInterviewer, 3, at(10)))
	require.NoError(t, err)

	paused, err := f.service.Pause(ctx, interviewer.Request.ID)
	require.NoError(t, err)
	require.False(t, paused.Active)

	candidate, err := f.service.Submit(ctx, submission("alice", models.RoleCandidate, 2, at(10)))
	require.NoError(t, err)
	require.Empty(t, candidate.Scheduled)

	res, err := f.service.Activate(ctx, interviewer.Request.ID)
	require.NoError(t, err)
	require.Len(t, res.Scheduled, 1)
	require.Equal(t, candidate.Request.ID, res.Scheduled[0].CandidateRequestID)

	_, err = f.service.Activate(ctx, interviewer.Request.ID)
	require.ErrorIs(t, err, ErrValidation)

	_, err = f.service.Pause(ctx, "unknown")
	require.ErrorIs(t, err, ErrRequestNotFound)

	f.clock.Set(now.Add(testConfig.withDefaults().DefaultTTL))
	_, err = f.service.Activate(ctx, candidate.Request.ID)
	require.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateAvailability(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	sub := submission("alice", models.RoleCandidate, 2, at(10), at(11))
	sub.DesiredSessionCount = 2
	candidate, err := f.service.Submit(ctx, sub)
	require.NoError(t, err)
	id := candidate.Request.ID

	_, err = f.service.Submit(ctx, submission("bob", models.RoleInterviewer, 3, at(11), at(15)))
	require.NoError(t, err)

	_, err = f.service.UpdateAvailability(ctx, id, hours(10, 15))
	require.ErrorIs(t, err, ErrValidation, "assigned point can't be withdrawn")

	_, err = f.service.UpdateAvailability(ctx, id, nil)
	require.ErrorIs(t, err, ErrValidation)

	_, err = f.service.UpdateAvailability(ctx, id, hours(7, 11))
	require.ErrorIs(t, err, ErrValidation)

	_, err = f.service.Submit(ctx, submission("carol", models.RoleInterviewer, 3, at(16)))
	require.NoError(t, err)

	res, err := f.service.UpdateAvailability(ctx, id, hours(11, 16))
	require.NoError(t, err)
	require.Len(t, res.Scheduled, 1)
	require.True(t, at(16).Equal(res.Scheduled[0].StartTime))
	require.Equal(t, hours(11, 16), res.Request.AvailableTimePoints)

	slots, err := f.store.Slots().FindByRequest(ctx, id)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	for _, slot := range slots {
		require.Equal(t, models.SlotAssigned, slot.Status)
	}

	_, err = f.service.UpdateAvailability(ctx, "unknown", hours(11))
	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestService_UpdateAvailability_afterComplete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	sub := submission("alice", models.RoleCandidate, 2, at(10), at(11))
	sub.DesiredSessionCount = 2
	candidate, err := f.service.Submit(ctx, sub)
	require.NoError(t, err)
	id := candidate.Request.ID

	interviewer, err := f.service.Submit(ctx, submission("bob", models.RoleInterviewer, 3, at(10)))
	require.NoError(t, err)
	require.Len(t, interviewer.Scheduled, 1)

	require.NoError(t, f.service.Complete(ctx, interviewer.Scheduled[0].ID))
	f.clock.Set(at(12))

	res, err := f.service.UpdateAvailability(ctx, id, hours(15, 16))
	require.NoError(t, err)
	require.Empty(t, res.Scheduled)
	require.Equal(t, hours(10, 15, 16), res.Request.AvailableTimePoints)
	require.Equal(t, hours(10), res.Request.AssignedTimePoints)

	slots, err := f.store.Slots().FindByRequest(ctx, id)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	require.Equal(t, models.SlotAssigned, slots[0].Status)
	require.Equal(t, models.SlotAvailable, slots[1].Status)
	require.Equal(t, models.SlotAvailable, slots[2].Status)
}

func TestService_lookups(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.service.GetRequest(ctx, "unknown")
	require.ErrorIs(t, err, ErrRequestNotFound)

	_, err = f.service.GetInterview(ctx, "unknown")
	require.ErrorIs(t, err, lifecycle.ErrInterviewNotFound)

	ivs, err := f.service.ListInterviews(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, ivs)
}
