package matching

import (
	"context"
	"time"

	"github.com/nikmy/meowmatch/internal/metrics"
	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/pkg/clock"
	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
	"github.com/nikmy/meowmatch/pkg/timeslots"
)

type Config struct {
	Policy Policy `yaml:"policy"`
}

type requestFinder interface {
	FindCandidatesFor(ctx context.Context, interviewer models.InterviewRequest, excludingOwners []string, now time.Time) ([]models.InterviewRequest, error)
	FindInterviewersFor(ctx context.Context, candidate models.InterviewRequest, excludingOwners []string, now time.Time) ([]models.InterviewRequest, error)
}

func New(cfg Config, requests requestFinder, clk clock.Clock, m *metrics.Metrics, log logger.Logger) (*Engine, error) {
	policy := cfg.Policy
	if len(policy.Criteria) == 0 {
		policy = DefaultPolicy()
	}

	err := policy.Validate()
	if err != nil {
		return nil, errors.WrapFail(err, "validate matching policy")
	}

	return &Engine{
		requests: requests,
		policy:   policy,
		clock:    clk,
		metrics:  m,
		log:      log.With("matching"),
	}, nil
}

// Engine finds the best opposite request for a given one. It never
// mutates anything, so a found pair may be inspected before commit.
type Engine struct {
	requests requestFinder
	policy   Policy
	clock    clock.Clock
	metrics  *metrics.Metrics
	log      logger.Logger
}

type option struct {
	opposite   models.InterviewRequest
	shared     []time.Time
	earliest   time.Time
	masteryGap int
}

// Match returns nil when there is no compatible opposite request with a
// shared free time point. Invalid requests yield nil as well.
func (e *Engine) Match(ctx context.Context, req models.InterviewRequest) (*models.MatchedPair, error) {
	now := e.clock.Now()

	free := req.FreeTimePoints(now)
	if !req.Role.Valid() || !req.Eligible(now) || len(free) == 0 {
		e.observe(req, "skipped")
		return nil, nil
	}

	excluding := append([]string{req.OwnerID}, req.Blacklist...)

	var (
		opposites []models.InterviewRequest
		err       error
	)
	switch req.Role {
	case models.RoleCandidate:
		opposites, err = e.requests.FindInterviewersFor(ctx, req, excluding, now)
	case models.RoleInterviewer:
		opposites, err = e.requests.FindCandidatesFor(ctx, req, excluding, now)
	}
	if err != nil {
		e.observe(req, "error")
		return nil, errors.WrapFailf(err, "find opposite requests for %s", req.ID)
	}

	var best *option
	for _, opp := range opposites {
		opt, ok := e.consider(req, opp, free, now)
		if !ok {
			continue
		}

		if best == nil || e.policy.compare(opt, *best) < 0 {
			best = &opt
		}
	}

	if best == nil {
		e.log.Debugf("no match for request %s among %d opposite requests", req.ID, len(opposites))
		e.observe(req, "no_match")
		return nil, nil
	}

	pair := &models.MatchedPair{AgreedTimePoint: best.earliest}
	if req.Role == models.RoleCandidate {
		pair.Candidate, pair.Interviewer = req, best.opposite
	} else {
		pair.Candidate, pair.Interviewer = best.opposite, req
	}

	e.log.Debugf(
		"request %s matched with %s at %s",
		req.ID, best.opposite.ID, best.earliest.Format(time.RFC3339),
	)
	e.observe(req, "matched")
	return pair, nil
}

// consider re-checks what the store was asked to filter: the store is an
// external collaborator and may be stale or lax.
func (e *Engine) consider(req, opp models.InterviewRequest, free []time.Time, now time.Time) (option, bool) {
	if opp.ID == req.ID || opp.OwnerID == req.OwnerID {
		return option{}, false
	}
	if !req.Compatible(opp) || !opp.Eligible(now) {
		return option{}, false
	}
	if req.Blacklisted(opp.OwnerID) || opp.Blacklisted(req.OwnerID) {
		return option{}, false
	}

	shared := timeslots.Intersect(free, opp.FreeTimePoints(now))
	earliest, ok := timeslots.Earliest(shared)
	if !ok {
		return option{}, false
	}

	return option{
		opposite:   opp,
		shared:     shared,
		earliest:   earliest,
		masteryGap: abs(req.MasteryLevel - opp.MasteryLevel),
	}, true
}

func (e *Engine) observe(req models.InterviewRequest, outcome string) {
	e.metrics.Matches.WithLabelValues(req.Role.String(), outcome).Inc()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
