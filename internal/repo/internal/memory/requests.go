package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/pkg/errors"
)

type requests struct {
	c *Client
}

func (r requests) Create(ctx context.Context, req models.InterviewRequest) error {
	return r.c.write(ctx, func(st *state) error {
		if _, exists := st.Requests[req.ID]; exists {
			return errors.Errorf("request %s already exists", req.ID)
		}
		st.Requests[req.ID] = req.Clone()
		return nil
	})
}

func (r requests) Get(ctx context.Context, id string) (*models.InterviewRequest, error) {
	var found *models.InterviewRequest
	err := r.c.read(ctx, func(st *state) error {
		if req, ok := st.Requests[id]; ok {
			req = req.Clone()
			found = &req
		}
		return nil
	})
	return found, err
}

func (r requests) Save(ctx context.Context, req models.InterviewRequest) error {
	return r.c.write(ctx, func(st *state) error {
		st.Requests[req.ID] = req.Clone()
		return nil
	})
}

func (r requests) FindCandidatesFor(
	ctx context.Context,
	interviewer models.InterviewRequest,
	excludingOwners []string,
	now time.Time,
) ([]models.InterviewRequest, error) {
	return r.findOpposite(ctx, interviewer, excludingOwners, now)
}

func (r requests) FindInterviewersFor(
	ctx context.Context,
	candidate models.InterviewRequest,
	excludingOwners []string,
	now time.Time,
) ([]models.InterviewRequest, error) {
	return r.findOpposite(ctx, candidate, excludingOwners, now)
}

func (r requests) findOpposite(
	ctx context.Context,
	target models.InterviewRequest,
	excludingOwners []string,
	now time.Time,
) ([]models.InterviewRequest, error) {
	return r.where(ctx, func(other models.InterviewRequest) bool {
		return other.Role == target.Role.Opposite() &&
			other.OwnerID != target.OwnerID &&
			other.Eligible(now) &&
			target.Compatible(other) &&
			!slices.Contains(excludingOwners, other.OwnerID) &&
			!other.Blacklisted(target.OwnerID)
	})
}

func (r requests) FindExpired(ctx context.Context, now time.Time) ([]models.InterviewRequest, error) {
	return r.where(ctx, func(req models.InterviewRequest) bool {
		return req.Active && !req.ExpiresAt.After(now)
	})
}

func (r requests) where(ctx context.Context, pred func(models.InterviewRequest) bool) ([]models.InterviewRequest, error) {
	var selected []models.InterviewRequest
	err := r.c.read(ctx, func(st *state) error {
		for _, req := range st.Requests {
			if pred(req) {
				selected = append(selected, req.Clone())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(selected, func(a, b models.InterviewRequest) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return selected, nil
}
