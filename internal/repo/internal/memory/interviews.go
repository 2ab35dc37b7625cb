package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/pkg/errors"
)

type interviews struct {
	c *Client
}

func (i interviews) Create(ctx context.Context, interview models.Interview) error {
	return i.c.write(ctx, func(st *state) error {
		if _, exists := st.Interviews[interview.ID]; exists {
			return errors.Errorf("interview %s already exists", interview.ID)
		}
		st.Interviews[interview.ID] = interview
		return nil
	})
}

func (i interviews) Get(ctx context.Context, id string) (*models.Interview, error) {
	var found *models.Interview
	err := i.c.read(ctx, func(st *state) error {
		if iv, ok := st.Interviews[id]; ok {
			found = &iv
		}
		return nil
	})
	return found, err
}

func (i interviews) Delete(ctx context.Context, id string) (bool, error) {
	var found bool
	err := i.c.write(ctx, func(st *state) error {
		_, found = st.Interviews[id]
		delete(st.Interviews, id)
		return nil
	})
	return found, err
}

func (i interviews) FindByOwner(ctx context.Context, ownerID string) ([]models.Interview, error) {
	return i.where(ctx, func(iv models.Interview) bool {
		return iv.Participant(ownerID)
	})
}

func (i interviews) FindStartedBefore(ctx context.Context, t time.Time) ([]models.Interview, error) {
	return i.where(ctx, func(iv models.Interview) bool {
		return !iv.StartTime.After(t)
	})
}

func (i interviews) where(ctx context.Context, pred func(models.Interview) bool) ([]models.Interview, error) {
	var selected []models.Interview
	err := i.c.read(ctx, func(st *state) error {
		for _, iv := range st.Interviews {
			if pred(iv) {
				selected = append(selected, iv)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(selected, func(a, b models.Interview) int {
		return cmp.Or(a.StartTime.Compare(b.StartTime), cmp.Compare(a.ID, b.ID))
	})
	return selected, nil
}
