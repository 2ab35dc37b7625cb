package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/nikmy/meowmatch/internal/repo/models"
)

type slots struct {
	c *Client
}

func (s slots) Get(ctx context.Context, requestID string, timePoint time.Time) (*models.TimeSlot, error) {
	var found *models.TimeSlot
	err := s.c.read(ctx, func(st *state) error {
		if slot, ok := st.Slots[models.SlotKey(requestID, timePoint)]; ok {
			found = &slot
		}
		return nil
	})
	return found, err
}

func (s slots) SaveTimeSlots(ctx context.Context, toSave []models.TimeSlot) error {
	if len(toSave) == 0 {
		return nil
	}

	return s.c.write(ctx, func(st *state) error {
		for _, slot := range toSave {
			st.Slots[slot.Key()] = slot
		}
		return nil
	})
}

func (s slots) DeleteTimeSlots(ctx context.Context, requestID string, timePoints []time.Time) error {
	if len(timePoints) == 0 {
		return nil
	}

	return s.c.write(ctx, func(st *state) error {
		for _, p := range timePoints {
			delete(st.Slots, models.SlotKey(requestID, p))
		}
		return nil
	})
}

func (s slots) FindByRequest(ctx context.Context, requestID string) ([]models.TimeSlot, error) {
	return s.where(ctx, func(slot models.TimeSlot) bool {
		return slot.RequestID == requestID
	})
}

func (s slots) FindPastAvailable(ctx context.Context, now time.Time) ([]models.TimeSlot, error) {
	return s.where(ctx, func(slot models.TimeSlot) bool {
		return slot.Status == models.SlotAvailable && !slot.TimePoint.After(now)
	})
}

func (s slots) where(ctx context.Context, pred func(models.TimeSlot) bool) ([]models.TimeSlot, error) {
	var selected []models.TimeSlot
	err := s.c.read(ctx, func(st *state) error {
		for _, slot := range st.Slots {
			if pred(slot) {
				selected = append(selected, slot)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(selected, func(a, b models.TimeSlot) int {
		return cmp.Or(a.TimePoint.Compare(b.TimePoint), cmp.Compare(a.RequestID, b.RequestID))
	})
	return selected, nil
}
