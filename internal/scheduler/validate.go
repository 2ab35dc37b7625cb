package scheduler

import (
	"slices"
	"time"

	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/pkg/timeslots"
)

type Submission struct {
	OwnerID             string
	Role                models.Role
	SpecializationID    string
	MasteryLevel        int
	AverageScore        float64
	DesiredSessionCount int
	AvailableTimePoints []time.Time
	Blacklist           []string
	ExpiresAt           time.Time
}

func (s *Service) validate(sub *Submission, now time.Time) error {
	if sub.OwnerID == "" {
		return invalid("owner is required")
	}
	if !sub.Role.Valid() {
		return invalid("unknown role %d", sub.Role)
	}
	if err := s.validateSpecialization(sub.SpecializationID); err != nil {
		return err
	}
	if sub.MasteryLevel < s.cfg.MinMastery || sub.MasteryLevel > s.cfg.MaxMastery {
		return invalid("mastery level %d is out of [%d, %d]", sub.MasteryLevel, s.cfg.MinMastery, s.cfg.MaxMastery)
	}
	if sub.AverageScore < 0 {
		return invalid("negative average score")
	}
	if sub.DesiredSessionCount <= 0 {
		return invalid("desired session count must be positive")
	}

	if sub.ExpiresAt.IsZero() {
		sub.ExpiresAt = now.Add(s.cfg.DefaultTTL)
	}
	if !sub.ExpiresAt.After(now) {
		return invalid("request expires in the past")
	}

	points, err := validatePoints(sub.AvailableTimePoints, now)
	if err != nil {
		return err
	}
	sub.AvailableTimePoints = points
	sub.ExpiresAt = sub.ExpiresAt.UTC()
	return nil
}

func (s *Service) validateSpecialization(id string) error {
	if id == "" {
		return invalid("specialization is required")
	}
	if len(s.cfg.Specializations) > 0 && !slices.Contains(s.cfg.Specializations, id) {
		return invalid("unknown specialization %q", id)
	}
	return nil
}

func validatePoints(points []time.Time, now time.Time) ([]time.Time, error) {
	normalized := timeslots.Normalize(points)
	if len(normalized) == 0 {
		return nil, invalid("no available time points")
	}
	if !normalized[0].After(now) {
		return nil, invalid("time point %s is in the past", normalized[0].Format(time.RFC3339))
	}
	return normalized, nil
}
