package models

import (
	"context"
	"strconv"
	"time"
)

type SlotsRepo interface {
	// Get returns nil if the request has not declared the time point.
	Get(ctx context.Context, requestID string, timePoint time.Time) (*TimeSlot, error)

	// SaveTimeSlots upserts slots by (request, time point).
	SaveTimeSlots(ctx context.Context, slots []TimeSlot) error

	DeleteTimeSlots(ctx context.Context, requestID string, timePoints []time.Time) error

	FindByRequest(ctx context.Context, requestID string) ([]TimeSlot, error)

	// FindPastAvailable returns AVAILABLE slots with time point not after now.
	FindPastAvailable(ctx context.Context, now time.Time) ([]TimeSlot, error)
}

type SlotStatus int

const (
	SlotAvailable SlotStatus = iota
	SlotAssigned

	// SlotConsumed means the time has passed and the slot can't be offered.
	SlotConsumed
)

func (s SlotStatus) String() string {
	switch s {
	case SlotAvailable:
		return "available"
	case SlotAssigned:
		return "assigned"
	case SlotConsumed:
		return "consumed"
	default:
		return "unknown"
	}
}

type TimeSlot struct {
	RequestID   string     `json:"request_id"             bson:"request_id"`
	TimePoint   time.Time  `json:"time_point"             bson:"time_point"`
	Status      SlotStatus `json:"status"                 bson:"status"`
	InterviewID string     `json:"interview_id,omitempty" bson:"interview_id,omitempty"`
}

const (
	SlotFieldID          = "_id"
	SlotFieldRequestID   = "request_id"
	SlotFieldTimePoint   = "time_point"
	SlotFieldStatus      = "status"
	SlotFieldInterviewID = "interview_id"
)

func NewSlots(requestID string, points []time.Time) []TimeSlot {
	slots := make([]TimeSlot, 0, len(points))
	for _, p := range points {
		slots = append(slots, TimeSlot{RequestID: requestID, TimePoint: p, Status: SlotAvailable})
	}
	return slots
}

// Key identifies the slot among all requests.
func (s TimeSlot) Key() string {
	return SlotKey(s.RequestID, s.TimePoint)
}

func SlotKey(requestID string, timePoint time.Time) string {
	return requestID + "@" + strconv.FormatInt(timePoint.UnixMilli(), 10)
}
