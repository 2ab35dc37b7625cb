// Package notify delivers lifecycle events to request owners. Delivery is
// best-effort: a failed notification never undoes what it reports.
package notify

import (
	"context"
	"time"
)

type Kind string

const (
	KindScheduled        Kind = "scheduled"
	KindRejected         Kind = "rejected"
	KindExpired          Kind = "expired"
	KindInterviewExpired Kind = "interview_expired"
)

type Event struct {
	Kind    Kind   `json:"kind"`
	OwnerID string `json:"owner_id"`

	InterviewID   string `json:"interview_id,omitempty"`
	RequestID     string `json:"request_id,omitempty"`
	CounterpartID string `json:"counterpart_id,omitempty"`
	RejectedBy    string `json:"rejected_by,omitempty"`

	StartTime time.Time `json:"start_time,omitempty"`
	RoomURL   string    `json:"room_url,omitempty"`

	At time.Time `json:"at"`
}

type Notifier interface {
	Notify(ctx context.Context, events ...Event) error
}
