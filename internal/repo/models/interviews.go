package models

import (
	"context"
	"time"
)

type InterviewsRepo interface {
	Create(ctx context.Context, interview Interview) error

	// Get returns nil if there is no such interview.
	Get(ctx context.Context, id string) (*Interview, error)

	// Delete completely removes interview object.
	Delete(ctx context.Context, id string) (found bool, err error)

	// FindByOwner returns interviews where owner takes part on either side.
	FindByOwner(ctx context.Context, ownerID string) ([]Interview, error)

	// FindStartedBefore returns interviews with start time not after t.
	FindStartedBefore(ctx context.Context, t time.Time) ([]Interview, error)
}

type Interview struct {
	ID string `json:"id" bson:"_id"`

	CandidateRequestID   string `json:"candidate_request_id"   bson:"candidate_request_id"`
	InterviewerRequestID string `json:"interviewer_request_id" bson:"interviewer_request_id"`

	CandidateID   string `json:"candidate_id"   bson:"candidate_id"`
	InterviewerID string `json:"interviewer_id" bson:"interviewer_id"`

	StartTime time.Time `json:"start_time" bson:"start_time"`
	EndTime   time.Time `json:"end_time"   bson:"end_time"`

	RoomID  string `json:"room_id,omitempty"  bson:"room_id,omitempty"`
	RoomURL string `json:"room_url,omitempty" bson:"room_url,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

const (
	InterviewFieldID            = "_id"
	InterviewFieldCandidateID   = "candidate_id"
	InterviewFieldInterviewerID = "interviewer_id"
	InterviewFieldStartTime     = "start_time"
)

// RequestIDs returns ids of both sides, candidate first.
func (i Interview) RequestIDs() [2]string {
	return [2]string{i.CandidateRequestID, i.InterviewerRequestID}
}

// Participant reports whether owner takes part in the interview.
func (i Interview) Participant(ownerID string) bool {
	return i.CandidateID == ownerID || i.InterviewerID == ownerID
}

// Counterpart returns the other side's owner.
func (i Interview) Counterpart(ownerID string) string {
	if i.CandidateID == ownerID {
		return i.InterviewerID
	}
	return i.CandidateID
}

// MatchedPair is a proposed match which is not persisted yet.
type MatchedPair struct {
	Candidate       InterviewRequest
	Interviewer     InterviewRequest
	AgreedTimePoint time.Time
}
