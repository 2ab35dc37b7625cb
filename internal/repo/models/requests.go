package models

import (
	"context"
	"slices"
	"time"

	"github.com/nikmy/meowmatch/pkg/timeslots"
)

type RequestsRepo interface {
	// Create stores a new request. The request must carry its ID.
	Create(ctx context.Context, req InterviewRequest) error

	// Get returns nil if there is no request with such id.
	Get(ctx context.Context, id string) (*InterviewRequest, error)

	// Save replaces the whole request document.
	Save(ctx context.Context, req InterviewRequest) error

	// FindCandidatesFor returns eligible candidate requests of the same
	// specialization with mastery not above the interviewer's, skipping
	// owners from excludingOwners and requests which blacklisted the
	// interviewer. Order is by creation time ascending.
	FindCandidatesFor(ctx context.Context, interviewer InterviewRequest, excludingOwners []string, now time.Time) ([]InterviewRequest, error)

	// FindInterviewersFor is symmetric to FindCandidatesFor.
	FindInterviewersFor(ctx context.Context, candidate InterviewRequest, excludingOwners []string, now time.Time) ([]InterviewRequest, error)

	// FindExpired returns active requests with ExpiresAt not after now.
	FindExpired(ctx context.Context, now time.Time) ([]InterviewRequest, error)
}

type Role int

const (
	RoleInterviewer Role = iota
	RoleCandidate
)

func (r Role) Opposite() Role {
	if r == RoleCandidate {
		return RoleInterviewer
	}
	return RoleCandidate
}

func (r Role) Valid() bool {
	return r == RoleInterviewer || r == RoleCandidate
}

func (r Role) String() string {
	switch r {
	case RoleInterviewer:
		return "interviewer"
	case RoleCandidate:
		return "candidate"
	default:
		return "unknown"
	}
}

func RoleFromString(s string) (Role, bool) {
	switch s {
	case "interviewer":
		return RoleInterviewer, true
	case "candidate":
		return RoleCandidate, true
	default:
		return -1, false
	}
}

// InterviewRequest is a participant's standing offer to be matched.
type InterviewRequest struct {
	ID      string `json:"id"       bson:"_id"`
	OwnerID string `json:"owner_id" bson:"owner_id"`
	Role    Role   `json:"role"     bson:"role"`

	SpecializationID string  `json:"specialization_id" bson:"specialization_id"`
	MasteryLevel     int     `json:"mastery_level"     bson:"mastery_level"`
	AverageScore     float64 `json:"average_score"     bson:"average_score"`

	// DesiredSessionCount is the number of sessions still wanted.
	DesiredSessionCount int `json:"desired_session_count" bson:"desired_session_count"`

	AvailableTimePoints []time.Time `json:"available_time_points" bson:"available_time_points"`
	AssignedTimePoints  []time.Time `json:"assigned_time_points"  bson:"assigned_time_points"`

	// Blacklist holds owners of the opposite side which must never be
	// proposed to this request again.
	Blacklist []string `json:"blacklist" bson:"blacklist"`

	Active    bool      `json:"active"     bson:"active"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

const (
	RequestFieldID                  = "_id"
	RequestFieldOwnerID             = "owner_id"
	RequestFieldRole                = "role"
	RequestFieldSpecializationID    = "specialization_id"
	RequestFieldMasteryLevel        = "mastery_level"
	RequestFieldDesiredSessionCount = "desired_session_count"
	RequestFieldBlacklist           = "blacklist"
	RequestFieldActive              = "active"
	RequestFieldExpiresAt           = "expires_at"
	RequestFieldCreatedAt           = "created_at"
)

// Eligible reports whether the request may take part in a match at now.
func (r InterviewRequest) Eligible(now time.Time) bool {
	return r.Active && r.DesiredSessionCount > 0 && r.ExpiresAt.After(now)
}

// FreeTimePoints returns available points which are neither assigned
// nor already in the past.
func (r InterviewRequest) FreeTimePoints(now time.Time) []time.Time {
	free := timeslots.Exclude(r.AvailableTimePoints, r.AssignedTimePoints)
	return timeslots.After(free, now)
}

func (r InterviewRequest) Blacklisted(ownerID string) bool {
	return slices.Contains(r.Blacklist, ownerID)
}

// Compatible checks specialization and mastery gate between two requests
// of opposite roles. Interviewer's mastery must be at least candidate's.
func (r InterviewRequest) Compatible(other InterviewRequest) bool {
	if r.Role == other.Role || r.SpecializationID != other.SpecializationID {
		return false
	}

	candidate, interviewer := r, other
	if r.Role == RoleInterviewer {
		candidate, interviewer = other, r
	}
	return interviewer.MasteryLevel >= candidate.MasteryLevel
}

func (r *InterviewRequest) AddToBlacklist(ownerID string) {
	if !r.Blacklisted(ownerID) {
		r.Blacklist = append(r.Blacklist, ownerID)
	}
}

// Clone returns a deep copy so that callers can't alias slices of
// stored documents.
func (r InterviewRequest) Clone() InterviewRequest {
	r.AvailableTimePoints = slices.Clone(r.AvailableTimePoints)
	r.AssignedTimePoints = slices.Clone(r.AssignedTimePoints)
	r.Blacklist = slices.Clone(r.Blacklist)
	return r
}
