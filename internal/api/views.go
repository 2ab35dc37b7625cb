package api

import (
	"time"

	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/internal/scheduler"
)

type submitBody struct {
	OwnerID             string      `json:"owner_id"`
	Role                string      `json:"role"`
	SpecializationID    string      `json:"specialization_id"`
	MasteryLevel        int         `json:"mastery_level"`
	AverageScore        float64     `json:"average_score"`
	DesiredSessionCount int         `json:"desired_session_count"`
	AvailableTimePoints []time.Time `json:"available_time_points"`
	Blacklist           []string    `json:"blacklist"`
	ExpiresAt           time.Time   `json:"expires_at"`
}

type availabilityBody struct {
	AvailableTimePoints []time.Time `json:"available_time_points"`
}

type rejectBody struct {
	OwnerID string `json:"owner_id"`
}

type requestView struct {
	models.InterviewRequest
	Role string `json:"role"`
}

func viewRequest(req models.InterviewRequest) requestView {
	return requestView{InterviewRequest: req, Role: req.Role.String()}
}

type resultView struct {
	Request   requestView        `json:"request"`
	Scheduled []models.Interview `json:"scheduled"`
}

func viewResult(res *scheduler.Result) resultView {
	scheduled := res.Scheduled
	if scheduled == nil {
		scheduled = []models.Interview{}
	}
	return resultView{Request: viewRequest(res.Request), Scheduled: scheduled}
}
