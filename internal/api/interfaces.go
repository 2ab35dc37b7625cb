package api

import (
	"context"
	"time"

	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/internal/scheduler"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type service interface {
	Submit(ctx context.Context, sub scheduler.Submission) (*scheduler.Result, error)
	Activate(ctx context.Context, requestID string) (*scheduler.Result, error)
	Pause(ctx context.Context, requestID string) (*models.InterviewRequest, error)
	UpdateAvailability(ctx context.Context, requestID string, points []time.Time) (*scheduler.Result, error)
	GetRequest(ctx context.Context, requestID string) (*models.InterviewRequest, error)

	GetInterview(ctx context.Context, interviewID string) (*models.Interview, error)
	ListInterviews(ctx context.Context, ownerID string) ([]models.Interview, error)
	Reject(ctx context.Context, interviewID string, ownerID string) error
	Complete(ctx context.Context, interviewID string) error
}
