package repo

import (
	"context"

	"github.com/nikmy/meowmatch/internal/repo/models"
)

type Client interface {
	Requests() models.RequestsRepo
	Slots() models.SlotsRepo
	Interviews() models.InterviewsRepo

	// RunTxn executes do atomically across all repos. Repos must be
	// called with the context passed to do.
	RunTxn(ctx context.Context, do func(ctx context.Context) error) error

	Close(ctx context.Context) error
}

// Background is implemented by clients which need a maintenance loop.
type Background interface {
	Run(ctx context.Context) error
}
