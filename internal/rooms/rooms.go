// Package rooms provisions meeting rooms for scheduled interviews.
package rooms

import (
	"context"
	"time"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

type Booking struct {
	InterviewID  string
	Start        time.Time
	Duration     time.Duration
	Participants []string
}

type Room struct {
	ID  string
	URL string
}

type Provisioner interface {
	Provision(ctx context.Context, booking Booking) (Room, error)

	// Release frees the room. Releasing an unknown room is not an error.
	Release(ctx context.Context, roomID string) error
}

type Driver string

const (
	DriverStatic Driver = "static"
	DriverHTTP   Driver = "http"
)

type Config struct {
	Driver Driver       `yaml:"driver"`
	Static StaticConfig `yaml:"static"`
	HTTP   HTTPConfig   `yaml:"http"`
}

func New(cfg Config, log logger.Logger) (Provisioner, error) {
	switch cfg.Driver {
	case DriverStatic, "":
		return NewStatic(cfg.Static), nil
	case DriverHTTP:
		return NewHTTP(cfg.HTTP, log)
	default:
		return nil, errors.Errorf("unknown rooms driver %q", cfg.Driver)
	}
}
