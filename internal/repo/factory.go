package repo

import (
	"context"

	"github.com/nikmy/meowmatch/internal/repo/internal/memory"
	mongorepo "github.com/nikmy/meowmatch/internal/repo/internal/mongo"
	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

func New(ctx context.Context, log logger.Logger, cfg Config) (Client, error) {
	switch cfg.Driver {
	case DriverMongo:
		return NewMongoClient(ctx, log, cfg.Mongo)
	case DriverMemory, "":
		return NewMemoryClient(log, cfg.Memory)
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func NewMongoClient(ctx context.Context, log logger.Logger, cfg MongoConfig) (Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	c, err := mongorepo.NewClient(ctx, log, cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "init mongo client")
	}
	return c, nil
}

// NewMemoryClient returns a process-local client. With a snapshot path
// configured the state survives restarts.
func NewMemoryClient(log logger.Logger, cfg MemoryConfig) (Client, error) {
	c, err := memory.New(log, cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "init memory client")
	}
	return c, nil
}
