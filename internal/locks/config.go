package locks

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

type Driver string

const (
	DriverLocal Driver = "local"
	DriverRedis Driver = "redis"
)

type Config struct {
	Driver Driver      `yaml:"driver"`
	Redis  RedisConfig `yaml:"redis"`
}

// New builds the configured locker. The returned closer releases the
// connections the locker owns.
func New(ctx context.Context, cfg Config, log logger.Logger) (Locker, func() error, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocal(), func() error { return nil }, nil
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := client.Ping(pingCtx).Err()
		if err != nil {
			_ = client.Close()
			return nil, nil, errors.WrapFailf(err, "ping redis at %s", cfg.Redis.Addr)
		}
		return NewRedis(client, cfg.Redis, log), client.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown locks driver %q", cfg.Driver)
	}
}
