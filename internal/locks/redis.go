package locks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
	Retry    time.Duration `yaml:"retry"`
}

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedis(client redis.UniversalClient, cfg RedisConfig, log logger.Logger) *Redis {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	if cfg.Retry <= 0 {
		cfg.Retry = 20 * time.Millisecond
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "meowmatch:lock:"
	}

	return &Redis{
		client: client,
		cfg:    cfg,
		log:    log.With("redis_locker"),
	}
}

// Redis locks keys across processes sharing one redis. A lock expires
// after TTL even if its holder dies.
type Redis struct {
	client redis.UniversalClient
	cfg    RedisConfig
	log    logger.Logger
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	full := r.cfg.Prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.cfg.Retry)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, full, token, r.cfg.TTL).Result()
		if err != nil {
			return nil, errors.WrapFailf(err, "set %s", full)
		}
		if ok {
			return r.unlocker(full, token), nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, errors.Wrap(errors.Join(ErrNotAcquired, ctx.Err()), key)
		}
	}
}

func (r *Redis) unlocker(key, token string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.TTL)
		defer cancel()

		err := releaseScript.Run(ctx, r.client, []string{key}, token).Err()
		if err != nil {
			r.log.Warn(errors.WrapFailf(err, "release lock %s", key))
		}
	}
}
