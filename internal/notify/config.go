package notify

import (
	"time"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

type Config struct {
	Timeout  time.Duration   `yaml:"timeout"`
	Log      bool            `yaml:"log"`
	Telegram *TelegramConfig `yaml:"telegram"`
	Kafka    *KafkaConfig    `yaml:"kafka"`
}

// New builds a notifier from every configured channel. The returned close
// function flushes buffered channels.
func New(cfg Config, log logger.Logger) (Notifier, func() error, error) {
	var (
		m      Multi
		closer = func() error { return nil }
	)

	if cfg.Log {
		m = append(m, NewLog(log))
	}

	if cfg.Telegram != nil {
		tg, err := NewTelegram(*cfg.Telegram, log)
		if err != nil {
			return nil, nil, err
		}
		m = append(m, tg)
	}

	if cfg.Kafka != nil {
		k, err := NewKafka(*cfg.Kafka, log)
		if err != nil {
			return nil, nil, errors.WrapFail(err, "init kafka notifier")
		}
		m = append(m, k)
		closer = k.Close
	}

	return m, closer, nil
}
