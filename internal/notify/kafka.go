package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
)

type KafkaConfig struct {
	Brokers      []string      `yaml:"brokers"`
	Topic        string        `yaml:"topic"`
	BatchTimeout time.Duration `yaml:"batchTimeout"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafka publishes events as JSON keyed by owner id, so events of one
// owner stay ordered within a partition.
func NewKafka(cfg KafkaConfig, log logger.Logger) (*Kafka, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.Error("kafka brokers and topic must be set")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafka(w, log), nil
}

func newKafka(w messageWriter, log logger.Logger) *Kafka {
	return &Kafka{
		writer: w,
		log:    log.With("kafka_producer"),
	}
}

type Kafka struct {
	writer messageWriter
	log    logger.Logger
}

func (k *Kafka) Notify(ctx context.Context, events ...Event) error {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return errors.WrapFail(err, "marshal event to json")
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.OwnerID),
			Value: value,
			Headers: []kafka.Header{
				{Key: "kind", Value: []byte(e.Kind)},
			},
		})
	}

	err := k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		return errors.WrapFail(err, "write messages")
	}
	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
