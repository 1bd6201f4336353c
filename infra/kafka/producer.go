package kafka

import (
	"context"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Producer publishes keyed messages to a single topic.
type Producer struct {
	writer *kafka.Writer
	topic  string
	log    *logrus.Entry
}

func NewProducer(cfg Config) (*Producer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid kafka config")
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: cfg.BatchTimeout,
			Transport: &kafka.Transport{
				DialTimeout: cfg.DialTimeout,
			},
		},
		topic: cfg.Topic,
		log:   logrus.WithFields(logrus.Fields{"pkg": "kafka", "topic": cfg.Topic}),
	}, nil
}

// Send writes one message. Messages with the same key land on the same
// partition.
func (p *Producer) Send(
	ctx context.Context,
	key []byte,
	value []byte,
) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to publish to '%s'", p.topic)
	}
	return nil
}

func (p *Producer) Close() error {
	p.log.Debug("closing producer")
	return p.writer.Close()
}
