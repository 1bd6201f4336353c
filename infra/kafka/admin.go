package kafka

import (
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EnsureTopic creates the configured topic unless it already exists.
// kafka-go has no admin client for this, so sarama is used.
func EnsureTopic(cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return errors.Wrap(err, "invalid kafka config")
	}

	admin, err := sarama.NewClusterAdmin(cfg.Brokers, saramaConfig(cfg))
	if err != nil {
		return errors.Wrap(err, "could not open new connection to kafka")
	}
	defer admin.Close()

	topics, err := admin.ListTopics()
	if err != nil {
		return errors.Wrap(err, "unable to list topics")
	}
	if _, ok := topics[cfg.Topic]; ok {
		return nil
	}

	err = admin.CreateTopic(cfg.Topic, &sarama.TopicDetail{
		NumPartitions:     int32(cfg.Partitions),
		ReplicationFactor: int16(cfg.ReplicationFactor),
	}, false)
	if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
		return errors.Wrapf(err, "unable to create kafka topic '%s'", cfg.Topic)
	}

	logrus.WithFields(logrus.Fields{"pkg": "kafka", "topic": cfg.Topic}).Info("created topic")
	return nil
}

func saramaConfig(cfg Config) *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = "rbset"
	sc.Net.DialTimeout = cfg.DialTimeout
	return sc
}
