package kafka

import (
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultTopic             = "rbset.events"
	DefaultPartitions        = 1
	DefaultReplicationFactor = 1
	DefaultBatchTimeout      = 10 * time.Millisecond
	DefaultDialTimeout       = 10 * time.Second
)

// Config describes where insertion events are published.
type Config struct {
	Brokers           []string
	Topic             string
	Partitions        int
	ReplicationFactor int
	BatchTimeout      time.Duration
	DialTimeout       time.Duration
}

func (c Config) withDefaults() Config {
	if c.Topic == "" {
		c.Topic = DefaultTopic
	}
	if c.Partitions == 0 {
		c.Partitions = DefaultPartitions
	}
	if c.ReplicationFactor == 0 {
		c.ReplicationFactor = DefaultReplicationFactor
	}
	if c.BatchTimeout == 0 {
		c.BatchTimeout = DefaultBatchTimeout
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	return c
}

func (c Config) validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("brokers cannot be empty")
	}
	for _, b := range c.Brokers {
		if b == "" {
			return errors.New("broker address cannot be empty")
		}
	}
	if c.Partitions < 0 {
		return errors.New("partitions cannot be negative")
	}
	if c.ReplicationFactor < 0 || c.ReplicationFactor > 1<<15-1 {
		return errors.Errorf("replication factor %d out of range", c.ReplicationFactor)
	}
	return nil
}
