package main

import (
	"flag"
	"strings"
	"time"

	"github.com/pkg/errors"

	"rbset/element"
	"rbset/infra/kafka"
)

const (
	DefaultListen         = ":50051"
	DefaultKind           = element.Integer
	DefaultVerifyInterval = 30 * time.Second
)

// Config holds the server settings gathered from the command line.
type Config struct {
	Listen         string
	Kind           element.Kind
	VerifyInterval time.Duration
	Debug          bool

	// Kafka publishing is enabled when at least one broker is set.
	Kafka kafka.Config
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var (
		cfg     Config
		kind    string
		brokers string
	)

	fs.StringVar(&cfg.Listen, "listen", DefaultListen, "gRPC listen address")
	fs.StringVar(&kind, "kind", string(DefaultKind), "element type: Integer or String")
	fs.DurationVar(&cfg.VerifyInterval, "verify-interval", DefaultVerifyInterval, "invariant check interval, 0 disables")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	fs.StringVar(&brokers, "kafka-brokers", "", "comma separated broker list for insert events")
	fs.StringVar(&cfg.Kafka.Topic, "kafka-topic", kafka.DefaultTopic, "topic for insert events")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	k, err := element.ParseKind(kind)
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid -kind")
	}
	cfg.Kind = k

	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Listen == "" {
		return errors.New("listen address cannot be empty")
	}
	if c.VerifyInterval < 0 {
		return errors.New("verify interval cannot be negative")
	}
	return nil
}
