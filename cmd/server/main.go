package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"rbset/api/grpcserver"
	"rbset/api/pb"
	"rbset/element"
	"rbset/infra/kafka"
	"rbset/infra/sequence"
	"rbset/rbtree"
	"rbset/service"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// ---------------- Events ----------------

	var pub service.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		if err := kafka.EnsureTopic(cfg.Kafka); err != nil {
			logrus.Fatalf("kafka topic: %v", err)
		}
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			logrus.Fatalf("kafka producer: %v", err)
		}
		defer producer.Close()
		pub = producer
	}

	// ---------------- Serve ----------------

	switch cfg.Kind {
	case element.Integer:
		err = serve(ctx, cfg, pub, rbtree.New[int](), element.ParseInteger)
	case element.String:
		err = serve(ctx, cfg, pub, rbtree.New[string](), element.ParseString)
	}
	if err != nil {
		logrus.Errorf("server exited: %v", err)
		os.Exit(1)
	}
}

func serve[E any](
	ctx context.Context,
	cfg Config,
	pub service.Publisher,
	tree *rbtree.Tree[E],
	parse func(string) (E, error),
) error {
	svc := service.NewSetService(tree, sequence.New(0), pub)

	if cfg.VerifyInterval > 0 {
		svc.StartVerifyJob(ctx, cfg.VerifyInterval)
	}

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return errors.Wrapf(err, "unable to listen on %s", cfg.Listen)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderedSetServer(grpcSrv, grpcserver.NewServer(svc, parse))

	go func() {
		<-ctx.Done()
		logrus.Info("shutting down")
		grpcSrv.GracefulStop()
	}()

	logrus.WithFields(logrus.Fields{
		"listen": cfg.Listen,
		"kind":   cfg.Kind,
		"events": pub != nil,
	}).Info("rbset server running")

	return grpcSrv.Serve(lis)
}
