package grpcserver

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"rbset/api/pb"
	"rbset/rbtree"
	"rbset/service"
)

// Server adapts SetService to gRPC. Request text is turned into elements
// with parse.
type Server[E any] struct {
	pb.UnimplementedOrderedSetServer
	svc   *service.SetService[E]
	parse func(string) (E, error)
	log   *logrus.Entry
}

func NewServer[E any](svc *service.SetService[E], parse func(string) (E, error)) *Server[E] {
	return &Server[E]{
		svc:   svc,
		parse: parse,
		log:   logrus.WithField("pkg", "grpcserver"),
	}
}

// -------------------- Commands --------------------

func (s *Server[E]) Insert(
	ctx context.Context,
	req *wrapperspb.StringValue,
) (*wrapperspb.BoolValue, error) {
	elem, err := s.parse(req.GetValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid element: %s", err)
	}

	ok, err := s.svc.Insert(ctx, elem)
	if err != nil {
		if errors.Is(err, rbtree.ErrNilElement) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.log.WithFields(logrus.Fields{
		"element":  req.GetValue(),
		"inserted": ok,
	}).Debug("Insert")

	return wrapperspb.Bool(ok), nil
}

// -------------------- Queries --------------------

func (s *Server[E]) Contains(
	ctx context.Context,
	req *wrapperspb.StringValue,
) (*wrapperspb.BoolValue, error) {
	elem, err := s.parse(req.GetValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid element: %s", err)
	}
	return wrapperspb.Bool(s.svc.Contains(ctx, elem)), nil
}

func (s *Server[E]) IsEmpty(
	ctx context.Context,
	_ *emptypb.Empty,
) (*wrapperspb.BoolValue, error) {
	return wrapperspb.Bool(s.svc.IsEmpty(ctx)), nil
}

func (s *Server[E]) Dump(
	ctx context.Context,
	_ *emptypb.Empty,
) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(s.svc.Dump(ctx)), nil
}
