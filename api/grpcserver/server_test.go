package grpcserver

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"rbset/api/pb"
	"rbset/element"
	"rbset/infra/sequence"
	"rbset/rbtree"
	"rbset/service"
)

func newClient[E any](t *testing.T, srv *Server[E]) pb.OrderedSetClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	pb.RegisterOrderedSetServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewOrderedSetClient(conn)
}

func newIntegerServer() *Server[int] {
	svc := service.NewSetService(rbtree.New[int](), sequence.New(0), nil)
	return NewServer(svc, element.ParseInteger)
}

func TestInsertContainsDump(t *testing.T) {
	ctx := context.Background()
	client := newClient(t, newIntegerServer())

	empty, err := client.IsEmpty(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.True(t, empty.GetValue())

	dump, err := client.Dump(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "Empty tree", dump.GetValue())

	for _, v := range []string{"10", "20", "30"} {
		res, err := client.Insert(ctx, wrapperspb.String(v))
		require.NoError(t, err)
		assert.True(t, res.GetValue(), "insert %s", v)
	}

	dup, err := client.Insert(ctx, wrapperspb.String("20"))
	require.NoError(t, err)
	assert.False(t, dup.GetValue())

	found, err := client.Contains(ctx, wrapperspb.String("30"))
	require.NoError(t, err)
	assert.True(t, found.GetValue())

	missing, err := client.Contains(ctx, wrapperspb.String("31"))
	require.NoError(t, err)
	assert.False(t, missing.GetValue())

	dump, err = client.Dump(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "20 *10 *30 ", dump.GetValue())

	empty, err = client.IsEmpty(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.False(t, empty.GetValue())
}

func TestInvalidElement(t *testing.T) {
	ctx := context.Background()
	client := newClient(t, newIntegerServer())

	_, err := client.Insert(ctx, wrapperspb.String("ten"))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Contains(ctx, wrapperspb.String("1.5"))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	empty, err := client.IsEmpty(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.True(t, empty.GetValue())
}

func TestNilElementIsInvalidArgument(t *testing.T) {
	svc := service.NewSetService(
		rbtree.NewFunc(func(a, b *string) int {
			switch {
			case *a < *b:
				return -1
			case *a > *b:
				return 1
			}
			return 0
		}),
		sequence.New(0),
		nil,
	)
	// an empty request maps to a nil element
	parse := func(s string) (*string, error) {
		if s == "" {
			return nil, nil
		}
		return &s, nil
	}
	client := newClient(t, NewServer(svc, parse))

	_, err := client.Insert(context.Background(), wrapperspb.String(""))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	ok, err := client.Insert(context.Background(), wrapperspb.String("a"))
	require.NoError(t, err)
	assert.True(t, ok.GetValue())
}

func TestStringServer(t *testing.T) {
	svc := service.NewSetService(rbtree.New[string](), sequence.New(0), nil)
	client := newClient(t, NewServer(svc, element.ParseString))
	ctx := context.Background()

	for _, v := range []string{"m", "c", "x", "a"} {
		_, err := client.Insert(ctx, wrapperspb.String(v))
		require.NoError(t, err)
	}
	dump, err := client.Dump(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "m c *a x ", dump.GetValue())
}
