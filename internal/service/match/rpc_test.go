package match_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	pb "github.com/oggyb/matching-service/internal/proto/matchpb"
	"github.com/oggyb/matching-service/internal/server"
	"github.com/oggyb/matching-service/internal/service/match"
)

func dialBufconn(t *testing.T) *grpc.ClientConn {
	t.Helper()
	_, _, appCtx := setupService(t)

	lis := bufconn.Listen(1 << 20)
	srv, _ := server.NewGRPCServer(match.NewRegistrar(appCtx))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func pair(t *testing.T, a, b string, extra map[string]any) *structpb.Struct {
	t.Helper()
	m := map[string]any{"partner_id_1": a, "partner_id_2": b}
	for k, v := range extra {
		m[k] = v
	}
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestRPC_MatchFlow(t *testing.T) {
	ctx := context.Background()
	client := pb.NewMatchServiceClient(dialBufconn(t))

	out, err := client.RequestMatch(ctx, pair(t, "u1", "u2", map[string]any{"match_status": 0}))
	require.NoError(t, err)
	assert.Equal(t, "REQUESTED", out.GetFields()["match_status"].GetStringValue())

	_, err = client.RequestMatch(ctx, pair(t, "u2", "u1", nil))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	out, err = client.AcceptMatch(ctx, pair(t, "u2", "u1", nil))
	require.NoError(t, err)
	assert.Equal(t, "MATCHED", out.GetFields()["match_status"].GetStringValue())
	assert.Equal(t, "u1", out.GetFields()["partner_id_1"].GetStringValue())

	_, err = client.DeclineMatch(ctx, pair(t, "u1", "u2", nil))
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	out, err = client.GetMatch(ctx, pair(t, "u1", "u2", nil))
	require.NoError(t, err)
	assert.Equal(t, "MATCHED", out.GetFields()["match_status"].GetStringValue())
}

func TestRPC_Errors(t *testing.T) {
	ctx := context.Background()
	client := pb.NewMatchServiceClient(dialBufconn(t))

	_, err := client.GetMatch(ctx, pair(t, "a", "b", nil))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.RequestMatch(ctx, pair(t, "a", "a", nil))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.RequestMatch(ctx, pair(t, "a", "b", map[string]any{"match_status": "MATCHED"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.RequestMatch(ctx, pair(t, "a", "b", map[string]any{"match_status": 1.5}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRPC_Health(t *testing.T) {
	conn := dialBufconn(t)
	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
