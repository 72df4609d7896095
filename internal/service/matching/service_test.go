package matching_test

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oggyb/pharma-match/internal/app"
	"github.com/oggyb/pharma-match/internal/cache"
	"github.com/oggyb/pharma-match/internal/config"
	"github.com/oggyb/pharma-match/internal/db"
	svcErr "github.com/oggyb/pharma-match/internal/errors"
	"github.com/oggyb/pharma-match/internal/logger"
	pb "github.com/oggyb/pharma-match/internal/proto/matching"
	"github.com/oggyb/pharma-match/internal/server"
	matchingsvc "github.com/oggyb/pharma-match/internal/service/matching"
)

//
// Test helpers
//

type fixture struct {
	client pb.MatchingServiceClient
	conn   *grpc.ClientConn
	db     *gorm.DB
	redis  *miniredis.Miniredis
}

// setupService spins up an in-memory SQLite DB seeded with the minimal
// marketplace, a miniredis, and serves the MatchingService over bufconn.
//
// Dataset (db.SeedMinimalTestData):
//   - 1 candidate (profile 101), 2 recruiter (offer 201)
//   - 3 animator (profile 301), 4 laboratory (mission 401)
//   - candidate 1 already liked offer 201
func setupService(t *testing.T) *fixture {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dbase, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err)
	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(dbase))
	require.NoError(t, db.SeedMinimalTestData(dbase))

	mr := miniredis.RunT(t)
	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = redisCache.Close() })

	appCtx, err := app.Build(cfg, dbase, redisCache, logger.Discard())
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(logger.Discard(), matchingsvc.NewRegistrar(appCtx))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &fixture{client: pb.NewMatchingServiceClient(conn), conn: conn, db: dbase, redis: mr}
}

//
// Tests
//

// TestSwipeCompletesMatch: recruiter 2 likes candidate 101 for offer 201,
// which candidate 1 already liked in the seed.
func TestSwipeCompletesMatch(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	resp, err := f.client.Swipe(ctx, &pb.SwipeRequest{
		ActorId:   "2",
		Kind:      "candidate",
		TargetId:  "101",
		ContextId: "201",
		Decision:  "like",
	})
	require.NoError(t, err)
	assert.True(t, resp.GetMatched())
	assert.True(t, resp.GetCreated())
	assert.NotEmpty(t, resp.GetMatchId())
	assert.Equal(t, "1", resp.GetCounterpartyId())

	matches, err := f.client.ListMatches(ctx, &pb.ListMatchesRequest{ActorId: "1"})
	require.NoError(t, err)
	require.Len(t, matches.GetMatches(), 1)
	assert.Equal(t, resp.GetMatchId(), matches.GetMatches()[0].GetId())
	assert.Equal(t, "2", matches.GetMatches()[0].GetCounterpartyId())

	// both participants get a notification row
	var pending int64
	require.NoError(t, f.db.Model(&db.MatchNotification{}).Count(&pending).Error)
	assert.Equal(t, int64(2), pending)
}

// TestListInboundLikes: recruiter 2 sees candidate 1 until it likes back
// (only_new) or dislikes (always).
func TestListInboundLikes(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	resp, err := f.client.ListInboundLikes(ctx, &pb.ListInboundLikesRequest{OwnerId: "2"})
	require.NoError(t, err)
	require.Len(t, resp.GetLikers(), 1)
	assert.Equal(t, "1", resp.GetLikers()[0].GetActorId())
	assert.Equal(t, "like", resp.GetLikers()[0].GetDecision())

	_, err = f.client.Swipe(ctx, &pb.SwipeRequest{ActorId: "2", Kind: "candidate", TargetId: "101", ContextId: "201", Decision: "like"})
	require.NoError(t, err)

	resp, err = f.client.ListInboundLikes(ctx, &pb.ListInboundLikesRequest{OwnerId: "2", OnlyNew: true})
	require.NoError(t, err)
	assert.Empty(t, resp.GetLikers())

	_, err = f.client.ListInboundLikes(ctx, &pb.ListInboundLikesRequest{OwnerId: "2", PageToken: "%%%"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestCountInboundLikesCache: the count is cached and dropped by a swipe.
func TestCountInboundLikesCache(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	// first call → DB
	resp, err := f.client.CountInboundLikes(ctx, &pb.CountInboundLikesRequest{OwnerId: "2"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.GetCount())
	assert.True(t, f.redis.Exists("inbound:count:2"))

	// second call → cache
	resp, err = f.client.CountInboundLikes(ctx, &pb.CountInboundLikesRequest{OwnerId: "2"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.GetCount())

	// the recruiter turns the candidate down, so the like no longer counts
	_, err = f.client.Swipe(ctx, &pb.SwipeRequest{ActorId: "2", Kind: "candidate", TargetId: "101", ContextId: "201", Decision: "dislike"})
	require.NoError(t, err)
	assert.False(t, f.redis.Exists("inbound:count:2"))

	resp, err = f.client.CountInboundLikes(ctx, &pb.CountInboundLikesRequest{OwnerId: "2"})
	require.NoError(t, err)
	assert.Zero(t, resp.GetCount())
}

// TestGetQuotaAfterSuperlike: animator 3 is on the free tier (3 per day).
func TestGetQuotaAfterSuperlike(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	q, err := f.client.GetQuota(ctx, &pb.GetQuotaRequest{ActorId: "3"})
	require.NoError(t, err)
	assert.Equal(t, int32(0), q.GetUsed())
	assert.Equal(t, int32(3), q.GetRemaining())

	resp, err := f.client.Swipe(ctx, &pb.SwipeRequest{ActorId: "3", Kind: "mission", TargetId: "401", Decision: "superlike"})
	require.NoError(t, err)
	require.NotNil(t, resp.QuotaRemaining)
	assert.Equal(t, int32(2), resp.GetQuotaRemaining())

	// the cached snapshot was dropped by the swipe
	q, err = f.client.GetQuota(ctx, &pb.GetQuotaRequest{ActorId: "3", Kind: "superlike"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), q.GetUsed())
	assert.Equal(t, int32(2), q.GetRemaining())
	assert.False(t, q.GetUnlimited())
}

func TestGetQueue(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	resp, err := f.client.GetQueue(ctx, &pb.GetQueueRequest{ActorId: "4", ContextId: "401"})
	require.NoError(t, err)
	require.Len(t, resp.GetItems(), 1)
	assert.Equal(t, "301", resp.GetItems()[0].GetTargetId())
	assert.Equal(t, int32(100), resp.GetItems()[0].GetScore())

	_, err = f.client.GetQueue(ctx, &pb.GetQueueRequest{ActorId: "4", ContextId: "401", Sort: "alphabetical"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBlockClosesMatch(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	_, err := f.client.Swipe(ctx, &pb.SwipeRequest{ActorId: "2", Kind: "candidate", TargetId: "101", ContextId: "201", Decision: "like"})
	require.NoError(t, err)

	blocked, err := f.client.Block(ctx, &pb.BlockRequest{ActorId: "1", BlockedId: "2"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), blocked.GetClosedMatches())

	active, err := f.client.ListMatches(ctx, &pb.ListMatchesRequest{ActorId: "1"})
	require.NoError(t, err)
	assert.Empty(t, active.GetMatches())

	all, err := f.client.ListMatches(ctx, &pb.ListMatchesRequest{ActorId: "1", IncludeClosed: true})
	require.NoError(t, err)
	require.Len(t, all.GetMatches(), 1)
	assert.Equal(t, "closed", all.GetMatches()[0].GetStatus())

	// swiping across a block is refused
	_, err = f.client.Swipe(ctx, &pb.SwipeRequest{ActorId: "1", Kind: "offer", TargetId: "201", Decision: "like"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Equal(t, svcErr.ReasonBlocked, svcErr.Reason(err))
}

func TestInvalidArguments(t *testing.T) {
	ctx := context.Background()
	f := setupService(t)

	tests := []struct {
		name string
		req  *pb.SwipeRequest
	}{
		{"missing actor", &pb.SwipeRequest{Kind: "offer", TargetId: "201", Decision: "like"}},
		{"bad actor", &pb.SwipeRequest{ActorId: "abc", Kind: "offer", TargetId: "201", Decision: "like"}},
		{"bad decision", &pb.SwipeRequest{ActorId: "1", Kind: "offer", TargetId: "201", Decision: "maybe"}},
		{"wrong kind for role", &pb.SwipeRequest{ActorId: "1", Kind: "mission", TargetId: "401", Decision: "like"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.client.Swipe(ctx, tt.req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestHealth(t *testing.T) {
	f := setupService(t)

	resp, err := healthpb.NewHealthClient(f.conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
