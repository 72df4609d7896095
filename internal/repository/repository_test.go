package repository_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/matching"
	"github.com/oggyb/pharma-match/internal/repository"
)

// setupTestDB opens a private in-memory sqlite database with the full schema.
// A single connection keeps every handle on the same memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	database, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err, "failed to open sqlite")

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(database), "failed to migrate")
	return database
}

var t0 = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func seedActors(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	actors := []db.Actor{
		{ID: 1, Role: "candidate", Tier: "free"},
		{ID: 2, Role: "recruiter", Tier: "premium"},
		{ID: 3, Role: "candidate", Tier: "free"},
		{ID: 4, Role: "candidate", Tier: "unlimited"},
	}
	require.NoError(t, gdb.Create(&actors).Error)
}

func TestSwipeUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewSwipeRepository(gdb)
	key := matching.PairKey{ActorID: 1, Kind: matching.KindOffer, TargetID: 201, ContextID: 201}

	// insert like
	err := repo.Upsert(ctx, matching.SwipeAction{ActorID: 1, Kind: matching.KindOffer, TargetID: 201, ContextID: 201, OwnerID: 2, Decision: matching.DecisionLike, CreatedAt: t0, UpdatedAt: t0})
	require.NoError(t, err)

	// overwrite with dislike
	later := t0.Add(time.Hour)
	err = repo.Upsert(ctx, matching.SwipeAction{ActorID: 1, Kind: matching.KindOffer, TargetID: 201, ContextID: 201, OwnerID: 2, Decision: matching.DecisionDislike, CreatedAt: later, UpdatedAt: later})
	require.NoError(t, err)

	var count int64
	require.NoError(t, gdb.Model(&db.SwipeAction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, found, err := repo.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, matching.DecisionDislike, got.Decision)
	assert.True(t, got.CreatedAt.Equal(t0), "created_at kept")
	assert.True(t, got.UpdatedAt.Equal(later))

	_, found, err = repo.Get(ctx, matching.PairKey{ActorID: 1, Kind: matching.KindOffer, TargetID: 999, ContextID: 999})
	require.NoError(t, err)
	assert.False(t, found)
}

func like(actor, owner, target uint64, kind matching.TargetKind, ctxID uint64, at time.Time) matching.SwipeAction {
	return matching.SwipeAction{ActorID: actor, Kind: kind, TargetID: target, ContextID: ctxID, OwnerID: owner, Decision: matching.DecisionLike, CreatedAt: at, UpdatedAt: at}
}

func TestListInboundAndPagination(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewSwipeRepository(gdb)

	// candidates 1, 3, 4 liked offer 201 of recruiter 2
	require.NoError(t, repo.Upsert(ctx, like(1, 2, 201, matching.KindOffer, 201, t0)))
	require.NoError(t, repo.Upsert(ctx, like(3, 2, 201, matching.KindOffer, 201, t0.Add(time.Minute))))
	require.NoError(t, repo.Upsert(ctx, like(4, 2, 201, matching.KindOffer, 201, t0.Add(2*time.Minute))))
	// recruiter turned candidate 4 down in that context → excluded
	dislike := like(2, 4, 104, matching.KindCandidate, 201, t0.Add(3*time.Minute))
	dislike.Decision = matching.DecisionDislike
	require.NoError(t, repo.Upsert(ctx, dislike))

	page, next, err := repo.ListInbound(ctx, 2, false, "", 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, uint64(3), page[0].ActorID)
	require.NotEmpty(t, next)

	page, next, err = repo.ListInbound(ctx, 2, false, next, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, uint64(1), page[0].ActorID)
	assert.Empty(t, next)

	count, err := repo.CountInbound(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, _, err = repo.ListInbound(ctx, 2, false, "garbage!", 10)
	assert.Error(t, err)
}

func TestListInbound_OnlyNew(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewSwipeRepository(gdb)

	// candidate 1 liked offer 201, and recruiter 2 liked back → mutual
	require.NoError(t, repo.Upsert(ctx, like(1, 2, 201, matching.KindOffer, 201, t0)))
	require.NoError(t, repo.Upsert(ctx, like(2, 1, 101, matching.KindCandidate, 201, t0.Add(time.Minute))))
	// candidate 3 liked 201, not mutual
	require.NoError(t, repo.Upsert(ctx, like(3, 2, 201, matching.KindOffer, 201, t0.Add(2*time.Minute))))

	page, _, err := repo.ListInbound(ctx, 2, true, "", 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, uint64(3), page[0].ActorID)

	all, _, err := repo.ListInbound(ctx, 2, false, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMatchCreateIfAbsentAndClose(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewMatchRepository(gdb)

	m := matching.Match{ID: "a0b1", ActorA: 1, ActorB: 2, Kind: matching.KindOffer, ContextTargetID: 201, Score: 88, Status: matching.MatchActive, MatchedAt: t0}
	created, err := repo.CreateIfAbsent(ctx, m)
	require.NoError(t, err)
	assert.True(t, created)

	m.ID = "c2d3"
	created, err = repo.CreateIfAbsent(ctx, m)
	require.NoError(t, err)
	assert.False(t, created)

	got, ok, err := repo.GetByPair(ctx, 1, 2, 201)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a0b1", got.ID)
	assert.Equal(t, 88, got.Score)

	// another context is another match
	m.ID, m.ContextTargetID = "e4f5", 202
	created, err = repo.CreateIfAbsent(ctx, m)
	require.NoError(t, err)
	assert.True(t, created)

	n, err := repo.Close(ctx, 1, 2, 201, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err := repo.ListForActor(ctx, 2, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, uint64(202), active[0].ContextTargetID)

	n, err = repo.Close(ctx, 1, 2, 0, t0.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	all, err := repo.ListForActor(ctx, 1, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, m := range all {
		assert.Equal(t, matching.MatchClosed, m.Status)
		assert.NotNil(t, m.ClosedAt)
	}
}

func TestQuotaConsume(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewQuotaRepository(gdb)
	q := matching.Quota{ActorID: 1, Kind: matching.ActionSuperlike, PeriodKey: "d:2026-10-16", PeriodStart: t0.Truncate(24 * time.Hour), Limit: 2}

	for want := 1; want <= 2; want++ {
		used, allowed, err := repo.Consume(ctx, q, true)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, want, used)
	}

	used, allowed, err := repo.Consume(ctx, q, true)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 2, used)

	// ungated counting for unlimited tiers
	used, allowed, err = repo.Consume(ctx, q, false)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 3, used)

	got, ok, err := repo.Get(ctx, 1, matching.ActionSuperlike, "d:2026-10-16")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, got.Used)
	assert.Equal(t, 2, got.Limit)

	// a new period starts from zero
	next := q
	next.PeriodKey, next.PeriodStart = "d:2026-10-17", q.PeriodStart.Add(24*time.Hour)
	used, allowed, err = repo.Consume(ctx, next, true)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, used)

	pruned, err := repo.PruneBefore(ctx, next.PeriodStart)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)
	_, ok, err = repo.Get(ctx, 1, matching.ActionSuperlike, "d:2026-10-16")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlocks(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	repo := repository.NewBlockRepository(gdb)

	require.NoError(t, repo.Block(ctx, 1, 2, t0))
	require.NoError(t, repo.Block(ctx, 1, 2, t0)) // idempotent
	require.NoError(t, repo.Block(ctx, 3, 1, t0))

	blocked, err := repo.AreBlocked(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = repo.AreBlocked(ctx, 2, 3)
	require.NoError(t, err)
	assert.False(t, blocked)

	with, err := repo.BlockedWith(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[uint64]struct{}{2: {}, 3: {}}, with)
}

func TestActorAndTargetRepositories(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	seedActors(t, gdb)
	actors := repository.NewActorRepository(gdb)
	targets := repository.NewTargetRepository(gdb)

	expired := t0.Add(-time.Hour)
	windowStart := t0.Add(24 * time.Hour)
	for _, tg := range []matching.Target{
		{ID: 101, Kind: matching.KindCandidate, OwnerID: 1, Attributes: matching.Attributes{
			Location:      &matching.Location{Lat: 48.85, Lon: 2.35},
			ContractTypes: []string{"cdi", "cdd"},
			Diploma:       "pharmacist",
			Availability:  []matching.Window{{Start: windowStart, End: windowStart.Add(48 * time.Hour)}},
		}},
		{ID: 201, Kind: matching.KindOffer, OwnerID: 2, Attributes: matching.Attributes{
			RequiredDiploma: "pharmacist",
			Window:          &matching.Window{Start: windowStart, End: windowStart.Add(time.Hour)},
		}},
		{ID: 202, Kind: matching.KindOffer, OwnerID: 2, ExpiresAt: &expired},
		{ID: 203, Kind: matching.KindOffer, OwnerID: 2, Status: matching.TargetWithdrawn},
		{ID: 204, Kind: matching.KindOffer, OwnerID: 1},
	} {
		_, err := targets.Create(ctx, tg)
		require.NoError(t, err)
	}

	a, err := actors.GetActor(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, matching.RoleCandidate, a.Role)
	assert.Equal(t, matching.TierFree, a.Tier)
	assert.Equal(t, "pharmacist", a.Attributes.Diploma)
	assert.Equal(t, []string{"cdi", "cdd"}, a.Attributes.ContractTypes)
	require.NotNil(t, a.Attributes.Location)
	require.Len(t, a.Attributes.Availability, 1)
	assert.True(t, a.Attributes.Availability[0].Start.Equal(windowStart))

	_, err = actors.GetActor(ctx, 999)
	assert.ErrorIs(t, err, matching.ErrNotFound)

	tier, err := actors.TierOf(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, matching.TierUnlimited, tier)

	offer, err := targets.GetTarget(ctx, 201)
	require.NoError(t, err)
	require.NotNil(t, offer.Window)
	assert.Nil(t, offer.Location)

	_, err = targets.GetTarget(ctx, 999)
	assert.ErrorIs(t, err, matching.ErrNotFound)

	profile, err := targets.ProfileOf(ctx, 1, matching.KindCandidate)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), profile.ID)

	eligible, err := targets.ListEligible(ctx, matching.KindOffer, 1, t0)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, uint64(201), eligible[0].ID)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, repository.IsTransient(fmt.Errorf("tx: %w", &mysql.MySQLError{Number: 1213})))
	assert.False(t, repository.IsTransient(&mysql.MySQLError{Number: 1062}))
	assert.True(t, repository.IsTransient(&pgconn.PgError{Code: "40001"}))
	assert.False(t, repository.IsTransient(&pgconn.PgError{Code: "23505"}))
	assert.True(t, repository.IsTransient(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.False(t, repository.IsTransient(errors.New("boom")))
	assert.False(t, repository.IsTransient(nil))
}
