package repository_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/matching"
	"github.com/oggyb/pharma-match/internal/repository"
)

// setupFileDB opens a WAL sqlite file with several connections, so that
// statements from different goroutines really interleave.
func setupFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matching.db")
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate", path)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err, "failed to open sqlite")

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(8)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(database), "failed to migrate")
	return database
}

// run starts n goroutines on fn together and waits for all of them.
func run(n int, fn func(i int)) {
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			fn(i)
		}(i)
	}
	close(start)
	wg.Wait()
}

func TestQuotaConsume_ConcurrentDevices(t *testing.T) {
	ctx := context.Background()
	gdb := setupFileDB(t)
	repo := repository.NewQuotaRepository(gdb)
	q := matching.Quota{ActorID: 1, Kind: matching.ActionSuperlike, PeriodKey: "d:2026-10-16", PeriodStart: t0.Truncate(24 * time.Hour), Limit: 3}

	const devices = 12
	allowed := make([]bool, devices)
	errs := make([]error, devices)
	run(devices, func(i int) {
		_, allowed[i], errs[i] = repo.Consume(ctx, q, true)
	})

	n := 0
	for i := range allowed {
		require.NoError(t, errs[i])
		if allowed[i] {
			n++
		}
	}
	assert.Equal(t, 3, n)

	got, ok, err := repo.Get(ctx, 1, matching.ActionSuperlike, "d:2026-10-16")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, got.Used)
}

func TestEngineOverSQLite_ConcurrentSuperlikes(t *testing.T) {
	ctx := context.Background()
	gdb := setupFileDB(t)
	require.NoError(t, db.SeedMinimalTestData(gdb))
	e := newEngine(gdb, nil)

	// animator 3 is on the free tier: one super-like per day
	const missions = 6
	for i := 0; i < missions; i++ {
		extra := db.Target{ID: uint64(410 + i), Kind: "mission", OwnerID: 4, Status: "active"}
		require.NoError(t, gdb.Create(&extra).Error)
	}

	errs := make([]error, missions)
	run(missions, func(i int) {
		_, errs[i] = e.Swipe(ctx, matching.SwipeRequest{ActorID: 3, Kind: matching.KindMission, TargetID: uint64(410 + i), Decision: matching.DecisionSuperlike})
	})

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, errors.Is(err, matching.ErrQuotaExceeded), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, ok)

	var superlikes int64
	require.NoError(t, gdb.Model(&db.SwipeAction{}).Where("actor_id = ? AND decision = ?", 3, "superlike").Count(&superlikes).Error)
	assert.Equal(t, int64(1), superlikes)

	snap, err := e.GetQuota(ctx, 3, matching.ActionSuperlike)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Used)
}

func TestEngineOverSQLite_ConcurrentSuperlikeReplay(t *testing.T) {
	ctx := context.Background()
	gdb := setupFileDB(t)
	require.NoError(t, db.SeedMinimalTestData(gdb))
	e := newEngine(gdb, nil)

	// recruiter 2 is premium; the same super-like from several devices costs one unit
	const devices = 6
	errs := make([]error, devices)
	run(devices, func(i int) {
		_, errs[i] = e.Swipe(ctx, matching.SwipeRequest{ActorID: 2, Kind: matching.KindCandidate, TargetID: 101, ContextID: 201, Decision: matching.DecisionSuperlike})
	})
	for _, err := range errs {
		require.NoError(t, err)
	}

	snap, err := e.GetQuota(ctx, 2, matching.ActionSuperlike)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Used)
	assert.Equal(t, 9, snap.Remaining)
}
