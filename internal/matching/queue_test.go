package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []QueueItem) []uint64 {
	out := make([]uint64, 0, len(items))
	for _, it := range items {
		out = append(out, it.Target.ID)
	}
	return out
}

func TestQueue_SortKeys(t *testing.T) {
	s := newMemStore()
	marketplace(s)
	e := s.engine(nil)
	ctx := context.Background()

	page, err := e.GetQueue(ctx, 1, Filters{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{201, 301}, ids(page.Items))
	assert.Equal(t, 100, page.Items[0].Score)
	require.NotNil(t, page.Items[1].DistanceKM)

	page, err = e.GetQueue(ctx, 1, Filters{Sort: SortRecency})
	require.NoError(t, err)
	assert.Equal(t, []uint64{301, 201}, ids(page.Items))

	page, err = e.GetQueue(ctx, 1, Filters{Sort: SortDistance})
	require.NoError(t, err)
	assert.Equal(t, []uint64{201, 301}, ids(page.Items))
}

func TestQueue_TiesBrokenByID(t *testing.T) {
	s := newMemStore()
	s.addActor(Actor{ID: 1, Role: RoleCandidate})
	for _, id := range []uint64{503, 501, 502} {
		s.addTarget(Target{ID: id, Kind: KindOffer, OwnerID: 9, CreatedAt: fixedNow})
	}

	page, err := s.engine(nil).GetQueue(context.Background(), 1, Filters{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{501, 502, 503}, ids(page.Items))
}

func TestQueue_Exclusions(t *testing.T) {
	s := newMemStore()
	marketplace(s)
	s.addActor(Actor{ID: 4, Role: RoleRecruiter})
	s.addTarget(Target{ID: 401, Kind: KindOffer, OwnerID: 4})
	s.addTarget(Target{ID: 402, Kind: KindOffer, OwnerID: 5, Status: TargetWithdrawn})
	expired := fixedNow.Add(-time.Minute)
	s.addTarget(Target{ID: 403, Kind: KindOffer, OwnerID: 5, ExpiresAt: &expired})
	e := s.engine(nil)
	ctx := context.Background()

	_, err := e.Swipe(ctx, SwipeRequest{ActorID: 1, Kind: KindOffer, TargetID: 201, Decision: DecisionLike})
	require.NoError(t, err)
	_, err = e.Swipe(ctx, SwipeRequest{ActorID: 1, Kind: KindOffer, TargetID: 301, Decision: DecisionDislike})
	require.NoError(t, err)

	page, err := e.GetQueue(ctx, 1, Filters{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{401}, ids(page.Items))

	_, err = e.Block(ctx, 1, 4)
	require.NoError(t, err)
	page, err = e.GetQueue(ctx, 1, Filters{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestQueue_ExcludesMatchedEvenWhenClosed(t *testing.T) {
	s := newMemStore()
	marketplace(s)
	closedAt := fixedNow
	_, err := s.CreateIfAbsent(context.Background(), Match{ID: "m", ActorA: 1, ActorB: 2, Kind: KindOffer, ContextTargetID: 201, Status: MatchClosed, ClosedAt: &closedAt})
	require.NoError(t, err)

	page, err := s.engine(nil).GetQueue(context.Background(), 1, Filters{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{301}, ids(page.Items))
}

func TestQueue_DislikeResurfacesAfterCooldown(t *testing.T) {
	s := newMemStore()
	marketplace(s)
	now := fixedNow
	e := s.engine(func() time.Time { return now })
	ctx := context.Background()

	_, err := e.Swipe(ctx, SwipeRequest{ActorID: 1, Kind: KindOffer, TargetID: 301, Decision: DecisionDislike})
	require.NoError(t, err)

	now = fixedNow.Add(6 * 24 * time.Hour)
	page, err := e.GetQueue(ctx, 1, Filters{})
	require.NoError(t, err)
	assert.NotContains(t, ids(page.Items), uint64(301))

	now = fixedNow.Add(10 * 24 * time.Hour)
	page, err = e.GetQueue(ctx, 1, Filters{})
	require.NoError(t, err)
	assert.Contains(t, ids(page.Items), uint64(301))
}

func TestQueue_Filters(t *testing.T) {
	s := newMemStore()
	marketplace(s)
	e := s.engine(nil)
	ctx := context.Background()

	five := 5
	page, err := e.GetQueue(ctx, 1, Filters{MaxExperienceYears: &five})
	require.NoError(t, err)
	assert.Equal(t, []uint64{201}, ids(page.Items))

	page, err = e.GetQueue(ctx, 1, Filters{RadiusKM: 5})
	require.NoError(t, err)
	assert.Equal(t, []uint64{201}, ids(page.Items))

	s.addTarget(Target{ID: 501, Kind: KindOffer, OwnerID: 9, Attributes: Attributes{ContractTypes: []string{"CDD"}, Specialties: []string{"ortho"}}})
	page, err = e.GetQueue(ctx, 1, Filters{ContractTypes: []string{"cdd"}})
	require.NoError(t, err)
	assert.Equal(t, []uint64{501}, ids(page.Items))

	page, err = e.GetQueue(ctx, 1, Filters{Specialties: []string{"dermo"}})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestQueue_Pagination(t *testing.T) {
	s := newMemStore()
	marketplace(s)
	e := s.engine(nil)
	ctx := context.Background()

	first, err := e.GetQueue(ctx, 1, Filters{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []uint64{201}, ids(first.Items))
	require.NotEmpty(t, first.NextPageToken)

	second, err := e.GetQueue(ctx, 1, Filters{Limit: 1, PageToken: first.NextPageToken})
	require.NoError(t, err)
	assert.Equal(t, []uint64{301}, ids(second.Items))
	assert.Empty(t, second.NextPageToken)

	_, err = e.GetQueue(ctx, 1, Filters{PageToken: "!!"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestQueue_ProfilesNeedOwnedContext(t *testing.T) {
	s := newMemStore()
	marketplace(s)
	e := s.engine(nil)
	ctx := context.Background()

	_, err := e.GetQueue(ctx, 2, Filters{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.GetQueue(ctx, 2, Filters{ContextID: 301})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.GetQueue(ctx, 2, Filters{Kind: KindOffer, ContextID: 201})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	page, err := e.GetQueue(ctx, 2, Filters{ContextID: 201})
	require.NoError(t, err)
	assert.Equal(t, []uint64{101}, ids(page.Items))
	assert.Equal(t, 100, page.Items[0].Score)
}

func TestScoringActor(t *testing.T) {
	loc := &Location{Lat: 1, Lon: 1}
	recruiter := Actor{ID: 2, Role: RoleRecruiter, Attributes: Attributes{Location: loc}}
	listing := Target{ID: 7, Kind: KindOffer, Attributes: Attributes{RequiredDiploma: "pharmacist"}}

	got := ScoringActor(recruiter, listing)
	assert.Equal(t, "pharmacist", got.Attributes.RequiredDiploma)
	assert.Equal(t, loc, got.Attributes.Location)

	candidate := Actor{ID: 1, Role: RoleCandidate, Attributes: Attributes{Diploma: "x"}}
	assert.Equal(t, candidate, ScoringActor(candidate, listing))
}
