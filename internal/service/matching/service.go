package matching

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/oggyb/pharma-match/internal/app"
	"github.com/oggyb/pharma-match/internal/cache"
	svcErr "github.com/oggyb/pharma-match/internal/errors"
	"github.com/oggyb/pharma-match/internal/logger"
	engine "github.com/oggyb/pharma-match/internal/matching"
	pb "github.com/oggyb/pharma-match/internal/proto/matching"
	"github.com/oggyb/pharma-match/internal/repository"
	"github.com/oggyb/pharma-match/internal/utils/pagination"
)

const (
	defaultInboundPage = 20
	maxInboundPage     = 100
)

// Service implements the MatchingService gRPC API on top of the engine.
// Inbound like counts and quota snapshots are cached in Redis and dropped
// whenever a swipe or block may change them.
type Service struct {
	appCtx *app.AppContext
	engine *engine.Engine
	swipes *repository.SwipeRepository

	pb.UnimplementedMatchingServiceServer
}

// NewMatchingService creates the service with dependencies from AppContext.
func NewMatchingService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		engine: appCtx.Engine,
		swipes: repository.NewSwipeRepository(appCtx.DB),
	}
}

// GetQueue returns one page of swipeable targets, best first.
func (s *Service) GetQueue(ctx context.Context, req *pb.GetQueueRequest) (*pb.GetQueueResponse, error) {
	s.log(ctx).Debug("GetQueue called", "actor", req.GetActorId(), "kind", req.GetKind(), "sort", req.GetSort())

	actorID, err := parseID("actor_id", req.GetActorId(), true)
	if err != nil {
		return nil, err
	}
	contextID, err := parseID("context_id", req.GetContextId(), false)
	if err != nil {
		return nil, err
	}
	sortKey, err := engine.ParseSortKey(req.GetSort())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	f := engine.Filters{
		ContextID:     contextID,
		RadiusKM:      req.GetRadiusKm(),
		ContractTypes: req.GetContractTypes(),
		Specialties:   req.GetSpecialties(),
		Sort:          sortKey,
		Limit:         int(req.GetLimit()),
		PageToken:     req.GetPageToken(),
	}
	if req.GetKind() != "" {
		if f.Kind, err = engine.ParseTargetKind(req.GetKind()); err != nil {
			return nil, svcErr.Map(err)
		}
	}
	if req.MaxExperienceYears != nil {
		years := int(req.GetMaxExperienceYears())
		f.MaxExperienceYears = &years
	}

	page, err := s.engine.GetQueue(ctx, actorID, f)
	if err != nil {
		s.log(ctx).Error("GetQueue failed", "actor", actorID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.GetQueueResponse{NextPageToken: page.NextPageToken}
	for _, it := range page.Items {
		resp.Items = append(resp.Items, &pb.QueueItem{
			TargetId:   formatID(it.Target.ID),
			Kind:       string(it.Target.Kind),
			OwnerId:    formatID(it.Target.OwnerID),
			Title:      it.Target.Title,
			Score:      int32(it.Score),
			DistanceKm: it.DistanceKM,
			CreatedAt:  it.Target.CreatedAt.UnixMilli(),
		})
	}
	return resp, nil
}

// Swipe records a decision and reports whether it completed a match.
//
// Behavior:
//   - Validates ids, kind and decision.
//   - Delegates to the engine (quota, ledger, match detection).
//   - Drops the cached inbound counts of both parties and the caller's
//     quota snapshot.
func (s *Service) Swipe(ctx context.Context, req *pb.SwipeRequest) (*pb.SwipeResponse, error) {
	s.log(ctx).Debug(
		"Swipe called",
		"actor", req.GetActorId(),
		"kind", req.GetKind(),
		"target", req.GetTargetId(),
		"context", req.GetContextId(),
		"decision", req.GetDecision(),
	)

	actorID, err := parseID("actor_id", req.GetActorId(), true)
	if err != nil {
		return nil, err
	}
	targetID, err := parseID("target_id", req.GetTargetId(), true)
	if err != nil {
		return nil, err
	}
	contextID, err := parseID("context_id", req.GetContextId(), false)
	if err != nil {
		return nil, err
	}
	kind, err := engine.ParseTargetKind(req.GetKind())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	decision, err := engine.ParseDecision(req.GetDecision())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	res, err := s.engine.Swipe(ctx, engine.SwipeRequest{
		ActorID:   actorID,
		Kind:      kind,
		TargetID:  targetID,
		ContextID: contextID,
		Decision:  decision,
	})
	if err != nil {
		if errors.Is(err, engine.ErrStorage) {
			s.log(ctx).Error("Swipe failed", "actor", actorID, "target", targetID, "err", err)
		}
		return nil, svcErr.Map(err)
	}

	s.invalidate(ctx,
		s.appCtx.RedisCache.KeyForInboundCount(res.CounterpartyID),
		s.appCtx.RedisCache.KeyForInboundCount(actorID),
	)
	if decision == engine.DecisionSuperlike {
		s.invalidate(ctx, s.appCtx.RedisCache.KeyForQuota(actorID, string(engine.ActionSuperlike)))
	}

	resp := &pb.SwipeResponse{
		Matched:        res.Matched,
		Created:        res.Created,
		CounterpartyId: formatID(res.CounterpartyID),
	}
	if res.Match != nil {
		resp.MatchId = res.Match.ID
		resp.Score = int32(res.Match.Score)
	}
	if res.Previous != nil {
		resp.PreviousDecision = string(*res.Previous)
	}
	if res.QuotaRemaining != nil {
		left := int32(*res.QuotaRemaining)
		resp.QuotaRemaining = &left
	}

	s.log(ctx).Debug("Swipe result", "actor", actorID, "matched", resp.Matched, "created", resp.Created)
	return resp, nil
}

// quotaView is the cached form of a quota snapshot.
type quotaView struct {
	Kind      string    `json:"kind"`
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Unlimited bool      `json:"unlimited"`
	PeriodKey string    `json:"period_key"`
	ResetsAt  time.Time `json:"resets_at"`
}

// GetQuota returns the allowance of the current period.
// Cache-first: a cached snapshot is served until its period ends or the
// actor super-likes again.
func (s *Service) GetQuota(ctx context.Context, req *pb.GetQuotaRequest) (*pb.GetQuotaResponse, error) {
	s.log(ctx).Debug("GetQuota called", "actor", req.GetActorId(), "kind", req.GetKind())

	actorID, err := parseID("actor_id", req.GetActorId(), true)
	if err != nil {
		return nil, err
	}
	kind := engine.ActionSuperlike
	if req.GetKind() != "" {
		if kind, err = engine.ParseActionKind(req.GetKind()); err != nil {
			return nil, svcErr.Map(err)
		}
	}

	key := s.appCtx.RedisCache.KeyForQuota(actorID, string(kind))
	var view quotaView
	if ok, _ := s.appCtx.RedisCache.GetJSON(ctx, key, &view); ok && time.Now().Before(view.ResetsAt) {
		return quotaResponse(view), nil
	}

	snap, err := s.engine.GetQuota(ctx, actorID, kind)
	if err != nil {
		s.log(ctx).Error("GetQuota failed", "actor", actorID, "err", err)
		return nil, svcErr.Map(err)
	}
	view = quotaView{
		Kind:      string(snap.Kind),
		Used:      snap.Used,
		Limit:     snap.Limit,
		Remaining: snap.Remaining,
		Unlimited: snap.Unlimited,
		PeriodKey: snap.PeriodKey,
		ResetsAt:  snap.ResetsAt,
	}
	if ttl := min(cache.CountTTL, time.Until(snap.ResetsAt)); ttl > 0 {
		_ = s.appCtx.RedisCache.SetJSON(ctx, key, view, ttl)
	}
	return quotaResponse(view), nil
}

func quotaResponse(v quotaView) *pb.GetQuotaResponse {
	return &pb.GetQuotaResponse{
		Kind:      v.Kind,
		Used:      int32(v.Used),
		Limit:     int32(v.Limit),
		Remaining: int32(v.Remaining),
		Unlimited: v.Unlimited,
		PeriodKey: v.PeriodKey,
		ResetsAt:  v.ResetsAt.UnixMilli(),
	}
}

// ListMatches returns the caller's matches, newest first.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	actorID, err := parseID("actor_id", req.GetActorId(), true)
	if err != nil {
		return nil, err
	}

	ms, err := s.engine.ListMatches(ctx, actorID, req.GetIncludeClosed())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{}
	for _, m := range ms {
		out := &pb.Match{
			Id:              m.ID,
			CounterpartyId:  formatID(m.Other(actorID)),
			Kind:            string(m.Kind),
			ContextTargetId: formatID(m.ContextTargetID),
			Score:           int32(m.Score),
			Status:          string(m.Status),
			MatchedAt:       m.MatchedAt.UnixMilli(),
		}
		if m.ClosedAt != nil {
			out.ClosedAt = m.ClosedAt.UnixMilli()
		}
		resp.Matches = append(resp.Matches, out)
	}
	return resp, nil
}

// ListInboundLikes returns who liked the owner's listings or profile.
//
// Behavior:
//   - Excludes swipers the owner already disliked in the same context.
//   - only_new additionally hides swipers the owner liked back.
//   - Cursor-based pagination via page_token.
func (s *Service) ListInboundLikes(ctx context.Context, req *pb.ListInboundLikesRequest) (*pb.ListInboundLikesResponse, error) {
	s.log(ctx).Debug("ListInboundLikes called", "owner", req.GetOwnerId(), "only_new", req.GetOnlyNew(), "token", req.GetPageToken())

	ownerID, err := parseID("owner_id", req.GetOwnerId(), true)
	if err != nil {
		return nil, err
	}
	limit := int(req.GetLimit())
	switch {
	case limit < 0:
		return nil, svcErr.InvalidArgument("limit must not be negative")
	case limit == 0:
		limit = defaultInboundPage
	case limit > maxInboundPage:
		limit = maxInboundPage
	}

	likes, next, err := s.swipes.ListInbound(ctx, ownerID, req.GetOnlyNew(), req.GetPageToken(), limit)
	if errors.Is(err, pagination.ErrInvalidToken) {
		return nil, svcErr.InvalidArgument("page_token is malformed")
	}
	if err != nil {
		s.log(ctx).Error("ListInbound failed", "owner", ownerID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListInboundLikesResponse{NextPageToken: next}
	for _, l := range likes {
		resp.Likers = append(resp.Likers, &pb.InboundLike{
			ActorId:       formatID(l.ActorID),
			Kind:          string(l.Kind),
			TargetId:      formatID(l.TargetID),
			ContextId:     formatID(l.ContextID),
			Decision:      string(l.Decision),
			UnixTimestamp: uint64(l.UpdatedAt.UnixMilli()),
		})
	}
	return resp, nil
}

// CountInboundLikes returns how many swipers ListInboundLikes would show.
// Cache-first strategy:
//  1. Attempts to read from Redis (inbound:count:ownerID).
//  2. On a miss, falls back to DB via repository.CountInbound.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (s *Service) CountInboundLikes(ctx context.Context, req *pb.CountInboundLikesRequest) (*pb.CountInboundLikesResponse, error) {
	ownerID, err := parseID("owner_id", req.GetOwnerId(), true)
	if err != nil {
		return nil, err
	}

	key := s.appCtx.RedisCache.KeyForInboundCount(ownerID)
	if n, ok, _ := s.appCtx.RedisCache.GetCount(ctx, key); ok {
		return &pb.CountInboundLikesResponse{Count: uint64(n)}, nil
	}

	count, err := s.swipes.CountInbound(ctx, ownerID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	_ = s.appCtx.RedisCache.SetCount(ctx, key, count)

	return &pb.CountInboundLikesResponse{Count: uint64(count)}, nil
}

// Block hides two actors from each other and closes their matches.
func (s *Service) Block(ctx context.Context, req *pb.BlockRequest) (*pb.BlockResponse, error) {
	actorID, err := parseID("actor_id", req.GetActorId(), true)
	if err != nil {
		return nil, err
	}
	blockedID, err := parseID("blocked_id", req.GetBlockedId(), true)
	if err != nil {
		return nil, err
	}

	closed, err := s.engine.Block(ctx, actorID, blockedID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	s.invalidate(ctx,
		s.appCtx.RedisCache.KeyForInboundCount(actorID),
		s.appCtx.RedisCache.KeyForInboundCount(blockedID),
	)
	return &pb.BlockResponse{ClosedMatches: closed}, nil
}

// log prefers the request-scoped logger set by the server interceptor.
func (s *Service) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx, s.appCtx.Logger)
}

// invalidate is best effort; a stale counter expires with its TTL.
func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if err := s.appCtx.RedisCache.Del(ctx, keys...); err != nil {
		s.log(ctx).Warn("cache invalidation failed", "keys", keys, "err", err)
	}
}

func parseID(field, raw string, required bool) (uint64, error) {
	if raw == "" {
		if required {
			return 0, svcErr.InvalidArgument(field + " is required")
		}
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || (required && id == 0) {
		return 0, svcErr.InvalidArgument(field + " must be a valid uint64")
	}
	return id, nil
}

func formatID(id uint64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(id, 10)
}
