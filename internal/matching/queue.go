package matching

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/oggyb/pharma-match/internal/utils/pagination"
)

// SortKey selects the queue ordering. Ties always fall back to target id.
type SortKey string

const (
	SortScore    SortKey = "score"
	SortDistance SortKey = "distance"
	SortRecency  SortKey = "recency"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortScore, nil
	case SortScore, SortDistance, SortRecency:
		return k, nil
	}
	return "", invalidArgument("unknown sort key %q", s)
}

// Filters narrow a queue. Zero values mean "no constraint".
type Filters struct {
	// Kind defaults to the only kind the requester's role may swipe.
	Kind TargetKind
	// ContextID is the requester's own offer/mission; required for profile queues.
	ContextID uint64
	RadiusKM  float64
	// MaxExperienceYears caps a person's experience, or a listing's requirement.
	MaxExperienceYears *int
	ContractTypes      []string
	Specialties        []string
	Sort               SortKey
	Limit              int
	PageToken          string
}

type QueueItem struct {
	Target     Target
	Score      int
	DistanceKM *float64
}

type QueuePage struct {
	Items         []QueueItem
	NextPageToken string
}

// QueueBuilder is a read-only projection over targets, the ledger, matches and
// blocks. It is recomputed on every call.
type QueueBuilder struct {
	targets     TargetStore
	swipes      SwipeStore
	matches     MatchStore
	blocks      BlockList
	scorer      *ScoreEngine
	cooldown    time.Duration
	pageSize    int
	maxPageSize int
}

func NewQueueBuilder(targets TargetStore, swipes SwipeStore, matches MatchStore, blocks BlockList, scorer *ScoreEngine, cooldown time.Duration, pageSize, maxPageSize int) *QueueBuilder {
	if pageSize <= 0 {
		pageSize = 20
	}
	if maxPageSize < pageSize {
		maxPageSize = pageSize
	}
	return &QueueBuilder{
		targets:     targets,
		swipes:      swipes,
		matches:     matches,
		blocks:      blocks,
		scorer:      scorer,
		cooldown:    cooldown,
		pageSize:    pageSize,
		maxPageSize: maxPageSize,
	}
}

// Build returns one page of the requester's queue.
func (b *QueueBuilder) Build(ctx context.Context, requester Actor, f Filters, now time.Time) (QueuePage, error) {
	kind, ok := requester.Role.SwipeKind()
	if !ok {
		return QueuePage{}, invalidArgument("role %q has no queue", requester.Role)
	}
	if f.Kind != "" && f.Kind != kind {
		return QueuePage{}, invalidArgument("a %s cannot browse %s targets", requester.Role, f.Kind)
	}
	f.Kind = kind

	if f.Sort == "" {
		f.Sort = SortScore
	}
	if f.Limit < 0 {
		return QueuePage{}, invalidArgument("limit must not be negative")
	}
	if f.Limit == 0 {
		f.Limit = b.pageSize
	}
	f.Limit = min(f.Limit, b.maxPageSize)
	if f.RadiusKM < 0 {
		return QueuePage{}, invalidArgument("radius must not be negative")
	}

	cur, err := pagination.Decode(f.PageToken)
	if err != nil {
		return QueuePage{}, invalidArgument("page token: %v", err)
	}

	scoring := requester
	if kind.IsProfile() {
		if f.ContextID == 0 {
			return QueuePage{}, invalidArgument("browsing %s profiles requires a context %s", kind, kind.ContextKind())
		}
		listing, err := b.targets.GetTarget(ctx, f.ContextID)
		if errors.Is(err, ErrNotFound) {
			return QueuePage{}, ErrTargetUnavailable
		}
		if err != nil {
			return QueuePage{}, err
		}
		if listing.Kind != kind.ContextKind() || listing.OwnerID != requester.ID {
			return QueuePage{}, invalidArgument("context %d is not one of your %ss", f.ContextID, kind.ContextKind())
		}
		if !listing.Eligible(now) {
			return QueuePage{}, ErrTargetUnavailable
		}
		scoring = ScoringActor(requester, listing)
	} else {
		f.ContextID = 0
	}

	candidates, err := b.targets.ListEligible(ctx, kind, requester.ID, now)
	if err != nil {
		return QueuePage{}, err
	}
	matches, err := b.matches.ListForActor(ctx, requester.ID, true)
	if err != nil {
		return QueuePage{}, err
	}
	swipes, err := b.swipes.ListByActor(ctx, requester.ID, kind)
	if err != nil {
		return QueuePage{}, err
	}
	blocked, err := b.blocks.BlockedWith(ctx, requester.ID)
	if err != nil {
		return QueuePage{}, err
	}

	ranked := b.rank(queueState{
		requester: requester,
		scoring:   scoring,
		filters:   f,
		matches:   matches,
		swipes:    swipes,
		blocked:   blocked,
	}, candidates, now)

	return paginate(ranked, cur, f.Limit)
}

type queueState struct {
	requester Actor
	scoring   Actor
	filters   Filters
	matches   []Match
	swipes    []SwipeAction
	blocked   map[uint64]struct{}
}

type rankedItem struct {
	item QueueItem
	key  float64
}

type matchKey struct {
	other   uint64
	context uint64
}

type swipeKey struct {
	target  uint64
	context uint64
}

// rank applies the exclusions in order (own, matched, swiped, blocked,
// filtered), scores the survivors and sorts them.
func (b *QueueBuilder) rank(s queueState, candidates []Target, now time.Time) []rankedItem {
	matched := make(map[matchKey]struct{}, len(s.matches))
	for _, m := range s.matches {
		matched[matchKey{other: m.Other(s.requester.ID), context: m.ContextTargetID}] = struct{}{}
	}
	swiped := make(map[swipeKey]SwipeAction, len(s.swipes))
	for _, sw := range s.swipes {
		swiped[swipeKey{target: sw.TargetID, context: sw.ContextID}] = sw
	}

	out := make([]rankedItem, 0, len(candidates))
	for _, t := range candidates {
		if t.OwnerID == s.requester.ID {
			continue
		}
		contextID := s.filters.ContextID
		if contextID == 0 {
			contextID = t.ID
		}
		if _, ok := matched[matchKey{other: t.OwnerID, context: contextID}]; ok {
			continue
		}
		if sw, ok := swiped[swipeKey{target: t.ID, context: contextID}]; ok && !b.resurfaces(sw, now) {
			continue
		}
		if _, ok := s.blocked[t.OwnerID]; ok {
			continue
		}
		dist, hasDist := DistanceKM(s.scoring.Attributes.Location, t.Location)
		if !passesFilters(s.filters, t, dist, hasDist, s.scoring.Attributes.Location != nil) {
			continue
		}

		item := QueueItem{Target: t, Score: b.scorer.Score(s.scoring, t, now)}
		if hasDist {
			d := dist
			item.DistanceKM = &d
		}
		out = append(out, rankedItem{item: item, key: sortValue(s.filters.Sort, item)})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].key != out[j].key {
			return out[i].key < out[j].key
		}
		return out[i].item.Target.ID < out[j].item.Target.ID
	})
	return out
}

// resurfaces is true only for a dislike older than the cool-down.
func (b *QueueBuilder) resurfaces(sw SwipeAction, now time.Time) bool {
	if sw.Decision.LikeClass() {
		return false
	}
	return now.Sub(sw.UpdatedAt) >= b.cooldown
}

func passesFilters(f Filters, t Target, dist float64, hasDist, requesterLocated bool) bool {
	if f.RadiusKM > 0 && requesterLocated {
		if !hasDist || dist > f.RadiusKM {
			return false
		}
	}
	if f.MaxExperienceYears != nil {
		years := t.MinExperienceYears
		if t.Kind.IsProfile() {
			years = t.ExperienceYears
		}
		if years > *f.MaxExperienceYears {
			return false
		}
	}
	if len(f.ContractTypes) > 0 && !intersects(f.ContractTypes, t.ContractTypes) {
		return false
	}
	if len(f.Specialties) > 0 && !intersects(f.Specialties, t.Specialties) {
		return false
	}
	return true
}

func intersects(a, b []string) bool {
	set := normalizeSet(b)
	for v := range normalizeSet(a) {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// sortValue maps every sort key onto an ascending float so one keyset cursor
// serves all orderings.
func sortValue(key SortKey, it QueueItem) float64 {
	switch key {
	case SortDistance:
		if it.DistanceKM == nil {
			return math.MaxFloat64
		}
		return *it.DistanceKM
	case SortRecency:
		return -float64(it.Target.CreatedAt.UnixMilli())
	default:
		return -float64(it.Score)
	}
}

func paginate(ranked []rankedItem, cur pagination.Cursor, limit int) (QueuePage, error) {
	start := 0
	if !cur.IsZero() {
		start = sort.Search(len(ranked), func(i int) bool {
			r := ranked[i]
			return r.key > cur.Key || (r.key == cur.Key && r.item.Target.ID > cur.ID)
		})
	}
	end := min(start+limit, len(ranked))

	page := QueuePage{Items: make([]QueueItem, 0, end-start)}
	for _, r := range ranked[start:end] {
		page.Items = append(page.Items, r.item)
	}
	if end < len(ranked) {
		last := ranked[end-1]
		token, err := pagination.Encode(pagination.Cursor{ID: last.item.Target.ID, Key: last.key})
		if err != nil {
			return QueuePage{}, err
		}
		page.NextPageToken = token
	}
	return page, nil
}

// ScoringActor is the side scored against a target. Recruiters and
// laboratories are represented by the listing they act for, keeping their own
// location when the listing has none.
func ScoringActor(actor Actor, listing Target) Actor {
	if _, person := actor.Role.ProfileKind(); person || listing.ID == 0 || listing.Kind.IsProfile() {
		return actor
	}
	out := actor
	out.Attributes = listing.Attributes
	if out.Attributes.Location == nil {
		out.Attributes.Location = actor.Attributes.Location
	}
	return out
}
