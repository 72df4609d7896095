// Package matching implements the swipe/match engine: candidate queues,
// compatibility scoring, the swipe ledger, super-like quotas and mutual-match
// detection. Storage is reached only through the interfaces in stores.go.
package matching

import (
	"strings"
	"time"
)

// Role is what an actor does on the marketplace.
type Role string

const (
	RoleCandidate  Role = "candidate"
	RoleRecruiter  Role = "recruiter"
	RoleAnimator   Role = "animator"
	RoleLaboratory Role = "laboratory"
)

// SwipeKind is the only target kind an actor of this role may swipe.
func (r Role) SwipeKind() (TargetKind, bool) {
	switch r {
	case RoleCandidate:
		return KindOffer, true
	case RoleAnimator:
		return KindMission, true
	case RoleRecruiter:
		return KindCandidate, true
	case RoleLaboratory:
		return KindAnimator, true
	}
	return "", false
}

// ProfileKind is the kind of the target row representing the actor themself.
func (r Role) ProfileKind() (TargetKind, bool) {
	switch r {
	case RoleCandidate:
		return KindCandidate, true
	case RoleAnimator:
		return KindAnimator, true
	}
	return "", false
}

// TargetKind identifies a swipeable entity.
type TargetKind string

const (
	KindOffer     TargetKind = "offer"
	KindCandidate TargetKind = "candidate"
	KindAnimator  TargetKind = "animator"
	KindMission   TargetKind = "mission"
)

func ParseTargetKind(s string) (TargetKind, error) {
	switch k := TargetKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindOffer, KindCandidate, KindAnimator, KindMission:
		return k, nil
	}
	return "", invalidArgument("unknown target kind %q", s)
}

// IsProfile reports whether targets of this kind are people rather than listings.
// Swipes on profiles always carry a listing as context.
func (k TargetKind) IsProfile() bool {
	return k == KindCandidate || k == KindAnimator
}

// ContextKind is the listing kind a swipe on this kind is scoped to.
func (k TargetKind) ContextKind() TargetKind {
	switch k {
	case KindCandidate, KindOffer:
		return KindOffer
	default:
		return KindMission
	}
}

// Decision is the outcome of one swipe.
type Decision string

const (
	DecisionLike      Decision = "like"
	DecisionDislike   Decision = "dislike"
	DecisionSuperlike Decision = "superlike"
)

func ParseDecision(s string) (Decision, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "_", "")
	v = strings.ReplaceAll(v, "-", "")
	switch d := Decision(v); d {
	case DecisionLike, DecisionDislike, DecisionSuperlike:
		return d, nil
	}
	return "", invalidArgument("unknown decision %q", s)
}

// LikeClass is true for like and superlike.
func (d Decision) LikeClass() bool {
	return d == DecisionLike || d == DecisionSuperlike
}

// Tier is the subscription level of an actor.
type Tier string

const (
	TierFree      Tier = "free"
	TierPremium   Tier = "premium"
	TierUnlimited Tier = "unlimited"
)

// ActionKind names a rate-limited action.
type ActionKind string

const ActionSuperlike ActionKind = "superlike"

func ParseActionKind(s string) (ActionKind, error) {
	switch k := ActionKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ActionSuperlike:
		return k, nil
	}
	return "", invalidArgument("unknown action kind %q", s)
}

type MatchStatus string

const (
	MatchActive MatchStatus = "active"
	MatchClosed MatchStatus = "closed"
)

type TargetStatus string

const (
	TargetActive    TargetStatus = "active"
	TargetExpired   TargetStatus = "expired"
	TargetWithdrawn TargetStatus = "withdrawn"
)

type Location struct {
	Lat float64
	Lon float64
}

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Duration() time.Duration {
	if !w.End.After(w.Start) {
		return 0
	}
	return w.End.Sub(w.Start)
}

// Attributes are the facts the score engine and the queue filters look at.
// A listing fills the Required* fields, a person fills Diploma/ExperienceYears.
type Attributes struct {
	Location           *Location
	ContractTypes      []string
	Diploma            string
	ExperienceYears    int
	RequiredDiploma    string
	MinExperienceYears int
	Specialties        []string
	MobilityZones      []string
	Availability       []Window
	Window             *Window
}

// Actor is the party performing an engine call.
type Actor struct {
	ID         uint64
	Role       Role
	Tier       Tier
	Attributes Attributes
}

// Target is a swipeable entity. Profiles are owned by the person they describe.
type Target struct {
	ID        uint64
	Kind      TargetKind
	OwnerID   uint64
	Title     string
	Status    TargetStatus
	ExpiresAt *time.Time
	CreatedAt time.Time
	Attributes
}

// Eligible reports whether the target can still be swiped at now.
func (t Target) Eligible(now time.Time) bool {
	if t.Status != TargetActive {
		return false
	}
	if t.ExpiresAt != nil && !now.Before(*t.ExpiresAt) {
		return false
	}
	return true
}

// PairKey identifies one directional ledger entry.
type PairKey struct {
	ActorID   uint64
	Kind      TargetKind
	TargetID  uint64
	ContextID uint64
}

// SwipeAction is the current decision of an actor on a (target, context) pair.
// OwnerID is the target's owner, kept for inbound-like listings.
type SwipeAction struct {
	ID        uint64
	ActorID   uint64
	Kind      TargetKind
	TargetID  uint64
	ContextID uint64
	OwnerID   uint64
	Decision  Decision
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s SwipeAction) Key() PairKey {
	return PairKey{ActorID: s.ActorID, Kind: s.Kind, TargetID: s.TargetID, ContextID: s.ContextID}
}

// Match is the mutual-like state between two actors for one listing.
// ActorA is always the smaller id.
type Match struct {
	ID              string
	ActorA          uint64
	ActorB          uint64
	Kind            TargetKind
	ContextTargetID uint64
	Score           int
	Status          MatchStatus
	MatchedAt       time.Time
	ClosedAt        *time.Time
}

// Other returns the participant that is not actorID.
func (m Match) Other(actorID uint64) uint64 {
	if m.ActorA == actorID {
		return m.ActorB
	}
	return m.ActorA
}

func (m Match) Involves(actorID uint64) bool {
	return m.ActorA == actorID || m.ActorB == actorID
}

// OrderedPair returns (min, max).
func OrderedPair(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}

// Quota is the usage counter of one action kind for one period.
type Quota struct {
	ActorID     uint64
	Kind        ActionKind
	PeriodKey   string
	PeriodStart time.Time
	Used        int
	Limit       int
}
