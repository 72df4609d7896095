package db

import (
	"time"

	"gorm.io/datatypes"
)

// Actor is a marketplace participant.
//
// Role is one of candidate, recruiter, animator, laboratory.
// Tier is the subscription level used for quota limits.
type Actor struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Role        string    `gorm:"size:16;not null;index"`
	Tier        string    `gorm:"size:16;not null;default:free"`
	DisplayName string    `gorm:"size:128"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Window is one availability interval stored inside a JSON column.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Target is anything that can be swiped: offers and missions published by
// recruiters/laboratories, and candidate/animator profiles owned by the person.
//
// Indexes:
//   - idx_target_kind_status(kind, status, owner_id)
//     Serves queue candidate scans.
//   - idx_target_owner_kind(owner_id, kind)
//     Serves profile lookups for reciprocal keys.
//
// Set-valued attributes live in JSON columns (gorm.io/datatypes), which map to
// JSON on MySQL/SQLite and JSONB on Postgres.
type Target struct {
	ID                 uint64                      `gorm:"primaryKey;autoIncrement"`
	Kind               string                      `gorm:"size:16;not null;index:idx_target_kind_status,priority:1"`
	OwnerID            uint64                      `gorm:"not null;index:idx_target_kind_status,priority:3;index:idx_target_owner_kind,priority:1"`
	Title              string                      `gorm:"size:255"`
	Status             string                      `gorm:"size:16;not null;default:active;index:idx_target_kind_status,priority:2"`
	ExpiresAt          *time.Time                  `gorm:"index"`
	Lat                *float64                    `gorm:"column:lat"`
	Lon                *float64                    `gorm:"column:lon"`
	ContractTypes      datatypes.JSONSlice[string] `gorm:"column:contract_types"`
	Diploma            string                      `gorm:"size:64"`
	ExperienceYears    int                         `gorm:"not null;default:0"`
	RequiredDiploma    string                      `gorm:"size:64"`
	MinExperienceYears int                         `gorm:"not null;default:0"`
	Specialties        datatypes.JSONSlice[string] `gorm:"column:specialties"`
	MobilityZones      datatypes.JSONSlice[string] `gorm:"column:mobility_zones"`
	Availability       datatypes.JSONSlice[Window] `gorm:"column:availability"`
	WindowStart        *time.Time                  `gorm:"column:window_start"`
	WindowEnd          *time.Time                  `gorm:"column:window_end"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt          time.Time                   `gorm:"autoUpdateTime"`
}

// SwipeAction is the ledger: one current decision per
// (actor_id, target_kind, target_id, context_id).
//
// Indexes:
//   - ux_swipe_pair: the upsert key.
//   - idx_swipe_owner_decision_updated(owner_id, decision, updated_at DESC, actor_id)
//     Serves "who liked my offer/profile" listings with keyset pagination.
type SwipeAction struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	ActorID    uint64    `gorm:"not null;uniqueIndex:ux_swipe_pair,priority:1"`
	TargetKind string    `gorm:"size:16;not null;uniqueIndex:ux_swipe_pair,priority:2"`
	TargetID   uint64    `gorm:"not null;uniqueIndex:ux_swipe_pair,priority:3"`
	ContextID  uint64    `gorm:"not null;uniqueIndex:ux_swipe_pair,priority:4"`
	OwnerID    uint64    `gorm:"not null;index:idx_swipe_owner_decision_updated,priority:1"`
	Decision   string    `gorm:"size:16;not null;index:idx_swipe_owner_decision_updated,priority:2"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;index:idx_swipe_owner_decision_updated,priority:3,sort:desc"`
}

func (SwipeAction) TableName() string { return "swipes" }

// Match is unique per unordered actor pair and context: actor_a < actor_b.
type Match struct {
	ID              string     `gorm:"primaryKey;size:36"`
	ActorA          uint64     `gorm:"not null;uniqueIndex:ux_match_pair,priority:1"`
	ActorB          uint64     `gorm:"not null;uniqueIndex:ux_match_pair,priority:2;index:idx_match_actor_b"`
	ContextTargetID uint64     `gorm:"not null;uniqueIndex:ux_match_pair,priority:3"`
	Kind            string     `gorm:"size:16;not null"`
	Score           int        `gorm:"not null"`
	Status          string     `gorm:"size:16;not null;default:active;index"`
	MatchedAt       time.Time  `gorm:"not null"`
	ClosedAt        *time.Time `gorm:"index"`
}

// Quota is one usage counter per (actor, action kind, period key).
// Rows of past periods are left in place and pruned by a background job.
type Quota struct {
	ActorID     uint64    `gorm:"primaryKey;autoIncrement:false"`
	Kind        string    `gorm:"primaryKey;size:32"`
	PeriodKey   string    `gorm:"primaryKey;size:16"`
	PeriodStart time.Time `gorm:"not null;index"`
	Used        int       `gorm:"not null;default:0"`
	Limit       int       `gorm:"column:quota_limit;not null;default:0"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Quota) TableName() string { return "quotas" }

// Block is directional; lookups check both directions.
type Block struct {
	ActorID   uint64    `gorm:"primaryKey;autoIncrement:false"`
	BlockedID uint64    `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// MatchNotification is the outbox row for one participant of a new match.
type MatchNotification struct {
	ID              uint64     `gorm:"primaryKey;autoIncrement"`
	MatchID         string     `gorm:"size:36;not null;uniqueIndex:ux_notification_match_recipient,priority:1"`
	RecipientID     uint64     `gorm:"not null;uniqueIndex:ux_notification_match_recipient,priority:2"`
	CounterpartyID  uint64     `gorm:"not null"`
	ContextTargetID uint64     `gorm:"not null"`
	Score           int        `gorm:"not null"`
	Status          string     `gorm:"size:16;not null;default:pending;index:idx_notification_status_next,priority:1"`
	Attempts        int        `gorm:"not null;default:0"`
	LastError       string     `gorm:"size:512"`
	NextAttemptAt   time.Time  `gorm:"not null;index:idx_notification_status_next,priority:2"`
	SentAt          *time.Time `gorm:"column:sent_at"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

// Models lists every table in migration order.
func Models() []any {
	return []any{&Actor{}, &Target{}, &SwipeAction{}, &Match{}, &Quota{}, &Block{}, &MatchNotification{}}
}
