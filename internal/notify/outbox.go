package notify

import (
	"context"
	"time"

	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/matching"
	"github.com/oggyb/pharma-match/internal/repository"
)

// Outbox persists one pending notification per match participant.
// It implements matching.Notifier; delivery is left to a Dispatcher.
type Outbox struct {
	repo *repository.NotificationRepository
	now  func() time.Time
}

func NewOutbox(repo *repository.NotificationRepository) *Outbox {
	return &Outbox{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (o *Outbox) OnMatchCreated(ctx context.Context, m matching.Match) error {
	now := o.now()
	rows := make([]db.MatchNotification, 0, 2)
	for _, recipient := range []uint64{m.ActorA, m.ActorB} {
		rows = append(rows, db.MatchNotification{
			MatchID:         m.ID,
			RecipientID:     recipient,
			CounterpartyID:  m.Other(recipient),
			ContextTargetID: m.ContextTargetID,
			Score:           m.Score,
			Status:          repository.NotificationPending,
			NextAttemptAt:   now,
		})
	}
	return o.repo.Enqueue(ctx, rows)
}
