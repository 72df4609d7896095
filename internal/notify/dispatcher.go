package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/oggyb/pharma-match/internal/db"
	"github.com/oggyb/pharma-match/internal/repository"
)

// Message is what a participant is told about a new match.
type Message struct {
	MatchID         string
	RecipientID     uint64
	CounterpartyID  uint64
	ContextTargetID uint64
	Score           int
}

// Sender delivers one message. Push, e-mail or chat channels live behind it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender only logs messages. It is the default when no channel is configured.
type LogSender struct {
	Log *slog.Logger
}

func (s LogSender) Send(_ context.Context, msg Message) error {
	s.Log.Info("match notification",
		"match_id", msg.MatchID,
		"recipient_id", msg.RecipientID,
		"counterparty_id", msg.CounterpartyID,
		"context_id", msg.ContextTargetID,
		"score", msg.Score,
	)
	return nil
}

// Dispatcher drains the outbox. Failed rows are retried with a linear
// backoff until MaxAttempts, then left as failed.
type Dispatcher struct {
	repo        *repository.NotificationRepository
	sender      Sender
	log         *slog.Logger
	batch       int
	maxAttempts int
	backoff     time.Duration
	now         func() time.Time
}

type DispatcherOption func(*Dispatcher)

func WithBatch(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.batch = n
		}
	}
}

func WithMaxAttempts(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxAttempts = n
		}
	}
}

func WithBackoff(b time.Duration) DispatcherOption {
	return func(d *Dispatcher) { d.backoff = b }
}

func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) { d.now = now }
}

func NewDispatcher(repo *repository.NotificationRepository, sender Sender, log *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		repo:        repo,
		sender:      sender,
		log:         log,
		batch:       100,
		maxAttempts: 5,
		backoff:     time.Minute,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch sends one batch of due notifications and returns how many were sent.
func (d *Dispatcher) Dispatch(ctx context.Context) (int, error) {
	now := d.now()
	rows, err := d.repo.Due(ctx, now, d.batch)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, n := range rows {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if err := d.sender.Send(ctx, messageOf(n)); err != nil {
			next := now.Add(time.Duration(n.Attempts+1) * d.backoff)
			d.log.Warn("notification delivery failed", "notification_id", n.ID, "attempt", n.Attempts+1, "err", err)
			if err := d.repo.MarkFailed(ctx, n, err, next, d.maxAttempts); err != nil {
				return sent, err
			}
			continue
		}
		if err := d.repo.MarkSent(ctx, n.ID, now); err != nil {
			return sent, err
		}
		sent++
	}
	if len(rows) > 0 {
		d.log.Debug("notifications dispatched", "due", len(rows), "sent", sent)
	}
	return sent, nil
}

func messageOf(n db.MatchNotification) Message {
	return Message{
		MatchID:         n.MatchID,
		RecipientID:     n.RecipientID,
		CounterpartyID:  n.CounterpartyID,
		ContextTargetID: n.ContextTargetID,
		Score:           n.Score,
	}
}
