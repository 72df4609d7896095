package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/pharma-match/internal/db"
)

const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// NotificationRepository is the match notification outbox.
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: database}
}

// Enqueue inserts pending rows; a (match, recipient) pair is only queued once.
func (r *NotificationRepository) Enqueue(ctx context.Context, rows []db.MatchNotification) error {
	if len(rows) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("enqueue notifications: %w", err)
	}
	return nil
}

// Due returns pending rows whose next attempt is not in the future, oldest first.
func (r *NotificationRepository) Due(ctx context.Context, now time.Time, limit int) ([]db.MatchNotification, error) {
	var rows []db.MatchNotification
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_attempt_at <= ?", NotificationPending, now.UTC()).
		Order("next_attempt_at ASC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list due notifications: %w", err)
	}
	return rows, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uint64, now time.Time) error {
	sentAt := now.UTC()
	err := r.db.WithContext(ctx).
		Model(&db.MatchNotification{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     NotificationSent,
			"sent_at":    &sentAt,
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": "",
		}).Error
	if err != nil {
		return fmt.Errorf("mark notification %d sent: %w", id, err)
	}
	return nil
}

// MarkFailed records an attempt. The row stays pending with a later
// next_attempt_at until attempts reaches maxAttempts.
func (r *NotificationRepository) MarkFailed(ctx context.Context, n db.MatchNotification, cause error, next time.Time, maxAttempts int) error {
	status := NotificationPending
	if n.Attempts+1 >= maxAttempts {
		status = NotificationFailed
	}
	msg := cause.Error()
	if len(msg) > 512 {
		msg = msg[:512]
	}
	err := r.db.WithContext(ctx).
		Model(&db.MatchNotification{}).
		Where("id = ?", n.ID).
		Updates(map[string]any{
			"status":          status,
			"attempts":        gorm.Expr("attempts + 1"),
			"last_error":      msg,
			"next_attempt_at": next.UTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("mark notification %d failed: %w", n.ID, err)
	}
	return nil
}
