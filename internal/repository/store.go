package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/pharma-match/internal/matching"
)

// Store runs engine transactions on one gorm connection.
type Store struct {
	db *gorm.DB
}

func NewStore(database *gorm.DB) *Store {
	return &Store{db: database}
}

// WithinTx commits when fn returns nil and rolls back otherwise.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx matching.TxStores) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, txStores{db: tx})
	})
}

type txStores struct {
	db *gorm.DB
}

func (t txStores) Swipes() matching.SwipeStore { return NewSwipeRepository(t.db) }

func (t txStores) Quotas() matching.QuotaStore { return NewQuotaRepository(t.db) }

func (t txStores) Matches() matching.MatchStore { return NewMatchRepository(t.db) }
