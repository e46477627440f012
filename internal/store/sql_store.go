package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ledgerly/internal/models"
)

const insertBatchSize = 200

// SQLStore keeps the ledger in the transactions table.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore creates a SQLStore over db.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// ReadAll returns every transaction ordered by id.
func (s *SQLStore) ReadAll(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// WriteAll replaces the table contents inside one database transaction.
func (s *SQLStore) WriteAll(ctx context.Context, txs []models.Transaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear ledger: %w", err)
		}
		if len(txs) == 0 {
			return nil
		}

		rows := make([]models.Transaction, len(txs))
		copy(rows, txs)
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to write ledger: %w", err)
		}
		return nil
	})
}
