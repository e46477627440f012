// Package store provides the ledger store: the full-snapshot read/replace
// boundary between the ledger service and its persistence backend.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ledgerly/internal/models"
)

// Backend names accepted by New.
const (
	BackendSQL      = "sql"
	BackendWorkbook = "workbook"
)

// LedgerStore reads and replaces the whole ledger.
//
// ReadAll must reflect every WriteAll that returned successfully before it.
// WriteAll replaces the stored ledger with txs; there is no row-level patching
// and no conflict detection between concurrent writers.
type LedgerStore interface {
	ReadAll(ctx context.Context) ([]models.Transaction, error)
	WriteAll(ctx context.Context, txs []models.Transaction) error
}

// Options selects and configures a backend.
type Options struct {
	Backend      string
	WorkbookPath string
}

// New returns the configured LedgerStore. db is only used by the SQL backend.
func New(opts Options, db *gorm.DB) (LedgerStore, error) {
	switch opts.Backend {
	case "", BackendSQL:
		if db == nil {
			return nil, fmt.Errorf("sql store requires a database connection")
		}
		return NewSQLStore(db), nil
	case BackendWorkbook:
		if opts.WorkbookPath == "" {
			return nil, fmt.Errorf("workbook store requires WORKBOOK_PATH")
		}
		return NewWorkbookStore(opts.WorkbookPath), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (use %s or %s)", opts.Backend, BackendSQL, BackendWorkbook)
	}
}
