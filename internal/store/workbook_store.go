package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"

	"ledgerly/internal/ingest"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
)

// LedgerSheet is the worksheet that holds the ledger.
const LedgerSheet = "Ledger"

// WorkbookStore keeps the ledger in an .xlsx workbook, one row per
// transaction under an ingest.Header row.
type WorkbookStore struct {
	path string
	mu   sync.RWMutex
}

// NewWorkbookStore creates a WorkbookStore for the workbook at path. The file
// does not need to exist yet.
func NewWorkbookStore(path string) *WorkbookStore {
	return &WorkbookStore{path: path}
}

// ReadAll parses the ledger sheet. A missing workbook is an empty ledger.
// Cells go through the same coercion as any other spreadsheet import; rows
// without a counterparty are skipped and logged.
func (s *WorkbookStore) ReadAll(ctx context.Context) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := LedgerSheet
	rows, err := f.GetRows(sheet)
	if err != nil {
		// Fall back to the first sheet for workbooks exported elsewhere
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets: %w", s.path, err)
		}
		sheet = sheets[0]
		if rows, err = f.GetRows(sheet); err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
	}

	txs, rowErrors, err := ingest.ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", s.path, err)
	}
	// The next WriteAll will not carry these rows over.
	for _, rowErr := range rowErrors {
		logger.Get().Warnw("Dropped workbook row",
			"file", s.path,
			"sheet", sheet,
			"row", rowErr.Row,
			"reason", rowErr.Reason,
		)
	}
	return txs, nil
}

// WriteAll rewrites the workbook. The new file is written next to the old
// one and renamed over it, so readers never see a half-written workbook.
func (s *WorkbookStore) WriteAll(ctx context.Context, txs []models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(LedgerSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := make([]interface{}, len(ingest.Header))
	for i, h := range ingest.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(LedgerSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, tx := range txs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := workbookRow(tx)
		if err := f.SetSheetRow(LedgerSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create workbook directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".ledger-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp workbook: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush workbook: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace workbook: %w", err)
	}
	return nil
}

// workbookRow writes ids and amounts as numbers so the sheet stays usable
// for formulas; dates and timestamps stay ISO strings.
func workbookRow(tx models.Transaction) []interface{} {
	cells := ingest.FormatRow(tx)
	row := make([]interface{}, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	row[0] = tx.ID
	row[4] = tx.Amount.InexactFloat64()
	return row
}
