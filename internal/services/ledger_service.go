package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"ledgerly/internal/categorizer"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/ledger"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
	"ledgerly/internal/store"
)

// ledgerService handles ledger business logic on top of a full-snapshot store.
//
// Every mutation is a read-all, modify, write-all sequence. mu serializes
// those sequences within the process; concurrent writers in other processes
// are last-write-wins.
type ledgerService struct {
	store       store.LedgerStore
	categorizer *categorizer.Categorizer
	mu          sync.Mutex
}

// NewLedgerService creates a new LedgerServicer. A nil categorizer uses the
// default rule table.
func NewLedgerService(s store.LedgerStore, c *categorizer.Categorizer) LedgerServicer {
	if c == nil {
		c = categorizer.Default()
	}
	return &ledgerService{store: s, categorizer: c}
}

// AddTransaction appends a transaction with the next free id.
func (s *ledgerService) AddTransaction(ctx context.Context, kind models.TransactionKind, counterparty string, amount decimal.Decimal, date time.Time) (*models.Transaction, error) {
	counterparty = strings.TrimSpace(counterparty)
	if err := validateTransaction(kind, counterparty, amount); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx := models.Transaction{
		ID:           nextID(txs),
		Date:         date,
		Kind:         kind,
		Counterparty: counterparty,
		Amount:       amount,
		Category:     s.categorizer.CategoryFor(kind, counterparty),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.writeAll(ctx, append(txs, tx)); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransaction applies a partial update and recomputes the category.
func (s *ledgerService) UpdateTransaction(ctx context.Context, id int64, update TransactionUpdate) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(txs, id)
	if idx < 0 {
		return nil, apperrors.ErrTransactionNotFound
	}

	tx := txs[idx]
	if update.Kind != nil {
		tx.Kind = *update.Kind
	}
	if update.Counterparty != nil {
		tx.Counterparty = strings.TrimSpace(*update.Counterparty)
	}
	if update.Amount != nil {
		tx.Amount = *update.Amount
	}
	if update.Date != nil && !update.Date.IsZero() {
		tx.Date = *update.Date
	}

	if err := validateTransaction(tx.Kind, tx.Counterparty, tx.Amount); err != nil {
		return nil, err
	}

	tx.Category = s.categorizer.CategoryFor(tx.Kind, tx.Counterparty)
	tx.UpdatedAt = time.Now()
	txs[idx] = tx

	if err := s.writeAll(ctx, txs); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction removes a transaction from the ledger.
func (s *ledgerService) DeleteTransaction(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.readAll(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(txs, id)
	if idx < 0 {
		return apperrors.ErrTransactionNotFound
	}

	remaining := make([]models.Transaction, 0, len(txs)-1)
	remaining = append(remaining, txs[:idx]...)
	remaining = append(remaining, txs[idx+1:]...)

	return s.writeAll(ctx, remaining)
}

// GetTransaction retrieves a transaction by id.
func (s *ledgerService) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	txs, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(txs, id)
	if idx < 0 {
		return nil, apperrors.ErrTransactionNotFound
	}
	tx := txs[idx]
	return &tx, nil
}

// ListTransactions returns a filtered page of transactions, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if filter.Flow != "" && !filter.Flow.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "flow must be in or out")
	}

	txs, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if filter.matches(&tx) {
			matched = append(matched, tx)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID > matched[j].ID
	})

	result := pagination.Paginate(matched, page)
	return &result, nil
}

// GetSummary reconciles the current ledger snapshot.
func (s *ledgerService) GetSummary(ctx context.Context) (*ledger.Result, error) {
	txs, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	result := ledger.Reconcile(txs, ledger.WithCategorizer(s.categorizer))
	if len(result.Anomalies) > 0 {
		logger.Get().Warnw("ledger rows excluded from reconciliation",
			"count", len(result.Anomalies),
			"error", result.Err(),
		)
	}
	return result, nil
}

// OpenCounterparties lists the names a payment or collection can be booked
// against: creditors with a pending balance for debt_payment, debtors with a
// receivable balance for loan_collected.
func (s *ledgerService) OpenCounterparties(ctx context.Context, kind models.TransactionKind) ([]string, error) {
	if kind != models.TransactionKindDebtPayment && kind != models.TransactionKindLoanCollected {
		return nil, apperrors.ErrInvalidCounterpartyKind
	}

	txs, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}
	result := ledger.Reconcile(txs)

	names := []string{}
	if kind == models.TransactionKindDebtPayment {
		for _, d := range result.PendingDebts() {
			names = append(names, d.Counterparty)
		}
	} else {
		for _, l := range result.OutstandingLoans() {
			names = append(names, l.Counterparty)
		}
	}
	return names, nil
}

// ImportTransactions adds externally parsed rows to the ledger.
//
// When appending, imported rows are renumbered after the current max id.
// When replacing, the source ids are kept if they are positive and unique,
// otherwise rows are renumbered from 1. Amounts are rounded to cents. Rows
// with unknown kinds or negative amounts are stored as-is; reconciliation
// reports them as anomalies.
func (s *ledgerService) ImportTransactions(ctx context.Context, txs []models.Transaction, replace bool) (*ImportResult, error) {
	if len(txs) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "no transactions to import")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var existing []models.Transaction
	if !replace {
		var err error
		existing, err = s.readAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	renumber := !replace || !uniquePositiveIDs(txs)
	next := nextID(existing)
	now := time.Now()
	invalid := 0

	imported := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		if renumber {
			tx.ID = next
			next++
		}
		tx.Counterparty = strings.TrimSpace(tx.Counterparty)
		tx.Amount = tx.Amount.Round(models.AmountScale)
		if tx.Kind.Valid() {
			tx.Category = s.categorizer.CategoryFor(tx.Kind, tx.Counterparty)
		} else {
			invalid++
			if tx.Category == "" {
				tx.Category = categorizer.CategoryOther
			}
		}
		if tx.CreatedAt.IsZero() {
			tx.CreatedAt = now
		}
		tx.UpdatedAt = now
		imported[i] = tx
	}

	if invalid > 0 {
		logger.Get().Warnw("imported rows with unknown kinds", "count", invalid)
	}

	if err := s.writeAll(ctx, append(existing, imported...)); err != nil {
		return nil, err
	}

	first, last := imported[0].ID, imported[0].ID
	for _, tx := range imported {
		if tx.ID < first {
			first = tx.ID
		}
		if tx.ID > last {
			last = tx.ID
		}
	}

	return &ImportResult{
		Imported: len(imported),
		Replaced: replace,
		FirstID:  first,
		LastID:   last,
	}, nil
}

// ClassifyDescription previews the category an expense would get.
func (s *ledgerService) ClassifyDescription(description string) string {
	return s.categorizer.Categorize(description)
}

// Categories lists the category labels in rule order.
func (s *ledgerService) Categories() []string {
	return s.categorizer.Categories()
}

// Rules returns the configured keyword rules.
func (s *ledgerService) Rules() []categorizer.Rule {
	return s.categorizer.Rules()
}

func (s *ledgerService) readAll(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return txs, nil
}

func (s *ledgerService) writeAll(ctx context.Context, txs []models.Transaction) error {
	if err := s.store.WriteAll(ctx, txs); err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func validateTransaction(kind models.TransactionKind, counterparty string, amount decimal.Decimal) error {
	if !kind.Valid() {
		return apperrors.ErrInvalidTransactionKind
	}
	if counterparty == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "counterparty is required")
	}
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	// The amount column keeps cents; anything finer would be rounded on write.
	if !amount.Equal(amount.Round(models.AmountScale)) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must have at most 2 decimal places")
	}
	return nil
}

// nextID is max(id)+1 over the snapshot. Deleting the highest id and adding
// again hands the same id out a second time.
func nextID(txs []models.Transaction) int64 {
	var top int64
	for i := range txs {
		if txs[i].ID > top {
			top = txs[i].ID
		}
	}
	return top + 1
}

func indexOf(txs []models.Transaction, id int64) int {
	for i := range txs {
		if txs[i].ID == id {
			return i
		}
	}
	return -1
}

func uniquePositiveIDs(txs []models.Transaction) bool {
	seen := make(map[int64]struct{}, len(txs))
	for i := range txs {
		id := txs[i].ID
		if id <= 0 {
			return false
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

func (f TransactionFilter) matches(tx *models.Transaction) bool {
	if len(f.Kinds) > 0 && !containsKind(f.Kinds, tx.Kind) {
		return false
	}
	if f.Flow != "" && !f.Flow.Includes(tx.Kind) {
		return false
	}
	if f.Counterparty != "" && !strings.Contains(strings.ToLower(tx.Counterparty), strings.ToLower(f.Counterparty)) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(tx.Category, f.Category) {
		return false
	}
	if f.FromDate != nil && tx.Date.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && tx.Date.After(*f.ToDate) {
		return false
	}
	return true
}

func containsKind(kinds []models.TransactionKind, k models.TransactionKind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
