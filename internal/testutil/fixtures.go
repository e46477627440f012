package testutil

import (
	"testing"
	"time"

	"ledgerly/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Amount parses a decimal literal, failing the test on bad input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid amount literal %q: %v", s, err)
	}
	return d
}

// NewTransaction builds an unsaved transaction dated id days after 2025-01-01.
func NewTransaction(t *testing.T, id int64, kind models.TransactionKind, counterparty, amount string) models.Transaction {
	t.Helper()

	return models.Transaction{
		ID:           id,
		Date:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(id)),
		Kind:         kind,
		Counterparty: counterparty,
		Amount:       Amount(t, amount),
	}
}

// ScenarioLedger is the reference ledger: cash 810, net worth 870,
// Banco pending 120, Ana receivable 60.
func ScenarioLedger(t *testing.T) []models.Transaction {
	t.Helper()

	return []models.Transaction{
		NewTransaction(t, 1, models.TransactionKindIncome, "Nómina", "1000"),
		NewTransaction(t, 2, models.TransactionKindExpense, "Mercadona", "50"),
		NewTransaction(t, 3, models.TransactionKindDebtIncurred, "Banco", "200"),
		NewTransaction(t, 4, models.TransactionKindDebtPayment, "Banco", "80"),
		NewTransaction(t, 5, models.TransactionKindLoanGiven, "Ana", "100"),
		NewTransaction(t, 6, models.TransactionKindLoanCollected, "Ana", "40"),
	}
}

// SeedTransactions inserts txs directly, bypassing the ledger service.
func SeedTransactions(t *testing.T, db *gorm.DB, txs []models.Transaction) {
	t.Helper()

	for i := range txs {
		if err := db.Create(&txs[i]).Error; err != nil {
			t.Fatalf("failed to seed transaction %d: %v", txs[i].ID, err)
		}
	}
}
