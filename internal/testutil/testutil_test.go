package testutil_test

import (
	"testing"

	"ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"transactions", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	testutil.SeedTransactions(t, first, testutil.ScenarioLedger(t))

	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	var count int64
	if err := second.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected a fresh database, found %d transactions", count)
	}
}

func TestSeedTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.SeedTransactions(t, db, testutil.ScenarioLedger(t))

	var stored models.Transaction
	if err := db.First(&stored, 3).Error; err != nil {
		t.Fatalf("failed to load seeded transaction: %v", err)
	}
	if stored.Kind != models.TransactionKindDebtIncurred || stored.Counterparty != "Banco" {
		t.Errorf("unexpected transaction: %+v", stored)
	}
	testutil.AssertDecimal(t, "200", stored.Amount)
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrTransactionNotFound, "TRANSACTION_NOT_FOUND")
	testutil.AssertAppError(t, errors.WithMessage(errors.ErrInvalidInput, "custom"), "INVALID_INPUT")
}
