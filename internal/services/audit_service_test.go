package services

import (
	"testing"

	"ledgerly/internal/models"
	"ledgerly/internal/testutil"
)

func TestAuditService_Log(t *testing.T) {
	t.Run("persists_entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		NewAuditService(db).Log(ActionCreateTransaction, 7, "127.0.0.1", map[string]interface{}{"kind": "expense"})

		var entries []models.AuditLog
		testutil.AssertNoError(t, db.Find(&entries).Error)
		if len(entries) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(entries))
		}
		e := entries[0]
		if e.ID == "" || e.Action != ActionCreateTransaction || e.TransactionID != 7 {
			t.Errorf("unexpected entry: %+v", e)
		}
		if e.Changes != `{"kind":"expense"}` {
			t.Errorf("unexpected changes: %s", e.Changes)
		}
	})

	t.Run("nil_db_does_not_panic", func(t *testing.T) {
		NewAuditService(nil).Log(ActionDeleteTransaction, 1, "", nil)
	})
}
