package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
	"ledgerly/internal/services"
)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.ListTransactions)
	r.GET("/transactions/:id", handler.GetTransaction)
	r.PUT("/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotDate time.Time
		svc := &mockLedgerService{
			addTransactionFn: func(_ context.Context, kind models.TransactionKind, counterparty string, amount decimal.Decimal, date time.Time) (*models.Transaction, error) {
				gotDate = date
				return &models.Transaction{ID: 7, Kind: kind, Counterparty: counterparty, Amount: amount, Date: date, Category: "Food"}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(svc, audit))

		rec := doRequest(r, "POST", "/transactions",
			`{"kind":"expense","counterparty":"Mercadona","amount":"42.50","date":"2025-03-14"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["amount"] != "42.5" {
			t.Errorf("expected amount 42.5, got %v", tx["amount"])
		}
		if tx["category"] != "Food" {
			t.Errorf("expected category Food, got %v", tx["category"])
		}
		if !gotDate.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected date 2025-03-14, got %s", gotDate)
		}
		if len(audit.calls) != 1 || audit.calls[0].action != services.ActionCreateTransaction || audit.calls[0].transactionID != 7 {
			t.Errorf("expected one CREATE_TRANSACTION audit call, got %+v", audit.calls)
		}
	})

	t.Run("accepts numeric amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockLedgerService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"kind":"income","counterparty":"Nómina","amount":1000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing counterparty", `{"kind":"expense","amount":5}`},
		{"zero amount", `{"kind":"expense","counterparty":"Zara","amount":0}`},
		{"negative amount", `{"kind":"expense","counterparty":"Zara","amount":-5}`},
		{"unknown kind", `{"kind":"Bogus","counterparty":"Zara","amount":5}`},
		{"bad date", `{"kind":"expense","counterparty":"Zara","amount":5,"date":"yesterday"}`},
		{"malformed json", `{"kind":`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			audit := &mockAuditService{}
			r := setupTransactionRouter(NewTransactionHandler(&mockLedgerService{}, audit))

			rec := doRequest(r, "POST", "/transactions", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
			if len(audit.calls) != 0 {
				t.Error("expected no audit entry for a rejected request")
			}
		})
	}

	t.Run("returns 503 when store is unavailable", func(t *testing.T) {
		svc := &mockLedgerService{
			addTransactionFn: func(context.Context, models.TransactionKind, string, decimal.Decimal, time.Time) (*models.Transaction, error) {
				return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, errors.New("dial tcp: refused"))
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"kind":"income","counterparty":"Nómina","amount":1}`)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORE_UNAVAILABLE")
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		var gotPage pagination.PageRequest
		svc := &mockLedgerService{
			listTransactionsFn: func(_ context.Context, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotPage, gotFilter = page, filter
				resp := pagination.NewPageResponse([]models.Transaction{{ID: 1}}, 2, 5, 6)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET",
			"/transactions?page=2&page_size=5&kind=debt_incurred,debt_payment&flow=out&counterparty=banco&category=Debts&from_date=2025-01-01&to_date=2025-01-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPage.Page != 2 || gotPage.PageSize != 5 {
			t.Errorf("unexpected page request: %+v", gotPage)
		}
		if len(gotFilter.Kinds) != 2 || gotFilter.Flow != models.FlowOut || gotFilter.Counterparty != "banco" || gotFilter.Category != "Debts" {
			t.Errorf("unexpected filter: %+v", gotFilter)
		}
		if gotFilter.ToDate == nil || !gotFilter.ToDate.After(time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC)) {
			t.Errorf("expected to_date to include the whole day, got %v", gotFilter.ToDate)
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 6 || result["total_pages"].(float64) != 2 {
			t.Errorf("unexpected page metadata: %v", result)
		}
	})

	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"invalid kind", "?kind=transfer", "INVALID_TRANSACTION_KIND"},
		{"invalid flow", "?flow=sideways", "INVALID_INPUT"},
		{"flow in wrong case", "?flow=IN", "INVALID_INPUT"},
		{"invalid from_date", "?from_date=nope", "INVALID_INPUT"},
		{"page size too large", "?page_size=1000", "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupTransactionRouter(NewTransactionHandler(&mockLedgerService{}, &mockAuditService{}))

			rec := doRequest(r, "GET", "/transactions"+tt.query, "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), tt.code)
		})
	}
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockLedgerService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions/3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["id"].(float64) != 3 {
			t.Errorf("expected id 3, got %v", tx["id"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockLedgerService{
			getTransactionFn: func(context.Context, int64) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions/99", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})

	for _, id := range []string{"abc", "0", "-4"} {
		t.Run("returns 400 on id "+id, func(t *testing.T) {
			r := setupTransactionRouter(NewTransactionHandler(&mockLedgerService{}, &mockAuditService{}))

			rec := doRequest(r, "GET", "/transactions/"+id, "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("returns 200 with partial update", func(t *testing.T) {
		var got services.TransactionUpdate
		svc := &mockLedgerService{
			updateTransactionFn: func(_ context.Context, id int64, update services.TransactionUpdate) (*models.Transaction, error) {
				got = update
				return &models.Transaction{ID: id, Counterparty: "Zara", Amount: *update.Amount}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(svc, audit))

		rec := doRequest(r, "PUT", "/transactions/4", `{"amount":"19.99"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Kind != nil || got.Counterparty != nil || got.Date != nil {
			t.Errorf("expected only amount set, got %+v", got)
		}
		if got.Amount == nil || got.Amount.String() != "19.99" {
			t.Errorf("expected amount 19.99, got %v", got.Amount)
		}
		if len(audit.calls) != 1 || audit.calls[0].changes["amount"] != "19.99" {
			t.Errorf("expected audit with amount change, got %+v", audit.calls)
		}
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockLedgerService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/transactions/4", `{"amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockLedgerService{
			updateTransactionFn: func(context.Context, int64, services.TransactionUpdate) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/transactions/99", `{"counterparty":"Zara"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		var deleted int64
		svc := &mockLedgerService{
			deleteTransactionFn: func(_ context.Context, id int64) error {
				deleted = id
				return nil
			},
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(svc, audit))

		rec := doRequest(r, "DELETE", "/transactions/5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if deleted != 5 {
			t.Errorf("expected id 5 deleted, got %d", deleted)
		}
		if len(audit.calls) != 1 || audit.calls[0].action != services.ActionDeleteTransaction {
			t.Errorf("expected DELETE_TRANSACTION audit, got %+v", audit.calls)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockLedgerService{
			deleteTransactionFn: func(context.Context, int64) error { return apperrors.ErrTransactionNotFound },
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/transactions/5", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
