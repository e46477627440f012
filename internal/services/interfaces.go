package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"ledgerly/internal/categorizer"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
)

// Audit actions.
const (
	ActionCreateTransaction = "CREATE_TRANSACTION"
	ActionUpdateTransaction = "UPDATE_TRANSACTION"
	ActionDeleteTransaction = "DELETE_TRANSACTION"
	ActionImportLedger      = "IMPORT_LEDGER"
)

// TransactionFilter holds optional filter parameters for listing transactions.
// Empty fields match everything.
type TransactionFilter struct {
	Kinds        []models.TransactionKind
	Flow         models.Flow
	Counterparty string
	Category     string
	FromDate     *time.Time
	ToDate       *time.Time
}

// TransactionUpdate holds the fields to change on an existing transaction.
// Nil fields are left as they are.
type TransactionUpdate struct {
	Kind         *models.TransactionKind
	Counterparty *string
	Amount       *decimal.Decimal
	Date         *time.Time
}

// ImportResult reports what ImportTransactions wrote.
type ImportResult struct {
	Imported int   `json:"imported"`
	Replaced bool  `json:"replaced"`
	FirstID  int64 `json:"first_id"`
	LastID   int64 `json:"last_id"`
}

// LedgerServicer defines the contract for ledger business logic.
type LedgerServicer interface {
	AddTransaction(ctx context.Context, kind models.TransactionKind, counterparty string, amount decimal.Decimal, date time.Time) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	ListTransactions(ctx context.Context, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetSummary(ctx context.Context) (*ledger.Result, error)
	OpenCounterparties(ctx context.Context, kind models.TransactionKind) ([]string, error)
	ImportTransactions(ctx context.Context, txs []models.Transaction, replace bool) (*ImportResult, error)
	ClassifyDescription(description string) string
	Categories() []string
	Rules() []categorizer.Rule
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action string, transactionID int64, ipAddress string, changes map[string]interface{})
}

// OwnerClaims are the claims carried by a ledger owner token.
type OwnerClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// AuthServicer defines the contract for owner authentication.
type AuthServicer interface {
	Enabled() bool
	Login(password string) (token string, expiresAt time.Time, err error)
	ValidateToken(token string) (*OwnerClaims, error)
}
