package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind represents the type of ledger movement
type TransactionKind string

const (
	TransactionKindIncome        TransactionKind = "income"
	TransactionKindExpense       TransactionKind = "expense"
	TransactionKindDebtIncurred  TransactionKind = "debt_incurred"
	TransactionKindDebtPayment   TransactionKind = "debt_payment"
	TransactionKindLoanGiven     TransactionKind = "loan_given"
	TransactionKindLoanCollected TransactionKind = "loan_collected"
)

// TransactionKinds lists the closed set of kinds in form order.
var TransactionKinds = []TransactionKind{
	TransactionKindIncome,
	TransactionKindExpense,
	TransactionKindDebtIncurred,
	TransactionKindDebtPayment,
	TransactionKindLoanGiven,
	TransactionKindLoanCollected,
}

// kindAliases maps spreadsheet labels onto the closed set. Keys are lower-cased.
var kindAliases = map[string]TransactionKind{
	"ingreso":        TransactionKindIncome,
	"gasto":          TransactionKindExpense,
	"deuda":          TransactionKindDebtIncurred,
	"pago deuda":     TransactionKindDebtPayment,
	"prestado":       TransactionKindLoanGiven,
	"préstamo":       TransactionKindLoanGiven,
	"cobro préstamo": TransactionKindLoanCollected,
	"cobro prestamo": TransactionKindLoanCollected,

	"debtincurred":  TransactionKindDebtIncurred,
	"debtpayment":   TransactionKindDebtPayment,
	"loangiven":     TransactionKindLoanGiven,
	"loancollected": TransactionKindLoanCollected,

	// legacy income/expense/debt sheets
	"debt": TransactionKindDebtIncurred,
}

// Valid reports whether k belongs to the closed set.
func (k TransactionKind) Valid() bool {
	for _, known := range TransactionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind normalizes a kind label. Canonical names, the source spreadsheet
// labels and the legacy "Debt" label are accepted; anything else is returned
// verbatim with ok=false so downstream aggregation can flag it.
func ParseKind(label string) (TransactionKind, bool) {
	trimmed := strings.TrimSpace(label)
	lower := strings.ToLower(trimmed)

	if k := TransactionKind(strings.ReplaceAll(lower, " ", "_")); k.Valid() {
		return k, true
	}
	if k, ok := kindAliases[lower]; ok {
		return k, true
	}
	return TransactionKind(trimmed), false
}

// Flow groups kinds by the direction cash moves.
type Flow string

const (
	FlowIn  Flow = "in"
	FlowOut Flow = "out"
)

// Valid reports whether f is a known flow.
func (f Flow) Valid() bool {
	return f == FlowIn || f == FlowOut
}

// Includes reports whether rows of kind k move cash in direction f. Debt
// incurred is in neither flow.
func (f Flow) Includes(k TransactionKind) bool {
	switch f {
	case FlowIn:
		return k == TransactionKindIncome || k == TransactionKindLoanCollected
	case FlowOut:
		return k == TransactionKindExpense || k == TransactionKindDebtPayment || k == TransactionKindLoanGiven
	}
	return false
}

// AmountScale is the number of decimal places the amount column keeps.
const AmountScale = 2

// Transaction is one row of the ledger.
//
// IDs are assigned by the ledger service as max(id)+1, so the column is not
// an auto-increment sequence.
type Transaction struct {
	ID           int64           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	Kind         TransactionKind `gorm:"size:32;not null;index" json:"kind"`
	Counterparty string          `gorm:"not null" json:"counterparty"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Category     string          `gorm:"size:64" json:"category"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
