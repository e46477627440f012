// Package ledger reconciles a snapshot of ledger transactions into balance
// figures: income and expense totals, per-counterparty debt and loan
// summaries, available cash and net worth.
//
// Reconcile is a pure function. It performs no I/O, keeps no state between
// calls and never mutates its input.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"ledgerly/internal/models"
)

// ErrInvalidTransaction marks a row that was excluded from aggregation.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Reasons reported in an Anomaly.
const (
	ReasonUnknownKind    = "unknown_kind"
	ReasonNegativeAmount = "negative_amount"
)

// Categorizer assigns a category label to an expense description.
type Categorizer interface {
	Categorize(description string) string
}

// DebtSummary is what is owed to one creditor.
type DebtSummary struct {
	Counterparty string          `json:"counterparty"`
	Incurred     decimal.Decimal `json:"incurred"`
	Paid         decimal.Decimal `json:"paid"`
	Pending      decimal.Decimal `json:"pending"`
}

// LoanSummary is what one debtor owes back.
type LoanSummary struct {
	Counterparty string          `json:"counterparty"`
	Given        decimal.Decimal `json:"given"`
	Collected    decimal.Decimal `json:"collected"`
	Receivable   decimal.Decimal `json:"receivable"`
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// Anomaly describes a row excluded from every sum.
type Anomaly struct {
	TransactionID int64                  `json:"transaction_id"`
	Kind          models.TransactionKind `json:"kind"`
	Amount        decimal.Decimal        `json:"amount"`
	Reason        string                 `json:"reason"`
}

// Error implements the error interface so anomalies can be joined and
// matched with errors.Is(err, ErrInvalidTransaction).
func (a Anomaly) Error() string {
	return fmt.Sprintf("transaction %d: %s (kind %q, amount %s)", a.TransactionID, a.Reason, a.Kind, a.Amount)
}

// Unwrap returns ErrInvalidTransaction.
func (a Anomaly) Unwrap() error { return ErrInvalidTransaction }

// Result is the reconciliation of one ledger snapshot.
type Result struct {
	TotalIncome         decimal.Decimal `json:"total_income"`
	TotalExpense        decimal.Decimal `json:"total_expense"`
	TotalDebtIncurred   decimal.Decimal `json:"total_debt_incurred"`
	TotalDebtPayments   decimal.Decimal `json:"total_debt_payments"`
	TotalLoansGiven     decimal.Decimal `json:"total_loans_given"`
	TotalLoansCollected decimal.Decimal `json:"total_loans_collected"`
	TotalPending        decimal.Decimal `json:"total_pending"`
	TotalReceivable     decimal.Decimal `json:"total_receivable"`
	AvailableCash       decimal.Decimal `json:"available_cash"`
	NetWorth            decimal.Decimal `json:"net_worth"`

	Debts     []DebtSummary `json:"debts"`
	Loans     []LoanSummary `json:"loans"`
	Anomalies []Anomaly     `json:"anomalies"`

	// Only populated when reconciling WithCategorizer.
	ExpenseCategories map[int64]string `json:"expense_categories,omitempty"`
	Spending          []CategoryTotal  `json:"spending,omitempty"`
}

type options struct {
	categorizer Categorizer
}

// Option configures Reconcile.
type Option func(*options)

// WithCategorizer labels every valid expense row and fills
// Result.ExpenseCategories and Result.Spending.
func WithCategorizer(c Categorizer) Option {
	return func(o *options) { o.categorizer = c }
}

// Reconcile computes the Result for txs.
//
// Rows with an unrecognized kind or a negative amount are left out of every
// figure and reported in Result.Anomalies; the remaining rows are still
// aggregated.
func Reconcile(txs []models.Transaction, opts ...Option) *Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := &Result{
		TotalIncome:         decimal.Zero,
		TotalExpense:        decimal.Zero,
		TotalDebtIncurred:   decimal.Zero,
		TotalDebtPayments:   decimal.Zero,
		TotalLoansGiven:     decimal.Zero,
		TotalLoansCollected: decimal.Zero,
		TotalPending:        decimal.Zero,
		TotalReceivable:     decimal.Zero,
		Debts:               []DebtSummary{},
		Loans:               []LoanSummary{},
		Anomalies:           []Anomaly{},
	}

	debts := map[string]*DebtSummary{}
	loans := map[string]*LoanSummary{}
	var spending map[string]*CategoryTotal
	if o.categorizer != nil {
		r.ExpenseCategories = map[int64]string{}
		spending = map[string]*CategoryTotal{}
	}

	for i := range txs {
		tx := &txs[i]

		if !tx.Kind.Valid() {
			r.Anomalies = append(r.Anomalies, anomaly(tx, ReasonUnknownKind))
			continue
		}
		if tx.Amount.IsNegative() {
			r.Anomalies = append(r.Anomalies, anomaly(tx, ReasonNegativeAmount))
			continue
		}

		switch tx.Kind {
		case models.TransactionKindIncome:
			r.TotalIncome = r.TotalIncome.Add(tx.Amount)

		case models.TransactionKindExpense:
			r.TotalExpense = r.TotalExpense.Add(tx.Amount)
			if o.categorizer != nil {
				category := o.categorizer.Categorize(tx.Counterparty)
				r.ExpenseCategories[tx.ID] = category
				total, ok := spending[category]
				if !ok {
					total = &CategoryTotal{Category: category, Amount: decimal.Zero}
					spending[category] = total
				}
				total.Amount = total.Amount.Add(tx.Amount)
				total.Count++
			}

		case models.TransactionKindDebtIncurred:
			r.TotalDebtIncurred = r.TotalDebtIncurred.Add(tx.Amount)
			d := debtFor(debts, tx.Counterparty)
			d.Incurred = d.Incurred.Add(tx.Amount)

		case models.TransactionKindDebtPayment:
			r.TotalDebtPayments = r.TotalDebtPayments.Add(tx.Amount)
			d := debtFor(debts, tx.Counterparty)
			d.Paid = d.Paid.Add(tx.Amount)

		case models.TransactionKindLoanGiven:
			r.TotalLoansGiven = r.TotalLoansGiven.Add(tx.Amount)
			l := loanFor(loans, tx.Counterparty)
			l.Given = l.Given.Add(tx.Amount)

		case models.TransactionKindLoanCollected:
			r.TotalLoansCollected = r.TotalLoansCollected.Add(tx.Amount)
			l := loanFor(loans, tx.Counterparty)
			l.Collected = l.Collected.Add(tx.Amount)
		}
	}

	for _, d := range debts {
		d.Pending = d.Incurred.Sub(d.Paid)
		r.TotalPending = r.TotalPending.Add(d.Pending)
		r.Debts = append(r.Debts, *d)
	}
	sort.Slice(r.Debts, func(i, j int) bool { return r.Debts[i].Counterparty < r.Debts[j].Counterparty })

	for _, l := range loans {
		l.Receivable = l.Given.Sub(l.Collected)
		r.TotalReceivable = r.TotalReceivable.Add(l.Receivable)
		r.Loans = append(r.Loans, *l)
	}
	sort.Slice(r.Loans, func(i, j int) bool { return r.Loans[i].Counterparty < r.Loans[j].Counterparty })

	if spending != nil {
		r.Spending = make([]CategoryTotal, 0, len(spending))
		for _, total := range spending {
			r.Spending = append(r.Spending, *total)
		}
		sortSpending(r.Spending)
	}

	r.AvailableCash = r.TotalIncome.
		Sub(r.TotalExpense).
		Sub(r.TotalDebtPayments).
		Sub(r.TotalLoansGiven).
		Add(r.TotalLoansCollected)
	r.NetWorth = r.AvailableCash.Add(r.TotalReceivable)

	return r
}

// PendingDebts returns the debts with a strictly positive pending balance.
func (r *Result) PendingDebts() []DebtSummary {
	out := []DebtSummary{}
	for _, d := range r.Debts {
		if d.Pending.IsPositive() {
			out = append(out, d)
		}
	}
	return out
}

// OutstandingLoans returns the loans with a strictly positive receivable.
func (r *Result) OutstandingLoans() []LoanSummary {
	out := []LoanSummary{}
	for _, l := range r.Loans {
		if l.Receivable.IsPositive() {
			out = append(out, l)
		}
	}
	return out
}

// Debt returns the summary for one creditor.
func (r *Result) Debt(counterparty string) (DebtSummary, bool) {
	for _, d := range r.Debts {
		if d.Counterparty == counterparty {
			return d, true
		}
	}
	return DebtSummary{}, false
}

// Loan returns the summary for one debtor.
func (r *Result) Loan(counterparty string) (LoanSummary, bool) {
	for _, l := range r.Loans {
		if l.Counterparty == counterparty {
			return l, true
		}
	}
	return LoanSummary{}, false
}

// Err joins all anomalies into one error, or returns nil when there are none.
func (r *Result) Err() error {
	if len(r.Anomalies) == 0 {
		return nil
	}
	errs := make([]error, len(r.Anomalies))
	for i, a := range r.Anomalies {
		errs[i] = a
	}
	return errors.Join(errs...)
}

func anomaly(tx *models.Transaction, reason string) Anomaly {
	return Anomaly{TransactionID: tx.ID, Kind: tx.Kind, Amount: tx.Amount, Reason: reason}
}

func debtFor(m map[string]*DebtSummary, counterparty string) *DebtSummary {
	d, ok := m[counterparty]
	if !ok {
		d = &DebtSummary{Counterparty: counterparty, Incurred: decimal.Zero, Paid: decimal.Zero}
		m[counterparty] = d
	}
	return d
}

func loanFor(m map[string]*LoanSummary, counterparty string) *LoanSummary {
	l, ok := m[counterparty]
	if !ok {
		l = &LoanSummary{Counterparty: counterparty, Given: decimal.Zero, Collected: decimal.Zero}
		m[counterparty] = l
	}
	return l
}

// sortSpending orders by amount descending, then category name.
func sortSpending(totals []CategoryTotal) {
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Amount.Cmp(totals[j].Amount); c != 0 {
			return c > 0
		}
		return totals[i].Category < totals[j].Category
	})
}
