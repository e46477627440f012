package models

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		label  string
		want   TransactionKind
		wantOK bool
	}{
		{"income", TransactionKindIncome, true},
		{"Expense", TransactionKindExpense, true},
		{" Debt Payment ", TransactionKindDebtPayment, true},
		{"LoanCollected", TransactionKindLoanCollected, true},
		{"Ingreso", TransactionKindIncome, true},
		{"Gasto", TransactionKindExpense, true},
		{"Deuda", TransactionKindDebtIncurred, true},
		{"Pago Deuda", TransactionKindDebtPayment, true},
		{"Prestado", TransactionKindLoanGiven, true},
		{"Cobro Préstamo", TransactionKindLoanCollected, true},
		{"Debt", TransactionKindDebtIncurred, true},
		{"Bogus", TransactionKind("Bogus"), false},
		{"", TransactionKind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseKind(tt.label)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseKind(%q) = (%q, %v), want (%q, %v)", tt.label, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTransactionKindValid(t *testing.T) {
	for _, k := range TransactionKinds {
		if !k.Valid() {
			t.Errorf("expected %q to be valid", k)
		}
	}
	if TransactionKind("transfer").Valid() {
		t.Error("transfer should not be a ledger kind")
	}
}

func TestFlowIncludes(t *testing.T) {
	tests := []struct {
		flow Flow
		kind TransactionKind
		want bool
	}{
		{FlowIn, TransactionKindIncome, true},
		{FlowIn, TransactionKindLoanCollected, true},
		{FlowIn, TransactionKindExpense, false},
		{FlowOut, TransactionKindExpense, true},
		{FlowOut, TransactionKindDebtPayment, true},
		{FlowOut, TransactionKindLoanGiven, true},
		{FlowOut, TransactionKindDebtIncurred, false},
		{FlowIn, TransactionKindDebtIncurred, false},
		{Flow("sideways"), TransactionKindIncome, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.flow)+"_"+string(tt.kind), func(t *testing.T) {
			if got := tt.flow.Includes(tt.kind); got != tt.want {
				t.Errorf("%s.Includes(%s) = %v, want %v", tt.flow, tt.kind, got, tt.want)
			}
		})
	}

	if Flow("").Valid() || !FlowIn.Valid() || !FlowOut.Valid() {
		t.Error("unexpected Flow.Valid result")
	}
}
