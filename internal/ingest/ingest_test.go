package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/models"
)

func TestParseCSV_SpanishExport(t *testing.T) {
	content := `id,fecha,tipo,concepto,monto,categoria
1,2025-03-01,Ingreso,Nómina,1000,Ingresos
2,2025-03-02,Gasto,Mercadona,"50,25",Alimentación
3,2025-03-03,Deuda,Banco,200,Deudas
4,2025-03-04,Pago Deuda,Banco,80,Deudas
5,2025-03-05,Prestado,Ana,100,Préstamos
6,2025-03-06,Cobro Préstamo,Ana,40,Préstamos`

	txs, rowErrs, err := ParseCSV(strings.NewReader(content))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, txs, 6)

	assert.Equal(t, int64(2), txs[1].ID)
	assert.Equal(t, models.TransactionKindExpense, txs[1].Kind)
	assert.Equal(t, "Mercadona", txs[1].Counterparty)
	assert.True(t, txs[1].Amount.Equal(decimal.RequireFromString("50.25")), "got %s", txs[1].Amount)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), txs[1].Date)

	assert.Equal(t, models.TransactionKindDebtPayment, txs[3].Kind)
	assert.Equal(t, models.TransactionKindLoanCollected, txs[5].Kind)
}

func TestParseCSV_CoercesBadCells(t *testing.T) {
	content := `id,date,kind,counterparty,amount
abc,not-a-date,Expense,Taxi,twelve
,2025-01-01,Bogus,Lotería,5
7,2025-01-02,Income,,100

3.0,01/02/2025,Income,Freelance,1.234,50 €`

	txs, rowErrs, err := ParseCSV(strings.NewReader(content))
	require.NoError(t, err)

	require.Len(t, rowErrs, 1)
	assert.Equal(t, 4, rowErrs[0].Row)
	assert.Equal(t, "missing counterparty", rowErrs[0].Reason)

	require.Len(t, txs, 3)

	assert.Equal(t, int64(0), txs[0].ID)
	assert.True(t, txs[0].Date.IsZero())
	assert.True(t, txs[0].Amount.IsZero())

	assert.Equal(t, models.TransactionKind("Bogus"), txs[1].Kind, "unknown kinds pass through")

	assert.Equal(t, int64(3), txs[2].ID)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), txs[2].Date)
}

func TestParseRows_MissingColumns(t *testing.T) {
	_, _, err := ParseRows([][]string{{"id", "amount"}, {"1", "2"}})
	assert.Error(t, err)
}

func TestParseRows_Empty(t *testing.T) {
	txs, rowErrs, err := ParseRows(nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Empty(t, rowErrs)
}

func TestParseAmount(t *testing.T) {
	tests := map[string]string{
		"12":         "12",
		"12.5":       "12.5",
		"12,5":       "12.5",
		"1.234,56":   "1234.56",
		"1.234,56 €": "1234.56",
		"  7 ":       "7",
		"":           "0",
		"abc":        "0",
		"-3":         "-3",
		"1,234.50":   "1234.50",
		"1.234,50 €": "1234.50",
		"1,234,567":  "1234567",
		"1.234.567":  "1234567",
		"-1.234,5":   "-1234.5",
		"1,234":      "1.234",
		"0.5":        "0.5",
		"1,23.45":    "0",
		"1.234,5.6":  "0",
		"12,34,56":   "0",
		".5,":        "0",
	}
	for in, want := range tests {
		got := ParseAmount(in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "ParseAmount(%q) = %s, want %s", in, got, want)
	}
}

func TestFormatRow_RoundTripsThroughParseRows(t *testing.T) {
	tx := models.Transaction{
		ID:           9,
		Date:         time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Kind:         models.TransactionKindLoanGiven,
		Counterparty: "Ana",
		Amount:       decimal.RequireFromString("12.34"),
		Category:     "Loans",
	}

	txs, rowErrs, err := ParseRows([][]string{Header, FormatRow(tx)})
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, txs, 1)
	assert.Equal(t, tx.ID, txs[0].ID)
	assert.Equal(t, tx.Date, txs[0].Date)
	assert.Equal(t, tx.Kind, txs[0].Kind)
	assert.True(t, tx.Amount.Equal(txs[0].Amount))
	assert.Equal(t, tx.Category, txs[0].Category)
}

func TestFormatRow_KeepsTimeOfDay(t *testing.T) {
	madrid := time.FixedZone("CET", 3600)
	tx := models.Transaction{
		ID:           3,
		Date:         time.Date(2025, 3, 14, 18, 30, 0, 250, madrid),
		Kind:         models.TransactionKindExpense,
		Counterparty: "Mercadona",
		Amount:       decimal.RequireFromString("9.95"),
		CreatedAt:    time.Date(2025, 3, 14, 18, 30, 1, 0, time.UTC),
	}

	row := FormatRow(tx)
	assert.Equal(t, "2025-03-14T18:30:00.00000025+01:00", row[1])
	assert.Empty(t, row[7], "zero updated_at stays blank")

	txs, _, err := ParseRows([][]string{Header, row})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, tx.Date.Equal(txs[0].Date), "date: %s vs %s", tx.Date, txs[0].Date)
	assert.True(t, tx.CreatedAt.Equal(txs[0].CreatedAt), "created_at: %s vs %s", tx.CreatedAt, txs[0].CreatedAt)
	assert.True(t, txs[0].UpdatedAt.IsZero())
}

func TestFormatRow_MidnightIsDateOnly(t *testing.T) {
	tx := models.Transaction{ID: 1, Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), Kind: models.TransactionKindIncome, Counterparty: "Nómina"}
	assert.Equal(t, "2025-06-30", FormatRow(tx)[1])
}
