// Package ingest converts spreadsheet-shaped rows into ledger transactions.
//
// This is where raw cells are cleaned: non-numeric ids and amounts become
// zero, unparsable dates become the zero time, and rows without a
// counterparty are dropped. Kind labels are normalized but unknown kinds are
// passed through untouched so that reconciliation can report them.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledgerly/internal/models"
)

// Column names understood in a header row. The Spanish names are those of
// the original spreadsheet exports.
var columnAliases = map[string]string{
	"id":           "id",
	"date":         "date",
	"fecha":        "date",
	"kind":         "kind",
	"type":         "kind",
	"tipo":         "kind",
	"counterparty": "counterparty",
	"description":  "counterparty",
	"concepto":     "counterparty",
	"amount":       "amount",
	"monto":        "amount",
	"category":     "category",
	"categoria":    "category",
	"categoría":    "category",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

// Header is the canonical column order used when writing rows.
var Header = []string{"id", "date", "kind", "counterparty", "amount", "category", "created_at", "updated_at"}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
}

// RowError describes a dropped row. Row is 1-based and counts the header.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// ParseRows converts rows (header first) into transactions. It only fails
// when the header lacks a kind or counterparty column; individual bad rows
// are reported in the returned RowErrors.
func ParseRows(rows [][]string) ([]models.Transaction, []RowError, error) {
	if len(rows) == 0 {
		return []models.Transaction{}, nil, nil
	}

	columns := mapColumns(rows[0])
	for _, required := range []string{"kind", "counterparty"} {
		if _, ok := columns[required]; !ok {
			return nil, nil, fmt.Errorf("header is missing a %q column", required)
		}
	}

	transactions := make([]models.Transaction, 0, len(rows)-1)
	var rowErrors []RowError

	for i, row := range rows[1:] {
		rowNum := i + 2
		if blankRow(row) {
			continue
		}

		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		counterparty := cell("counterparty")
		if counterparty == "" {
			rowErrors = append(rowErrors, RowError{Row: rowNum, Reason: "missing counterparty"})
			continue
		}

		kind, _ := models.ParseKind(cell("kind"))

		transactions = append(transactions, models.Transaction{
			ID:           ParseID(cell("id")),
			Date:         ParseDate(cell("date")),
			Kind:         kind,
			Counterparty: counterparty,
			Amount:       ParseAmount(cell("amount")),
			Category:     cell("category"),
			CreatedAt:    ParseDate(cell("created_at")),
			UpdatedAt:    ParseDate(cell("updated_at")),
		})
	}

	return transactions, rowErrors, nil
}

// ParseCSV reads a CSV export and converts it with ParseRows.
func ParseCSV(r io.Reader) ([]models.Transaction, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return ParseRows(records)
}

// ParseID coerces a cell into an id. Anything that is not a whole number,
// including spreadsheet floats such as "3.0", is handled leniently; garbage
// becomes 0.
func ParseID(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d.IntPart()
	}
	return 0
}

// ParseAmount coerces a cell into an amount. A trailing currency sign is
// dropped. When a cell carries both "." and ",", whichever comes last is the
// decimal separator and the other must group thousands in threes, so
// "1.234,50 €" and "1,234.50" both read as 1234.50. A lone separator is the
// decimal point ("12,5"); the same separator repeated groups thousands
// ("1.234.567"). Anything else, including mixed or misgrouped shapes,
// becomes 0.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "€"))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero
	}

	normalized, ok := normalizeAmount(s)
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func normalizeAmount(s string) (string, bool) {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma < 0 && lastDot < 0:
		return sign + s, true

	case lastComma >= 0 && lastDot >= 0:
		decimalSep, groupSep := ".", ","
		at := lastDot
		if lastComma > lastDot {
			decimalSep, groupSep, at = ",", ".", lastComma
		}
		whole, frac := s[:at], s[at+1:]
		if strings.Contains(whole, decimalSep) || !groupedThousands(whole, groupSep) {
			return "", false
		}
		return sign + strings.ReplaceAll(whole, groupSep, "") + "." + frac, true

	default:
		sep := ","
		if lastDot >= 0 {
			sep = "."
		}
		if strings.Count(s, sep) == 1 {
			return sign + strings.Replace(s, sep, ".", 1), true
		}
		if !groupedThousands(s, sep) {
			return "", false
		}
		return sign + strings.ReplaceAll(s, sep, ""), true
	}
}

// groupedThousands reports whether whole is a run of digits grouped in
// threes by sep, such as "1.234.567". A whole part without sep passes.
func groupedThousands(whole, sep string) bool {
	groups := strings.Split(whole, sep)
	for i, g := range groups {
		if i == 0 && (len(g) < 1 || len(g) > 3) {
			return false
		}
		if i > 0 && len(g) != 3 {
			return false
		}
	}
	return true
}

// ParseDate accepts the layouts found in ledger exports. Unparsable input
// yields the zero time.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatRow renders a transaction in Header order. Dates at midnight are
// written as 2006-01-02; anything with a time of day keeps it in RFC3339.
func FormatRow(tx models.Transaction) []string {
	date := ""
	if !tx.Date.IsZero() {
		date = tx.Date.Format("2006-01-02")
		if h, m, sec := tx.Date.Clock(); h != 0 || m != 0 || sec != 0 || tx.Date.Nanosecond() != 0 {
			date = tx.Date.Format(time.RFC3339Nano)
		}
	}
	return []string{
		strconv.FormatInt(tx.ID, 10),
		date,
		string(tx.Kind),
		tx.Counterparty,
		tx.Amount.String(),
		tx.Category,
		formatTimestamp(tx.CreatedAt),
		formatTimestamp(tx.UpdatedAt),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func mapColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		name, ok := columnAliases[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
