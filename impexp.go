package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Bulk import and export speak a six-column row shape. Import recognizes
// both the Korean and English header names a spreadsheet may carry.

// Canonical import field names.
const (
	fieldDate          = "date"
	fieldDescription   = "description"
	fieldDebitAccount  = "debitAccount"
	fieldDebitAmount   = "debitAmount"
	fieldCreditAccount = "creditAccount"
	fieldCreditAmount  = "creditAmount"
)

// fieldAliases maps every recognized header spelling to its canonical field.
var fieldAliases = map[string]string{
	"날짜":            fieldDate,
	"date":          fieldDate,
	"적요":            fieldDescription,
	"description":   fieldDescription,
	"차변계정":          fieldDebitAccount,
	"debitaccount":  fieldDebitAccount,
	"차변금액":          fieldDebitAmount,
	"debitamount":   fieldDebitAmount,
	"대변계정":          fieldCreditAccount,
	"creditaccount": fieldCreditAccount,
	"대변금액":          fieldCreditAmount,
	"creditamount":  fieldCreditAmount,
}

// exportHeader is the column order rows are written in.
var exportHeader = []string{"날짜", "적요", "차변계정", "차변금액", "대변계정", "대변금액"}

// normalizeRecord resolves a raw record's keys through the alias table.
// Unrecognized keys are dropped.
func normalizeRecord(record map[string]string) map[string]string {
	out := make(map[string]string, len(record))
	for key, value := range record {
		canonical, ok := fieldAliases[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			continue
		}
		out[canonical] = strings.TrimSpace(value)
	}
	return out
}

// parseAmount reads a positive decimal, tolerating thousands separators.
func parseAmount(s string) (Money, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("amount %q: %w", s, err)
	}
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("%w: amount %q", ErrInvalidAmount, s)
	}
	return M(d, DefaultCurrency), nil
}

// importRow builds one transaction from a normalized record.
func importRow(record map[string]string) (Transaction, error) {
	for _, field := range []string{fieldDate, fieldDescription, fieldDebitAccount, fieldDebitAmount, fieldCreditAccount, fieldCreditAmount} {
		if record[field] == "" {
			return Transaction{}, fmt.Errorf("%w: missing %s", ErrImportFormat, field)
		}
	}
	day, err := ParseDate(record[fieldDate])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	debit, err := parseAmount(record[fieldDebitAmount])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	credit, err := parseAmount(record[fieldCreditAmount])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	t, err := NewTransaction(day, record[fieldDescription], record[fieldDebitAccount], debit, record[fieldCreditAccount], credit)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	return t, nil
}

// ImportRecords parses raw spreadsheet records into transactions. The batch
// is all-or-nothing: any invalid row rejects the whole import with its row
// number, leaving the caller's ledger untouched. Merging or replacing the
// parsed batch is the caller's choice via Store.Merge or Store.Replace.
func ImportRecords(records []map[string]string) ([]Transaction, error) {
	txs := make([]Transaction, 0, len(records))
	for i, record := range records {
		t, err := importRow(normalizeRecord(record))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// ExportRows enumerates the transaction collection in the six-column shape,
// header first, store order (date descending).
func (s *Store) ExportRows() [][]string {
	rows := make([][]string, 0, s.Len()+1)
	rows = append(rows, exportHeader)
	for _, t := range s.transactions {
		rows = append(rows, []string{
			t.Date.String(),
			t.Description,
			t.DebitAccount,
			t.DebitAmount.Decimal().String(),
			t.CreditAccount,
			t.CreditAmount.Decimal().String(),
		})
	}
	return rows
}

// ExportBalanceRows derives the per-account balance summary: account,
// category label, signed balance. Zero balances are excluded.
func (s *Store) ExportBalanceRows() [][]string {
	rows := [][]string{{"계정", "분류", "잔액"}}
	for _, b := range s.Balances() {
		rows = append(rows, []string{b.Account, b.Category.String(), b.Amount.Decimal().String()})
	}
	return rows
}
