package ledger

import (
	"errors"
	"strings"
	"testing"
)

func record(fields ...string) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		m[fields[i]] = fields[i+1]
	}
	return m
}

func TestImportRecords_KoreanAndEnglishAliases(t *testing.T) {
	records := []map[string]string{
		record("날짜", "2025-01-05", "적요", "월급", "차변계정", "bank", "차변금액", "3,000,000", "대변계정", "misc-income", "대변금액", "3000000"),
		record("Date", "2025-01-10", "Description", "groceries", "DebitAccount", "food", "DebitAmount", "200000", "CreditAccount", "bank", "CreditAmount", "200000"),
	}
	txs, err := ImportRecords(records)
	if err != nil {
		t.Fatalf("ImportRecords failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("imported %d transactions, want 2", len(txs))
	}
	if txs[0].Description != "월급" || !txs[0].Amount().Equal(won(3000000)) {
		t.Errorf("first row = %+v", txs[0])
	}
	if txs[1].DebitAccount != "food" || txs[1].Date != day("2025-01-10") {
		t.Errorf("second row = %+v", txs[1])
	}
}

func TestImportRecords_Atomicity(t *testing.T) {
	valid := record("date", "2025-01-01", "description", "ok", "debitAccount", "cash", "debitAmount", "100", "creditAccount", "misc-income", "creditAmount", "100")
	rows := []map[string]string{valid, valid, record("date", "2025-01-03", "description", "broken", "debitAmount", "100", "creditAccount", "misc-income", "creditAmount", "100"), valid, valid}

	txs, err := ImportRecords(rows)
	if !errors.Is(err, ErrImportFormat) {
		t.Fatalf("error = %v, want ErrImportFormat", err)
	}
	if txs != nil {
		t.Errorf("rejected batch still returned %d transactions", len(txs))
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q does not name the offending row", err)
	}

	// and the store stays untouched when the caller imports into it
	s := NewStore()
	if batch, err := ImportRecords(rows); err == nil {
		s.Merge(batch)
	}
	if s.Len() != 0 {
		t.Errorf("store has %d transactions after failed import", s.Len())
	}
}

func TestImportRecords_RejectsBadAmounts(t *testing.T) {
	testCases := []struct {
		name   string
		amount string
	}{
		{"zero", "0"},
		{"negative", "-500"},
		{"not a number", "many"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows := []map[string]string{record(
				"date", "2025-01-01", "description", "x",
				"debitAccount", "cash", "debitAmount", tc.amount,
				"creditAccount", "misc-income", "creditAmount", tc.amount,
			)}
			if _, err := ImportRecords(rows); !errors.Is(err, ErrImportFormat) {
				t.Errorf("error = %v, want ErrImportFormat", err)
			}
		})
	}
}

func TestExportRows(t *testing.T) {
	s := NewStore()
	if _, err := s.RecordIncome(day("2025-01-05"), "salary", AccountBank, AccountMiscIncome, won(3000000)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordExpense(day("2025-01-10"), "groceries", "food", AccountBank, won(200000)); err != nil {
		t.Fatal(err)
	}

	rows := s.ExportRows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2", len(rows))
	}
	if rows[0][0] != "날짜" || len(rows[0]) != 6 {
		t.Errorf("header = %v", rows[0])
	}
	// store order: most recent first
	if rows[1][1] != "groceries" || rows[2][1] != "salary" {
		t.Errorf("rows out of order: %v / %v", rows[1], rows[2])
	}
	if rows[1][3] != "200000" || rows[1][2] != "food" {
		t.Errorf("expense row = %v", rows[1])
	}

	// exported rows round-trip through import
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, map[string]string{
			"날짜": row[0], "적요": row[1],
			"차변계정": row[2], "차변금액": row[3],
			"대변계정": row[4], "대변금액": row[5],
		})
	}
	txs, err := ImportRecords(records)
	if err != nil {
		t.Fatalf("re-import failed: %v", err)
	}
	if len(txs) != 2 {
		t.Errorf("re-imported %d transactions, want 2", len(txs))
	}
}

func TestExportBalanceRows_ExcludesZero(t *testing.T) {
	s := NewStore()
	if _, err := s.RecordIncome(day("2025-01-05"), "salary", AccountCash, AccountMiscIncome, won(100000)); err != nil {
		t.Fatal(err)
	}
	// spend it all: cash nets to zero
	if _, err := s.RecordExpense(day("2025-01-06"), "splurge", "culture", AccountCash, won(100000)); err != nil {
		t.Fatal(err)
	}

	rows := s.ExportBalanceRows()
	for _, row := range rows[1:] {
		if row[0] == AccountCash {
			t.Errorf("zero-balance account %q exported: %v", AccountCash, row)
		}
	}
	// culture 100,000 and misc-income -100,000 remain
	if len(rows) != 3 {
		t.Errorf("got %d rows, want header plus 2: %v", len(rows), rows)
	}
}
