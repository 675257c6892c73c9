package renderer

import (
	"strings"
	"testing"

	"github.com/gagyebu/ledger"
)

func TestBalanceSheet_OmitsEmptySections(t *testing.T) {
	s := ledger.NewStore()
	got := BalanceSheet(s.BalanceSheet())
	if strings.Contains(got, "## Assets") || strings.Contains(got, "## Liabilities") {
		t.Errorf("empty ledger rendered section headers:\n%s", got)
	}
	if !strings.Contains(got, "Net worth") {
		t.Errorf("missing net worth line:\n%s", got)
	}
}

func TestTransactions(t *testing.T) {
	s := ledger.NewStore()
	if _, err := s.RecordIncome(ledger.MustParseDate("2025-01-05"), "salary", ledger.AccountBank, ledger.AccountMiscIncome, ledger.KRW(100)); err != nil {
		t.Fatal(err)
	}
	var txs []ledger.Transaction
	for _, tx := range s.Transactions() {
		txs = append(txs, tx)
	}

	got := Transactions(txs)
	for _, want := range []string{"| Date |", "2025-01-05", "salary", "bank", "misc-income"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered table misses %q:\n%s", want, got)
		}
	}
}
