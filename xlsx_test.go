package ledger

import (
	"bytes"
	"testing"
)

func TestXLSXRoundTrip(t *testing.T) {
	s := NewStore()
	if _, err := s.RecordIncome(day("2025-01-05"), "월급", AccountBank, AccountMiscIncome, won(3000000)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordExpense(day("2025-01-10"), "장보기", "food", AccountBank, won(200000)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := s.WriteXLSX(&buf); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	records, err := ReadXLSX(&buf)
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}
	txs, err := ImportRecords(records)
	if err != nil {
		t.Fatalf("ImportRecords failed: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("round trip produced %d transactions, want 2", len(txs))
	}

	fresh := NewStore()
	fresh.Replace(txs)
	if !balanceOf(fresh, AccountBank).Equal(balanceOf(s, AccountBank)) {
		t.Errorf("bank balance after round trip = %s, want %s",
			balanceOf(fresh, AccountBank), balanceOf(s, AccountBank))
	}
}
