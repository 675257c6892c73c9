package ledger

import (
	"testing"
)

func mustTx(t *testing.T, date, desc string, v float64) Transaction {
	t.Helper()
	tx, err := NewTransaction(day(date), desc, AccountCash, won(v), AccountMiscIncome, won(v))
	if err != nil {
		t.Fatalf("NewTransaction failed: %v", err)
	}
	return tx
}

func TestStore_Ordering(t *testing.T) {
	s := NewStore()
	// insert out of order, with two same-day transactions
	for _, tx := range []Transaction{
		mustTx(t, "2025-02-10", "b", 2),
		mustTx(t, "2025-03-01", "c", 3),
		mustTx(t, "2025-02-10", "b2", 4),
		mustTx(t, "2025-01-05", "a", 1),
	} {
		if err := s.AddTransaction(tx); err != nil {
			t.Fatalf("AddTransaction failed: %v", err)
		}
	}

	var got []string
	for _, tx := range s.Transactions() {
		got = append(got, tx.Description)
	}
	want := []string{"c", "b", "b2", "a"}
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q (stable date-descending order)", i, got[i], want[i])
		}
	}
}

func TestStore_AddRejectsUnbalanced(t *testing.T) {
	s := NewStore()
	tx := mustTx(t, "2025-01-01", "ok", 100)
	tx.CreditAmount = won(90)
	if err := s.AddTransaction(tx); err == nil {
		t.Fatal("AddTransaction accepted an unbalanced transaction")
	}
	if s.Len() != 0 {
		t.Errorf("store has %d transactions after rejected add", s.Len())
	}
}

func TestStore_UpdateTransaction(t *testing.T) {
	s := NewStore()
	tx := mustTx(t, "2025-01-01", "original", 100)
	s.AddTransaction(tx)

	edited := tx
	edited.Description = "edited"
	edited.Date = day("2025-04-01")
	if err := s.UpdateTransaction(tx.ID, edited); err != nil {
		t.Fatalf("UpdateTransaction failed: %v", err)
	}
	got, ok := s.TransactionByID(tx.ID)
	if !ok || got.Description != "edited" || got.Date != day("2025-04-01") {
		t.Errorf("transaction after update = %+v", got)
	}

	// unknown id is a no-op
	if err := s.UpdateTransaction("missing", edited); err != nil {
		t.Errorf("UpdateTransaction(unknown) error = %v, want nil no-op", err)
	}
	if s.Len() != 1 {
		t.Errorf("store has %d transactions after no-op update", s.Len())
	}
}

func TestStore_RemoveTransaction(t *testing.T) {
	s := NewStore()
	keep := mustTx(t, "2025-01-01", "keep", 1)
	drop := mustTx(t, "2025-01-02", "drop", 2)
	s.AddTransaction(keep)
	s.AddTransaction(drop)

	s.RemoveTransaction(drop.ID)
	if s.Len() != 1 {
		t.Fatalf("store has %d transactions, want 1", s.Len())
	}
	if _, ok := s.TransactionByID(drop.ID); ok {
		t.Error("removed transaction still present")
	}
	if _, ok := s.TransactionByID(keep.ID); !ok {
		t.Error("unrelated transaction removed")
	}
}

func TestStore_MergeAndReplace(t *testing.T) {
	s := NewStore()
	s.AddTransaction(mustTx(t, "2025-01-01", "existing", 1))

	batch := []Transaction{
		mustTx(t, "2025-02-01", "imported", 2),
		mustTx(t, "2024-12-01", "older import", 3),
	}
	s.Merge(batch)
	if s.Len() != 3 {
		t.Fatalf("after merge store has %d transactions, want 3", s.Len())
	}
	if s.NewestTransactionDate() != day("2025-02-01") || s.OldestTransactionDate() != day("2024-12-01") {
		t.Errorf("merge did not re-sort: newest %s oldest %s", s.NewestTransactionDate(), s.OldestTransactionDate())
	}

	s.Replace(batch)
	if s.Len() != 2 {
		t.Fatalf("after replace store has %d transactions, want 2", s.Len())
	}
}

func TestStore_SaveOpenRoundTrip(t *testing.T) {
	s := NewStore()
	s.Chart().AddCustom("hobby", Expense)
	s.AddTransaction(mustTx(t, "2025-01-15", "salary", 50000))
	s.AddItem(NewLiability("loan", won(200000)))

	kvs := newMemStore()
	if err := s.Save(kvs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Open(kvs)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("reopened store has %d transactions, want 1", got.Len())
	}
	if cat, ok := got.Chart().Classify("hobby"); !ok || cat != Expense {
		t.Errorf("custom account not restored: %v %v", cat, ok)
	}
	items := got.ActiveItems(KindLiability)
	if len(items) != 1 || !items[0].Current.Equal(won(200000)) {
		t.Errorf("items not restored: %+v", items)
	}
}

func TestOpen_ToleratesAbsentAndCorruptBlobs(t *testing.T) {
	// absent blobs
	s, err := Open(newMemStore())
	if err != nil {
		t.Fatalf("Open of empty backend failed: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("empty backend produced %d transactions", s.Len())
	}

	// corrupt transactions blob
	kvs := newMemStore()
	kvs.blobs[keyTransactions] = []byte("this is not json\n")
	s, err = Open(kvs)
	if err != nil {
		t.Fatalf("Open with corrupt blob failed: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("corrupt blob produced %d transactions", s.Len())
	}
}
