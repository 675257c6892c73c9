package ledger

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewTransaction_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		debitAccount  string
		debit         Money
		creditAccount string
		credit        Money
		wantErr       error
	}{
		{"valid", AccountCash, won(100), AccountMiscIncome, won(100), nil},
		{"missing debit account", "", won(100), AccountMiscIncome, won(100), ErrMissingField},
		{"missing credit account", AccountCash, won(100), "", won(100), ErrMissingField},
		{"zero amount", AccountCash, won(0), AccountMiscIncome, won(0), ErrInvalidAmount},
		{"negative amount", AccountCash, won(-5), AccountMiscIncome, won(-5), ErrInvalidAmount},
		{"unbalanced", AccountCash, won(100), AccountMiscIncome, won(90), ErrUnbalanced},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := NewTransaction(day("2025-01-01"), "test", tc.debitAccount, tc.debit, tc.creditAccount, tc.credit)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("NewTransaction failed: %v", err)
				}
				if !tx.Balanced() {
					t.Error("transaction is not balanced")
				}
				if tx.ID == "" {
					t.Error("transaction has no id")
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewTransaction error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	tx, err := NewTransaction(day("2025-06-15"), "노트북 구매", AccountAsset, won(1000000), AccountLiability, won(1000000))
	if err != nil {
		t.Fatalf("NewTransaction failed: %v", err)
	}
	tx.ItemID = newID()
	tx.LiabilityID = newID()

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var got Transaction
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !got.Equal(tx) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, tx)
	}
}
