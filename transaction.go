package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// newID returns a collision-resistant identifier. Transactions and tracked
// items share the same scheme.
func newID() string { return uuid.NewString() }

// Transaction is one balanced accounting event: the debit account increases
// by DebitAmount and the credit account decreases by CreditAmount. Once
// posted it is never mutated except through the ledger-editing path.
type Transaction struct {
	ID          string
	Date        Date
	Description string

	DebitAccount  string
	DebitAmount   Money
	CreditAccount string
	CreditAmount  Money

	// ItemID references the tracked item affected by this transaction, if any.
	ItemID string
	// LiabilityID references the liability item created or repaid by this
	// transaction, if any.
	LiabilityID string
	// LinkID groups the transactions that together represent one logical user
	// action, such as a split payment or a profit-recognition pair.
	LinkID string
}

// NewTransaction builds a balanced transaction with a fresh id. It returns
// ErrUnbalanced when the debit and credit amounts differ, and
// ErrInvalidAmount when either amount is not positive: an unbalanced record
// must never exist, even transiently.
func NewTransaction(day Date, desc, debitAccount string, debit Money, creditAccount string, credit Money) (Transaction, error) {
	if debitAccount == "" || creditAccount == "" {
		return Transaction{}, fmt.Errorf("%w: debit and credit accounts", ErrMissingField)
	}
	if !debit.IsPositive() || !credit.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: got debit %s credit %s", ErrInvalidAmount, debit, credit)
	}
	if !debit.Decimal().Equal(credit.Decimal()) {
		return Transaction{}, fmt.Errorf("%w: debit %s != credit %s", ErrUnbalanced, debit, credit)
	}
	return Transaction{
		ID:            newID(),
		Date:          day,
		Description:   desc,
		DebitAccount:  debitAccount,
		DebitAmount:   debit,
		CreditAccount: creditAccount,
		CreditAmount:  credit,
	}, nil
}

// Balanced reports whether the double-entry balance law holds.
func (t Transaction) Balanced() bool {
	return t.DebitAmount.Decimal().Equal(t.CreditAmount.Decimal())
}

// Amount returns the common debit/credit amount.
func (t Transaction) Amount() Money { return t.DebitAmount }

// Touches reports whether the transaction debits or credits the account.
func (t Transaction) Touches(account string) bool {
	return t.DebitAccount == account || t.CreditAccount == account
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Description == o.Description &&
		t.DebitAccount == o.DebitAccount &&
		t.DebitAmount.Equal(o.DebitAmount) &&
		t.CreditAccount == o.CreditAccount &&
		t.CreditAmount.Equal(o.CreditAmount) &&
		t.ItemID == o.ItemID &&
		t.LiabilityID == o.LiabilityID &&
		t.LinkID == o.LinkID
}

// MarshalJSON implements json.Marshaler with a canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Optional("description", t.Description)
	w.Append("debitAccount", t.DebitAccount)
	w.Append("debitAmount", t.DebitAmount.Decimal())
	w.Append("creditAccount", t.CreditAccount)
	w.Append("creditAmount", t.CreditAmount.Decimal())
	w.Optional("itemId", t.ItemID)
	w.Optional("liabilityId", t.LiabilityID)
	w.Optional("linkId", t.LinkID)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler. Amounts are plain numbers in the
// default currency.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID            string          `json:"id"`
		Date          Date            `json:"date"`
		Description   string          `json:"description"`
		DebitAccount  string          `json:"debitAccount"`
		DebitAmount   decimal.Decimal `json:"debitAmount"`
		CreditAccount string          `json:"creditAccount"`
		CreditAmount  decimal.Decimal `json:"creditAmount"`
		ItemID        string          `json:"itemId"`
		LiabilityID   string          `json:"liabilityId"`
		LinkID        string          `json:"linkId"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.ID = temp.ID
	t.Date = temp.Date
	t.Description = temp.Description
	t.DebitAccount = temp.DebitAccount
	t.DebitAmount = M(temp.DebitAmount, DefaultCurrency)
	t.CreditAccount = temp.CreditAccount
	t.CreditAmount = M(temp.CreditAmount, DefaultCurrency)
	t.ItemID = temp.ItemID
	t.LiabilityID = temp.LiabilityID
	t.LinkID = temp.LinkID
	return nil
}
