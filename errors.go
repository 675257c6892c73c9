package ledger

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by posting rules, store operations and account
// management. Callers match them with errors.Is; the wrapped message carries
// the human context (account name, date, amounts).
var (
	// ErrInvalidAmount reports a monetary input that is missing, non-numeric,
	// zero or negative.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrMissingField reports a required selection (account, item reference,
	// payment method, name) that was not provided.
	ErrMissingField = errors.New("required field is missing")

	// ErrUnbalanced reports a transaction whose debit and credit amounts
	// differ, or a split payment whose parts do not sum to the total.
	ErrUnbalanced = errors.New("debit and credit do not balance")

	// ErrNotFound reports a transaction, tracked item or liability id that
	// does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientBalance reports a repayment or collection that exceeds
	// the referenced item's remaining balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDuplicateAccount reports a custom account name colliding with a
	// built-in or an existing custom account.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrBuiltinAccount reports an attempt to remove or reclassify a
	// built-in account.
	ErrBuiltinAccount = errors.New("built-in account is protected")

	// ErrInvalidCategory reports a custom account category outside
	// {income, expense}.
	ErrInvalidCategory = errors.New("custom accounts must be income or expense")

	// ErrImportFormat reports an invalid row in a bulk import batch. The
	// whole batch is discarded.
	ErrImportFormat = errors.New("invalid import format")
)

// insufficientf wraps ErrInsufficientBalance reporting the remaining balance
// back to the caller for display.
func insufficientf(what string, requested, remaining Money) error {
	return fmt.Errorf("%w: cannot take %s from %s, balance is %s",
		ErrInsufficientBalance, requested, what, remaining)
}
