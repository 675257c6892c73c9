package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind tags a tracked item. Each kind carries only its relevant fields;
// there is no "unset means liability" convention.
type ItemKind int

const (
	KindLiability ItemKind = iota
	KindDepreciableAsset
	KindInventory
	KindInvestment
)

func (k ItemKind) String() string {
	switch k {
	case KindLiability:
		return "liability"
	case KindDepreciableAsset:
		return "depreciable-asset"
	case KindInventory:
		return "inventory"
	case KindInvestment:
		return "investment"
	default:
		return "unknown"
	}
}

// ParseItemKind parses a string into an ItemKind.
func ParseItemKind(s string) (ItemKind, error) {
	switch s {
	case "liability":
		return KindLiability, nil
	case "depreciable-asset":
		return KindDepreciableAsset, nil
	case "inventory":
		return KindInventory, nil
	case "investment":
		return KindInvestment, nil
	default:
		return 0, fmt.Errorf("unknown tracked item kind: %q", s)
	}
}

// Account returns the ledger account a kind's book value lives on.
func (k ItemKind) Account() string {
	switch k {
	case KindLiability:
		return AccountLiability
	case KindDepreciableAsset:
		return AccountAsset
	case KindInventory:
		return AccountInventory
	case KindInvestment:
		return AccountInvestment
	default:
		return ""
	}
}

// Item is a running-balance record that persists across transactions: a
// liability being repaid, a depreciable asset, an inventory lot, or an
// investment. Money kinds satisfy 0 <= Current <= Original at all times; an
// inventory lot satisfies 0 <= Quantity. Items are never deleted: once
// depleted they simply stop being active.
type Item struct {
	ID        string
	Name      string
	Kind      ItemKind
	CreatedAt time.Time

	// Original and Current are the initial and remaining balance, for every
	// kind except inventory.
	Original Money
	Current  Money

	// Quantity and UnitPrice describe an inventory lot.
	Quantity  Quantity
	UnitPrice Money

	// Category is the investment sub-kind label (e.g. "stocks", "deposit").
	Category string
}

// NewLiability creates a liability item sized to amount.
func NewLiability(name string, amount Money) Item {
	return Item{ID: newID(), Name: name, Kind: KindLiability, CreatedAt: time.Now(), Original: amount, Current: amount}
}

// NewDepreciableAsset creates a depreciable asset item at its purchase value.
func NewDepreciableAsset(name string, amount Money) Item {
	return Item{ID: newID(), Name: name, Kind: KindDepreciableAsset, CreatedAt: time.Now(), Original: amount, Current: amount}
}

// NewInventory creates an inventory lot of qty units at unitPrice each.
func NewInventory(name string, qty Quantity, unitPrice Money) Item {
	return Item{ID: newID(), Name: name, Kind: KindInventory, CreatedAt: time.Now(), Quantity: qty, UnitPrice: unitPrice}
}

// NewInvestment creates an investment item with its sub-kind label.
func NewInvestment(name, category string, amount Money) Item {
	return Item{ID: newID(), Name: name, Kind: KindInvestment, CreatedAt: time.Now(), Original: amount, Current: amount, Category: category}
}

// BookValue returns the remaining value carried on the books: Current for
// money kinds, Quantity x UnitPrice for inventory.
func (it Item) BookValue() Money {
	if it.Kind == KindInventory {
		return it.UnitPrice.Mul(it.Quantity)
	}
	return it.Current
}

// Active reports whether the item still carries a balance. Depleted items are
// excluded from active listings but kept in the store.
func (it Item) Active() bool {
	if it.Kind == KindInventory {
		return it.Quantity.IsPositive()
	}
	return it.Current.IsPositive()
}

// consume reduces the remaining balance by amount, holding the
// 0 <= Current <= Original invariant. The returned error reports the
// remaining balance to the caller.
func (it *Item) consume(amount Money) error {
	if it.Kind == KindInventory {
		return fmt.Errorf("inventory lot %q has no money balance to consume", it.Name)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(it.Current) {
		return insufficientf(it.Name, amount, it.Current)
	}
	it.Current = it.Current.Sub(amount)
	return nil
}

// removeQuantity takes qty units out of an inventory lot, holding 0 <= Quantity.
func (it *Item) removeQuantity(qty Quantity) error {
	if it.Kind != KindInventory {
		return fmt.Errorf("item %q is not an inventory lot", it.Name)
	}
	if !qty.IsPositive() {
		return fmt.Errorf("%w: got quantity %s", ErrInvalidAmount, qty)
	}
	if qty.GreaterThan(it.Quantity) {
		return insufficientf(it.Name, it.UnitPrice.Mul(qty), it.BookValue())
	}
	it.Quantity = it.Quantity.Sub(qty)
	return nil
}

// MarshalJSON implements json.Marshaler with a canonical field order. Only
// the fields relevant to the item's kind are written.
func (it Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", it.ID)
	w.Append("name", it.Name)
	w.Append("kind", it.Kind.String())
	w.Append("createdAt", it.CreatedAt.UTC().Format(time.RFC3339))
	switch it.Kind {
	case KindInventory:
		w.Append("quantity", it.Quantity)
		w.Append("unitPrice", it.UnitPrice.Decimal())
	default:
		w.Append("originalAmount", it.Original.Decimal())
		w.Append("currentAmount", it.Current.Decimal())
	}
	w.Optional("category", it.Category)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (it *Item) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Kind      string          `json:"kind"`
		CreatedAt time.Time       `json:"createdAt"`
		Original  decimal.Decimal `json:"originalAmount"`
		Current   decimal.Decimal `json:"currentAmount"`
		Quantity  Quantity        `json:"quantity"`
		UnitPrice decimal.Decimal `json:"unitPrice"`
		Category  string          `json:"category"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	kind, err := ParseItemKind(temp.Kind)
	if err != nil {
		return err
	}
	it.ID = temp.ID
	it.Name = temp.Name
	it.Kind = kind
	it.CreatedAt = temp.CreatedAt
	it.Category = temp.Category
	if kind == KindInventory {
		it.Quantity = temp.Quantity
		it.UnitPrice = M(temp.UnitPrice, DefaultCurrency)
	} else {
		it.Original = M(temp.Original, DefaultCurrency)
		it.Current = M(temp.Current, DefaultCurrency)
	}
	return nil
}
