package ledger

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Category classifies an account on the chart.
type Category int

const (
	Asset Category = iota
	Liability
	Income
	Expense
)

func (c Category) String() string {
	switch c {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "asset":
		return Asset, nil
	case "liability":
		return Liability, nil
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown account category: %q", s)
	}
}

// Well-known accounts the posting rules depend on.
const (
	AccountCash       = "cash"
	AccountBank       = "bank"
	AccountAsset      = "depreciable-asset"
	AccountInventory  = "inventory"
	AccountInvestment = "investment-asset"
	AccountLiability  = "liability"
	AccountMiscIncome = "misc-income"
	AccountMiscGain   = "misc-gain"
	AccountMiscLoss   = "misc-loss"
)

// builtinAccounts is the immutable classification table. Order matters: it is
// the listing order for reports and account pickers.
var builtinAccounts = []struct {
	Name     string
	Category Category
}{
	{AccountCash, Asset},
	{AccountBank, Asset},
	{AccountAsset, Asset},
	{AccountInventory, Asset},
	{AccountInvestment, Asset},
	{"food", Expense},
	{"transport", Expense},
	{"housing", Expense},
	{"utilities", Expense},
	{"telecom", Expense},
	{"medical", Expense},
	{"culture", Expense},
	{"misc-expense", Expense},
	{AccountMiscLoss, Expense},
	{"salary", Income},
	{"business", Income},
	{"interest", Income},
	{AccountMiscIncome, Income},
	{AccountMiscGain, Income},
	{AccountLiability, Liability},
}

// liquidAccounts is the fixed set used by the cash flow report. A transfer
// between two liquid accounts is not a flow.
var liquidAccounts = map[string]bool{
	AccountCash: true,
	AccountBank: true,
}

var builtinIndex = func() map[string]Category {
	m := make(map[string]Category, len(builtinAccounts))
	for _, a := range builtinAccounts {
		m[a.Name] = a.Category
	}
	return m
}()

// Chart is the two-tier account classification table: the immutable built-in
// set plus user-defined custom income/expense accounts. Built-in names can
// never be removed or reclassified; custom names must not collide with them.
type Chart struct {
	custom map[string]Category
	order  []string // custom names in registration order
}

// NewChart creates a chart with no custom accounts.
func NewChart() *Chart {
	return &Chart{custom: make(map[string]Category)}
}

// Classify returns the category of an account name, built-in lookup first,
// then custom. ok is false for an unknown name.
func (c *Chart) Classify(name string) (cat Category, ok bool) {
	if cat, ok = builtinIndex[name]; ok {
		return cat, true
	}
	cat, ok = c.custom[name]
	return cat, ok
}

// IsBuiltin reports whether name is on the immutable built-in table.
func (c *Chart) IsBuiltin(name string) bool {
	_, ok := builtinIndex[name]
	return ok
}

// AddCustom registers a user-defined account. Only income and expense
// accounts can be added.
func (c *Chart) AddCustom(name string, cat Category) error {
	if name == "" {
		return fmt.Errorf("%w: account name", ErrMissingField)
	}
	if cat != Income && cat != Expense {
		return fmt.Errorf("%w: got %s", ErrInvalidCategory, cat)
	}
	if _, ok := c.Classify(name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAccount, name)
	}
	c.custom[name] = cat
	c.order = append(c.order, name)
	return nil
}

// RemoveCustom removes a user-defined account.
func (c *Chart) RemoveCustom(name string) error {
	if c.IsBuiltin(name) {
		return fmt.Errorf("%w: %q", ErrBuiltinAccount, name)
	}
	if _, ok := c.custom[name]; !ok {
		return fmt.Errorf("account %w: %q", ErrNotFound, name)
	}
	delete(c.custom, name)
	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == name })
	return nil
}

// Accounts returns all account names, built-ins first in table order then
// customs in registration order, optionally filtered by category.
func (c *Chart) Accounts(filter ...Category) []string {
	accept := func(cat Category) bool {
		if len(filter) == 0 {
			return true
		}
		return slices.Contains(filter, cat)
	}
	var names []string
	for _, a := range builtinAccounts {
		if accept(a.Category) {
			names = append(names, a.Name)
		}
	}
	for _, name := range c.order {
		if accept(c.custom[name]) {
			names = append(names, name)
		}
	}
	return names
}

// CustomAccounts returns the user-defined entries in registration order, for
// persistence and display.
func (c *Chart) CustomAccounts() []CustomAccount {
	out := make([]CustomAccount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, CustomAccount{Name: name, Category: c.custom[name]})
	}
	return out
}

// CustomAccount is a persisted user-defined chart entry.
type CustomAccount struct {
	Name     string
	Category Category
}

func (a CustomAccount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", a.Name)
	w.Append("category", a.Category.String())
	return w.MarshalJSON()
}

func (a *CustomAccount) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	cat, err := ParseCategory(temp.Category)
	if err != nil {
		return err
	}
	a.Name = temp.Name
	a.Category = cat
	return nil
}
