// Package renderer turns ledger reports into markdown for terminal display.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gagyebu/ledger"
)

// rangeTitle names a report's scope, "all time" for an open range.
func rangeTitle(r ledger.Range) string {
	if r.IsOpen() {
		return "all time"
	}
	if r.From.IsZero() {
		return fmt.Sprintf("until %s", r.To)
	}
	if r.To.IsZero() {
		return fmt.Sprintf("since %s", r.From)
	}
	return fmt.Sprintf("%s to %s", r.From, r.To)
}

// Transactions renders the transaction list as a markdown table, most recent
// first.
func Transactions(txs []ledger.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintf(&b, "No transactions.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| Date | Description | Debit | Amount | Credit | Amount |\n")
	fmt.Fprintf(&b, "|---|---|---|---:|---|---:|\n")
	for _, t := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			t.Date, t.Description, t.DebitAccount, t.DebitAmount, t.CreditAccount, t.CreditAmount)
	}
	return b.String()
}

func balanceRows(w io.Writer, title string, balances []ledger.Balance, total ledger.Money) bool {
	if len(balances) == 0 {
		return false
	}
	fmt.Fprintf(w, "## %s\n\n", title)
	fmt.Fprintf(w, "| Account | Amount |\n")
	fmt.Fprintf(w, "|---|---:|\n")
	for _, bal := range balances {
		fmt.Fprintf(w, "| %s | %s |\n", bal.Account, bal.Amount)
	}
	fmt.Fprintf(w, "| **Total** | **%s** |\n\n", total)
	return true
}

// BalanceSheet renders the asset and liability position.
func BalanceSheet(bs ledger.BalanceSheet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Balance Sheet\n\n")
	ConditionalBlock(&b, func(w io.Writer) bool { return balanceRows(w, "Assets", bs.Assets, bs.TotalAssets) })
	ConditionalBlock(&b, func(w io.Writer) bool { return balanceRows(w, "Liabilities", bs.Liabilities, bs.TotalLiabilities) })
	fmt.Fprintf(&b, "**Net worth: %s**\n", bs.NetWorth)
	return b.String()
}

// Statement renders the income statement.
func Statement(st ledger.Statement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Income Statement (%s)\n\n", rangeTitle(st.Range))
	ConditionalBlock(&b, func(w io.Writer) bool { return balanceRows(w, "Income", st.Income, st.TotalIncome) })
	ConditionalBlock(&b, func(w io.Writer) bool { return balanceRows(w, "Expenses", st.Expenses, st.TotalExpense) })
	fmt.Fprintf(&b, "**Net income: %s**\n", st.NetIncome.SignedString())
	return b.String()
}

// CashFlow renders the liquid-money movement report.
func CashFlow(cf ledger.CashFlow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cash Flow (%s)\n\n", rangeTitle(cf.Range))
	ConditionalBlock(&b, func(w io.Writer) bool { return balanceRows(w, "Inflows", cf.Inflows, cf.TotalIn) })
	ConditionalBlock(&b, func(w io.Writer) bool { return balanceRows(w, "Outflows", cf.Outflows, cf.TotalOut) })
	fmt.Fprintf(&b, "**Net flow: %s**\n", cf.Net.SignedString())
	return b.String()
}

// Stats renders the two statistics series side by side per period bucket.
func Stats(assets []ledger.NetAssetsPoint, flows []ledger.FlowPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Statistics\n\n")
	if len(assets) == 0 && len(flows) == 0 {
		fmt.Fprintf(&b, "No transactions in range.\n")
		return b.String()
	}

	flowByKey := make(map[string]ledger.FlowPoint, len(flows))
	for _, f := range flows {
		flowByKey[f.Key] = f
	}
	fmt.Fprintf(&b, "| Period | Net assets | Income | Expense |\n")
	fmt.Fprintf(&b, "|---|---:|---:|---:|\n")
	for _, a := range assets {
		f := flowByKey[a.Key]
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", a.Key, a.NetAssets, f.Income, f.Expense)
	}
	return b.String()
}

// Items renders tracked items grouped under their kind.
func Items(items []ledger.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tracked Items\n\n")
	if len(items) == 0 {
		fmt.Fprintf(&b, "No tracked items.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| ID | Name | Kind | Book value | Original |\n")
	fmt.Fprintf(&b, "|---|---|---|---:|---:|\n")
	for _, it := range items {
		original := it.Original.String()
		if it.Kind == ledger.KindInventory {
			original = fmt.Sprintf("%s x %s", it.Quantity, it.UnitPrice)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", shortID(it.ID), it.Name, it.Kind, it.BookValue(), original)
	}
	return b.String()
}

// Accounts renders the chart of accounts with current balances.
func Accounts(s *ledger.Store) string {
	byName := make(map[string]ledger.Money)
	for _, bal := range s.Balances() {
		byName[bal.Account] = bal.Amount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Accounts\n\n")
	fmt.Fprintf(&b, "| Account | Category | Balance |\n")
	fmt.Fprintf(&b, "|---|---|---:|\n")
	for _, name := range s.Chart().Accounts() {
		cat, ok := s.Chart().Classify(name)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", name, cat, byName[name])
	}
	return b.String()
}

// shortID abbreviates a uuid for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
