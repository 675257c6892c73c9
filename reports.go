package ledger

// Reports are pure functions of the transaction set: every call replays the
// ledger from the store, no report holds state of its own.

// Balance is one account's signed running total.
type Balance struct {
	Account  string
	Category Category
	Amount   Money
}

// balancesOf orders a per-account accumulation by chart order, dropping
// zero balances and unclassifiable accounts.
func (s *Store) balancesOf(totals map[string]Money) []Balance {
	var out []Balance
	for _, name := range s.chart.Accounts() {
		amount, ok := totals[name]
		if !ok || amount.IsZero() {
			continue
		}
		cat, ok := s.chart.Classify(name)
		if !ok {
			continue
		}
		out = append(out, Balance{Account: name, Category: cat, Amount: amount})
	}
	return out
}

// Balances folds the whole transaction set into signed per-account totals:
// a debit adds to the account, a credit subtracts. Zero balances are dropped.
func (s *Store) Balances() []Balance {
	totals := make(map[string]Money)
	for _, t := range s.transactions {
		totals[t.DebitAccount] = totals[t.DebitAccount].Add(t.DebitAmount)
		totals[t.CreditAccount] = totals[t.CreditAccount].Sub(t.CreditAmount)
	}
	return s.balancesOf(totals)
}

// BalanceSheet is the point-in-time asset and liability position.
type BalanceSheet struct {
	Assets      []Balance
	Liabilities []Balance

	TotalAssets      Money
	TotalLiabilities Money
	NetWorth         Money
}

// BalanceSheet partitions the non-zero balances into assets (signed totals
// as-is) and liabilities (absolute value, liability balances accumulate
// negative). NetWorth is assets minus liabilities.
func (s *Store) BalanceSheet() BalanceSheet {
	var bs BalanceSheet
	for _, b := range s.Balances() {
		switch b.Category {
		case Asset:
			bs.Assets = append(bs.Assets, b)
			bs.TotalAssets = bs.TotalAssets.Add(b.Amount)
		case Liability:
			b.Amount = b.Amount.Abs()
			bs.Liabilities = append(bs.Liabilities, b)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(b.Amount)
		}
	}
	bs.NetWorth = bs.TotalAssets.Sub(bs.TotalLiabilities)
	return bs
}

// Statement is the income statement over a date range.
type Statement struct {
	Range    Range
	Income   []Balance
	Expenses []Balance

	TotalIncome  Money
	TotalExpense Money
	NetIncome    Money
}

// IncomeStatement totals income credits and expense debits over r. An open
// range covers the whole ledger.
func (s *Store) IncomeStatement(r Range) Statement {
	income := make(map[string]Money)
	expense := make(map[string]Money)
	for _, t := range s.transactions {
		if !r.Contains(t.Date) {
			continue
		}
		if cat, ok := s.chart.Classify(t.CreditAccount); ok && cat == Income {
			income[t.CreditAccount] = income[t.CreditAccount].Add(t.CreditAmount)
		}
		if cat, ok := s.chart.Classify(t.DebitAccount); ok && cat == Expense {
			expense[t.DebitAccount] = expense[t.DebitAccount].Add(t.DebitAmount)
		}
	}

	st := Statement{Range: r, Income: s.balancesOf(income), Expenses: s.balancesOf(expense)}
	for _, b := range st.Income {
		st.TotalIncome = st.TotalIncome.Add(b.Amount)
	}
	for _, b := range st.Expenses {
		st.TotalExpense = st.TotalExpense.Add(b.Amount)
	}
	st.NetIncome = st.TotalIncome.Sub(st.TotalExpense)
	return st
}

// CashFlow is the liquid-money movement over a date range, attributed to the
// non-liquid account on the other side of each transaction.
type CashFlow struct {
	Range    Range
	Inflows  []Balance
	Outflows []Balance

	TotalIn  Money
	TotalOut Money
	Net      Money
}

// CashFlow counts a debit into a liquid account as an inflow attributed to
// the credit account, and a credit out of a liquid account as an outflow
// attributed to the debit account. Transfers between two liquid accounts are
// internal and excluded from both sides.
func (s *Store) CashFlow(r Range) CashFlow {
	in := make(map[string]Money)
	out := make(map[string]Money)
	for _, t := range s.transactions {
		if !r.Contains(t.Date) {
			continue
		}
		debitLiquid := liquidAccounts[t.DebitAccount]
		creditLiquid := liquidAccounts[t.CreditAccount]
		switch {
		case debitLiquid && creditLiquid:
			// internal transfer
		case debitLiquid:
			in[t.CreditAccount] = in[t.CreditAccount].Add(t.DebitAmount)
		case creditLiquid:
			out[t.DebitAccount] = out[t.DebitAccount].Add(t.CreditAmount)
		}
	}

	cf := CashFlow{Range: r, Inflows: s.balancesOf(in), Outflows: s.balancesOf(out)}
	for _, b := range cf.Inflows {
		cf.TotalIn = cf.TotalIn.Add(b.Amount)
	}
	for _, b := range cf.Outflows {
		cf.TotalOut = cf.TotalOut.Add(b.Amount)
	}
	cf.Net = cf.TotalIn.Sub(cf.TotalOut)
	return cf
}
