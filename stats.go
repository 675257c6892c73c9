package ledger

import "sort"

// NetAssetsPoint is one bucket of the cumulative net-assets series.
type NetAssetsPoint struct {
	Key       string
	NetAssets Money
}

// FlowPoint is one bucket of the per-period income and expense series.
type FlowPoint struct {
	Key     string
	Income  Money
	Expense Money
}

// buckets groups the transactions within r by the period containing their
// date and returns the bucket start dates in chronological order.
func (s *Store) buckets(r Range, p Period) (map[Date][]Transaction, []Date) {
	byStart := make(map[Date][]Transaction)
	for _, t := range s.transactions {
		if !r.Contains(t.Date) {
			continue
		}
		start := t.Date.StartOf(p)
		byStart[start] = append(byStart[start], t)
	}
	starts := make([]Date, 0, len(byStart))
	for start := range byStart {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
	return byStart, starts
}

// NetAssetsSeries computes one net-assets snapshot per period bucket. Each
// snapshot is cumulative: it replays every in-range transaction up to and
// including that bucket, then takes positive asset balances minus the
// absolute value of negative liability balances.
func (s *Store) NetAssetsSeries(r Range, p Period) []NetAssetsPoint {
	byStart, starts := s.buckets(r, p)

	totals := make(map[string]Money)
	points := make([]NetAssetsPoint, 0, len(starts))
	for _, start := range starts {
		for _, t := range byStart[start] {
			totals[t.DebitAccount] = totals[t.DebitAccount].Add(t.DebitAmount)
			totals[t.CreditAccount] = totals[t.CreditAccount].Sub(t.CreditAmount)
		}
		var net Money
		for account, amount := range totals {
			cat, ok := s.chart.Classify(account)
			if !ok {
				continue
			}
			switch {
			case cat == Asset && amount.IsPositive():
				net = net.Add(amount)
			case cat == Liability && amount.IsNegative():
				net = net.Sub(amount.Abs())
			}
		}
		points = append(points, NetAssetsPoint{Key: p.Key(start), NetAssets: net})
	}
	return points
}

// IncomeExpenseSeries computes per-period income and expense totals, scoped
// to each bucket's own transactions (non-cumulative), using the income
// statement rule.
func (s *Store) IncomeExpenseSeries(r Range, p Period) []FlowPoint {
	byStart, starts := s.buckets(r, p)

	points := make([]FlowPoint, 0, len(starts))
	for _, start := range starts {
		point := FlowPoint{Key: p.Key(start)}
		for _, t := range byStart[start] {
			if cat, ok := s.chart.Classify(t.CreditAccount); ok && cat == Income {
				point.Income = point.Income.Add(t.CreditAmount)
			}
			if cat, ok := s.chart.Classify(t.DebitAccount); ok && cat == Expense {
				point.Expense = point.Expense.Add(t.DebitAmount)
			}
		}
		points = append(points, point)
	}
	return points
}
