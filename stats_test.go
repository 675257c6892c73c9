package ledger

import "testing"

func TestNetAssetsSeries_Cumulative(t *testing.T) {
	s := NewStore()
	if _, err := s.RecordIncome(day("2025-01-05"), "salary", AccountBank, AccountMiscIncome, won(1000000)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordIncome(day("2025-02-05"), "salary", AccountBank, AccountMiscIncome, won(1000000)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordPurchase(Purchase{
		Date: day("2025-02-10"), Name: "scooter", Kind: PurchaseAsset, Amount: won(300000),
		Payment: Payment{Installment: won(300000)},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordExpense(day("2025-03-15"), "rent", "housing", AccountBank, won(400000)); err != nil {
		t.Fatal(err)
	}

	points := s.NetAssetsSeries(Range{}, Monthly)
	want := []NetAssetsPoint{
		// bank 1,000,000
		{Key: "2025-01", NetAssets: won(1000000)},
		// + salary, + asset 300,000, - liability 300,000
		{Key: "2025-02", NetAssets: won(2000000)},
		// - rent
		{Key: "2025-03", NetAssets: won(1600000)},
	}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d: %+v", len(points), len(want), points)
	}
	for i, w := range want {
		if points[i].Key != w.Key || !points[i].NetAssets.Equal(w.NetAssets) {
			t.Errorf("point %d = %s %s, want %s %s", i, points[i].Key, points[i].NetAssets, w.Key, w.NetAssets)
		}
	}
}

func TestIncomeExpenseSeries_PerPeriod(t *testing.T) {
	s := NewStore()
	if _, err := s.RecordIncome(day("2025-01-05"), "salary", AccountBank, AccountMiscIncome, won(1000000)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordExpense(day("2025-01-20"), "lunch", "food", AccountCash, won(50000)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordExpense(day("2025-02-02"), "lunch", "food", AccountCash, won(60000)); err != nil {
		t.Fatal(err)
	}

	points := s.IncomeExpenseSeries(Range{}, Monthly)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2: %+v", len(points), points)
	}
	// the february bucket carries only its own expense, not january's
	feb := points[1]
	if feb.Key != "2025-02" || !feb.Income.IsZero() || !feb.Expense.Equal(won(60000)) {
		t.Errorf("february = %+v", feb)
	}
	jan := points[0]
	if !jan.Income.Equal(won(1000000)) || !jan.Expense.Equal(won(50000)) {
		t.Errorf("january = %+v", jan)
	}
}

func TestNetAssetsSeries_Yearly(t *testing.T) {
	s := NewStore()
	if _, err := s.RecordIncome(day("2024-06-01"), "salary", AccountBank, AccountMiscIncome, won(500000)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordIncome(day("2025-06-01"), "salary", AccountBank, AccountMiscIncome, won(500000)); err != nil {
		t.Fatal(err)
	}

	points := s.NetAssetsSeries(Range{}, Yearly)
	if len(points) != 2 || points[0].Key != "2024" || points[1].Key != "2025" {
		t.Fatalf("points = %+v", points)
	}
	if !points[1].NetAssets.Equal(won(1000000)) {
		t.Errorf("2025 net assets = %s, want cumulative 1000000", points[1].NetAssets)
	}
}
