package ledger

import "testing"

// seedStore posts a small but varied ledger used by the report tests.
func seedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()

	post := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("seeding failed: %v", err)
		}
	}
	_, err := s.RecordIncome(day("2025-01-05"), "salary", AccountBank, AccountMiscIncome, won(3000000))
	post(err)
	_, err = s.RecordExpense(day("2025-01-10"), "groceries", "food", AccountBank, won(200000))
	post(err)
	_, err = s.RecordPurchase(Purchase{
		Date: day("2025-01-15"), Name: "bike", Kind: PurchaseAsset, Amount: won(500000),
		Payment: Payment{Installment: won(500000)},
	})
	post(err)
	_, err = s.RecordExpense(day("2025-02-03"), "bus", "transport", AccountCash, won(50000))
	post(err)
	return s
}

func TestBalanceSheet_Identity(t *testing.T) {
	s := seedStore(t)
	bs := s.BalanceSheet()

	if !bs.TotalAssets.Sub(bs.TotalLiabilities).Equal(bs.NetWorth) {
		t.Errorf("assets %s - liabilities %s != net worth %s", bs.TotalAssets, bs.TotalLiabilities, bs.NetWorth)
	}
	if !bs.TotalLiabilities.Add(bs.NetWorth).Equal(bs.TotalAssets) {
		t.Errorf("liabilities %s + net worth %s != assets %s", bs.TotalLiabilities, bs.NetWorth, bs.TotalAssets)
	}

	// bank 2,800,000 + bike 500,000 - cash overdraft 50,000
	if !bs.TotalAssets.Equal(won(3250000)) {
		t.Errorf("total assets = %s, want 3250000", bs.TotalAssets)
	}
	if !bs.TotalLiabilities.Equal(won(500000)) {
		t.Errorf("total liabilities = %s, want 500000", bs.TotalLiabilities)
	}
}

func TestIncomeStatement_Range(t *testing.T) {
	s := seedStore(t)

	full := s.IncomeStatement(Range{})
	if !full.TotalIncome.Equal(won(3000000)) {
		t.Errorf("total income = %s, want 3000000", full.TotalIncome)
	}
	if !full.TotalExpense.Equal(won(250000)) {
		t.Errorf("total expense = %s, want 250000", full.TotalExpense)
	}
	if !full.NetIncome.Equal(won(2750000)) {
		t.Errorf("net income = %s, want 2750000", full.NetIncome)
	}

	january := s.IncomeStatement(NewRange(day("2025-01-01"), day("2025-01-31")))
	if !january.TotalExpense.Equal(won(200000)) {
		t.Errorf("january expense = %s, want 200000", january.TotalExpense)
	}
}

func TestCashFlow(t *testing.T) {
	s := NewStore()
	if _, err := s.RecordIncome(day("2025-01-05"), "salary", AccountBank, AccountMiscIncome, won(1000000)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordExpense(day("2025-01-10"), "rent", "housing", AccountBank, won(300000)); err != nil {
		t.Fatal(err)
	}
	// an internal transfer between the two liquid accounts
	transfer, err := NewTransaction(day("2025-01-12"), "atm", AccountCash, won(100000), AccountBank, won(100000))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AddTransaction(transfer); err != nil {
		t.Fatal(err)
	}

	cf := s.CashFlow(Range{})
	if !cf.TotalIn.Equal(won(1000000)) {
		t.Errorf("inflow = %s, want 1000000", cf.TotalIn)
	}
	if !cf.TotalOut.Equal(won(300000)) {
		t.Errorf("outflow = %s, want 300000", cf.TotalOut)
	}
	if !cf.Net.Equal(won(700000)) {
		t.Errorf("net = %s, want 700000", cf.Net)
	}

	// the inflow is attributed to the income account on the other side
	if len(cf.Inflows) != 1 || cf.Inflows[0].Account != AccountMiscIncome {
		t.Errorf("inflows = %+v", cf.Inflows)
	}
	if len(cf.Outflows) != 1 || cf.Outflows[0].Account != "housing" {
		t.Errorf("outflows = %+v", cf.Outflows)
	}
}
