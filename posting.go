package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Posting is the outcome of one user action: the balanced transactions it
// produces plus the tracked-item records it creates or mutates. A posting is
// built and fully validated before the store takes any of it, so a failing
// rule leaves the ledger untouched.
type Posting struct {
	Transactions []Transaction
	NewItems     []Item
	UpdatedItems []Item
}

// splitTolerance is how far a split payment's portions may drift from the
// total before the partition is rejected.
var splitTolerance = decimal.NewFromFloat(0.01)

func requireAmount(amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	return nil
}

// requireCategory checks that the chart classifies account as cat.
func (s *Store) requireCategory(account string, cat Category) error {
	if account == "" {
		return fmt.Errorf("%w: account", ErrMissingField)
	}
	got, ok := s.chart.Classify(account)
	if !ok {
		return fmt.Errorf("%w: account %q", ErrNotFound, account)
	}
	if got != cat {
		return fmt.Errorf("%w: %q is %s, want %s", ErrInvalidCategory, account, got, cat)
	}
	return nil
}

// RecordIncome posts money earned into an asset account from an income
// account.
func (s *Store) RecordIncome(day Date, desc, account, incomeAccount string, amount Money) (Posting, error) {
	if err := requireAmount(amount); err != nil {
		return Posting{}, err
	}
	if err := s.requireCategory(account, Asset); err != nil {
		return Posting{}, err
	}
	if err := s.requireCategory(incomeAccount, Income); err != nil {
		return Posting{}, err
	}
	t, err := NewTransaction(day, desc, account, amount, incomeAccount, amount)
	if err != nil {
		return Posting{}, err
	}
	p := Posting{Transactions: []Transaction{t}}
	return p, s.apply(p)
}

// RecordExpense posts money spent from a payment asset account into an
// expense account.
func (s *Store) RecordExpense(day Date, desc, expenseAccount, paymentAccount string, amount Money) (Posting, error) {
	if err := requireAmount(amount); err != nil {
		return Posting{}, err
	}
	if err := s.requireCategory(expenseAccount, Expense); err != nil {
		return Posting{}, err
	}
	if err := s.requireCategory(paymentAccount, Asset); err != nil {
		return Posting{}, err
	}
	t, err := NewTransaction(day, desc, expenseAccount, amount, paymentAccount, amount)
	if err != nil {
		return Posting{}, err
	}
	p := Posting{Transactions: []Transaction{t}}
	return p, s.apply(p)
}

// RepayLiability pays amount against a tracked liability from an asset
// account, depleting the liability's remaining balance.
func (s *Store) RepayLiability(day Date, desc, liabilityID, paymentAccount string, amount Money) (Posting, error) {
	if err := requireAmount(amount); err != nil {
		return Posting{}, err
	}
	if err := s.requireCategory(paymentAccount, Asset); err != nil {
		return Posting{}, err
	}
	item, ok := s.ItemByID(liabilityID)
	if !ok || item.Kind != KindLiability {
		return Posting{}, fmt.Errorf("%w: liability %q", ErrNotFound, liabilityID)
	}
	if err := item.consume(amount); err != nil {
		return Posting{}, err
	}
	t, err := NewTransaction(day, desc, AccountLiability, amount, paymentAccount, amount)
	if err != nil {
		return Posting{}, err
	}
	t.LiabilityID = item.ID
	p := Posting{Transactions: []Transaction{t}, UpdatedItems: []Item{item}}
	return p, s.apply(p)
}

// PurchaseKind selects what a purchase buys and therefore which account is
// debited and which tracked item is created.
type PurchaseKind int

const (
	// PurchaseExpense is an immediate expense, no tracked item.
	PurchaseExpense PurchaseKind = iota
	// PurchaseAsset creates a depreciable-asset item.
	PurchaseAsset
	// PurchaseInventory creates an inventory lot.
	PurchaseInventory
)

// Payment describes how a purchase or investment is settled. Exactly the
// non-zero portions apply: cash only, installment only, or a split of both.
type Payment struct {
	// Account is the asset account paying the cash portion.
	Account string
	// Cash is the portion settled immediately.
	Cash Money
	// Installment is the portion deferred into a new liability.
	Installment Money
}

func (p Payment) split() bool { return p.Cash.IsPositive() && p.Installment.IsPositive() }

// Purchase holds the parameters of a purchase action.
type Purchase struct {
	Date Date
	// Name labels the expense and any tracked item created.
	Name string
	Kind PurchaseKind
	// ExpenseAccount is the expense account to debit, PurchaseExpense only.
	ExpenseAccount string
	// Amount is the total price.
	Amount Money
	// Quantity and UnitPrice size an inventory lot, PurchaseInventory only.
	Quantity  Quantity
	UnitPrice Money
	Payment   Payment
}

// debitAccount returns the account the purchase debits.
func (p Purchase) debitAccount() string {
	switch p.Kind {
	case PurchaseAsset:
		return AccountAsset
	case PurchaseInventory:
		return AccountInventory
	default:
		return p.ExpenseAccount
	}
}

// RecordPurchase posts a purchase. Cash and installment portions become
// separate linked transactions; an installment portion creates a liability
// item sized to that portion only.
func (s *Store) RecordPurchase(pu Purchase) (Posting, error) {
	if pu.Name == "" {
		return Posting{}, fmt.Errorf("%w: purchase name", ErrMissingField)
	}
	if err := requireAmount(pu.Amount); err != nil {
		return Posting{}, err
	}
	if pu.Kind == PurchaseExpense {
		if err := s.requireCategory(pu.ExpenseAccount, Expense); err != nil {
			return Posting{}, err
		}
	}
	if pu.Kind == PurchaseInventory {
		if !pu.Quantity.IsPositive() || !pu.UnitPrice.IsPositive() {
			return Posting{}, fmt.Errorf("%w: inventory quantity and unit price", ErrInvalidAmount)
		}
	}

	pay := pu.Payment
	if !pay.Cash.IsPositive() && !pay.Installment.IsPositive() {
		return Posting{}, fmt.Errorf("%w: payment", ErrMissingField)
	}
	if pay.Cash.IsPositive() {
		if err := s.requireCategory(pay.Account, Asset); err != nil {
			return Posting{}, err
		}
	}
	paid := pay.Cash.Add(pay.Installment)
	if paid.Sub(pu.Amount).Decimal().Abs().GreaterThan(splitTolerance) {
		return Posting{}, fmt.Errorf("%w: portions %s do not cover total %s", ErrUnbalanced, paid, pu.Amount)
	}

	var p Posting
	var itemID string
	switch pu.Kind {
	case PurchaseAsset:
		item := NewDepreciableAsset(pu.Name, pu.Amount)
		itemID = item.ID
		p.NewItems = append(p.NewItems, item)
	case PurchaseInventory:
		item := NewInventory(pu.Name, pu.Quantity, pu.UnitPrice)
		itemID = item.ID
		p.NewItems = append(p.NewItems, item)
	}

	var liabilityID string
	if pay.Installment.IsPositive() {
		liability := NewLiability(pu.Name, pay.Installment)
		liabilityID = liability.ID
		p.NewItems = append(p.NewItems, liability)
	}

	linkID := ""
	if pay.split() {
		linkID = newID()
	}
	debit := pu.debitAccount()
	if pay.Cash.IsPositive() {
		t, err := NewTransaction(pu.Date, pu.Name, debit, pay.Cash, pay.Account, pay.Cash)
		if err != nil {
			return Posting{}, err
		}
		t.ItemID, t.LinkID = itemID, linkID
		p.Transactions = append(p.Transactions, t)
	}
	if pay.Installment.IsPositive() {
		t, err := NewTransaction(pu.Date, pu.Name, debit, pay.Installment, AccountLiability, pay.Installment)
		if err != nil {
			return Posting{}, err
		}
		t.ItemID, t.LiabilityID, t.LinkID = itemID, liabilityID, linkID
		p.Transactions = append(p.Transactions, t)
	}
	return p, s.apply(p)
}

// Sale holds the parameters of a sale action. A zero ItemID sells something
// the ledger never tracked, booking the whole proceeds as miscellaneous gain.
type Sale struct {
	Date        Date
	Description string
	// ItemID references the tracked asset or inventory lot sold.
	ItemID string
	// Quantity is how many units leave an inventory lot.
	Quantity Quantity
	// ReceiveAccount is the asset account the proceeds land on.
	ReceiveAccount string
	Proceeds       Money
}

// RecordSale posts a sale. For a tracked item the book value leg and the
// profit or loss leg are separate transactions sharing a link id, and the
// item's balance is reduced accordingly.
func (s *Store) RecordSale(sa Sale) (Posting, error) {
	if err := requireAmount(sa.Proceeds); err != nil {
		return Posting{}, err
	}
	if err := s.requireCategory(sa.ReceiveAccount, Asset); err != nil {
		return Posting{}, err
	}

	if sa.ItemID == "" {
		t, err := NewTransaction(sa.Date, sa.Description, sa.ReceiveAccount, sa.Proceeds, AccountMiscGain, sa.Proceeds)
		if err != nil {
			return Posting{}, err
		}
		p := Posting{Transactions: []Transaction{t}}
		return p, s.apply(p)
	}

	item, ok := s.ItemByID(sa.ItemID)
	if !ok {
		return Posting{}, fmt.Errorf("%w: item %q", ErrNotFound, sa.ItemID)
	}

	var book Money
	switch item.Kind {
	case KindDepreciableAsset:
		book = item.Current
		if !book.IsPositive() {
			return Posting{}, insufficientf(item.Name, sa.Proceeds, book)
		}
		if err := item.consume(book); err != nil {
			return Posting{}, err
		}
	case KindInventory:
		if !sa.Quantity.IsPositive() {
			return Posting{}, fmt.Errorf("%w: sale quantity", ErrInvalidAmount)
		}
		book = item.UnitPrice.Mul(sa.Quantity)
		if err := item.removeQuantity(sa.Quantity); err != nil {
			return Posting{}, err
		}
	default:
		return Posting{}, fmt.Errorf("%w: item %q is a %s, not sellable", ErrNotFound, sa.ItemID, item.Kind)
	}

	txs, err := disposalLegs(sa.Date, sa.Description, sa.ReceiveAccount, item.Kind.Account(), sa.Proceeds, book)
	if err != nil {
		return Posting{}, err
	}
	for i := range txs {
		txs[i].ItemID = item.ID
	}
	p := Posting{Transactions: txs, UpdatedItems: []Item{item}}
	return p, s.apply(p)
}

// disposalLegs builds the transactions that take book value off itemAccount
// in exchange for proceeds landing on receiveAccount.
//
// At a profit: the book value moves to receiveAccount and the surplus is
// recognized against misc-gain. At a loss: the proceeds move to
// receiveAccount and the shortfall is written off by debiting misc-loss
// against itemAccount, so the item account is always credited its full book
// value. Multiple legs share a fresh link id.
func disposalLegs(day Date, desc, receiveAccount, itemAccount string, proceeds, book Money) ([]Transaction, error) {
	var legs []Transaction
	switch {
	case proceeds.GreaterThanOrEqual(book):
		base, err := NewTransaction(day, desc, receiveAccount, book, itemAccount, book)
		if err != nil {
			return nil, err
		}
		legs = append(legs, base)
		if profit := proceeds.Sub(book); profit.IsPositive() {
			gain, err := NewTransaction(day, desc, receiveAccount, profit, AccountMiscGain, profit)
			if err != nil {
				return nil, err
			}
			legs = append(legs, gain)
		}
	default:
		base, err := NewTransaction(day, desc, receiveAccount, proceeds, itemAccount, proceeds)
		if err != nil {
			return nil, err
		}
		shortfall := book.Sub(proceeds)
		loss, err := NewTransaction(day, desc, AccountMiscLoss, shortfall, itemAccount, shortfall)
		if err != nil {
			return nil, err
		}
		legs = append(legs, base, loss)
	}
	if len(legs) > 1 {
		linkID := newID()
		for i := range legs {
			legs[i].LinkID = linkID
		}
	}
	return legs, nil
}

// Investment holds the parameters of an investment action.
type Investment struct {
	Date Date
	Name string
	// Category is the investment sub-kind label (e.g. "stocks", "deposit").
	Category string
	Amount   Money
	// PaymentAccount funds the investment when LoanFunded is false.
	PaymentAccount string
	// LoanFunded borrows the amount, creating a liability alongside the
	// investment.
	LoanFunded bool
}

// RecordInvestment posts a new investment, either paid from an asset account
// or funded by a loan.
func (s *Store) RecordInvestment(in Investment) (Posting, error) {
	if in.Name == "" {
		return Posting{}, fmt.Errorf("%w: investment name", ErrMissingField)
	}
	if err := requireAmount(in.Amount); err != nil {
		return Posting{}, err
	}
	credit := AccountLiability
	if !in.LoanFunded {
		if err := s.requireCategory(in.PaymentAccount, Asset); err != nil {
			return Posting{}, err
		}
		credit = in.PaymentAccount
	}

	item := NewInvestment(in.Name, in.Category, in.Amount)
	p := Posting{NewItems: []Item{item}}
	var liabilityID string
	if in.LoanFunded {
		liability := NewLiability(in.Name, in.Amount)
		liabilityID = liability.ID
		p.NewItems = append(p.NewItems, liability)
	}

	t, err := NewTransaction(in.Date, in.Name, AccountInvestment, in.Amount, credit, in.Amount)
	if err != nil {
		return Posting{}, err
	}
	t.ItemID, t.LiabilityID = item.ID, liabilityID
	p.Transactions = append(p.Transactions, t)
	return p, s.apply(p)
}

// CollectInvestment closes out a tracked investment for cash proceeds. The
// whole remaining balance is disposed of: a surplus over book value is
// recognized as misc-gain, a shortfall as misc-loss.
func (s *Store) CollectInvestment(day Date, desc, investmentID, receiveAccount string, proceeds Money) (Posting, error) {
	if err := requireAmount(proceeds); err != nil {
		return Posting{}, err
	}
	if err := s.requireCategory(receiveAccount, Asset); err != nil {
		return Posting{}, err
	}
	item, ok := s.ItemByID(investmentID)
	if !ok || item.Kind != KindInvestment {
		return Posting{}, fmt.Errorf("%w: investment %q", ErrNotFound, investmentID)
	}
	book := item.Current
	if !book.IsPositive() {
		return Posting{}, insufficientf(item.Name, proceeds, book)
	}
	if err := item.consume(book); err != nil {
		return Posting{}, err
	}

	txs, err := disposalLegs(day, desc, receiveAccount, AccountInvestment, proceeds, book)
	if err != nil {
		return Posting{}, err
	}
	for i := range txs {
		txs[i].ItemID = item.ID
	}
	p := Posting{Transactions: txs, UpdatedItems: []Item{item}}
	return p, s.apply(p)
}

// CollectViaLiability settles part of an investment directly against a
// tracked liability: the liability shrinks by amount and so does the
// investment, with no cash moving.
func (s *Store) CollectViaLiability(day Date, desc, investmentID, liabilityID string, amount Money) (Posting, error) {
	if err := requireAmount(amount); err != nil {
		return Posting{}, err
	}
	investment, ok := s.ItemByID(investmentID)
	if !ok || investment.Kind != KindInvestment {
		return Posting{}, fmt.Errorf("%w: investment %q", ErrNotFound, investmentID)
	}
	liability, ok := s.ItemByID(liabilityID)
	if !ok || liability.Kind != KindLiability {
		return Posting{}, fmt.Errorf("%w: liability %q", ErrNotFound, liabilityID)
	}
	if err := liability.consume(amount); err != nil {
		return Posting{}, err
	}
	if err := investment.consume(amount); err != nil {
		return Posting{}, err
	}

	t, err := NewTransaction(day, desc, AccountLiability, amount, AccountInvestment, amount)
	if err != nil {
		return Posting{}, err
	}
	t.ItemID, t.LiabilityID = investment.ID, liability.ID
	p := Posting{Transactions: []Transaction{t}, UpdatedItems: []Item{liability, investment}}
	return p, s.apply(p)
}
