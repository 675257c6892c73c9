package ledger

import (
	"fmt"
	"iter"
	"sort"
)

// Store exclusively owns the transaction and tracked-item collections. All
// mutation goes through its methods; callers never hold a mutable view.
//
// The transaction collection is always sorted by date descending, ties broken
// by insertion order (stable sort).
type Store struct {
	chart        *Chart
	transactions []Transaction
	items        []Item
}

// NewStore creates an empty store with a fresh chart.
func NewStore() *Store {
	return &Store{chart: NewChart()}
}

// Chart returns the store's account classification table.
func (s *Store) Chart() *Chart { return s.chart }

// Len returns the number of transactions.
func (s *Store) Len() int { return len(s.transactions) }

// AddTransaction appends t and re-sorts the collection. As a last line of
// defense it rejects a transaction violating the debit==credit law; business
// validation is the posting rules' job.
func (s *Store) AddTransaction(t Transaction) error {
	if !t.Balanced() {
		return fmt.Errorf("%w: debit %s != credit %s", ErrUnbalanced, t.DebitAmount, t.CreditAmount)
	}
	s.transactions = append(s.transactions, t)
	s.sortTransactions()
	return nil
}

// UpdateTransaction replaces the transaction with matching id in place. An
// unknown id is a deliberate no-op. The replacement must still balance.
func (s *Store) UpdateTransaction(id string, t Transaction) error {
	if !t.Balanced() {
		return fmt.Errorf("%w: debit %s != credit %s", ErrUnbalanced, t.DebitAmount, t.CreditAmount)
	}
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			t.ID = id
			s.transactions[i] = t
			s.sortTransactions()
			return nil
		}
	}
	return nil
}

// RemoveTransaction removes the transaction with matching id. It does not
// cascade to tracked items: an item balance mutated by the removed
// transaction keeps its value. This is a documented limitation.
func (s *Store) RemoveTransaction(id string) {
	kept := s.transactions[:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.transactions = kept
}

// TransactionByID returns the transaction with the given id.
func (s *Store) TransactionByID(id string) (Transaction, bool) {
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Transactions yields transactions in store order (date descending). Every
// filter must accept a transaction for it to be yielded.
func (s *Store) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, t := range s.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(t) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// ByAccount returns a predicate that keeps transactions touching the account.
func ByAccount(account string) func(Transaction) bool {
	return func(t Transaction) bool { return t.Touches(account) }
}

// ByRange returns a predicate that keeps transactions dated within r.
func ByRange(r Range) func(Transaction) bool {
	return func(t Transaction) bool { return r.Contains(t.Date) }
}

// ByLink returns a predicate that keeps the legs of one logical action.
func ByLink(linkID string) func(Transaction) bool {
	return func(t Transaction) bool { return t.LinkID == linkID }
}

// AddItem appends a tracked item.
func (s *Store) AddItem(item Item) {
	s.items = append(s.items, item)
}

// UpdateItem merges a mutation into the item with matching id. An unknown id
// is a deliberate no-op, mirroring UpdateTransaction.
func (s *Store) UpdateItem(id string, mutate func(*Item) error) error {
	for i := range s.items {
		if s.items[i].ID == id {
			return mutate(&s.items[i])
		}
	}
	return nil
}

// ItemByID returns a copy of the tracked item with the given id.
func (s *Store) ItemByID(id string) (Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Items yields all tracked items in creation order.
func (s *Store) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range s.items {
			if !yield(it) {
				return
			}
		}
	}
}

// ActiveItems returns the items of a kind that still carry a balance.
func (s *Store) ActiveItems(kind ItemKind) []Item {
	var out []Item
	for _, it := range s.items {
		if it.Kind == kind && it.Active() {
			out = append(out, it)
		}
	}
	return out
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero date when the store is empty.
func (s *Store) OldestTransactionDate() Date {
	if len(s.transactions) == 0 {
		return Date{}
	}
	return s.transactions[len(s.transactions)-1].Date
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero date when the store is empty.
func (s *Store) NewestTransactionDate() Date {
	if len(s.transactions) == 0 {
		return Date{}
	}
	return s.transactions[0].Date
}

// Merge appends imported transactions to the existing collection and
// re-sorts, as a single atomic swap.
func (s *Store) Merge(txs []Transaction) {
	merged := make([]Transaction, 0, len(s.transactions)+len(txs))
	merged = append(merged, s.transactions...)
	merged = append(merged, txs...)
	s.transactions = merged
	s.sortTransactions()
}

// Replace swaps the whole transaction collection for the imported one.
func (s *Store) Replace(txs []Transaction) {
	s.transactions = append([]Transaction(nil), txs...)
	s.sortTransactions()
}

// sortTransactions sorts by date descending. The sort is stable, so
// transactions on the same day keep their relative insertion order.
func (s *Store) sortTransactions() {
	sort.SliceStable(s.transactions, func(i, j int) bool {
		return s.transactions[i].Date.After(s.transactions[j].Date)
	})
}

// apply commits a posting atomically: the posting has already been fully
// validated, so the store either takes all of it or (on the balance check
// failing) none of it.
func (s *Store) apply(p Posting) error {
	for _, t := range p.Transactions {
		if !t.Balanced() {
			return fmt.Errorf("%w: debit %s != credit %s", ErrUnbalanced, t.DebitAmount, t.CreditAmount)
		}
	}
	s.transactions = append(s.transactions, p.Transactions...)
	s.items = append(s.items, p.NewItems...)
	for _, updated := range p.UpdatedItems {
		for i := range s.items {
			if s.items[i].ID == updated.ID {
				s.items[i] = updated
				break
			}
		}
	}
	s.sortTransactions()
	return nil
}
