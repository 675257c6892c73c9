package ledger

// helpers shared by the package tests.

// won creates default-currency money from a const.
func won(v float64) Money { return KRW(v) }

// day parses an ISO date or panics.
func day(s string) Date { return MustParseDate(s) }

// memStore is an in-memory kv backend for persistence tests.
type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore { return &memStore{blobs: map[string][]byte{}} }

func (m *memStore) Load(key string) ([]byte, bool, error) {
	data, ok := m.blobs[key]
	return data, ok, nil
}

func (m *memStore) Save(key string, data []byte) error {
	m.blobs[key] = data
	return nil
}

// balanceOf returns the signed balance of one account, zero when absent.
func balanceOf(s *Store, account string) Money {
	for _, b := range s.Balances() {
		if b.Account == account {
			return b.Amount
		}
	}
	return Money{}
}
