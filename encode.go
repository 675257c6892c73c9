package ledger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/gagyebu/ledger/kv"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Blob keys a store persists its collections under.
const (
	keyTransactions = "transactions"
	keyItems        = "items"
	keyAccounts     = "accounts"
)

// encodeJSONL marshals each element to one canonical JSON line.
func encodeJSONL[T any](items []T) ([]byte, error) {
	var buf bytes.Buffer
	for _, it := range items {
		line, err := json.Marshal(it)
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// decodeJSONL parses one element per non-empty line.
func decodeJSONL[T any](data []byte) ([]T, error) {
	var out []T
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var it T
		if err := json.Unmarshal(line, &it); err != nil {
			return nil, fmt.Errorf("decoding line %q: %w", string(line), err)
		}
		out = append(out, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save persists the three collections as JSONL blobs. Transactions go out in
// store order so the encoded form is canonical.
func (s *Store) Save(store kv.Store) error {
	txs, err := encodeJSONL(s.transactions)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}
	items, err := encodeJSONL(s.items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	accounts, err := encodeJSONL(s.chart.CustomAccounts())
	if err != nil {
		return fmt.Errorf("encoding accounts: %w", err)
	}
	if err := store.Save(keyTransactions, txs); err != nil {
		return err
	}
	if err := store.Save(keyItems, items); err != nil {
		return err
	}
	return store.Save(keyAccounts, accounts)
}

// Open rebuilds a store from its persisted blobs. A missing blob is an empty
// collection. A blob that fails to decode is reported and treated as empty
// rather than blocking the whole ledger.
func Open(store kv.Store) (*Store, error) {
	s := NewStore()

	txs, err := loadCollection[Transaction](store, keyTransactions)
	if err != nil {
		return nil, err
	}
	s.transactions = txs
	s.sortTransactions()

	items, err := loadCollection[Item](store, keyItems)
	if err != nil {
		return nil, err
	}
	s.items = items

	accounts, err := loadCollection[CustomAccount](store, keyAccounts)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if err := s.chart.AddCustom(a.Name, a.Category); err != nil {
			log.Printf("warning: skipping stored account %q: %v", a.Name, err)
		}
	}
	return s, nil
}

func loadCollection[T any](store kv.Store, key string) ([]T, error) {
	data, ok, err := store.Load(key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	out, err := decodeJSONL[T](data)
	if err != nil {
		log.Printf("warning: %s blob is unreadable, starting empty: %v", key, err)
		return nil, nil
	}
	return out, nil
}
