package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
	"github.com/gagyebu/ledger/renderer"
)

type txCmd struct {
	ranges  rangeFlags
	account string
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `gbu tx [-p <period> | -s <start>] [-e <end>] [-account <name>] [-head <n>] [-tail <n>]

  Lists transactions, most recent first, with options for filtering and
  limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.ranges.register(f)
	f.StringVar(&c.account, "account", "", "Only transactions touching this account.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	r, err := c.ranges.parse()
	if err != nil {
		return fail(err)
	}
	s, _, err := openStore()
	if err != nil {
		return fail(err)
	}

	filters := []func(ledger.Transaction) bool{ledger.ByRange(r)}
	if c.account != "" {
		filters = append(filters, ledger.ByAccount(c.account))
	}
	var txs []ledger.Transaction
	for _, t := range s.Transactions(filters...) {
		txs = append(txs, t)
	}

	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}
	if c.tail > 0 && len(txs) > c.tail {
		txs = txs[len(txs)-c.tail:]
	}

	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}

type editCmd struct {
	id     string
	date   string
	memo   string
	debit  string
	credit string
	amount float64
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a transaction in place" }
func (*editCmd) Usage() string {
	return `gbu edit -id <transaction id> [-d <date>] [-m <description>] [-debit <account>] [-credit <account>] [-a <amount>]

  Replaces the given fields of a transaction. Fields not given keep their
  value. Editing does not touch tracked items the transaction may reference.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to edit.")
	f.StringVar(&c.date, "d", "", "New date.")
	f.StringVar(&c.memo, "m", "", "New description.")
	f.StringVar(&c.debit, "debit", "", "New debit account.")
	f.StringVar(&c.credit, "credit", "", "New credit account.")
	f.Float64Var(&c.amount, "a", 0, "New amount for both sides.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	t, ok := s.TransactionByID(c.id)
	if !ok {
		return fail(fmt.Errorf("transaction %q not found", c.id))
	}
	if c.date != "" {
		day, err := ledger.ParseDate(c.date)
		if err != nil {
			return fail(err)
		}
		t.Date = day
	}
	if c.memo != "" {
		t.Description = c.memo
	}
	if c.debit != "" {
		t.DebitAccount = c.debit
	}
	if c.credit != "" {
		t.CreditAccount = c.credit
	}
	if c.amount > 0 {
		t.DebitAmount = amount(c.amount)
		t.CreditAmount = amount(c.amount)
	}
	if err := s.UpdateTransaction(c.id, t); err != nil {
		return fail(err)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Updated transaction %s\n", c.id)
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `gbu delete -id <transaction id>

  Removes a transaction from the ledger. Tracked-item balances the
  transaction may have changed are left as they are.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	if _, ok := s.TransactionByID(c.id); !ok {
		return fail(fmt.Errorf("transaction %q not found", c.id))
	}
	s.RemoveTransaction(c.id)
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
