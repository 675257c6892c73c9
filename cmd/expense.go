package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
)

type expenseCmd struct {
	date     dateFlag
	amount   float64
	category string
	from     string
	memo     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent from an asset account" }
func (*expenseCmd) Usage() string {
	return `gbu expense -a <amount> -c <expense account> [-from <asset account>] [-m <description>] [-d <date>]

  Posts an expense transaction: the expense account is debited and the
  payment asset account is credited by the same amount.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	c.date.register(f)
	f.Float64Var(&c.amount, "a", 0, "Amount spent.")
	f.StringVar(&c.category, "c", "", "Expense account to charge (e.g. food, transport).")
	f.StringVar(&c.from, "from", ledger.AccountCash, "Asset account the money leaves.")
	f.StringVar(&c.memo, "m", "", "Description of the expense.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.date.parse()
	if err != nil {
		return fail(err)
	}
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := s.RecordExpense(day, c.memo, c.category, c.from, amount(c.amount))
	if err != nil {
		return fail(err)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Recorded expense of %s on %s\n", p.Transactions[0].Amount(), c.category)
	return subcommands.ExitSuccess
}
