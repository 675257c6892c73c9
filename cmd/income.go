package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
)

type incomeCmd struct {
	date    dateFlag
	amount  float64
	to      string
	from    string
	memo    string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money earned into an asset account" }
func (*incomeCmd) Usage() string {
	return `gbu income -a <amount> [-to <asset account>] [-from <income account>] [-m <description>] [-d <date>]

  Posts an income transaction: the asset account is debited and the income
  account is credited by the same amount.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	c.date.register(f)
	f.Float64Var(&c.amount, "a", 0, "Amount earned.")
	f.StringVar(&c.to, "to", ledger.AccountCash, "Asset account receiving the money.")
	f.StringVar(&c.from, "from", ledger.AccountMiscIncome, "Income account the money comes from.")
	f.StringVar(&c.memo, "m", "", "Description of the income.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.date.parse()
	if err != nil {
		return fail(err)
	}
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := s.RecordIncome(day, c.memo, c.to, c.from, amount(c.amount))
	if err != nil {
		return fail(err)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Recorded income of %s into %s\n", p.Transactions[0].Amount(), c.to)
	return subcommands.ExitSuccess
}
