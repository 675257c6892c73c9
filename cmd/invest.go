package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
)

type investCmd struct {
	date     dateFlag
	name     string
	category string
	amount   float64
	from     string
	loan     bool
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "record a new investment" }
func (*investCmd) Usage() string {
	return `gbu invest -n <name> -a <amount> [-c <category>] [-from <asset account>] [-loan] [-d <date>]

  Posts an investment and tracks it as an item. With -loan the amount is
  borrowed instead of paid: a liability item of the same size is created and
  credited instead of the -from account.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	c.date.register(f)
	f.StringVar(&c.name, "n", "", "Name of the investment.")
	f.StringVar(&c.category, "c", "", "Investment category label (e.g. stocks, deposit).")
	f.Float64Var(&c.amount, "a", 0, "Amount invested.")
	f.StringVar(&c.from, "from", ledger.AccountBank, "Asset account funding the investment.")
	f.BoolVar(&c.loan, "loan", false, "Fund the investment with a loan.")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.date.parse()
	if err != nil {
		return fail(err)
	}
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := s.RecordInvestment(ledger.Investment{
		Date:           day,
		Name:           c.name,
		Category:       c.category,
		Amount:         amount(c.amount),
		PaymentAccount: c.from,
		LoanFunded:     c.loan,
	})
	if err != nil {
		return fail(err)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	for _, item := range p.NewItems {
		fmt.Printf("Tracked %s %q (%s)\n", item.Kind, item.Name, item.ID)
	}
	return subcommands.ExitSuccess
}
