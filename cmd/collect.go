package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
)

type collectCmd struct {
	date      dateFlag
	item      string
	liability string
	to        string
	amount    float64
	memo      string
}

func (*collectCmd) Name() string     { return "collect" }
func (*collectCmd) Synopsis() string { return "collect on a tracked investment" }
func (*collectCmd) Usage() string {
	return `gbu collect -i <investment id> -a <amount> [-to <asset account> | -l <liability id>] [-m <description>] [-d <date>]

  Collects on a tracked investment. With -to the investment is closed out
  for cash: the proceeds land on the asset account and any difference with
  the remaining book value is recognized as gain or loss. With -l the amount
  instead settles directly against a tracked liability, shrinking both the
  liability and the investment.
`
}

func (c *collectCmd) SetFlags(f *flag.FlagSet) {
	c.date.register(f)
	f.StringVar(&c.item, "i", "", "Id of the investment collected on.")
	f.StringVar(&c.liability, "l", "", "Id of a liability to settle against instead of cash.")
	f.StringVar(&c.to, "to", ledger.AccountBank, "Asset account receiving the proceeds.")
	f.Float64Var(&c.amount, "a", 0, "Proceeds, or the amount settled against the liability.")
	f.StringVar(&c.memo, "m", "", "Description of the collection.")
}

func (c *collectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.date.parse()
	if err != nil {
		return fail(err)
	}
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}

	var p ledger.Posting
	if c.liability != "" {
		p, err = s.CollectViaLiability(day, c.memo, c.item, c.liability, amount(c.amount))
	} else {
		p, err = s.CollectInvestment(day, c.memo, c.item, c.to, amount(c.amount))
	}
	if err != nil {
		return fail(err)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Recorded collection of %s in %d transaction(s)\n", amount(c.amount), len(p.Transactions))
	return subcommands.ExitSuccess
}
