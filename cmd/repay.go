package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
)

type repayCmd struct {
	date      dateFlag
	amount    float64
	liability string
	from      string
	memo      string
}

func (*repayCmd) Name() string     { return "repay" }
func (*repayCmd) Synopsis() string { return "pay down a tracked liability" }
func (*repayCmd) Usage() string {
	return `gbu repay -a <amount> -l <liability id> [-from <asset account>] [-m <description>] [-d <date>]

  Pays against a tracked liability from an asset account, reducing the
  liability's remaining balance. Fails when the amount exceeds what is left.
  Use "gbu items -k liability" to find the liability id.
`
}

func (c *repayCmd) SetFlags(f *flag.FlagSet) {
	c.date.register(f)
	f.Float64Var(&c.amount, "a", 0, "Amount to repay.")
	f.StringVar(&c.liability, "l", "", "Id of the liability being repaid.")
	f.StringVar(&c.from, "from", ledger.AccountBank, "Asset account the payment leaves.")
	f.StringVar(&c.memo, "m", "", "Description of the repayment.")
}

func (c *repayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.date.parse()
	if err != nil {
		return fail(err)
	}
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := s.RepayLiability(day, c.memo, c.liability, c.from, amount(c.amount))
	if err != nil {
		return fail(err)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	remaining := p.UpdatedItems[0].Current
	fmt.Printf("Repaid %s, %s remaining on %q\n", p.Transactions[0].Amount(), remaining, p.UpdatedItems[0].Name)
	return subcommands.ExitSuccess
}
