package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
)

type sellCmd struct {
	date     dateFlag
	item     string
	quantity float64
	to       string
	proceeds float64
	memo     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a tracked asset, inventory units, or anything else" }
func (*sellCmd) Usage() string {
	return `gbu sell -a <proceeds> [-i <item id>] [-q <quantity>] [-to <asset account>] [-m <description>] [-d <date>]

  Posts a sale. With -i the tracked item's book value is taken off its
  account and any difference with the proceeds is recognized as gain or
  loss in linked transactions. Without -i the full proceeds are booked as
  miscellaneous gain.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	c.date.register(f)
	f.StringVar(&c.item, "i", "", "Id of the tracked asset or inventory lot sold.")
	f.Float64Var(&c.quantity, "q", 0, "Units sold out of an inventory lot.")
	f.StringVar(&c.to, "to", ledger.AccountCash, "Asset account receiving the proceeds.")
	f.Float64Var(&c.proceeds, "a", 0, "Sale proceeds.")
	f.StringVar(&c.memo, "m", "", "Description of the sale.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.date.parse()
	if err != nil {
		return fail(err)
	}
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := s.RecordSale(ledger.Sale{
		Date:           day,
		Description:    c.memo,
		ItemID:         c.item,
		Quantity:       ledger.Q(c.quantity),
		ReceiveAccount: c.to,
		Proceeds:       amount(c.proceeds),
	})
	if err != nil {
		return fail(err)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Recorded sale for %s in %d transaction(s)\n", amount(c.proceeds), len(p.Transactions))
	return subcommands.ExitSuccess
}
