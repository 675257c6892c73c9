package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
	"github.com/gagyebu/ledger/renderer"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the balance sheet" }
func (*balanceCmd) Usage() string {
	return `gbu balance

  Shows assets, liabilities and net worth derived from the whole ledger.
`
}
func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BalanceSheet(s.BalanceSheet()))
	return subcommands.ExitSuccess
}

type statementCmd struct {
	ranges rangeFlags
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show the income statement" }
func (*statementCmd) Usage() string {
	return `gbu statement [-p <period> | -s <start>] [-e <end>]

  Shows income and expense totals per account over the range, and the net
  income. Without range flags the whole ledger is covered.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) { c.ranges.register(f) }

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.ranges.parse()
	if err != nil {
		return fail(err)
	}
	s, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Statement(s.IncomeStatement(r)))
	return subcommands.ExitSuccess
}

type cashflowCmd struct {
	ranges rangeFlags
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "show the cash flow report" }
func (*cashflowCmd) Usage() string {
	return `gbu cashflow [-p <period> | -s <start>] [-e <end>]

  Shows money flowing in and out of the liquid accounts (cash, bank) over
  the range, attributed to the account on the other side. Transfers between
  liquid accounts are excluded.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) { c.ranges.register(f) }

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.ranges.parse()
	if err != nil {
		return fail(err)
	}
	s, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.CashFlow(s.CashFlow(r)))
	return subcommands.ExitSuccess
}

type statsCmd struct {
	ranges rangeFlags
	period string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show net assets and income/expense per period" }
func (*statsCmd) Usage() string {
	return `gbu stats [-by month|year] [-p <period> | -s <start>] [-e <end>]

  Shows two series bucketed by -by: cumulative net assets at the end of
  each bucket, and that bucket's own income and expense totals.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	c.ranges.register(f)
	f.StringVar(&c.period, "by", "month", "Bucket size: month or year.")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.ranges.parse()
	if err != nil {
		return fail(err)
	}
	by, err := ledger.ParsePeriod(c.period)
	if err != nil {
		return fail(err)
	}
	s, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Stats(s.NetAssetsSeries(r, by), s.IncomeExpenseSeries(r, by)))
	return subcommands.ExitSuccess
}
