package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
	"github.com/gagyebu/ledger/renderer"
)

type accountsCmd struct {
	add      string
	category string
	remove   string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list or manage the chart of accounts" }
func (*accountsCmd) Usage() string {
	return `gbu accounts [-add <name> -c income|expense] [-remove <name>]

  Without flags, lists every account with its category and balance. -add
  registers a custom income or expense account, -remove unregisters one.
  Built-in accounts cannot be changed.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Register a custom account with this name.")
	f.StringVar(&c.category, "c", "expense", "Category of the added account: income or expense.")
	f.StringVar(&c.remove, "remove", "", "Unregister this custom account.")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.add != "":
		cat, err := ledger.ParseCategory(c.category)
		if err != nil {
			return fail(err)
		}
		if err := s.Chart().AddCustom(c.add, cat); err != nil {
			return fail(err)
		}
		if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
			return st
		}
		fmt.Printf("Added %s account %q\n", cat, c.add)
	case c.remove != "":
		if err := s.Chart().RemoveCustom(c.remove); err != nil {
			return fail(err)
		}
		if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
			return st
		}
		fmt.Printf("Removed account %q\n", c.remove)
	default:
		printMarkdown(renderer.Accounts(s))
	}
	return subcommands.ExitSuccess
}
