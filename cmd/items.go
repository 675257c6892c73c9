package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
	"github.com/gagyebu/ledger/renderer"
)

type itemsCmd struct {
	kind string
	all  bool
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list tracked items" }
func (*itemsCmd) Usage() string {
	return `gbu items [-k <kind>] [-all]

  Lists tracked items and their remaining book value. By default only items
  that still carry a balance are shown; -all includes depleted ones. Kinds:
  liability, depreciable-asset, inventory, investment.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Only items of this kind.")
	f.BoolVar(&c.all, "all", false, "Include depleted items.")
}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var kind ledger.ItemKind
	filterKind := c.kind != ""
	if filterKind {
		var err error
		kind, err = ledger.ParseItemKind(c.kind)
		if err != nil {
			return fail(err)
		}
	}

	s, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	var items []ledger.Item
	for it := range s.Items() {
		if filterKind && it.Kind != kind {
			continue
		}
		if !c.all && !it.Active() {
			continue
		}
		items = append(items, it)
	}
	printMarkdown(renderer.Items(items))
	return subcommands.ExitSuccess
}
