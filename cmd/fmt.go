package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the stored collections into canonical form"
}
func (*fmtCmd) Usage() string {
	return `gbu fmt

  Reads every stored collection, re-sorts transactions by date, and writes
  everything back in canonical JSONL form. Useful after hand-editing the
  data files or to normalize a ledger produced by an older version.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Formatted %d transaction(s)\n", s.Len())
	return subcommands.ExitSuccess
}
