package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
)

type importCmd struct {
	file    string
	replace bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a spreadsheet" }
func (*importCmd) Usage() string {
	return `gbu import -f <file.xlsx> [-replace]

  Imports the first sheet of a workbook. The header row may use Korean or
  English column names for date, description, debit/credit account and
  amount. The batch is all-or-nothing: one bad row rejects the whole file.
  By default imported rows are merged with the existing ledger; -replace
  swaps the whole transaction collection instead.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Workbook to import.")
	f.BoolVar(&c.replace, "replace", false, "Replace existing transactions instead of merging.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return fail(fmt.Errorf("missing -f workbook file"))
	}
	in, err := os.Open(c.file)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	records, err := ledger.ReadXLSX(in)
	if err != nil {
		return fail(err)
	}
	txs, err := ledger.ImportRecords(records)
	if err != nil {
		return fail(err)
	}

	s, kvs, err := openStore()
	if err != nil {
		return fail(err)
	}
	if c.replace {
		s.Replace(txs)
	} else {
		s.Merge(txs)
	}
	if st := saveStore(s, kvs); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Imported %d transaction(s) from %s\n", len(txs), c.file)
	return subcommands.ExitSuccess
}

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `gbu export -f <file.xlsx>

  Writes the transaction list and a per-account balance summary into a
  workbook, one sheet each.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Workbook to write.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return fail(fmt.Errorf("missing -f workbook file"))
	}
	s, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	out, err := os.Create(c.file)
	if err != nil {
		return fail(err)
	}
	defer out.Close()

	if err := s.WriteXLSX(out); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported %d transaction(s) to %s\n", s.Len(), c.file)
	return subcommands.ExitSuccess
}
