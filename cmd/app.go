// Package cmd implements the CLI application to manage a household ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/gagyebu/ledger"
	"github.com/gagyebu/ledger/kv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "posting")
	c.Register(&expenseCmd{}, "posting")
	c.Register(&repayCmd{}, "posting")
	c.Register(&purchaseCmd{}, "posting")
	c.Register(&sellCmd{}, "posting")
	c.Register(&investCmd{}, "posting")
	c.Register(&collectCmd{}, "posting")

	c.Register(&txCmd{}, "ledger")
	c.Register(&editCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&itemsCmd{}, "ledger")
	c.Register(&accountsCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&statementCmd{}, "reports")
	c.Register(&cashflowCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")

	c.Register(&importCmd{}, "exchange")
	c.Register(&exportCmd{}, "exchange")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerDir = flag.String("ledger-dir", "", "Path to the ledger data directory (default $GBU_LEDGER_DIR or .ledger)")
var storeKind = flag.String("store", "", "Storage backend: dir (one file per collection) or sqlite (default $GBU_STORE or dir)")

// The environment is consulted at open time, not at flag declaration, so a
// .env file loaded by main still applies.
func envOr(flagValue, key, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openKV opens the configured storage backend.
func openKV() (kv.Store, error) {
	dir := envOr(*ledgerDir, "GBU_LEDGER_DIR", ".ledger")
	switch kind := envOr(*storeKind, "GBU_STORE", "dir"); kind {
	case "dir":
		return kv.NewDir(dir)
	case "sqlite":
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		return kv.NewSQLite(filepath.Join(dir, "ledger.db"))
	default:
		return nil, fmt.Errorf("unknown store kind %q, want dir or sqlite", kind)
	}
}

// openStore loads the ledger from the configured backend.
func openStore() (*ledger.Store, kv.Store, error) {
	kvs, err := openKV()
	if err != nil {
		return nil, nil, err
	}
	s, err := ledger.Open(kvs)
	if err != nil {
		return nil, nil, err
	}
	return s, kvs, nil
}

// saveStore persists the ledger back to its backend.
func saveStore(s *ledger.Store, kvs kv.Store) subcommands.ExitStatus {
	if err := s.Save(kvs); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
