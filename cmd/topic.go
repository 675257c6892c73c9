package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/gagyebu/ledger/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a documentation topic" }
func (*topicCmd) Usage() string {
	return `gbu topic [<name> ...]

  Shows documentation topics. Without arguments, lists the available
  topics. Use "*" to show them all.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		topics, err := docs.GetAllTopics()
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Available topics: %s\n", strings.Join(topics, ", "))
		return subcommands.ExitSuccess
	}
	content, err := docs.GetTopics(f.Args()...)
	if err != nil {
		return fail(err)
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
