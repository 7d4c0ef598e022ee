package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkrogh/kurv/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show total spending and per-store counts" }
func (*summaryCmd) Usage() string {
	return `kt summary

  Prints the spending total converted to DKK and the number of purchases
  recorded at each store.

`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (p *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(tracker.Records(), tracker.Total()))
	return subcommands.ExitSuccess
}
