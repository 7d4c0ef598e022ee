package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkrogh/kurv/renderer"
)

type compareCmd struct {
	product string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare prices for one product across stores" }
func (*compareCmd) Usage() string {
	return `kt compare -product <name>

  Compares every purchase of the given product (case-insensitive) side by
  side, standardized to a per-base-unit price in DKK.

Usage Examples:
$ kt compare -product "organic bananas"

`
}

func (p *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.product, "product", "", "Product name to compare.")
}

func (p *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.product == "" {
		fmt.Fprintln(os.Stderr, "Error: -product is required.")
		return subcommands.ExitUsageError
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	comparisons, err := tracker.CompareByProduct(p.product)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CompareMarkdown(p.product, comparisons))
	return subcommands.ExitSuccess
}
