package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkrogh/kurv"
	"github.com/mkrogh/kurv/renderer"
)

type listCmd struct {
	product string
	store   string
	unit    string
	sort    string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list purchases with filtering and sorting" }
func (*listCmd) Usage() string {
	return `kt list [-product <substring>] [-store <substring>] [-unit <unit>] [-sort <name|date|price|priceDesc>]

  Lists recorded purchases. Filter criteria are combined; product and store
  match case-insensitive substrings, unit matches exactly. Price ordering
  converts every amount to DKK first so mixed currencies compare fairly.

Usage Examples:
$ kt list -store netto -sort price

`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.product, "product", "", "Filter by product name substring.")
	f.StringVar(&p.store, "store", "", "Filter by store name substring.")
	f.StringVar(&p.unit, "unit", "", "Filter by exact unit symbol.")
	f.StringVar(&p.sort, "sort", "date", "Sort key (name, date, price, priceDesc).")
}

func (p *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := kurv.ParseSortKey(p.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	filter := kurv.Filter{Product: p.product, Store: p.store, Unit: kurv.Unit(p.unit)}
	if p.unit != "" {
		if _, err := kurv.ParseUnit(p.unit); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	records := tracker.List(filter, key)
	printMarkdown(renderer.RecordsMarkdown(records, tracker.Rates()))
	return subcommands.ExitSuccess
}
