package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkrogh/kurv"
)

type valuesCmd struct {
	field string
}

func (*valuesCmd) Name() string     { return "values" }
func (*valuesCmd) Synopsis() string { return "list the distinct values of a record field" }
func (*valuesCmd) Usage() string {
	return `kt values -field <product|store|unit>

  Lists the distinct values recorded for the field, one per line, in the
  order they first appeared. Useful to discover filter choices.

`
}

func (p *valuesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.field, "field", "", "Field to list (product, store, unit).")
}

func (p *valuesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	field, err := kurv.ParseField(p.field)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, v := range tracker.UniqueValuesOf(field) {
		fmt.Println(v)
	}
	return subcommands.ExitSuccess
}
