package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id int64
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a recorded purchase" }
func (*rmCmd) Usage() string {
	return `kt rm -id <n>

  Deletes the purchase with the given id. Deleting an id that does not
  exist is not an error.

`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Id of the purchase to delete.")
}

func (p *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := tracker.Delete(ctx, p.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: purchase was not deleted: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted purchase #%d.\n", p.id)
	return subcommands.ExitSuccess
}

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every recorded purchase" }
func (*clearCmd) Usage() string {
	return `kt clear -yes

  Empties the purchase collection in both persistence tiers.

`
}

func (p *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "yes", false, "Confirm emptying the collection.")
}

func (p *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.yes {
		fmt.Fprintln(os.Stderr, "Refusing to clear without -yes.")
		return subcommands.ExitUsageError
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	n := len(tracker.Records())
	if err := tracker.Clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: collection was not cleared: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Cleared %d purchases.\n", n)
	return subcommands.ExitSuccess
}
