package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkrogh/kurv"
)

type exportCmd struct {
	output string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole collection as a snapshot file" }
func (*exportCmd) Usage() string {
	return `kt export [-o <file>] [-format <json|msgpack>]

  Writes every recorded purchase as a snapshot. With no -o the snapshot
  goes to stdout.

Usage Examples:
$ kt export -o purchases.json
$ kt export -format msgpack -o purchases.bin

`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file (defaults to stdout).")
	f.StringVar(&p.format, "format", "json", "Snapshot format (json or msgpack).")
}

func (p *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := kurv.ParseSnapshotFormat(p.format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if p.output != "" {
		w, err = os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}

	records := tracker.Records()
	if err := kurv.EncodeSnapshot(w, records, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: snapshot was not written: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.output != "" {
		fmt.Printf("Exported %d purchases to %s.\n", len(records), p.output)
	}
	return subcommands.ExitSuccess
}
