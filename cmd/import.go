package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkrogh/kurv"
)

type importCmd struct {
	input  string
	format string
	path   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "insert purchases from a snapshot file" }
func (*importCmd) Usage() string {
	return `kt import -i <file> [-format <json|msgpack>] [-path <jsonpath>]

  Reads purchases from a snapshot and records them with fresh ids. With
  -path, a jsonpath expression locates the record array inside an arbitrary
  JSON document, so exports of other apps can be imported directly.

Usage Examples:
$ kt import -i purchases.json
$ kt import -i backup.json -path "$.data.purchases"

`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "Input snapshot file.")
	f.StringVar(&p.format, "format", "json", "Snapshot format (json or msgpack).")
	f.StringVar(&p.path, "path", "", "Jsonpath to the record array inside a JSON document.")
}

func (p *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}
	format, err := kurv.ParseSnapshotFormat(p.format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if p.path != "" && format != kurv.SnapshotJSON {
		fmt.Fprintln(os.Stderr, "Error: -path only applies to json snapshots.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(p.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", p.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var records []kurv.PurchaseRecord
	if p.path != "" {
		records, err = kurv.ExtractRecords(in, p.path)
	} else {
		records, err = kurv.DecodeSnapshot(in, format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: snapshot was not read: %v\n", err)
		return subcommands.ExitFailure
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var imported int
	for _, r := range records {
		if _, err := tracker.Create(ctx, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %q was not recorded: %v\n", r.ProductName, err)
			return subcommands.ExitFailure
		}
		imported++
	}
	fmt.Printf("Imported %d purchases from %s.\n", imported, p.input)
	return subcommands.ExitSuccess
}
