// Package cmd implements the CLI application to manage the purchase tracker.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mkrogh/kurv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&rmCmd{}, "records")
	c.Register(&clearCmd{}, "records")

	c.Register(&listCmd{}, "reports")
	c.Register(&compareCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&valuesCmd{}, "reports")

	c.Register(&exportCmd{}, "snapshots")
	c.Register(&importCmd{}, "snapshots")

	c.Register(&serveCmd{}, "")
	c.Register(&assistCmd{}, "")
}

// CommandNames lists every registered subcommand, for shell completion.
func CommandNames() []string {
	return []string{"add", "edit", "rm", "clear", "list", "compare", "summary", "values", "export", "import", "serve", "assist"}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbPath = flag.String("db", "kurv.db", "Path to the purchase database file")
var mirrorDir = flag.String("mirror-dir", ".kurv", "Path to the flat-mirror snapshot folder")
var ratesSpec = flag.String("rates", "", "Exchange-rate table override as code=rate pairs (default DKK=1.0,EUR=7.44,USD=6.84)")

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// appRates resolves the exchange-rate table from the -rates flag.
func appRates() (kurv.Rates, error) {
	if *ratesSpec == "" {
		return kurv.DefaultRates(), nil
	}
	return kurv.ParseRates(*ratesSpec)
}

// openTracker is the central function commands use to open the tracker: it
// wires both persistence tiers and runs the startup load.
func openTracker(ctx context.Context) (*kurv.Tracker, error) {
	rates, err := appRates()
	if err != nil {
		return nil, err
	}
	store, err := kurv.OpenSQLite(*dbPath)
	if err != nil {
		return nil, err
	}
	mirror := kurv.NewMirror(*mirrorDir, logger)
	tracker := kurv.NewTracker(store, mirror, rates, logger)
	if err := tracker.Load(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("could not load purchases: %w", err)
	}
	return tracker, nil
}
