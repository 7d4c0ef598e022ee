package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkrogh/kurv"
)

type editCmd struct {
	id       int64
	product  string
	store    string
	quantity float64
	unit     string
	price    float64
	currency string
	date     string
	notes    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace the fields of a recorded purchase" }
func (*editCmd) Usage() string {
	return `kt edit -id <n> [-product <name>] [-store <name>] [-quantity <n>] [-unit <unit>] [-price <n>] [-currency <code>] [-date <YYYY-MM-DD>] [-notes <text>]

  Edits the purchase with the given id. Flags that are not set keep the
  recorded value; the id itself never changes.

`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Id of the purchase to edit.")
	f.StringVar(&p.product, "product", "", "Product name.")
	f.StringVar(&p.store, "store", "", "Store name.")
	f.Float64Var(&p.quantity, "quantity", -1, "Quantity purchased.")
	f.StringVar(&p.unit, "unit", "", "Unit of measurement.")
	f.Float64Var(&p.price, "price", -1, "Total price paid.")
	f.StringVar(&p.currency, "currency", "", "Currency code.")
	f.StringVar(&p.date, "date", "", "Purchase date.")
	f.StringVar(&p.notes, "notes", "\x00", "Free-text notes.")
}

func (p *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	record := tracker.Record(p.id)
	if record == nil {
		fmt.Fprintf(os.Stderr, "Error: no purchase with id %d.\n", p.id)
		return subcommands.ExitFailure
	}

	if p.product != "" {
		record.ProductName = p.product
	}
	if p.store != "" {
		record.StoreName = p.store
	}
	if p.quantity >= 0 {
		record.Quantity = p.quantity
	}
	if p.unit != "" {
		record.Unit = kurv.Unit(p.unit)
	}
	if p.price >= 0 {
		record.Price = p.price
	}
	if p.currency != "" {
		record.Currency = p.currency
	}
	if p.date != "" {
		day, err := kurv.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
		record.PurchaseDate = day
	}
	if p.notes != "\x00" {
		record.Notes = p.notes
	}

	if err := tracker.Update(ctx, *record); err != nil {
		fmt.Fprintf(os.Stderr, "Error: purchase was not updated: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated purchase #%d.\n", p.id)
	return subcommands.ExitSuccess
}
