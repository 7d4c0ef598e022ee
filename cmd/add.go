package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mkrogh/kurv"
)

type addCmd struct {
	product  string
	store    string
	quantity float64
	unit     string
	price    float64
	currency string
	date     string
	notes    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new purchase" }
func (*addCmd) Usage() string {
	return `kt add -product <name> -store <name> -quantity <n> -unit <g|kg|ml|L|piece|bunch> -price <n> [-currency <code>] [-date <YYYY-MM-DD>] [-notes <text>]

  Records a purchase and persists it durably. The purchase date defaults to
  today and the currency to DKK.

Usage Examples:
$ kt add -product "Organic Bananas" -store "Super Brugsen" -quantity 1 -unit kg -price 24.95

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.product, "product", "", "Product name.")
	f.StringVar(&p.store, "store", "", "Store name.")
	f.Float64Var(&p.quantity, "quantity", 0, "Quantity purchased, in the given unit.")
	f.StringVar(&p.unit, "unit", "", "Unit of measurement (g, kg, ml, L, piece, bunch).")
	f.Float64Var(&p.price, "price", 0, "Total price paid.")
	f.StringVar(&p.currency, "currency", kurv.AnchorCurrency, "Currency code (DKK, EUR, USD).")
	f.StringVar(&p.date, "date", "", "Purchase date (defaults to today).")
	f.StringVar(&p.notes, "notes", "", "Free-text notes.")
}

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.product == "" || p.store == "" {
		fmt.Fprintln(os.Stderr, "Error: -product and -store are required.")
		return subcommands.ExitUsageError
	}

	day := kurv.Today()
	if p.date != "" {
		var err error
		day, err = kurv.ParseDate(p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	tracker, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	record, err := tracker.Create(ctx, kurv.PurchaseRecord{
		ProductName:  p.product,
		StoreName:    p.store,
		Quantity:     p.quantity,
		Unit:         kurv.Unit(p.unit),
		Price:        p.price,
		Currency:     p.currency,
		PurchaseDate: day,
		Notes:        p.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: purchase was not recorded: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded purchase #%d: %s at %s, %s\n", record.ID, record.ProductName, record.StoreName, kurv.FormatMoney(record.Price, record.Currency))
	return subcommands.ExitSuccess
}
