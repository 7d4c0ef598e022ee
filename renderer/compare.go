package renderer

import (
	"fmt"

	"github.com/mkrogh/kurv"
)

type compareRow struct {
	Store        string
	Date         string
	Paid         string
	Standardized string
}

type compareView struct {
	Product string
	Rows    []compareRow
}

// CompareMarkdown renders the cross-store price comparison for one
// product. The standardized column is anchor-converted so every row is
// directly comparable.
func CompareMarkdown(product string, comparisons []kurv.PriceComparison) string {
	view := compareView{Product: product}
	for _, c := range comparisons {
		r := c.Record
		view.Rows = append(view.Rows, compareRow{
			Store: r.StoreName,
			Date:  r.PurchaseDate.String(),
			Paid:  fmt.Sprintf("%s (%s)", kurv.FormatMoney(r.Price, r.Currency), quantity(r.Quantity, string(r.Unit))),
			Standardized: fmt.Sprintf("%.2f %s/%s",
				c.StandardizedAnchor, kurv.AnchorCurrency, c.BaseUnit),
		})
	}
	return renderTemplate("compare", "compare.md", view)
}
