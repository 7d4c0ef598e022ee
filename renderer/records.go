package renderer

import (
	"fmt"

	"github.com/mkrogh/kurv"
)

type recordRow struct {
	Date         string
	Product      string
	Store        string
	Quantity     string
	Price        string
	Standardized string
}

type recordsView struct {
	Rows []recordRow
}

// RecordsMarkdown renders a purchase listing. Each row carries the
// anchor-converted standardized price so mixed-currency purchases read
// comparably.
func RecordsMarkdown(records []kurv.PurchaseRecord, rates kurv.Rates) string {
	view := recordsView{}
	for _, r := range records {
		view.Rows = append(view.Rows, recordRow{
			Date:         r.PurchaseDate.String(),
			Product:      r.ProductName,
			Store:        r.StoreName,
			Quantity:     quantity(r.Quantity, string(r.Unit)),
			Price:        kurv.FormatMoney(r.Price, r.Currency),
			Standardized: standardizedCell(rates, r),
		})
	}
	return renderTemplate("records", "records.md", view)
}

// standardizedCell renders "<price> DKK/<base unit>" for a record, or "-"
// when the record's unit or currency cannot be normalized.
func standardizedCell(rates kurv.Rates, r kurv.PurchaseRecord) string {
	std, err := kurv.StandardizedPriceIn(rates, kurv.AnchorCurrency, r.Price, r.Quantity, r.Unit, r.Currency)
	if err != nil {
		return "-"
	}
	base, err := kurv.BaseUnitOf(r.Unit)
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%.2f %s/%s", std, kurv.AnchorCurrency, base)
}
