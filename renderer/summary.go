package renderer

import (
	"github.com/mkrogh/kurv"
)

type storeCount struct {
	Name  string
	Count int
}

type summaryView struct {
	Total  string
	Count  int
	Stores []storeCount
}

// SummaryMarkdown renders the overall spending summary: the anchor-currency
// total and a per-store purchase count.
func SummaryMarkdown(records []kurv.PurchaseRecord, total float64) string {
	view := summaryView{
		Total: kurv.FormatMoney(total, kurv.AnchorCurrency),
		Count: len(records),
	}
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if counts[r.StoreName] == 0 {
			order = append(order, r.StoreName)
		}
		counts[r.StoreName]++
	}
	for _, name := range order {
		view.Stores = append(view.Stores, storeCount{Name: name, Count: counts[name]})
	}
	return renderTemplate("summary", "summary.md", view)
}
