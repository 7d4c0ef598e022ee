package kurv

import (
	"fmt"
	"sort"
	"strings"
)

// Filter selects purchase records. Criteria are conjunctive: a record must
// match every non-empty field. Product and store match by case-insensitive
// substring, unit by exact symbol.
type Filter struct {
	Product string
	Store   string
	Unit    Unit
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool { return f.Product == "" && f.Store == "" && f.Unit == "" }

// Matches reports whether the record satisfies every criterion.
func (f Filter) Matches(r PurchaseRecord) bool {
	if f.Product != "" && !strings.Contains(strings.ToLower(r.ProductName), strings.ToLower(f.Product)) {
		return false
	}
	if f.Store != "" && !strings.Contains(strings.ToLower(r.StoreName), strings.ToLower(f.Store)) {
		return false
	}
	if f.Unit != "" && r.Unit != f.Unit {
		return false
	}
	return true
}

// SortKey defines the ordering of a record listing.
type SortKey int

const (
	// SortByDate orders records by purchase date, most recent first.
	SortByDate SortKey = iota
	// SortByName orders records by product name, lexicographically.
	SortByName
	// SortByPrice orders records by anchor-converted price, cheapest first.
	SortByPrice
	// SortByPriceDesc orders records by anchor-converted price, most expensive first.
	SortByPriceDesc
)

func (k SortKey) String() string {
	switch k {
	case SortByDate:
		return "date"
	case SortByName:
		return "name"
	case SortByPrice:
		return "price"
	case SortByPriceDesc:
		return "priceDesc"
	default:
		return "unknown"
	}
}

// ParseSortKey parses a string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "date":
		return SortByDate, nil
	case "name":
		return SortByName, nil
	case "price":
		return SortByPrice, nil
	case "priceDesc":
		return SortByPriceDesc, nil
	default:
		return 0, fmt.Errorf("unknown sort key: %q", s)
	}
}

// sortRecords orders records in place. Price ordering converts every price
// to the anchor currency first so mixed-currency listings compare fairly.
// Records are validated on entry, so a conversion failure can only follow a
// rate-table swap; such records keep their raw amount rather than aborting
// the sort.
func sortRecords(records []PurchaseRecord, key SortKey, rates Rates) {
	anchor := func(r PurchaseRecord) float64 {
		converted, err := rates.Convert(r.Price, r.Currency, AnchorCurrency)
		if err != nil {
			return r.Price
		}
		return converted
	}
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		switch key {
		case SortByName:
			return a.ProductName < b.ProductName
		case SortByDate:
			return a.PurchaseDate.After(b.PurchaseDate)
		case SortByPrice:
			return anchor(a) < anchor(b)
		case SortByPriceDesc:
			return anchor(a) > anchor(b)
		default:
			return false
		}
	})
}
