package kurv

import (
	"slices"
	"testing"
)

func testRecords() []PurchaseRecord {
	return []PurchaseRecord{
		{ID: 1, ProductName: "Organic Bananas", StoreName: "Super Brugsen", Quantity: 1, Unit: Kilo, Price: 24.95, Currency: "DKK", PurchaseDate: MustParseDate("2025-08-20")},
		{ID: 2, ProductName: "Avocados", StoreName: "Netto", Quantity: 3, Unit: Piece, Price: 30, Currency: "DKK", PurchaseDate: MustParseDate("2025-08-22")},
		{ID: 3, ProductName: "Organic Almonds", StoreName: "Irma", Quantity: 500, Unit: Gram, Price: 12.50, Currency: "EUR", PurchaseDate: MustParseDate("2025-08-21")},
		{ID: 4, ProductName: "Bananas", StoreName: "Netto", Quantity: 2, Unit: Kilo, Price: 4, Currency: "USD", PurchaseDate: MustParseDate("2025-08-19")},
	}
}

func matchingIDs(records []PurchaseRecord, f Filter) []int64 {
	var ids []int64
	for _, r := range records {
		if f.Matches(r) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func TestFilterMatches(t *testing.T) {
	records := testRecords()
	testCases := []struct {
		name   string
		filter Filter
		want   []int64
	}{
		{"empty filter matches all", Filter{}, []int64{1, 2, 3, 4}},
		{"product substring is case-insensitive", Filter{Product: "banana"}, []int64{1, 4}},
		{"store substring is case-insensitive", Filter{Store: "netto"}, []int64{2, 4}},
		{"unit is an exact match", Filter{Unit: Kilo}, []int64{1, 4}},
		{"criteria are conjunctive", Filter{Product: "banana", Store: "netto", Unit: Kilo}, []int64{4}},
		{"conjunction can be empty", Filter{Product: "avocado", Unit: Kilo}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := matchingIDs(records, tc.filter)
			if !slices.Equal(got, tc.want) {
				t.Errorf("filter %+v matched %v, want %v", tc.filter, got, tc.want)
			}
		})
	}
}

func sortedIDs(key SortKey) []int64 {
	records := testRecords()
	sortRecords(records, key, DefaultRates())
	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func TestSortRecords(t *testing.T) {
	// Anchor-converted prices: 24.95, 30, 93 (12.50 EUR), 27.36 (4 USD).
	testCases := []struct {
		key  SortKey
		want []int64
	}{
		{SortByDate, []int64{2, 3, 1, 4}}, // strictly descending by calendar date
		{SortByName, []int64{2, 4, 3, 1}},
		{SortByPrice, []int64{1, 4, 2, 3}},
		{SortByPriceDesc, []int64{3, 2, 4, 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.key.String(), func(t *testing.T) {
			got := sortedIDs(tc.key)
			if !slices.Equal(got, tc.want) {
				t.Errorf("sort by %s = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestParseSortKey(t *testing.T) {
	for _, s := range []string{"name", "date", "price", "priceDesc"} {
		key, err := ParseSortKey(s)
		if err != nil || key.String() != s {
			t.Errorf("ParseSortKey(%q) = %v, %v", s, key, err)
		}
	}
	if _, err := ParseSortKey("store"); err == nil {
		t.Error("ParseSortKey(\"store\") should fail")
	}
}
