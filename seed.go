package kurv

// MirrorKey is the single flat-mirror entry holding the whole-collection
// snapshot.
const MirrorKey = "foodItems"

// SeedRecords returns the built-in sample dataset used when both
// persistence tiers are empty, dated relative to today like the original
// hand-entered purchases.
func SeedRecords() []PurchaseRecord {
	today := Today()
	yesterday := today.Add(-1)
	return []PurchaseRecord{
		{
			ProductName:  "Organic Bananas",
			StoreName:    "Super Brugsen",
			Quantity:     1,
			Unit:         Kilo,
			Price:        24.95,
			Currency:     "DKK",
			PurchaseDate: today,
			Notes:        "Really ripe and sweet",
		},
		{
			ProductName:  "Avocados",
			StoreName:    "Netto",
			Quantity:     3,
			Unit:         Piece,
			Price:        30,
			Currency:     "DKK",
			PurchaseDate: yesterday,
			Notes:        "On sale this week",
		},
		{
			ProductName:  "Organic Almonds",
			StoreName:    "Irma",
			Quantity:     500,
			Unit:         Gram,
			Price:        12.50,
			Currency:     "EUR",
			PurchaseDate: yesterday,
		},
	}
}
