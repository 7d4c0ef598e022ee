package kurv

// PriceComparison is one purchase of a product with its derived comparable
// prices: the standardized (per-base-unit) price in the purchase's own
// currency, and the same price converted to the anchor currency so
// purchases recorded in different currencies line up.
type PriceComparison struct {
	Record             PurchaseRecord
	BaseUnit           BaseUnit
	Standardized       float64
	StandardizedAnchor float64
}

// CompareByProduct groups purchases of the named product (case-insensitive)
// and derives their comparable prices. Records are returned in store order;
// an empty slice means the product was never bought.
func (t *Tracker) CompareByProduct(name string) ([]PriceComparison, error) {
	var comparisons []PriceComparison
	for _, r := range t.Records() {
		if !r.SameProduct(name) {
			continue
		}
		base, err := BaseUnitOf(r.Unit)
		if err != nil {
			return nil, err
		}
		std, err := StandardizedPrice(r.Price, r.Quantity, r.Unit)
		if err != nil {
			return nil, err
		}
		anchor, err := t.rates.Convert(std, r.Currency, AnchorCurrency)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, PriceComparison{
			Record:             r,
			BaseUnit:           base,
			Standardized:       std,
			StandardizedAnchor: anchor,
		})
	}
	return comparisons, nil
}
