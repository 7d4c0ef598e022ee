package kurv

import "strings"

// PurchaseRecord is a single food purchase. The zero ID marks a record that
// has not been saved yet; the structured store assigns the ID on insert and
// it never changes afterwards.
type PurchaseRecord struct {
	ID           int64   `json:"id,omitempty" msgpack:"id,omitempty"`
	ProductName  string  `json:"productName" msgpack:"productName"`
	StoreName    string  `json:"storeName" msgpack:"storeName"`
	Quantity     float64 `json:"quantity" msgpack:"quantity"`
	Unit         Unit    `json:"unit" msgpack:"unit"`
	Price        float64 `json:"price" msgpack:"price"`
	Currency     string  `json:"currency" msgpack:"currency"`
	PurchaseDate Date    `json:"purchaseDate" msgpack:"purchaseDate"`
	Notes        string  `json:"notes,omitempty" msgpack:"notes,omitempty"`
}

// Validate checks the record's unit and currency against their fixed sets.
// Free-text fields are deliberately not constrained here.
func (r PurchaseRecord) Validate(rates Rates) error {
	if _, err := BaseUnitOf(r.Unit); err != nil {
		return err
	}
	if !rates.Supports(r.Currency) {
		return UnsupportedCurrencyError{Code: r.Currency}
	}
	return nil
}

// SameProduct reports whether the record is for the named product,
// comparing case-insensitively.
func (r PurchaseRecord) SameProduct(name string) bool {
	return strings.EqualFold(r.ProductName, name)
}
