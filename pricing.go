package kurv

// StandardizedPrice computes the price per one unit of the base unit for a
// purchase of the given quantity. A quantity that normalizes to exactly zero
// yields a zero price: callers prefer a harmless zero over a division error
// for free or zero-quantity entries.
func StandardizedPrice(price, quantity float64, u Unit) (float64, error) {
	base, err := QuantityInBaseUnit(quantity, u)
	if err != nil {
		return 0, err
	}
	if base == 0 {
		return 0, nil
	}
	return price / base, nil
}

// StandardizedPriceIn computes the standardized price converted into the
// target currency, making purchases recorded in different currencies
// comparable.
func StandardizedPriceIn(rates Rates, target string, price, quantity float64, u Unit, currency string) (float64, error) {
	std, err := StandardizedPrice(price, quantity, u)
	if err != nil {
		return 0, err
	}
	return rates.Convert(std, currency, target)
}
