package kurv

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// AnchorCurrency is the currency all conversions route through.
const AnchorCurrency = "DKK"

// UnsupportedCurrencyError reports a currency code absent from the rate table.
type UnsupportedCurrencyError struct {
	Code string
}

func (e UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("unsupported currency: %q", e.Code)
}

// Rates is an exchange-rate table anchored to one base currency. Values are
// expressed as units of anchor per 1 unit of the currency. Rates are
// injectable so a live source can replace the static table without touching
// the conversion logic.
type Rates map[string]float64

// DefaultRates returns the built-in static rate table anchored to DKK.
func DefaultRates() Rates {
	return Rates{
		"DKK": 1.0,
		"EUR": 7.44,
		"USD": 6.84,
	}
}

// Currencies returns the supported currency codes, sorted.
func (r Rates) Currencies() []string {
	codes := make([]string, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Supports reports whether the code has a known rate.
func (r Rates) Supports(code string) bool {
	_, ok := r[code]
	return ok
}

// Convert converts amount between two currency codes. When from equals to,
// amount is returned unchanged with no floating round-trip. The first
// unsupported code is reported, checking from before to.
func (r Rates) Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	fromRate, ok := r[from]
	if !ok {
		return 0, UnsupportedCurrencyError{Code: from}
	}
	toRate, ok := r[to]
	if !ok {
		return 0, UnsupportedCurrencyError{Code: to}
	}
	return amount * fromRate / toRate, nil
}

// ParseRates parses a comma-separated list of code=rate pairs into a rate
// table, e.g. "DKK=1.0,EUR=7.44,USD=6.84".
func ParseRates(s string) (Rates, error) {
	rates := make(Rates)
	for pair := range strings.SplitSeq(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid rate %q: want code=rate", pair)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %q: %w", code, err)
		}
		rates[strings.TrimSpace(code)] = rate
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("empty rate table")
	}
	return rates, nil
}

// FormatMoney renders a two-decimal monetary string using the currency's own
// formatting conventions. Unknown codes fall back to "<amount> <code>".
// This is a presentation convenience, never used by the pricing logic.
func FormatMoney(amount float64, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%.2f %s", amount, code)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
