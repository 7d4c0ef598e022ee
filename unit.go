package kurv

import "fmt"

// Unit is a unit of measurement a purchase can be recorded in.
type Unit string

// The fixed set of units a purchase can be recorded in.
const (
	Gram  Unit = "g"
	Kilo  Unit = "kg"
	Milli Unit = "ml"
	Liter Unit = "L"
	Piece Unit = "piece"
	Bunch Unit = "bunch"
)

// BaseUnit is the canonical unit all quantities of a kind are normalized
// into before price comparison.
type BaseUnit string

const (
	BaseKilo  BaseUnit = "kg"
	BaseLiter BaseUnit = "L"
	BasePiece BaseUnit = "piece"
)

// UnsupportedUnitError reports a unit symbol outside the fixed set.
type UnsupportedUnitError struct {
	Unit Unit
}

func (e UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported unit of measurement: %q", string(e.Unit))
}

// Units lists every supported unit symbol, in display order.
func Units() []Unit { return []Unit{Gram, Kilo, Milli, Liter, Piece, Bunch} }

// ParseUnit validates a unit symbol against the fixed set.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if _, err := BaseUnitOf(u); err != nil {
		return "", err
	}
	return u, nil
}

// BaseUnitOf maps a unit to its canonical base unit.
func BaseUnitOf(u Unit) (BaseUnit, error) {
	switch u {
	case Gram, Kilo:
		return BaseKilo, nil
	case Milli, Liter:
		return BaseLiter, nil
	case Piece, Bunch:
		return BasePiece, nil
	default:
		return "", UnsupportedUnitError{Unit: u}
	}
}

// QuantityInBaseUnit converts a quantity expressed in u into its base unit.
// No rounding is applied.
func QuantityInBaseUnit(quantity float64, u Unit) (float64, error) {
	switch u {
	case Gram, Milli:
		return quantity / 1000, nil
	case Kilo, Liter, Piece, Bunch:
		return quantity, nil
	default:
		return 0, UnsupportedUnitError{Unit: u}
	}
}
