package token

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ToBaseUnit converts a display amount ("1.5") to the token's base unit
// representation given its decimals ("1500000000000000000" for 18).
// Fractions below the base unit are rejected rather than silently dropped.
func ToBaseUnit(amount string, decimals int32) (string, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return "", fmt.Errorf("can't parse amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return "", errors.New("amount must not be negative")
	}

	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return "", fmt.Errorf("amount %q has more than %d decimal places", amount, decimals)
	}
	return shifted.String(), nil
}

// FromBaseUnit converts a base-unit amount back to its display form.
func FromBaseUnit(raw string, decimals int32) (string, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", fmt.Errorf("can't parse amount %q: %w", raw, err)
	}
	return d.Shift(-decimals).String(), nil
}
