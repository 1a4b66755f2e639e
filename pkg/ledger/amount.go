package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatAmount renders base units as a decimal string using the mint's decimals.
func FormatAmount(amount uint64, decimals uint8) string {
	return decimal.NewFromUint64(amount).Shift(-int32(decimals)).String()
}

// ParseAmount converts a decimal display string into base units.
// Fractions finer than the mint's decimals are rejected rather than rounded.
func ParseAmount(s string, decimals uint8) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount: %w", err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative: %s", s)
	}
	units := d.Shift(int32(decimals))
	if !units.Equal(units.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than %d decimals", s, decimals)
	}
	if units.GreaterThan(decimal.NewFromUint64(^uint64(0))) {
		return 0, fmt.Errorf("amount %s exceeds maximum", s)
	}
	return units.BigInt().Uint64(), nil
}
