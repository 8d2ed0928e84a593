// Package money converts between the decimal amounts exchanged with clients
// and the integer cents stored in the ledger.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxCents is the largest storable amount, matching a DECIMAL(10,2) column.
const MaxCents int64 = 99_999_999_99

// Input bounds, enforced before any rescaling.
const (
	maxInputLen = 32
	maxExponent = 10
	minExponent = -18
)

var (
	// ErrInvalidAmount is returned for unparsable, non-positive or oversized amounts.
	ErrInvalidAmount = errors.New("amount must be a positive number with at most two decimal places")
)

func init() {
	// Totals are rendered as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseCents parses a decimal string such as "42.50" or "42.5" into cents,
// rounding half away from zero on the third decimal place.
func ParseCents(s string) (int64, error) {
	if len(s) > maxInputLen {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return FromDecimal(d)
}

// FromDecimal converts a decimal to cents. The result must be positive and
// no larger than MaxCents.
func FromDecimal(d decimal.Decimal) (int64, error) {
	if exp := d.Exponent(); exp > maxExponent || exp < minExponent {
		return 0, ErrInvalidAmount
	}
	cents := d.Shift(2).Round(0)
	if !cents.IsPositive() || cents.GreaterThan(decimal.NewFromInt(MaxCents)) {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// ToDecimal returns cents as a two-place decimal.
func ToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders cents the way exports show them, e.g. "$42.50".
func Format(cents int64) string {
	return fmt.Sprintf("$%s", ToDecimal(cents).StringFixed(2))
}
