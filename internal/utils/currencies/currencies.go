// Package currencies validates ISO currency codes against the go-money
// registry so account currencies are real codes, not free text.
package currencies

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/pennyledger/backend/internal/apperrors"
)

// Default is the currency assigned to accounts created without one.
const Default = "USD"

// Normalize upper-cases and validates a currency code. An empty code resolves
// to Default. Unknown codes fail with ErrValidation.
func Normalize(code string) (string, error) {
	if code == "" {
		return Default, nil
	}
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(normalized) == nil {
		return "", fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, code)
	}
	return normalized, nil
}

// MinorUnits returns the number of fractional digits a currency carries, e.g.
// 2 for USD. Amounts throughout the ledger are integers in this smallest unit.
func MinorUnits(code string) (int, error) {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return 0, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, code)
	}
	return cur.Fraction, nil
}
