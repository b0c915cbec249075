// Package currency converts base-currency amounts for display. All
// stored prices, totals and history stay in the base currency; a Rate is
// applied only at the presentation boundary.
package currency

import (
	"errors"
	"fmt"
	"time"
)

// BaseCurrency is the internal unit of account.
const BaseCurrency = "USD"

// ErrRateUnavailable means conversion was requested before a rate was
// known. A missing rate is never treated as 1:1.
var ErrRateUnavailable = errors.New("currency: exchange rate unavailable")

// Rate is an exchange rate from the base currency into Currency, as
// supplied by a Provider. The zero Rate is invalid.
type Rate struct {
	Value    float64   `json:"rate"`
	Currency string    `json:"currency"`
	AsOf     time.Time `json:"as_of"`
}

func (r Rate) Valid() bool {
	return r.Value > 0 && r.Currency != ""
}

// Convert applies rate to an amount in base currency. It is pure: no
// stored amount is ever mutated by conversion.
func Convert(amountBase float64, rate Rate) (float64, error) {
	if !rate.Valid() {
		return 0, ErrRateUnavailable
	}
	return amountBase * rate.Value, nil
}

// Format renders an amount for display in the rate's currency, or in the
// base currency when code is empty or equals the base. When a conversion
// is wanted but the rate is missing, it reports the pending state instead
// of a wrong number.
func Format(amountBase float64, rate Rate, code string) string {
	if code == "" || code == BaseCurrency {
		return fmt.Sprintf("%s %.2f", BaseCurrency, amountBase)
	}
	converted, err := Convert(amountBase, rate)
	if err != nil {
		return fmt.Sprintf("%s (rate pending)", code)
	}
	return fmt.Sprintf("%s %.2f", code, converted)
}
