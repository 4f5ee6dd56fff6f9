package response

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money renders a minor-unit amount next to its major-unit decimal string.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Display  string `json:"display"`
}

// MinorUnitScale is the number of decimal places of the currency's minor
// unit (2 for aud, 0 for jpy). Unknown codes use 2.
func MinorUnitScale(code string) int32 {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

func NewMoney(amount int64, code string) Money {
	scale := MinorUnitScale(code)
	return Money{
		Amount:   amount,
		Currency: strings.ToLower(strings.TrimSpace(code)),
		Display:  decimal.New(amount, -scale).StringFixed(scale),
	}
}
