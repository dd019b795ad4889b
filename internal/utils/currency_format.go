package utils

import (
	"github.com/shopspring/decimal"
)

// FormatRupees renders an amount the way the dashboard displays money,
// e.g. 1000 -> "Rs. 1000". Trailing zeros are not padded; the stored
// precision is printed as-is.
func FormatRupees(amount decimal.Decimal) string {
	return "Rs. " + amount.String()
}

// FormatPercent renders a tax rate, e.g. 10 -> "10%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.String() + "%"
}
