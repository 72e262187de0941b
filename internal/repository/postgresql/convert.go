package postgresql

import (
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

// Dates and numerics are selected as text (to_char / ::text) so that the
// session time zone never shifts a DATE and no precision is lost.

func decimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func keyOrZero(s string) datekey.Key {
	k, err := datekey.Parse(s)
	if err != nil {
		return ""
	}
	return k
}
