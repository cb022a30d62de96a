// README: Money value object for quoted prices (stored in cents).
package types

import (
	"fmt"
	"math"
	"strconv"
)

const DefaultCurrency = "USD"

type Money struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

// maxAmount bounds FromFloat so the cent value always fits in an int64.
var maxAmount = float64(math.MaxInt64 / 100)

// FromFloat converts a quoted price such as 475.5 into cents, rounding half
// away from zero. ok is false for NaN, infinities and amounts too large to
// hold in cents.
func FromFloat(v float64) (Money, bool) {
	if math.IsNaN(v) || math.Abs(v) >= maxAmount {
		return Money{}, false
	}
	return Money{Cents: int64(math.Round(v * 100)), Currency: DefaultCurrency}, true
}

// Format renders whole amounts without decimals ("$450") and others with two ("$475.50").
func (m Money) Format() string {
	sign := ""
	c := m.Cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	if c%100 == 0 {
		return sign + "$" + strconv.FormatInt(c/100, 10)
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

func (m Money) String() string {
	return m.Format()
}
