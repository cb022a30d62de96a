// README: Requested-hour ± 1 price rows for a single vehicle.
package comparison

import (
	"fmt"
	"math"

	"busquote/internal/modules/quote"
	"busquote/internal/types"
)

const Unavailable = "N/A"

type PriceRow struct {
	// Key is positional so duplicate hours ({1, 1, 2}) never collide.
	Key       string       `json:"key"`
	Hours     int          `json:"hours"`
	Label     string       `json:"label"`
	Price     *types.Money `json:"price,omitempty"`
	Display   string       `json:"display"`
	Available bool         `json:"available"`
	Highlight bool         `json:"highlight"`
}

// PriceHours returns {max(1, h-1), h, h+1}. Hours below 1 are treated as 1
// and the upper row saturates at math.MaxInt.
func PriceHours(h int) [3]int {
	if h < 1 {
		h = 1
	}
	lower := h - 1
	if lower < 1 {
		lower = 1
	}
	upper := h
	if h < math.MaxInt {
		upper = h + 1
	}
	return [3]int{lower, h, upper}
}

// BuildPriceRows resolves the three rows for o. The middle row always
// corresponds to h and is the only highlighted one.
func BuildPriceRows(o quote.Option, h int) []PriceRow {
	hours := PriceHours(h)
	requested := hours[1]
	rows := make([]PriceRow, 0, len(hours))
	for i, hr := range hours {
		row := PriceRow{
			Key:       fmt.Sprintf("row-%d", i),
			Hours:     hr,
			Label:     HoursLabel(hr),
			Display:   Unavailable,
			Highlight: i == 1,
		}
		if p, ok := priceFor(o, hr, requested); ok {
			if m, ok := types.FromFloat(p); ok {
				row.Price = &m
				row.Display = m.Format()
				row.Available = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// priceFor looks hour up in the price table. Options that only carry the
// legacy scalar price are priced for the requested hour and nothing else.
func priceFor(o quote.Option, hour, requested int) (float64, bool) {
	if o.HasPriceTable() {
		p := o.PriceTable[hour]
		if p == nil {
			return 0, false
		}
		return *p, true
	}
	if o.LegacyPrice != nil && hour == requested {
		return *o.LegacyPrice, true
	}
	return 0, false
}
