package calculator

import (
	"math"

	"SetupSentinel/internal/model"
)

// RMultiples returns take-profit prices for the given risk multiples,
// preserving the input ordering. A zero stop distance yields every target
// equal to entry; that degenerate result is returned as-is so the caller
// can flag it.
func RMultiples(entry, stop float64, direction model.Direction, multiples []float64) []model.TakeProfit {
	dist := math.Abs(entry - stop)
	tps := make([]model.TakeProfit, 0, len(multiples))
	for _, r := range multiples {
		price := entry - dist*r
		if direction == model.DirectionLong {
			price = entry + dist*r
		}
		tps = append(tps, model.TakeProfit{Multiple: r, Price: roundPrice(price)})
	}
	return tps
}
