package calculator

import (
	"math"

	"SetupSentinel/internal/model"
)

// DefaultATRMultiplier is the stop distance multiplier applied to ATR when
// the trader did not supply a stop price.
const DefaultATRMultiplier = 1.5

// roundPrice rounds to 5 decimal places, suitable for instruments quoted
// to 4-5 decimals.
func roundPrice(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}

// StopFromATR derives a stop from volatility: distance = atr * multiplier,
// placed below entry for longs and above entry for shorts.
func StopFromATR(entry float64, direction model.Direction, atr, multiplier float64) model.StopSuggestion {
	dist := atr * multiplier
	price := entry + dist
	if direction == model.DirectionLong {
		price = entry - dist
	}
	return model.StopSuggestion{
		Price:    roundPrice(price),
		Distance: roundPrice(dist),
		Source:   model.StopSourceATR,
	}
}

// StopDistance returns |entry - stop| rounded to 5 decimal places.
func StopDistance(entry, stop float64) float64 {
	return roundPrice(math.Abs(entry - stop))
}
