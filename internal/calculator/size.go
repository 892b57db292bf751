package calculator

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"SetupSentinel/internal/model"
)

// ErrZeroStopDistance is returned when entry and stop coincide, which
// makes the risk-per-unit undefined.
var ErrZeroStopDistance = errors.New("stop distance is zero")

// PositionSize converts account size and risk percentage into a suggested
// exposure: riskAmount = account * riskPercent / 100, exposure =
// riskAmount / |entry - usedStop|. Money math is done in decimal.
func PositionSize(account, riskPercent, entry, usedStop float64) (model.SizingHint, error) {
	dist := math.Abs(entry - usedStop)
	if dist == 0 {
		return model.SizingHint{}, ErrZeroStopDistance
	}
	riskAmount := decimal.NewFromFloat(account).
		Mul(decimal.NewFromFloat(riskPercent)).
		Div(decimal.NewFromInt(100))
	exposure := riskAmount.Div(decimal.NewFromFloat(dist))
	return model.SizingHint{RiskAmount: riskAmount, Exposure: exposure}, nil
}
