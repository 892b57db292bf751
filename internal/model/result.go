package model

import "github.com/shopspring/decimal"

// StopSource indicates how the suggested stop was resolved.
type StopSource string

const (
	StopSourceProvided StopSource = "PROVIDED"
	StopSourceATR      StopSource = "ATR"
)

// StopSuggestion is a resolved stop price and its distance from entry,
// both rounded to 5 decimal places. Distance is always >= 0.
type StopSuggestion struct {
	Price    float64
	Distance float64
	Source   StopSource
}

// TakeProfit is one take-profit level expressed as a risk multiple.
type TakeProfit struct {
	Multiple float64
	Price    float64
}

// SizingHint is a computed position-sizing suggestion in account currency.
// Exposure is in price units: account currency per unit of price movement.
type SizingHint struct {
	RiskAmount decimal.Decimal
	Exposure   decimal.Decimal
}

// EvaluationResult is the complete output of one setup evaluation.
// Reasons accumulates monotonically during evaluation; nothing is ever
// removed once added.
type EvaluationResult struct {
	Score   int
	Reasons []string

	// StructuralMismatch is set directly by the structure rule when the
	// intended direction contradicts the observed structure. Decision
	// logic reads this flag, never the reason wording.
	StructuralMismatch bool

	ShouldTrade bool

	Stop        *StopSuggestion
	TakeProfits []TakeProfit

	// Sizing is set when a position size was computed; otherwise
	// SizingNote explains why it was not.
	Sizing     *SizingHint
	SizingNote string
}

// Valid reports the displayed validity verdict. It is consumed by the
// output boundary only; ShouldTrade is the engine's own decision.
func (r *EvaluationResult) Valid() bool {
	return r.ShouldTrade && r.Score >= 3
}
