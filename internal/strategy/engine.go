package strategy

import (
	"errors"
	"fmt"

	"SetupSentinel/internal/calculator"
	"SetupSentinel/internal/model"
)

// Params carries the per-user doctrine constants. The rule deltas and
// thresholds themselves are fixed.
type Params struct {
	Windows       []model.TradingWindow
	ATRMultiplier float64
	RMultiples    []float64

	// InputNotes are advisory notes recorded by the collector for inputs
	// that were supplied but unparseable. They seed the reasons list so
	// they appear in the report; nothing branches on them.
	InputNotes []string
}

// DefaultParams returns the stock doctrine parameters.
func DefaultParams() Params {
	return Params{
		ATRMultiplier: calculator.DefaultATRMultiplier,
		RMultiples:    []float64{1.0, 1.5, 2.0},
	}
}

const (
	noteNoEntry       = "No entry price provided; TP/stop calculations skipped."
	noteNoStopNoATR   = "No stop provided and no ATR; cannot auto-calculate a stop."
	noteSizingInputs  = "Provide both account size and risk percent to get a position-sizing hint."
	noteSizingNoStop  = "No stop price available to compute position size."
	noteSizingZeroDst = "Stop distance is zero; cannot compute position size."
)

// Evaluate runs the full rule set over one setup and derives stop, targets,
// and sizing. It is a pure function of its arguments: the same setup and
// params always produce the same result, reasons in the same order, and it
// never fails for a well-formed setup.
func Evaluate(setup *model.TradeSetup, p Params) *model.EvaluationResult {
	res := &model.EvaluationResult{}
	res.Reasons = append(res.Reasons, p.InputNotes...)

	// All rules are evaluated unconditionally so that every applicable
	// reason is recorded.
	rules := []ruleResult{
		scoreStructure(setup),
		scoreEnvironment(setup),
		scoreConfluence(setup),
		scoreTiming(setup, p.Windows),
	}
	for _, r := range rules {
		res.Score += r.delta
		res.Reasons = append(res.Reasons, r.reasons...)
		if r.mismatch {
			res.StructuralMismatch = true
		}
	}

	patternOK := patternConfirmed(setup)
	ictOK := ictConfirmed(setup)
	res.ShouldTrade = !res.StructuralMismatch &&
		!(setup.Structure == model.StructureUnclear && !(patternOK && ictOK)) &&
		(patternOK || ictOK)

	resolveStop(setup, p, res)
	resolveTargets(setup, p, res)
	resolveSizing(setup, res)

	return res
}

// resolveStop resolves the stop to use: a provided stop wins over an
// ATR-derived one; neither leaves the stop absent with an advisory reason.
func resolveStop(setup *model.TradeSetup, p Params, res *model.EvaluationResult) {
	if setup.Entry == nil {
		res.Reasons = append(res.Reasons, noteNoEntry)
		return
	}
	switch {
	case setup.Stop != nil:
		res.Stop = &model.StopSuggestion{
			Price:    *setup.Stop,
			Distance: calculator.StopDistance(*setup.Entry, *setup.Stop),
			Source:   model.StopSourceProvided,
		}
	case setup.ATR != nil:
		mult := p.ATRMultiplier
		if mult <= 0 {
			mult = calculator.DefaultATRMultiplier
		}
		sug := calculator.StopFromATR(*setup.Entry, setup.Direction, *setup.ATR, mult)
		res.Stop = &sug
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("Stop auto-calculated from ATR (multiplier %v): distance %v", mult, sug.Distance))
	default:
		res.Reasons = append(res.Reasons, noteNoStopNoATR)
	}
}

func resolveTargets(setup *model.TradeSetup, p Params, res *model.EvaluationResult) {
	if setup.Entry == nil || res.Stop == nil {
		return
	}
	multiples := p.RMultiples
	if len(multiples) == 0 {
		multiples = DefaultParams().RMultiples
	}
	res.TakeProfits = calculator.RMultiples(*setup.Entry, res.Stop.Price, setup.Direction, multiples)
}

// resolveSizing attaches a sizing hint, or an explanatory note when the
// sizing inputs are incomplete or degenerate. Silent when neither account
// nor risk percent was supplied.
func resolveSizing(setup *model.TradeSetup, res *model.EvaluationResult) {
	if setup.Account == nil && setup.RiskPercent == nil {
		return
	}
	switch {
	case setup.Account == nil || setup.RiskPercent == nil:
		res.SizingNote = noteSizingInputs
	case setup.Entry == nil || res.Stop == nil:
		res.SizingNote = noteSizingNoStop
	default:
		hint, err := calculator.PositionSize(*setup.Account, *setup.RiskPercent, *setup.Entry, res.Stop.Price)
		if errors.Is(err, calculator.ErrZeroStopDistance) {
			res.SizingNote = noteSizingZeroDst
			return
		}
		res.Sizing = &hint
	}
}
