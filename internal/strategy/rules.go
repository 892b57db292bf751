package strategy

import (
	"SetupSentinel/internal/model"
	"SetupSentinel/internal/timewindow"
)

// ruleResult is one rule's independent, additive contribution. No rule
// reads another rule's delta.
type ruleResult struct {
	delta    int
	reasons  []string
	mismatch bool
}

// scoreStructure checks 1H structure against the intended direction.
// Aligned structure scores +2; unclear scores 0 with a note; opposed
// structure sets the mismatch flag with no score delta.
func scoreStructure(s *model.TradeSetup) ruleResult {
	aligned := model.StructureHigher
	opposed := "1H structure is LOWER while you plan a LONG. That's a structural mismatch."
	if s.Direction == model.DirectionShort {
		aligned = model.StructureLower
		opposed = "1H structure is HIGHER while you plan a SHORT. That's a structural mismatch."
	}

	switch s.Structure {
	case aligned:
		return ruleResult{delta: 2}
	case model.StructureUnclear:
		return ruleResult{reasons: []string{"1H structure unclear; prefer structure in trade direction."}}
	default:
		return ruleResult{mismatch: true, reasons: []string{opposed}}
	}
}

// scoreEnvironment scores the market environment in combination with the
// flagged patterns and ICT levels.
func scoreEnvironment(s *model.TradeSetup) ruleResult {
	switch s.Environment {
	case model.EnvExpansion:
		return ruleResult{delta: 1}
	case model.EnvConsolidation:
		if s.HasPattern("breakout") {
			return ruleResult{
				delta:   -1,
				reasons: []string{"Market consolidation; breakouts can be false, consider waiting for clear momentum."},
			}
		}
	case model.EnvReversal:
		if s.HasPattern("engulfing") || s.OrderBlock {
			return ruleResult{delta: 2}
		}
	case model.EnvRetracement:
		if s.FVG || s.OrderBlock || s.Liquidity {
			return ruleResult{delta: 1}
		}
	}
	return ruleResult{}
}

// confirmationPatterns are the classic patterns that count as pattern
// confirmation.
var confirmationPatterns = []string{"engulfing", "breakout", "pinbar", "inside"}

func patternConfirmed(s *model.TradeSetup) bool {
	for _, p := range confirmationPatterns {
		if s.HasPattern(p) {
			return true
		}
	}
	return false
}

func ictConfirmed(s *model.TradeSetup) bool {
	return s.FVG || s.OrderBlock || s.Liquidity
}

// scoreConfluence scores the pattern/ICT confirmation combination. Both
// present scores +3; a single confirmation scores +1 with a note; neither
// just leaves a note.
func scoreConfluence(s *model.TradeSetup) ruleResult {
	patternOK := patternConfirmed(s)
	ictOK := ictConfirmed(s)

	switch {
	case patternOK && ictOK:
		return ruleResult{delta: 3}
	case patternOK:
		return ruleResult{delta: 1, reasons: []string{"Pattern present but no ICT-level confirmation."}}
	case ictOK:
		return ruleResult{delta: 1, reasons: []string{"ICT level(s) present but no classic pattern; may need further price reaction."}}
	default:
		return ruleResult{reasons: []string{"No patterns or ICT levels flagged; consider waiting for clearer confluence."}}
	}
}

// scoreTiming applies the trading-window check. It only has an effect
// when windows are configured and a setup time was supplied; otherwise it
// is silent.
func scoreTiming(s *model.TradeSetup, windows []model.TradingWindow) ruleResult {
	if len(windows) == 0 || s.SetupTime == nil {
		return ruleResult{}
	}
	if !timewindow.InAny(*s.SetupTime, windows) {
		return ruleResult{reasons: []string{"Setup time is outside your allowed trading windows; recommended to wait."}}
	}
	return ruleResult{delta: 1}
}
