package model

// Direction is the intended trade direction.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Structure is the trader's read of the 1-hour short-term structure.
type Structure string

const (
	StructureHigher  Structure = "higher"
	StructureLower   Structure = "lower"
	StructureUnclear Structure = "unclear"
)

// MarketEnv classifies the current market environment.
type MarketEnv string

const (
	EnvExpansion     MarketEnv = "expansion"
	EnvConsolidation MarketEnv = "consolidation"
	EnvReversal      MarketEnv = "reversal"
	EnvRetracement   MarketEnv = "retracement"
)

// PatternNone is stored when the trader reported no chart patterns.
const PatternNone = "none"

// TradeSetup is the trader's full market read, assembled once by the
// collector and never mutated afterwards. Numeric fields are optional:
// nil means the trader left them blank (or supplied something unparseable,
// which the collector turns into an advisory note).
type TradeSetup struct {
	Direction   Direction
	Structure   Structure
	Environment MarketEnv

	// Patterns holds lowercase pattern names; never empty, contains
	// PatternNone when the trader supplied none.
	Patterns []string

	// ICT reference levels near the setup.
	FVG        bool
	OrderBlock bool
	Liquidity  bool

	SetupTime   *ClockTime
	Entry       *float64
	Stop        *float64
	ATR         *float64
	Account     *float64
	RiskPercent *float64
}

// HasPattern reports whether the given lowercase pattern name was flagged.
func (s *TradeSetup) HasPattern(name string) bool {
	for _, p := range s.Patterns {
		if p == name {
			return true
		}
	}
	return false
}
