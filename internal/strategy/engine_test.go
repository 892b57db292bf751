package strategy

import (
	"reflect"
	"testing"

	"SetupSentinel/internal/model"
	"SetupSentinel/internal/timewindow"
)

func fp(v float64) *float64 { return &v }

func baseSetup() *model.TradeSetup {
	return &model.TradeSetup{
		Direction:   model.DirectionLong,
		Structure:   model.StructureHigher,
		Environment: model.EnvExpansion,
		Patterns:    []string{"breakout"},
		FVG:         true,
	}
}

func TestEvaluate_ValidLongSetup(t *testing.T) {
	// structure +2, expansion +1, breakout pattern + FVG confluence +3
	res := Evaluate(baseSetup(), DefaultParams())
	if res.Score != 6 {
		t.Fatalf("expected score 6, got %d", res.Score)
	}
	if !res.ShouldTrade {
		t.Error("expected shouldTrade=true")
	}
	if !res.Valid() {
		t.Error("expected displayed validity")
	}
	if res.StructuralMismatch {
		t.Error("unexpected structural mismatch")
	}
}

func TestEvaluate_StructuralMismatchBlocksTrade(t *testing.T) {
	setup := &model.TradeSetup{
		Direction:   model.DirectionLong,
		Structure:   model.StructureLower,
		Environment: model.EnvExpansion,
		Patterns:    []string{model.PatternNone},
	}
	res := Evaluate(setup, DefaultParams())
	if !res.StructuralMismatch {
		t.Fatal("expected structural mismatch flag")
	}
	if res.ShouldTrade {
		t.Error("expected shouldTrade=false on mismatch")
	}
	if len(res.Reasons) == 0 {
		t.Error("expected a mismatch reason to be recorded")
	}
	// Mismatch blocks regardless of score.
	setup2 := baseSetup()
	setup2.Structure = model.StructureLower
	res2 := Evaluate(setup2, DefaultParams())
	if res2.ShouldTrade {
		t.Error("expected shouldTrade=false even with confluence score")
	}
}

func TestEvaluate_ShortMirror(t *testing.T) {
	setup := &model.TradeSetup{
		Direction:   model.DirectionShort,
		Structure:   model.StructureLower,
		Environment: model.EnvExpansion,
		Patterns:    []string{"pinbar"},
		Liquidity:   true,
	}
	res := Evaluate(setup, DefaultParams())
	if res.Score != 6 {
		t.Fatalf("expected score 6, got %d", res.Score)
	}
	if !res.ShouldTrade {
		t.Error("expected shouldTrade=true for aligned short")
	}

	setup.Structure = model.StructureHigher
	res2 := Evaluate(setup, DefaultParams())
	if !res2.StructuralMismatch {
		t.Error("expected mismatch for short against higher structure")
	}
}

func TestEvaluate_UnclearStructureNeedsFullConfluence(t *testing.T) {
	setup := &model.TradeSetup{
		Direction:   model.DirectionLong,
		Structure:   model.StructureUnclear,
		Environment: model.EnvExpansion,
		Patterns:    []string{"engulfing"},
	}
	// Pattern only: unclear structure blocks the trade.
	res := Evaluate(setup, DefaultParams())
	if res.ShouldTrade {
		t.Error("expected shouldTrade=false for unclear structure without full confluence")
	}

	// Pattern + ICT: unclear structure is tolerated.
	setup.OrderBlock = true
	res2 := Evaluate(setup, DefaultParams())
	if !res2.ShouldTrade {
		t.Error("expected shouldTrade=true for unclear structure with full confluence")
	}
}

func TestEvaluate_NoConfluenceBlocksTrade(t *testing.T) {
	setup := &model.TradeSetup{
		Direction:   model.DirectionLong,
		Structure:   model.StructureHigher,
		Environment: model.EnvExpansion,
		Patterns:    []string{model.PatternNone},
	}
	res := Evaluate(setup, DefaultParams())
	if res.ShouldTrade {
		t.Error("expected shouldTrade=false with neither pattern nor ICT confirmation")
	}
	if res.Score != 3 {
		t.Errorf("expected score 3 (structure+environment), got %d", res.Score)
	}
	if res.Valid() {
		t.Error("displayed validity requires shouldTrade")
	}
}

func TestEvaluate_EnvironmentRules(t *testing.T) {
	tests := []struct {
		name  string
		env   model.MarketEnv
		mod   func(*model.TradeSetup)
		delta int
	}{
		{"expansion", model.EnvExpansion, func(s *model.TradeSetup) {}, 1},
		{"consolidation breakout", model.EnvConsolidation, func(s *model.TradeSetup) {
			s.Patterns = []string{"breakout"}
		}, -1},
		{"consolidation no breakout", model.EnvConsolidation, func(s *model.TradeSetup) {
			s.Patterns = []string{"pinbar"}
		}, 0},
		{"reversal engulfing", model.EnvReversal, func(s *model.TradeSetup) {
			s.Patterns = []string{"engulfing"}
		}, 2},
		{"reversal order block", model.EnvReversal, func(s *model.TradeSetup) {
			s.Patterns = []string{model.PatternNone}
			s.OrderBlock = true
		}, 2},
		{"reversal nothing", model.EnvReversal, func(s *model.TradeSetup) {
			s.Patterns = []string{"inside"}
		}, 0},
		{"retracement with ICT", model.EnvRetracement, func(s *model.TradeSetup) {
			s.Liquidity = true
		}, 1},
		{"retracement without ICT", model.EnvRetracement, func(s *model.TradeSetup) {}, 0},
	}
	for _, tt := range tests {
		setup := &model.TradeSetup{
			Direction:   model.DirectionLong,
			Structure:   model.StructureHigher,
			Environment: tt.env,
			Patterns:    []string{model.PatternNone},
		}
		tt.mod(setup)
		r := scoreEnvironment(setup)
		if r.delta != tt.delta {
			t.Errorf("%s: expected delta %d, got %d", tt.name, tt.delta, r.delta)
		}
	}
}

func TestEvaluate_TimingRule(t *testing.T) {
	windows := timewindow.ParseWindows("09:30-11:30")
	inside := model.ClockTime{Hour: 10, Minute: 0}
	outside := model.ClockTime{Hour: 12, Minute: 0}

	setup := baseSetup()
	setup.SetupTime = &inside
	p := DefaultParams()
	p.Windows = windows
	res := Evaluate(setup, p)
	if res.Score != 7 {
		t.Errorf("expected +1 for inside window, got score %d", res.Score)
	}

	setup.SetupTime = &outside
	res2 := Evaluate(setup, p)
	if res2.Score != 6 {
		t.Errorf("expected no delta outside window, got score %d", res2.Score)
	}
	found := false
	for _, r := range res2.Reasons {
		if r == "Setup time is outside your allowed trading windows; recommended to wait." {
			found = true
		}
	}
	if !found {
		t.Error("expected outside-window reason")
	}

	// No windows configured: rule is silent even with a setup time.
	res3 := Evaluate(setup, DefaultParams())
	if res3.Score != 6 {
		t.Errorf("expected silent timing rule without windows, got score %d", res3.Score)
	}

	// No setup time: rule is silent even with windows.
	setup.SetupTime = nil
	res4 := Evaluate(setup, p)
	if res4.Score != 6 {
		t.Errorf("expected silent timing rule without setup time, got score %d", res4.Score)
	}
}

func TestEvaluate_StopResolution(t *testing.T) {
	// Provided stop wins over ATR.
	setup := baseSetup()
	setup.Entry = fp(1.1000)
	setup.Stop = fp(1.0950)
	setup.ATR = fp(0.0020)
	res := Evaluate(setup, DefaultParams())
	if res.Stop == nil || res.Stop.Source != model.StopSourceProvided {
		t.Fatal("expected provided stop to win")
	}
	if res.Stop.Distance != 0.0050 {
		t.Errorf("expected distance 0.0050, got %v", res.Stop.Distance)
	}
	if len(res.TakeProfits) != 3 {
		t.Fatalf("expected 3 take-profits, got %d", len(res.TakeProfits))
	}
	if res.TakeProfits[0].Price != 1.1050 || res.TakeProfits[2].Price != 1.1100 {
		t.Errorf("unexpected take-profit prices: %+v", res.TakeProfits)
	}

	// ATR fallback.
	setup.Stop = nil
	res2 := Evaluate(setup, DefaultParams())
	if res2.Stop == nil || res2.Stop.Source != model.StopSourceATR {
		t.Fatal("expected ATR-derived stop")
	}
	if res2.Stop.Price != 1.0970 {
		t.Errorf("expected ATR stop 1.0970, got %v", res2.Stop.Price)
	}

	// Neither stop nor ATR: advisory reason, no stop, no targets.
	setup.ATR = nil
	res3 := Evaluate(setup, DefaultParams())
	if res3.Stop != nil {
		t.Error("expected no stop without stop or ATR")
	}
	if len(res3.TakeProfits) != 0 {
		t.Error("expected no take-profits without a resolved stop")
	}

	// No entry at all.
	res4 := Evaluate(baseSetup(), DefaultParams())
	if res4.Stop != nil || len(res4.TakeProfits) != 0 {
		t.Error("expected no stop or targets without entry")
	}
}

func TestEvaluate_Sizing(t *testing.T) {
	setup := baseSetup()
	setup.Entry = fp(1.1000)
	setup.Stop = fp(1.0950)
	setup.Account = fp(10000)
	setup.RiskPercent = fp(1)
	res := Evaluate(setup, DefaultParams())
	if res.Sizing == nil {
		t.Fatalf("expected sizing hint, got note %q", res.SizingNote)
	}
	if got := res.Sizing.RiskAmount.StringFixed(2); got != "100.00" {
		t.Errorf("expected risk amount 100.00, got %s", got)
	}
	if got := res.Sizing.Exposure.StringFixed(2); got != "20000.00" {
		t.Errorf("expected exposure 20000.00, got %s", got)
	}

	// Zero stop distance is a named outcome, not a crash.
	setup.Stop = fp(1.1000)
	res2 := Evaluate(setup, DefaultParams())
	if res2.Sizing != nil {
		t.Error("expected no sizing for zero stop distance")
	}
	if res2.SizingNote != noteSizingZeroDst {
		t.Errorf("expected zero-distance note, got %q", res2.SizingNote)
	}

	// Only one of account/risk: insufficient inputs.
	setup.Stop = fp(1.0950)
	setup.RiskPercent = nil
	res3 := Evaluate(setup, DefaultParams())
	if res3.SizingNote != noteSizingInputs {
		t.Errorf("expected insufficient-inputs note, got %q", res3.SizingNote)
	}

	// Neither supplied: silent.
	setup.Account = nil
	res4 := Evaluate(setup, DefaultParams())
	if res4.Sizing != nil || res4.SizingNote != "" {
		t.Error("expected sizing to be skipped silently")
	}
}

func TestEvaluate_InputNotesSeedReasons(t *testing.T) {
	p := DefaultParams()
	p.InputNotes = []string{"Entry price not numeric; skipping price calculations."}
	res := Evaluate(baseSetup(), p)
	if len(res.Reasons) == 0 || res.Reasons[0] != p.InputNotes[0] {
		t.Errorf("expected input note first in reasons, got %v", res.Reasons)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	setup := baseSetup()
	setup.Entry = fp(1.1000)
	setup.ATR = fp(0.0020)
	setup.Account = fp(10000)
	setup.RiskPercent = fp(1)
	p := DefaultParams()
	p.Windows = timewindow.ParseWindows("09:30-11:30,13:00-15:00")
	st := model.ClockTime{Hour: 10, Minute: 15}
	setup.SetupTime = &st

	a := Evaluate(setup, p)
	b := Evaluate(setup, p)
	if a.Score != b.Score || a.ShouldTrade != b.ShouldTrade {
		t.Fatal("expected identical verdicts for identical input")
	}
	if !reflect.DeepEqual(a.Reasons, b.Reasons) {
		t.Errorf("expected identical reasons in identical order:\n%v\n%v", a.Reasons, b.Reasons)
	}
}
