package collector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"SetupSentinel/internal/model"
	"SetupSentinel/internal/timewindow"
)

// ErrAborted is returned when the trader quits the questionnaire. It is a
// cancellation, not a failure.
var ErrAborted = errors.New("setup collection aborted")

// Collector walks the pre-trade questionnaire and assembles one immutable
// TradeSetup. It never evaluates anything itself.
type Collector struct {
	src Source
}

// New creates a Collector reading from the given source.
func New(src Source) *Collector {
	return &Collector{src: src}
}

// AskWindows prompts for allowed trading windows. Returns the parsed
// windows plus the raw answer for display; blank means no restriction.
func (c *Collector) AskWindows() ([]model.TradingWindow, string, error) {
	raw, err := c.src.ReadLine("Enter your allowed trading windows (e.g. 09:30-11:30,13:00-15:00) or leave blank to skip: ")
	if err != nil {
		return nil, "", err
	}
	if raw == "" {
		return nil, "", nil
	}
	return timewindow.ParseWindows(raw), raw, nil
}

// Collect runs the full questionnaire. The returned notes describe inputs
// that were supplied but unparseable; the affected fields are left absent
// so the engine degrades gracefully instead of failing.
func (c *Collector) Collect() (*model.TradeSetup, []string, error) {
	var notes []string
	setup := &model.TradeSetup{}

	direction, err := c.askChoice("Intended trade direction? (long / short): ", "long", "short")
	if err != nil {
		return nil, nil, err
	}
	setup.Direction = model.Direction(direction)

	structure, err := c.askChoice("Current 1-hour short-term structure? (higher / lower / unclear): ",
		"higher", "lower", "unclear")
	if err != nil {
		return nil, nil, err
	}
	setup.Structure = model.Structure(structure)

	env, err := c.askChoice("Market environment? (expansion / consolidation / reversal / retracement): ",
		"expansion", "consolidation", "reversal", "retracement")
	if err != nil {
		return nil, nil, err
	}
	setup.Environment = model.MarketEnv(env)

	patterns, err := c.askPatterns()
	if err != nil {
		return nil, nil, err
	}
	setup.Patterns = patterns

	if setup.FVG, err = c.askYesNo("Is a Fair Value Gap (FVG) near the entry? (y/n): "); err != nil {
		return nil, nil, err
	}
	if setup.OrderBlock, err = c.askYesNo("Is there an Order Block relevant to this setup? (y/n): "); err != nil {
		return nil, nil, err
	}
	if setup.Liquidity, err = c.askYesNo("Is price near a liquidity pool (highs/lows of larger degree)? (y/n): "); err != nil {
		return nil, nil, err
	}

	if setup.SetupTime, notes, err = c.askSetupTime(notes); err != nil {
		return nil, nil, err
	}

	if setup.Entry, notes, err = c.askNumber(
		"Entry price (e.g. 1.23456) or leave blank if you only want the logic check: ",
		"Entry price not numeric; skipping price calculations.", notes); err != nil {
		return nil, nil, err
	}
	if setup.Stop, notes, err = c.askNumber(
		"Stop price (leave blank to auto-calc from ATR): ",
		"Stop price not numeric; treating it as not provided.", notes); err != nil {
		return nil, nil, err
	}

	// ATR is only useful when a stop has to be derived.
	if setup.Entry != nil && setup.Stop == nil {
		if setup.ATR, notes, err = c.askNumber(
			"Enter ATR (price units) to auto-calc stop (e.g. 0.0020) or leave blank to skip: ",
			"ATR not numeric; cannot auto-calculate a stop from it.", notes); err != nil {
			return nil, nil, err
		}
	}

	if setup.Account, notes, err = c.askNumber(
		"Account size (optional, e.g. 10000) or leave blank to skip position sizing: ",
		"Account size not numeric; skipping position sizing.", notes); err != nil {
		return nil, nil, err
	}
	if setup.RiskPercent, notes, err = c.askNumber(
		"Risk percent per trade (e.g. 1 for 1%) or leave blank to skip sizing calc: ",
		"Risk percent not numeric; skipping position sizing.", notes); err != nil {
		return nil, nil, err
	}

	return setup, notes, nil
}

// askChoice re-prompts until the answer matches one of the valid options,
// case-insensitively.
func (c *Collector) askChoice(prompt string, valid ...string) (string, error) {
	for {
		answer, err := c.src.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(answer)
		for _, v := range valid {
			if answer == v {
				return answer, nil
			}
		}
		prompt = fmt.Sprintf("  invalid option; expected one of %v. Try again: ", valid)
	}
}

func (c *Collector) askYesNo(prompt string) (bool, error) {
	answer, err := c.askChoice(prompt, "y", "n")
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// askPatterns reads the comma-separated pattern list. "q" aborts the whole
// questionnaire; an empty answer records the "none" sentinel.
func (c *Collector) askPatterns() ([]string, error) {
	raw, err := c.src.ReadLine("Patterns present? (comma-separated, e.g. engulfing,breakout,inside) or 'none': ")
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(raw, "q") {
		return nil, ErrAborted
	}
	var patterns []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		patterns = []string{model.PatternNone}
	}
	return patterns, nil
}

// askSetupTime reads the optional time of setup. Blank stays absent
// silently; an unparseable time stays absent with an advisory note.
func (c *Collector) askSetupTime(notes []string) (*model.ClockTime, []string, error) {
	raw, err := c.src.ReadLine("Time of setup (HH:MM) in local time, or leave blank to skip: ")
	if err != nil {
		return nil, notes, err
	}
	if raw == "" {
		return nil, notes, nil
	}
	t, err := timewindow.ParseTime(raw)
	if err != nil {
		return nil, append(notes, "Invalid time format; ignoring time check."), nil
	}
	return &t, notes, nil
}

// askNumber reads an optional numeric field, distinguishing a blank answer
// (absent, silent) from a non-numeric one (absent plus an advisory note).
func (c *Collector) askNumber(prompt, badNote string, notes []string) (*float64, []string, error) {
	raw, err := c.src.ReadLine(prompt)
	if err != nil {
		return nil, notes, err
	}
	if raw == "" {
		return nil, notes, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, append(notes, badNote), nil
	}
	return &v, notes, nil
}
