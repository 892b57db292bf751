package notifier

import (
	"fmt"
	"strings"
	"time"

	"SetupSentinel/internal/model"
	"SetupSentinel/internal/timewindow"
)

// FormatReport formats an evaluation into a Telegram message (HTML).
func FormatReport(setup *model.TradeSetup, res *model.EvaluationResult, windows []model.TradingWindow) string {
	return formatReport(setup, res, windows, true)
}

// FormatConsoleReport formats an evaluation as plain text for the terminal.
func FormatConsoleReport(setup *model.TradeSetup, res *model.EvaluationResult, windows []model.TradingWindow) string {
	return formatReport(setup, res, windows, false)
}

func formatReport(setup *model.TradeSetup, res *model.EvaluationResult, windows []model.TradingWindow, html bool) string {
	bold := func(s string) string {
		if html {
			return "<b>" + s + "</b>"
		}
		return s
	}
	yn := func(v bool) string {
		if v {
			return "y"
		}
		return "n"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("📋 %s | %s\n\n", bold("Setup Evaluation"), time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Direction: %s | 1H Structure: %s | Market env: %s\n",
		strings.ToUpper(string(setup.Direction)), setup.Structure, setup.Environment))
	b.WriteString("Patterns: " + strings.Join(setup.Patterns, ", ") + "\n")
	b.WriteString(fmt.Sprintf("ICT: FVG=%s, OrderBlock=%s, LiquidityNear=%s\n",
		yn(setup.FVG), yn(setup.OrderBlock), yn(setup.Liquidity)))

	if len(windows) > 0 {
		names := make([]string, len(windows))
		for i, w := range windows {
			names[i] = w.String()
		}
		b.WriteString("Trading windows: " + strings.Join(names, ",") + "\n")
		if setup.SetupTime != nil {
			verdict := "OUTSIDE"
			if timewindow.InAny(*setup.SetupTime, windows) {
				verdict = "INSIDE"
			}
			b.WriteString(fmt.Sprintf("Time of setup: %s -> %s allowed windows\n", setup.SetupTime, verdict))
		}
	}
	b.WriteString("\n")

	if res.Valid() {
		b.WriteString("✅ " + bold("Setup looks VALID based on your inputs.") + "\n")
	} else {
		b.WriteString("⚠️ " + bold("Setup NOT RECOMMENDED based on current inputs.") + "\n")
	}
	b.WriteString(fmt.Sprintf("Validity score (internal): %d\n", res.Score))

	if len(res.Reasons) > 0 {
		b.WriteString("\n" + bold("Notes / reasons to consider:") + "\n")
		for _, r := range res.Reasons {
			b.WriteString("  - " + r + "\n")
		}
	}

	if setup.Entry != nil {
		b.WriteString(fmt.Sprintf("\nEntry: %v\n", *setup.Entry))
		switch {
		case res.Stop != nil && res.Stop.Source == model.StopSourceATR:
			b.WriteString(fmt.Sprintf("Suggested Stop: %v (distance %v)\n", res.Stop.Price, res.Stop.Distance))
		case res.Stop != nil:
			b.WriteString(fmt.Sprintf("Provided Stop: %v (distance %v)\n", res.Stop.Price, res.Stop.Distance))
		default:
			b.WriteString("Stop: none provided or calculated.\n")
		}
		if len(res.TakeProfits) > 0 {
			b.WriteString("\n" + bold("Suggested Take-Profits (R multiples):") + "\n")
			for _, tp := range res.TakeProfits {
				b.WriteString(fmt.Sprintf("  %vR -> %v\n", tp.Multiple, tp.Price))
			}
			if res.Stop != nil && res.Stop.Distance == 0 {
				b.WriteString("  Caution: stop distance is zero, every target equals entry.\n")
			}
		}
	} else {
		b.WriteString("\nNo entry price; TP/stop suggestions skipped.\n")
	}

	if res.Sizing != nil {
		b.WriteString("\n" + bold("Position sizing hint:") + "\n")
		b.WriteString(fmt.Sprintf("  Risk $%s. Suggested position exposure (in price units) = %s.\n",
			res.Sizing.RiskAmount.StringFixed(2), res.Sizing.Exposure.StringFixed(2)))
	} else if res.SizingNote != "" {
		b.WriteString("\n" + bold("Position sizing hint:") + "\n")
		b.WriteString("  " + res.SizingNote + "\n")
	}

	return b.String()
}

// FormatWindowReminder formats the session-open reminder message.
func FormatWindowReminder(w model.TradingWindow) string {
	return fmt.Sprintf("🔔 Trading window %s is now open (until %s). Run your pre-trade checklist before entering.",
		w.Start, w.End)
}
