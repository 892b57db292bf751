package model

import "fmt"

// ClockTime is a time of day with no calendar-date component.
// Ordering and equality are minute-of-day only.
type ClockTime struct {
	Hour   int
	Minute int
}

// Minutes returns the minute-of-day (0..1439) for ordering.
func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TradingWindow is an allowed trading time range. The window wraps past
// midnight when End < Start.
type TradingWindow struct {
	Start ClockTime
	End   ClockTime
}

// Wraps reports whether the window spans midnight.
func (w TradingWindow) Wraps() bool {
	return w.End.Minutes() < w.Start.Minutes()
}

func (w TradingWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}
