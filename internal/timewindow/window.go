package timewindow

import (
	"errors"
	"strconv"
	"strings"

	"SetupSentinel/internal/model"
)

// ErrInvalidTime is returned for anything that is not a valid H:MM or
// HH:MM 24-hour time of day.
var ErrInvalidTime = errors.New("invalid time of day")

// ParseTime parses "H:MM" or "HH:MM", 24-hour clock.
func ParseTime(s string) (model.ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return model.ClockTime{}, ErrInvalidTime
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return model.ClockTime{}, ErrInvalidTime
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.ClockTime{}, ErrInvalidTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return model.ClockTime{}, ErrInvalidTime
	}
	return model.ClockTime{Hour: h, Minute: m}, nil
}

// ParseWindows parses a comma-separated list of "HH:MM-HH:MM" ranges.
// Malformed ranges are silently dropped; parsing of the remaining ranges
// continues.
func ParseWindows(s string) []model.TradingWindow {
	var windows []model.TradingWindow
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || !strings.Contains(part, "-") {
			continue
		}
		bounds := strings.SplitN(part, "-", 2)
		start, err := ParseTime(bounds[0])
		if err != nil {
			continue
		}
		end, err := ParseTime(bounds[1])
		if err != nil {
			continue
		}
		windows = append(windows, model.TradingWindow{Start: start, End: end})
	}
	return windows
}

// InAny reports whether t falls inside any of the given windows. Both
// endpoints are inclusive; a window with End < Start spans midnight.
// An empty window list means no time restriction is configured, so every
// time is allowed.
func InAny(t model.ClockTime, windows []model.TradingWindow) bool {
	if len(windows) == 0 {
		return true
	}
	m := t.Minutes()
	for _, w := range windows {
		start, end := w.Start.Minutes(), w.End.Minutes()
		if start <= end {
			if start <= m && m <= end {
				return true
			}
		} else {
			if m >= start || m <= end {
				return true
			}
		}
	}
	return false
}
