package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"SetupSentinel/internal/model"
	"SetupSentinel/internal/notifier"
)

// Scheduler sends a Telegram reminder whenever one of the configured
// trading windows opens, and answers slash commands.
type Scheduler struct {
	Cron     *cron.Cron
	Notifier *notifier.TelegramNotifier
	Windows  []model.TradingWindow
	Log      zerolog.Logger
	Ctx      context.Context
}

// NewScheduler creates a Scheduler for the given windows.
func NewScheduler(ctx context.Context, tn *notifier.TelegramNotifier, windows []model.TradingWindow, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Notifier: tn,
		Windows:  windows,
		Log:      log,
		Ctx:      ctx,
	}
}

// cronSpec converts a window opening time into a daily cron expression.
func cronSpec(t model.ClockTime) string {
	return fmt.Sprintf("0 %d %d * * *", t.Minute, t.Hour)
}

// RegisterReminders registers one session-open reminder per window.
func (s *Scheduler) RegisterReminders() error {
	for _, w := range s.Windows {
		w := w
		if _, err := s.Cron.AddFunc(cronSpec(w.Start), func() {
			s.Log.Info().Stringer("window", w).Msg("trading window opened")
			s.trySend(notifier.FormatWindowReminder(w))
		}); err != nil {
			return fmt.Errorf("register reminder for window %s: %w", w, err)
		}
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Int("windows", len(s.Windows)).Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Log.Info().Msg("scheduler stopped")
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/windows":
		if len(s.Windows) == 0 {
			return "No trading windows configured; all times are allowed."
		}
		names := make([]string, len(s.Windows))
		for i, w := range s.Windows {
			names[i] = w.String()
		}
		return "Configured trading windows:\n• " + strings.Join(names, "\n• ")
	case "/check":
		return "Run the bot without -watch on your terminal to walk through the pre-trade checklist."
	default:
		return "Available commands:\n• /windows\n• /check"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.Log.Error().Err(err).Msg("send reminder")
	}
}
