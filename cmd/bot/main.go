package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"SetupSentinel/internal/collector"
	"SetupSentinel/internal/config"
	"SetupSentinel/internal/model"
	"SetupSentinel/internal/notifier"
	"SetupSentinel/internal/scheduler"
	"SetupSentinel/internal/strategy"
	"SetupSentinel/internal/timewindow"
)

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
}

func main() {
	watch := flag.Bool("watch", false, "run the session-reminder daemon instead of the interactive checklist")
	send := flag.Bool("send", false, "push the evaluation report to Telegram after an interactive run")
	flag.Parse()

	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := newLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	windows := timewindow.ParseWindows(cfg.Trading.Windows)

	if *watch {
		runWatch(cfg, windows, log)
		return
	}
	runChecklist(cfg, windows, *send, log)
}

// runWatch starts the cron session reminders and Telegram command polling,
// blocking until a shutdown signal.
func runWatch(cfg *config.Config, windows []model.TradingWindow, log zerolog.Logger) {
	if err := cfg.ValidateWatch(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)

	sched := scheduler.NewScheduler(ctx, tn, windows, log)
	if cfg.Reminders.Enabled {
		if err := sched.RegisterReminders(); err != nil {
			log.Fatal().Err(err).Msg("register reminders")
		}
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Info().Msg("SetupSentinel watching; press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
}

// runChecklist walks the interactive questionnaire once, evaluates the
// setup, and prints (and optionally sends) the report.
func runChecklist(cfg *config.Config, windows []model.TradingWindow, send bool, log zerolog.Logger) {
	fmt.Println()
	fmt.Println("=== Price-Action / ICT Setup Checker ===")
	fmt.Println()
	fmt.Println("Answer the questions about your analysis to get a validity check,")
	fmt.Println("a recommended stop, TP suggestions, and a position-sizing hint.")
	fmt.Println("All times are in your local timezone. Enter 'q' at the pattern step to quit.")
	fmt.Println()

	col := collector.New(collector.NewTerminalSource(os.Stdin, os.Stdout))

	if len(windows) == 0 {
		asked, _, err := col.AskWindows()
		if err != nil {
			log.Fatal().Err(err).Msg("read trading windows")
		}
		windows = asked
	}

	setup, notes, err := col.Collect()
	if errors.Is(err, collector.ErrAborted) {
		log.Info().Msg("checklist aborted")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("collect setup")
	}

	// Config-level sizing defaults apply when the trader left the
	// questionnaire fields blank.
	if setup.Account == nil && cfg.Trading.Account > 0 {
		v := cfg.Trading.Account
		setup.Account = &v
	}
	if setup.RiskPercent == nil && cfg.Trading.RiskPercent > 0 {
		v := cfg.Trading.RiskPercent
		setup.RiskPercent = &v
	}

	params := strategy.Params{
		Windows:       windows,
		ATRMultiplier: cfg.Trading.ATRMultiplier,
		RMultiples:    cfg.Trading.RMultiples,
		InputNotes:    notes,
	}
	result := strategy.Evaluate(setup, params)

	fmt.Println()
	fmt.Print(notifier.FormatConsoleReport(setup, result, windows))

	if send {
		if cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == "" {
			log.Warn().Msg("telegram not configured, skipping send")
			return
		}
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		if err := tn.SendWithRetry(context.Background(), notifier.FormatReport(setup, result, windows), 3); err != nil {
			log.Error().Err(err).Msg("send report")
			return
		}
		log.Info().Msg("report sent to Telegram")
	}
}
