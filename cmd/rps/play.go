package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/rps-cli/internal/config"
	"github.com/lox/rps-cli/internal/display"
	"github.com/lox/rps-cli/internal/game"
	"github.com/lox/rps-cli/internal/randutil"
	"github.com/lox/rps-cli/internal/stats"
	"github.com/lox/rps-cli/internal/strategy"
	"github.com/lox/rps-cli/internal/tui"
)

// PlayCmd runs an interactive session against the computer
type PlayCmd struct {
	Config     string `short:"c" default:"rps.hcl" help:"Path to HCL config file"`
	Difficulty string `short:"d" help:"Difficulty level: easy, medium or hard"`
	Name       string `short:"n" help:"Player name shown at the prompt"`
	Save       string `help:"Path to the statistics snapshot"`
	Seed       int64  `help:"RNG seed for reproducible computer play (0 for random)"`
	Simple     bool   `help:"Use the plain prompt instead of the TUI"`
	Debug      bool   `help:"Write debug logs to the configured log file"`
}

// Run implements the play subcommand
func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Difficulty != "" {
		cfg.Game.Difficulty = c.Difficulty
	}
	if c.Name != "" {
		cfg.Game.PlayerName = c.Name
	}
	if c.Save != "" {
		cfg.Game.SavePath = c.Save
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}

	logger, closeLog, err := setupLogger(c.Debug, cfg.Game.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	styles := display.DefaultStyles()
	fmt.Println(styles.Title.Render(" 🪨 📃 ✂️  Rock Paper Scissors "))
	fmt.Println()

	rng := randutil.New(cfg.Game.Seed)
	agent, err := strategy.New(cfg.Game.Difficulty, rng)
	if err != nil {
		return err
	}
	logger.Info("session configured",
		"difficulty", cfg.Game.Difficulty, "player", cfg.Game.PlayerName)

	// A corrupt snapshot is reported but does not stop play; neither does
	// a failed read, it only disables persistence for the session.
	store := stats.NewStore(cfg.Game.SavePath, logger)
	tracker, err := store.Load()
	if err != nil {
		if errors.Is(err, stats.ErrFormat) {
			fmt.Println(styles.Warning.Render(
				fmt.Sprintf("Saved stats at %s are corrupt, starting fresh: %s", cfg.Game.SavePath, err)))
			tracker = stats.NewTracker()
		} else {
			fmt.Println(styles.Warning.Render(
				fmt.Sprintf("Could not read saved stats, continuing without persistence: %s", err)))
			tracker = stats.NewTracker()
			store = nil
		}
	} else if tracker.TotalGames() > 0 {
		fmt.Println(styles.Info.Render(
			fmt.Sprintf("Loaded %d past games from %s", tracker.TotalGames(), cfg.Game.SavePath)))
	}

	session := game.StartSession(nil)
	defer session.Stop()
	match := game.NewMatch(agent, tracker, logger)

	if c.Simple {
		err = display.NewPrompter(os.Stdin, os.Stdout, match, tracker, store, cfg.Game.PlayerName, logger).Run()
	} else {
		err = tui.Run(match, tracker, store, logger)
	}
	if err != nil {
		return err
	}

	session.Stop()
	fmt.Println()
	display.WriteSummary(os.Stdout, styles, tracker)
	fmt.Printf("  Duration: %s\n", session.Duration().Round(time.Second))

	if store != nil && match.Rounds() > 0 {
		if err := store.Save(tracker); err != nil {
			fmt.Println(styles.Warning.Render(fmt.Sprintf("Could not save stats: %s", err)))
		} else {
			fmt.Println(styles.Info.Render(fmt.Sprintf("Stats saved to %s", store.Path())))
		}
	}
	return nil
}

// setupLogger returns a logger writing to the debug log file, or a silent
// logger when debugging is off. The TUI owns the terminal, so logs never
// go to stdout.
func setupLogger(debug bool, logFile string) (*log.Logger, func(), error) {
	if !debug {
		return log.NewWithOptions(io.Discard, log.Options{}), func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
