package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/rps-cli/internal/display"
	"github.com/lox/rps-cli/internal/stats"
)

// StatsCmd prints a saved statistics snapshot
type StatsCmd struct {
	Save string `arg:"" optional:"" default:"rps-stats.json" help:"Path to the statistics snapshot"`
	Last int    `default:"10" help:"How many recent choices to show"`
}

// Run implements the stats subcommand
func (c *StatsCmd) Run() error {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	tracker, err := stats.NewStore(c.Save, logger).Load()
	if err != nil {
		return err
	}

	styles := display.DefaultStyles()
	display.WriteSummary(os.Stdout, styles, tracker)

	history := tracker.History()
	if len(history) == 0 {
		return nil
	}
	start := len(history) - c.Last
	if start < 0 {
		start = 0
	}
	recent := make([]string, 0, len(history)-start)
	for _, choice := range history[start:] {
		recent = append(recent, choice.Token())
	}
	fmt.Printf("  Recent:   %s\n", strings.Join(recent, ", "))
	return nil
}
