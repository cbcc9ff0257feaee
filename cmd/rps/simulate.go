package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/rps-cli/internal/simulator"
)

// SimulateCmd runs headless strategy-vs-strategy simulations
type SimulateCmd struct {
	Rounds   int    `default:"1000" help:"Rounds per session"`
	Sessions int    `default:"4" help:"Independent sessions run in parallel"`
	SideA    string `default:"hard" help:"Difficulty for side A: easy, medium or hard"`
	SideB    string `default:"medium" help:"Difficulty for side B: easy, medium or hard"`
	Seed     int64  `default:"1" help:"Base RNG seed; session i uses seed+i"`
	Verbose  bool   `help:"Enable debug logging"`
}

// Run implements the simulate subcommand
func (c *SimulateCmd) Run() error {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	level := zerolog.InfoLevel
	if c.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	sim := simulator.New(simulator.Config{
		Rounds:   c.Rounds,
		Sessions: c.Sessions,
		SideA:    c.SideA,
		SideB:    c.SideB,
		Seed:     c.Seed,
		Logger:   logger,
	})

	started := time.Now()
	result, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%s vs %s over %d rounds (%d sessions, %.2fs)\n",
		c.SideA, c.SideB, result.Rounds, c.Sessions, time.Since(started).Seconds())
	fmt.Printf("  %-8s wins:   %d (%.2f%%)\n", c.SideA, result.Wins, result.WinRate())
	fmt.Printf("  %-8s wins:   %d (%.2f%%)\n", c.SideB, result.Losses,
		float64(result.Losses)/float64(result.Rounds)*100)
	fmt.Printf("  ties:            %d (%.2f%%)\n", result.Ties,
		float64(result.Ties)/float64(result.Rounds)*100)
	return nil
}
