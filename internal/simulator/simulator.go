// Package simulator pits two strategies against each other over many
// rounds to compare difficulty levels head to head.
package simulator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rps-cli/internal/game"
	"github.com/lox/rps-cli/internal/randutil"
	"github.com/lox/rps-cli/internal/strategy"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds   int    // rounds per session
	Sessions int    // independent sessions, run in parallel
	SideA    string // difficulty for the first seat
	SideB    string // difficulty for the second seat
	Seed     int64  // base seed; session i derives seed+i
	Logger   zerolog.Logger
}

// Result aggregates outcomes across all sessions, scored from side A's
// perspective.
type Result struct {
	Rounds int
	Wins   int
	Losses int
	Ties   int
}

// WinRate returns side A's win percentage in [0,100]
func (r Result) WinRate() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Rounds) * 100
}

// Simulator runs strategy-vs-strategy sessions
type Simulator struct {
	cfg Config
}

// New creates a simulator with the given configuration
func New(cfg Config) *Simulator {
	if cfg.Sessions <= 0 {
		cfg.Sessions = 1
	}
	return &Simulator{cfg: cfg}
}

// Run executes all sessions and merges their tallies. Sessions are
// independent (each owns its agents, RNG and history), so they run in
// parallel without sharing any mutable state.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.cfg.Rounds <= 0 {
		return nil, fmt.Errorf("%w: rounds must be positive, got %d",
			game.ErrInvalidConfiguration, s.cfg.Rounds)
	}

	tallies := make([]Result, s.cfg.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	for i := range tallies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tally, err := s.runSession(s.cfg.Seed + int64(i))
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			tallies[i] = tally
			s.cfg.Logger.Debug().
				Int("session", i).
				Int("wins", tally.Wins).
				Int("losses", tally.Losses).
				Int("ties", tally.Ties).
				Msg("session complete")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Result{}
	for _, tally := range tallies {
		total.Rounds += tally.Rounds
		total.Wins += tally.Wins
		total.Losses += tally.Losses
		total.Ties += tally.Ties
	}

	s.cfg.Logger.Info().
		Str("side_a", s.cfg.SideA).
		Str("side_b", s.cfg.SideB).
		Int("rounds", total.Rounds).
		Float64("win_rate", total.WinRate()).
		Msg("simulation complete")
	return total, nil
}

// runSession plays one seeded session. Each seat sees only the other
// seat's choice history, matching what a strategy observes in real play.
func (s *Simulator) runSession(seed int64) (Result, error) {
	agentA, err := strategy.New(s.cfg.SideA, randutil.New(seed))
	if err != nil {
		return Result{}, err
	}
	agentB, err := strategy.New(s.cfg.SideB, randutil.New(seed+1))
	if err != nil {
		return Result{}, err
	}

	var tally Result
	historyA := make([]game.Choice, 0, s.cfg.Rounds)
	historyB := make([]game.Choice, 0, s.cfg.Rounds)
	for round := 0; round < s.cfg.Rounds; round++ {
		a := agentA.NextChoice(historyB)
		b := agentB.NextChoice(historyA)

		switch game.Resolve(a, b) {
		case game.Win:
			tally.Wins++
		case game.Loss:
			tally.Losses++
		default:
			tally.Ties++
		}
		tally.Rounds++

		historyA = append(historyA, a)
		historyB = append(historyB, b)
	}
	return tally, nil
}
