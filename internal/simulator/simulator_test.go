package simulator

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lox/rps-cli/internal/game"
)

func testConfig() Config {
	return Config{
		Rounds:   200,
		Sessions: 4,
		SideA:    "hard",
		SideB:    "medium",
		Seed:     1,
		Logger:   zerolog.Nop(),
	}
}

func TestRunTalliesEveryRound(t *testing.T) {
	sim := New(testConfig())

	result, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	wantRounds := 200 * 4
	if result.Rounds != wantRounds {
		t.Errorf("Rounds = %d, want %d", result.Rounds, wantRounds)
	}
	if got := result.Wins + result.Losses + result.Ties; got != wantRounds {
		t.Errorf("wins+losses+ties = %d, want %d", got, wantRounds)
	}
}

// Fixed seeds make whole simulations reproducible.
func TestRunIsSeedReproducible(t *testing.T) {
	first, err := New(testConfig()).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(testConfig()).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if *first != *second {
		t.Errorf("identical configs diverged: %+v vs %+v", first, second)
	}
}

func TestRunRejectsUnknownStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.SideA = "brutal"

	_, err := New(cfg).Run(context.Background())
	if !errors.Is(err, game.ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestRunRejectsNonPositiveRounds(t *testing.T) {
	cfg := testConfig()
	cfg.Rounds = 0

	_, err := New(cfg).Run(context.Background())
	if !errors.Is(err, game.ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestWinRate(t *testing.T) {
	result := Result{Rounds: 4, Wins: 3, Losses: 1}
	if got := result.WinRate(); got != 75.0 {
		t.Errorf("WinRate() = %f, want 75.0", got)
	}

	empty := Result{}
	if got := empty.WinRate(); got != 0 {
		t.Errorf("WinRate() on empty result = %f, want 0", got)
	}
}
