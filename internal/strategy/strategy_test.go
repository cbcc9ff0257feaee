package strategy

import (
	"errors"
	"testing"

	"github.com/lox/rps-cli/internal/game"
	"github.com/lox/rps-cli/internal/randutil"
)

func TestNewMapsDifficulties(t *testing.T) {
	rng := randutil.New(1)

	agent, err := New("easy", rng)
	if err != nil {
		t.Fatalf("easy: %v", err)
	}
	if _, ok := agent.(*Random); !ok {
		t.Errorf("easy = %T, want *Random", agent)
	}

	agent, err = New("medium", rng)
	if err != nil {
		t.Fatalf("medium: %v", err)
	}
	if _, ok := agent.(*Counter); !ok {
		t.Errorf("medium = %T, want *Counter", agent)
	}

	agent, err = New("hard", rng)
	if err != nil {
		t.Fatalf("hard: %v", err)
	}
	if _, ok := agent.(*Pattern); !ok {
		t.Errorf("hard = %T, want *Pattern", agent)
	}
}

func TestNewIsCaseInsensitive(t *testing.T) {
	rng := randutil.New(1)
	for _, difficulty := range []string{"Easy", "MEDIUM", "Hard"} {
		if _, err := New(difficulty, rng); err != nil {
			t.Errorf("New(%q) returned error: %v", difficulty, err)
		}
	}
}

func TestNewRejectsUnknownDifficulty(t *testing.T) {
	for _, difficulty := range []string{"", "impossible", "medium "} {
		_, err := New(difficulty, randutil.New(1))
		if !errors.Is(err, game.ErrInvalidConfiguration) {
			t.Errorf("New(%q) error = %v, want ErrInvalidConfiguration", difficulty, err)
		}
	}
}

// The medium difficulty must deterministically counter a fixed history.
func TestMediumCountersFixedHistory(t *testing.T) {
	agent, err := New("medium", randutil.New(11))
	if err != nil {
		t.Fatal(err)
	}

	history := []game.Choice{game.Rock, game.Rock, game.Rock}
	for i := 0; i < 20; i++ {
		if got := agent.NextChoice(history); got != game.Paper {
			t.Fatalf("call %d: NextChoice = %s, want Paper", i, got)
		}
	}
}
