package strategy

import (
	"testing"

	"github.com/lox/rps-cli/internal/game"
	"github.com/lox/rps-cli/internal/randutil"
)

func TestRandomCoversAllChoices(t *testing.T) {
	random := NewRandom(randutil.New(42))

	counts := map[game.Choice]int{}
	const draws = 600
	for i := 0; i < draws; i++ {
		counts[random.NextChoice(nil)]++
	}

	for _, c := range game.Choices {
		if counts[c] == 0 {
			t.Errorf("%s never drawn in %d throws", c, draws)
		}
		// Loose bound, a fair RNG lands each choice well inside this.
		if counts[c] < draws/6 {
			t.Errorf("%s drawn only %d times in %d throws", c, counts[c], draws)
		}
	}
}

func TestRandomIsSeedReproducible(t *testing.T) {
	a := NewRandom(randutil.New(42))
	b := NewRandom(randutil.New(42))

	for i := 0; i < 100; i++ {
		if got, want := a.NextChoice(nil), b.NextChoice(nil); got != want {
			t.Fatalf("draw %d diverged: %s vs %s", i, got, want)
		}
	}
}
