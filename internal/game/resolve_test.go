package game

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		human    Choice
		computer Choice
		expected Outcome
	}{
		{Rock, Scissors, Win},
		{Paper, Rock, Win},
		{Scissors, Paper, Win},
		{Rock, Paper, Loss},
		{Paper, Scissors, Loss},
		{Scissors, Rock, Loss},
		{Rock, Rock, Tie},
		{Paper, Paper, Tie},
		{Scissors, Scissors, Tie},
	}

	for _, tt := range tests {
		if got := Resolve(tt.human, tt.computer); got != tt.expected {
			t.Errorf("Resolve(%s, %s) = %s, want %s", tt.human, tt.computer, got, tt.expected)
		}
	}
}

func TestResolveIdenticalChoicesTie(t *testing.T) {
	for _, c := range Choices {
		if got := Resolve(c, c); got != Tie {
			t.Errorf("Resolve(%s, %s) = %s, want Tie", c, c, got)
		}
	}
}

// Swapping the arguments must yield the complementary outcome.
func TestResolveComplementary(t *testing.T) {
	for _, a := range Choices {
		for _, b := range Choices {
			forward := Resolve(a, b)
			backward := Resolve(b, a)
			if forward.Invert() != backward {
				t.Errorf("Resolve(%s, %s) = %s but Resolve(%s, %s) = %s, not complementary",
					a, b, forward, b, a, backward)
			}
		}
	}
}

func TestOutcomeInvert(t *testing.T) {
	if Win.Invert() != Loss || Loss.Invert() != Win || Tie.Invert() != Tie {
		t.Error("Invert must swap Win/Loss and fix Tie")
	}
}
