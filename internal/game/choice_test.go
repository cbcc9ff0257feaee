package game

import (
	"errors"
	"testing"
)

func TestBeats(t *testing.T) {
	tests := []struct {
		a, b     Choice
		expected bool
	}{
		{Rock, Scissors, true},
		{Scissors, Paper, true},
		{Paper, Rock, true},
		{Rock, Paper, false},
		{Paper, Scissors, false},
		{Scissors, Rock, false},
		{Rock, Rock, false},
		{Paper, Paper, false},
		{Scissors, Scissors, false},
	}

	for _, tt := range tests {
		if got := tt.a.Beats(tt.b); got != tt.expected {
			t.Errorf("%s.Beats(%s) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

// Exactly one of a beats b, b beats a, a == b must hold for every pair.
func TestBeatsExactlyOneRelation(t *testing.T) {
	for _, a := range Choices {
		for _, b := range Choices {
			relations := 0
			if a.Beats(b) {
				relations++
			}
			if b.Beats(a) {
				relations++
			}
			if a == b {
				relations++
			}
			if relations != 1 {
				t.Errorf("pair (%s, %s): %d relations hold, want exactly 1", a, b, relations)
			}
		}
	}
}

func TestCounterTo(t *testing.T) {
	for _, c := range Choices {
		counter := c.CounterTo()
		if !counter.Beats(c) {
			t.Errorf("CounterTo(%s) = %s, which does not beat it", c, counter)
		}
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input    string
		expected Choice
		wantErr  bool
	}{
		{"r", Rock, false},
		{"R", Rock, false},
		{"rock", Rock, false},
		{"Rock", Rock, false},
		{"ROCK", Rock, false},
		{"p", Paper, false},
		{"paper", Paper, false},
		{"s", Scissors, false},
		{"scissors", Scissors, false},
		{"  rock  ", Rock, false},
		{"xyz", 0, true},
		{"", 0, true},
		{"rockk", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseChoice(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseChoice(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseChoice(%q) error = %v, want ErrInvalidInput", tt.input, err)
			}
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseChoice(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestChoiceTokenRoundTrip(t *testing.T) {
	for _, c := range Choices {
		got, err := ParseChoice(c.Token())
		if err != nil {
			t.Fatalf("ParseChoice(%q) returned error: %v", c.Token(), err)
		}
		if got != c {
			t.Errorf("ParseChoice(%q) = %s, want %s", c.Token(), got, c)
		}
	}
}
