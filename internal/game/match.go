package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// RoundState tracks progress through a single round
type RoundState int

const (
	AwaitingHuman RoundState = iota
	AwaitingComputer
	Resolving
	Recorded
	SessionEnd
)

// String returns the display name of a round state
func (s RoundState) String() string {
	switch s {
	case AwaitingHuman:
		return "awaiting-human"
	case AwaitingComputer:
		return "awaiting-computer"
	case Resolving:
		return "resolving"
	case Recorded:
		return "recorded"
	case SessionEnd:
		return "session-end"
	default:
		return "?"
	}
}

// RoundResult is everything a round produced, handed to the renderer
type RoundResult struct {
	Human    Choice
	Computer Choice
	Outcome  Outcome
}

// Match orchestrates rounds between the human and a computer agent. All
// recorder mutation happens here, one full round at a time, so callers
// never observe a partially updated round.
type Match struct {
	agent    Agent
	recorder Recorder
	state    RoundState
	rounds   int
	logger   *log.Logger
}

// NewMatch creates a match controller ready for the first round
func NewMatch(agent Agent, recorder Recorder, logger *log.Logger) *Match {
	if logger == nil {
		logger = log.Default()
	}
	return &Match{
		agent:    agent,
		recorder: recorder,
		state:    AwaitingHuman,
		logger:   logger.WithPrefix("match"),
	}
}

// State returns the controller's current round state
func (m *Match) State() RoundState {
	return m.state
}

// Rounds returns how many rounds have completed this session
func (m *Match) Rounds() int {
	return m.rounds
}

// PlayToken plays one full round from a raw human token. An unparsable
// token leaves the round awaiting human input with nothing recorded.
func (m *Match) PlayToken(token string) (RoundResult, error) {
	if m.state == SessionEnd {
		return RoundResult{}, fmt.Errorf("%w: session has ended", ErrInvalidConfiguration)
	}
	human, err := ParseChoice(token)
	if err != nil {
		m.logger.Debug("rejected input", "token", token)
		return RoundResult{}, err
	}
	return m.Play(human), nil
}

// Play runs one full round with an already-validated human choice. The
// agent sees the history as it stood before this round; the result is
// recorded before Play returns.
func (m *Match) Play(human Choice) RoundResult {
	m.state = AwaitingComputer
	computer := m.agent.NextChoice(m.recorder.History())

	m.state = Resolving
	outcome := Resolve(human, computer)

	m.recorder.Record(outcome, human)
	m.rounds++
	m.state = Recorded

	m.logger.Debug("round complete",
		"round", m.rounds,
		"human", human,
		"computer", computer,
		"outcome", outcome)

	// Ready for the next round unless the caller ends the session.
	m.state = AwaitingHuman

	return RoundResult{Human: human, Computer: computer, Outcome: outcome}
}

// End marks the session finished. Further rounds are rejected.
func (m *Match) End() {
	m.state = SessionEnd
	m.logger.Debug("session ended", "rounds", m.rounds)
}
