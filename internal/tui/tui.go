// Package tui implements the Bubble Tea interface for interactive play.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rps-cli/internal/display"
	"github.com/lox/rps-cli/internal/game"
	"github.com/lox/rps-cli/internal/stats"
)

// Styles contains all styling for the TUI
type Styles struct {
	Header   lipgloss.Style
	LogPane  lipgloss.Style
	StatsBar lipgloss.Style
	Win      lipgloss.Style
	Loss     lipgloss.Style
	Tie      lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the standard TUI color scheme
func DefaultStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		LogPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
		StatsBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Win:      lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Loss:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Tie:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// Model is the Bubble Tea model for the game. Rounds are synchronous, so
// the model owns the match controller and plays a full round inside
// Update when the player submits a throw.
type Model struct {
	match   *game.Match
	tracker *stats.Tracker
	store   *stats.Store
	logger  *log.Logger

	logView viewport.Model
	input   textinput.Model
	styles  *Styles

	lines    []string
	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a TUI model for the given match. store may be nil when
// persistence is unavailable.
func New(match *game.Match, tracker *stats.Tracker, store *stats.Store, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	input := textinput.New()
	input.Placeholder = "rock, paper or scissors (r/p/s)"
	input.Prompt = "> "
	input.CharLimit = 16
	input.Focus()

	m := Model{
		match:   match,
		tracker: tracker,
		store:   store,
		logger:  logger.WithPrefix("tui"),
		input:   input,
		styles:  DefaultStyles(),
	}
	m.addLine("Throw with r/p/s. Commands: stats, save, quit.")
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logHeight := msg.Height - 6 // header, stats bar, input, borders
		if logHeight < 3 {
			logHeight = 3
		}
		if !m.ready {
			m.logView = viewport.New(msg.Width-4, logHeight)
			m.ready = true
		} else {
			m.logView.Width = msg.Width - 4
			m.logView.Height = logHeight
		}
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.match.End()
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(strings.TrimSpace(m.input.Value()))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles a completed line of input: a quit/stats/save command or a
// round throw.
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	switch strings.ToLower(line) {
	case "quit", "q", "exit":
		m.match.End()
		m.quitting = true
		return m, tea.Quit
	case "stats", "st":
		m.addLine(fmt.Sprintf("Games %d | W %d / L %d / T %d | win rate %.2f%%",
			m.tracker.TotalGames(), m.tracker.Wins(), m.tracker.Losses(),
			m.tracker.Ties(), m.tracker.WinRate()))
		return m, nil
	case "save":
		m.handleSave()
		return m, nil
	}

	result, err := m.match.PlayToken(line)
	if err != nil {
		if errors.Is(err, game.ErrInvalidInput) {
			m.addLine(m.styles.Error.Render(
				fmt.Sprintf("Invalid choice %q. Type r, p, s or quit.", line)))
			return m, nil
		}
		m.logger.Error("round failed", "error", err)
		m.addLine(m.styles.Error.Render(err.Error()))
		return m, nil
	}

	m.showResult(result)
	return m, nil
}

func (m *Model) handleSave() {
	if m.store == nil {
		m.addLine(m.styles.Error.Render("Persistence is not available this session."))
		return
	}
	if err := m.store.Save(m.tracker); err != nil {
		m.logger.Error("save failed", "error", err)
		m.addLine(m.styles.Error.Render(fmt.Sprintf("Save failed: %s", err)))
		return
	}
	m.addLine(fmt.Sprintf("Saved to %s", m.store.Path()))
}

func (m *Model) showResult(result game.RoundResult) {
	m.addLine(fmt.Sprintf("You: %s %s  vs  Computer: %s %s",
		result.Human, display.ChoiceSymbol(result.Human.Token()),
		result.Computer, display.ChoiceSymbol(result.Computer.Token())))

	switch result.Outcome {
	case game.Win:
		m.addLine(m.styles.Win.Render("You win!"))
	case game.Loss:
		m.addLine(m.styles.Loss.Render("You lose this round."))
	default:
		m.addLine(m.styles.Tie.Render("It's a tie."))
	}
}

func (m *Model) addLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	if !m.ready {
		return
	}
	m.logView.SetContent(strings.Join(m.lines, "\n"))
	m.logView.GotoBottom()
}

// Lines returns the rendered log lines, used by tests
func (m Model) Lines() []string {
	return m.lines
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	header := m.styles.Header.Render(" Rock Paper Scissors ")
	statsBar := m.styles.StatsBar.Render(fmt.Sprintf(
		"W %d / L %d / T %d  (%.1f%%)",
		m.tracker.Wins(), m.tracker.Losses(), m.tracker.Ties(), m.tracker.WinRate()))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.styles.LogPane.Render(m.logView.View()),
		statsBar,
		m.input.View(),
		m.styles.Muted.Render("enter to throw · esc to quit"),
	)
}

// Run starts the Bubble Tea program and blocks until the player quits
func Run(match *game.Match, tracker *stats.Tracker, store *stats.Store, logger *log.Logger) error {
	program := tea.NewProgram(New(match, tracker, store, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
