package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/rps-cli/internal/game"
	"github.com/lox/rps-cli/internal/stats"
)

// Command represents a non-throw command available at the prompt
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Handler     func() (bool, error) // bool indicates if the session should continue
}

// Prompter runs the plain-terminal input loop for a match. Anything that
// parses as a choice plays a round; everything else is looked up in the
// command map.
type Prompter struct {
	in         *bufio.Scanner
	out        io.Writer
	styles     *Styles
	commands   map[string]*Command
	order      []string
	match      *game.Match
	tracker    *stats.Tracker
	store      *stats.Store
	playerName string
	logger     *log.Logger
}

// NewPrompter creates a prompter reading tokens from in and rendering to
// out. store may be nil when persistence is unavailable.
func NewPrompter(in io.Reader, out io.Writer, match *game.Match, tracker *stats.Tracker, store *stats.Store, playerName string, logger *log.Logger) *Prompter {
	if logger == nil {
		logger = log.Default()
	}
	p := &Prompter{
		in:         bufio.NewScanner(in),
		out:        out,
		styles:     DefaultStyles(),
		match:      match,
		tracker:    tracker,
		store:      store,
		playerName: playerName,
		logger:     logger.WithPrefix("prompt"),
	}
	p.initCommands()
	return p
}

func (p *Prompter) initCommands() {
	p.order = []string{"stats", "save", "help", "quit"}
	p.commands = map[string]*Command{
		"stats": {
			Name:        "stats",
			Aliases:     []string{"st"},
			Description: "Show session statistics",
			Handler:     p.handleStats,
		},
		"save": {
			Name:        "save",
			Description: "Save statistics to disk",
			Handler:     p.handleSave,
		},
		"help": {
			Name:        "help",
			Aliases:     []string{"?"},
			Description: "Show available commands",
			Handler:     p.handleHelp,
		},
		"quit": {
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Description: "End the session",
			Handler:     p.handleQuit,
		},
	}

	for _, cmd := range p.commands {
		for _, alias := range cmd.Aliases {
			p.commands[alias] = cmd
		}
	}
}

// Run plays rounds until the player quits or input is exhausted
func (p *Prompter) Run() error {
	p.printWelcome()

	for {
		fmt.Fprint(p.out, p.styles.Prompt.Render(fmt.Sprintf("%s (r/p/s)> ", p.playerName)))
		if !p.in.Scan() {
			p.match.End()
			return p.in.Err()
		}

		line := strings.ToLower(strings.TrimSpace(p.in.Text()))
		if line == "" {
			continue
		}

		if cmd, ok := p.commands[line]; ok {
			shouldContinue, err := cmd.Handler()
			if err != nil {
				fmt.Fprintln(p.out, p.styles.Error.Render(fmt.Sprintf("Error: %s", err)))
			}
			if !shouldContinue {
				p.match.End()
				return nil
			}
			continue
		}

		result, err := p.match.PlayToken(line)
		if err != nil {
			if errors.Is(err, game.ErrInvalidInput) {
				fmt.Fprintln(p.out, p.styles.Error.Render(
					fmt.Sprintf("Invalid choice %q. Type r, p, s or 'help'.", line)))
				continue
			}
			return err
		}
		p.showResult(result)
	}
}

func (p *Prompter) printWelcome() {
	fmt.Fprintln(p.out, p.styles.Info.Render("Throw with r/p/s or full names. Type 'help' for commands."))
}

func (p *Prompter) showResult(result game.RoundResult) {
	fmt.Fprintf(p.out, "You chose: %s\n", p.renderChoice(result.Human))
	fmt.Fprintf(p.out, "Computer chose: %s\n", p.renderChoice(result.Computer))

	switch result.Outcome {
	case game.Win:
		fmt.Fprintln(p.out, p.styles.Success.Render("You win!"))
	case game.Loss:
		fmt.Fprintln(p.out, p.styles.Error.Render("You lose this round."))
	default:
		fmt.Fprintln(p.out, p.styles.Warning.Render("It's a tie."))
	}
}

func (p *Prompter) renderChoice(c game.Choice) string {
	return p.styles.Choice.Render(fmt.Sprintf("%s %s", c, ChoiceSymbol(c.Token())))
}

func (p *Prompter) handleStats() (bool, error) {
	WriteSummary(p.out, p.styles, p.tracker)
	return true, nil
}

func (p *Prompter) handleSave() (bool, error) {
	if p.store == nil {
		return true, fmt.Errorf("persistence is not available this session")
	}
	if err := p.store.Save(p.tracker); err != nil {
		return true, err
	}
	fmt.Fprintln(p.out, p.styles.Success.Render(fmt.Sprintf("Saved to %s", p.store.Path())))
	return true, nil
}

func (p *Prompter) handleHelp() (bool, error) {
	fmt.Fprintln(p.out, "Throws: rock (r), paper (p), scissors (s)")
	fmt.Fprintln(p.out, "Commands:")
	for _, name := range p.order {
		cmd := p.commands[name]
		fmt.Fprintf(p.out, "  %-8s - %s\n", cmd.Name, cmd.Description)
	}
	return true, nil
}

func (p *Prompter) handleQuit() (bool, error) {
	fmt.Fprintln(p.out, p.styles.Info.Render("Thanks for playing!"))
	return false, nil
}

// WriteSummary renders the tracker's totals and win rate to w
func WriteSummary(w io.Writer, styles *Styles, tracker *stats.Tracker) {
	if styles == nil {
		styles = DefaultStyles()
	}
	fmt.Fprintln(w, styles.Stat.Render("Session statistics"))
	fmt.Fprintf(w, "  Games:    %d\n", tracker.TotalGames())
	fmt.Fprintf(w, "  Wins:     %d\n", tracker.Wins())
	fmt.Fprintf(w, "  Losses:   %d\n", tracker.Losses())
	fmt.Fprintf(w, "  Ties:     %d\n", tracker.Ties())
	fmt.Fprintf(w, "  Win rate: %.2f%%\n", tracker.WinRate())
}
