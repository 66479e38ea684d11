// Package prompt provides interactive confirmation prompts.
//
// The Confirmer interface decouples callers from the terminal so batch
// operations can be tested with a scripted confirmer.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// ErrCancelled is returned when the user aborts the prompt (ctrl+c/esc).
var ErrCancelled = errors.New("cancelled")

// Confirmer answers yes/no questions.
type Confirmer interface {
	// Confirm asks the question and returns the user's choice.
	// The default answer is no.
	Confirm(prompt string) (bool, error)
}

// Default returns a terminal-backed Confirmer when stdin is a TTY and
// a line-reader fallback otherwise (pipes, redirected input).
func Default() Confirmer {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return ttyConfirmer{}
	}
	return NewReaderConfirmer(os.Stdin, os.Stderr)
}

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			// Default to no
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s [y/N] ", m.prompt))
}

// ttyConfirmer runs a bubbletea y/N prompt on the controlling terminal.
// Output goes to stderr so stdout stays pipeable.
type ttyConfirmer struct{}

func (ttyConfirmer) Confirm(prompt string) (bool, error) {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(confirmModel{prompt: prompt},
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m := finalModel.(confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.confirmed, nil
}

// ReaderConfirmer reads one answer line per question. Any answer other
// than a case-insensitive "y"/"yes" counts as no.
type ReaderConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReaderConfirmer creates a line-based confirmer.
func NewReaderConfirmer(in io.Reader, out io.Writer) *ReaderConfirmer {
	return &ReaderConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *ReaderConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
