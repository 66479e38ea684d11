// Package picker provides an interactive fuzzy-filterable multi-select
// over trash entries, used by `sweep restore --interactive`.
package picker

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/sweep/internal/ui/styles"
)

const maxVisible = 10

// source implements fuzzy.Source over option labels.
type source []string

func (s source) String(i int) string { return s[i] }
func (s source) Len() int            { return len(s) }

// Model is the picker's bubbletea model.
type Model struct {
	title    string
	options  []string
	filtered []int // indices into options, filter applied
	cursor   int   // position in filtered
	selected map[int]bool

	input     textinput.Model
	done      bool
	cancelled bool

	cursorStyle lipgloss.Style
	checkStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
	titleStyle  lipgloss.Style
}

// New creates a picker over the given option labels.
func New(title string, options []string, theme styles.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.SetWidth(40)
	ti.Focus()

	m := Model{
		title:       title,
		options:     options,
		selected:    make(map[int]bool),
		input:       ti,
		cursorStyle: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		checkStyle:  lipgloss.NewStyle().Foreground(theme.Success),
		mutedStyle:  lipgloss.NewStyle().Foreground(theme.Muted),
		titleStyle:  lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
	}
	m.applyFilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil
	case "tab", "space":
		if len(m.filtered) > 0 {
			idx := m.filtered[m.cursor]
			if m.selected[idx] {
				delete(m.selected, idx)
			} else {
				m.selected[idx] = true
			}
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m Model) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(m.titleStyle.Render(m.title))
	b.WriteString(fmt.Sprintf(" (%d selected)\n", len(m.selected)))
	b.WriteString(m.input.View() + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if len(m.filtered) == 0 {
		b.WriteString(m.mutedStyle.Render("  no matches") + "\n")
	}

	for i := start; i < end; i++ {
		idx := m.filtered[i]

		cursor := "  "
		if i == m.cursor {
			cursor = m.cursorStyle.Render("> ")
		}
		checkbox := "[ ]"
		if m.selected[idx] {
			checkbox = m.checkStyle.Render("[✓]")
		}
		b.WriteString(cursor + checkbox + " " + m.options[idx] + "\n")
	}

	if end < len(m.filtered) {
		b.WriteString(m.mutedStyle.Render("  ↓ more below") + "\n")
	}
	b.WriteString(m.mutedStyle.Render("\nspace: toggle · enter: confirm · esc: cancel") + "\n")
	return tea.NewView(b.String())
}

// applyFilter recomputes the visible option indices from the filter
// text, ranked by fuzzy match score.
func (m *Model) applyFilter() {
	filter := strings.TrimSpace(m.input.Value())
	m.cursor = 0

	if filter == "" {
		m.filtered = make([]int, len(m.options))
		for i := range m.options {
			m.filtered[i] = i
		}
		return
	}

	matches := fuzzy.FindFrom(filter, source(m.options))
	m.filtered = make([]int, len(matches))
	for i, match := range matches {
		m.filtered[i] = match.Index
	}
}

// Selected returns the indices of the selected options in input order.
func (m Model) Selected() []int {
	var out []int
	for i := range m.options {
		if m.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

// Run shows the picker and returns the selected option indices.
// Returns (nil, false) when the user cancels. The TUI renders to
// stderr so stdout stays pipeable.
func Run(title string, options []string, theme styles.Theme) ([]int, bool, error) {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(New(title, options, theme),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m := finalModel.(Model)
	if m.cancelled {
		return nil, false, nil
	}
	return m.Selected(), true, nil
}
