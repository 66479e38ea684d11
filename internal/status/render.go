package status

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/sweep/internal/ui/styles"
)

// codeLabels maps recognized change codes to their display labels,
// split per bucket. Codes outside the map render no line.
var (
	stagedLabels = map[byte]string{
		'M': "modified",
		'A': "added",
		'D': "deleted",
		'R': "renamed",
	}
	unstagedLabels = map[byte]string{
		'M': "modified",
		'D': "deleted",
	}
)

// Renderer renders a Snapshot as colorized text.
type Renderer struct {
	theme styles.Theme

	branch   lipgloss.Style
	tag      lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
	bad      lipgloss.Style
	muted    lipgloss.Style
	unpushed lipgloss.Style
	header   lipgloss.Style
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme styles.Theme) *Renderer {
	return &Renderer{
		theme:    theme,
		branch:   lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		tag:      lipgloss.NewStyle().Foreground(theme.Info),
		ok:       lipgloss.NewStyle().Foreground(theme.Success),
		warn:     lipgloss.NewStyle().Foreground(theme.Warning),
		bad:      lipgloss.NewStyle().Foreground(theme.Error),
		muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		unpushed: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		header:   lipgloss.NewStyle().Bold(true),
	}
}

// codeStyle returns the style for a change code.
func (r *Renderer) codeStyle(code byte) lipgloss.Style {
	switch code {
	case 'A':
		return r.ok
	case 'D':
		return r.bad
	case 'R':
		return r.tag
	default:
		return r.warn
	}
}

// Render writes the snapshot to w.
func (r *Renderer) Render(w io.Writer, snap *Snapshot) {
	if snap.Clean {
		fmt.Fprintf(w, "%s %s\n",
			r.ok.Render("✓ working tree clean"),
			r.branch.Render("("+snap.Branch+")"))
		return
	}

	r.renderBranch(w, snap)
	r.renderTags(w, snap)
	r.renderRemote(w, snap)
	r.renderLocal(w, snap)
	r.renderBuckets(w, snap)
}

func (r *Renderer) renderBranch(w io.Writer, snap *Snapshot) {
	line := r.branch.Render(snap.Branch)
	if snap.Upstream != "" {
		line += r.muted.Render("..." + snap.Upstream)
	}
	fmt.Fprintf(w, "## %s\n", line)
}

func (r *Renderer) renderTags(w io.Writer, snap *Snapshot) {
	switch {
	case snap.ExactTag != "":
		fmt.Fprintf(w, "tag: %s\n", r.tag.Render(snap.ExactTag))
	case snap.NearestTag != "":
		fmt.Fprintf(w, "nearest tag: %s\n", r.tag.Render(snap.NearestTag))
	}
	for _, t := range snap.UnpushedTags {
		fmt.Fprintf(w, "unpushed tag: %s\n", r.unpushed.Render(t))
	}
}

func (r *Renderer) renderRemote(w io.Writer, snap *Snapshot) {
	switch {
	case snap.Upstream == "":
		fmt.Fprintln(w, r.muted.Render("no upstream configured"))
	case snap.Behind > 0:
		fmt.Fprintf(w, "behind %s by %s\n",
			snap.Upstream, r.warn.Render(fmt.Sprintf("%d", snap.Behind)))
		for _, c := range snap.BehindCommits {
			fmt.Fprintf(w, "  %s %s\n", r.warn.Render(c.Hash), c.Subject)
		}
	default:
		fmt.Fprintf(w, "%s %s\n", r.ok.Render("up to date with"), snap.Upstream)
	}
}

func (r *Renderer) renderLocal(w io.Writer, snap *Snapshot) {
	if snap.Ahead == 0 {
		fmt.Fprintf(w, "%s %s\n",
			r.branch.Render(snap.Branch), r.muted.Render("±0 to push"))
		return
	}

	fmt.Fprintf(w, "ahead by %s\n", r.ok.Render(fmt.Sprintf("%d", snap.Ahead)))
	r.renderGraph(w, snap)
}

// renderGraph prints the decorated commit window, marking commits not
// yet on the upstream.
func (r *Renderer) renderGraph(w io.Writer, snap *Snapshot) {
	for _, c := range snap.Graph {
		marker := r.muted.Render("○")
		hash := r.muted.Render(c.Hash)
		if snap.AheadSet[c.Hash] {
			marker = r.unpushed.Render("●")
			hash = r.unpushed.Render(c.Hash)
		}

		line := fmt.Sprintf("  %s %s", marker, hash)
		if c.Decoration != "" {
			line += " " + r.tag.Render("("+c.Decoration+")")
		}
		fmt.Fprintf(w, "%s %s\n", line, c.Subject)
	}
}

func (r *Renderer) renderBuckets(w io.Writer, snap *Snapshot) {
	if len(snap.Staged) == 0 && len(snap.Unstaged) == 0 && len(snap.Untracked) == 0 {
		if snap.Ahead == 0 && len(snap.Graph) > 0 {
			fmt.Fprintln(w, r.header.Render("Recent commits:"))
			r.renderGraph(w, snap)
		}
		return
	}

	if len(snap.Staged) > 0 {
		fmt.Fprintln(w, r.header.Render(fmt.Sprintf("Staged (%d):", len(snap.Staged))))
		r.renderChanges(w, snap.Staged, stagedLabels)
	}
	if len(snap.Unstaged) > 0 {
		fmt.Fprintln(w, r.header.Render(fmt.Sprintf("Unstaged (%d):", len(snap.Unstaged))))
		r.renderChanges(w, snap.Unstaged, unstagedLabels)
	}
	if len(snap.Untracked) > 0 {
		fmt.Fprintln(w, r.header.Render(fmt.Sprintf("Untracked (%d):", len(snap.Untracked))))
		for _, path := range snap.Untracked {
			fmt.Fprintf(w, "  %s\n", r.muted.Render(path))
		}
	}
}

// renderChanges prints one line per change with a recognized code.
// Unrecognized codes still count toward the bucket header but render
// nothing.
func (r *Renderer) renderChanges(w io.Writer, changes []Change, labels map[byte]string) {
	for _, c := range changes {
		label, ok := labels[c.Code]
		if !ok {
			continue
		}
		style := r.codeStyle(c.Code)
		fmt.Fprintf(w, "  %s %s %s\n",
			style.Render(string(c.Code)), style.Render(label), c.Path)
	}
}
