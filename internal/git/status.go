package git

import (
	"context"
	"strconv"
	"strings"
)

// EntryKind tags one parsed status line.
type EntryKind int

const (
	// KindTracked is a changed tracked file with staged/unstaged codes.
	KindTracked EntryKind = iota
	// KindUntracked is an untracked path.
	KindUntracked
	// KindUnrecognized is any line the parser does not classify.
	KindUnrecognized
)

// Unchanged is the porcelain v2 code for "no change in this column".
const Unchanged byte = '.'

// StatusEntry is one parsed file line from porcelain v2 output.
type StatusEntry struct {
	Kind     EntryKind
	Staged   byte // staged-column code, Unchanged if clean
	Unstaged byte // unstaged-column code, Unchanged if clean
	Path     string
}

// Status is a transient parse of one `git status --porcelain=v2
// --branch` invocation.
type Status struct {
	OID      string
	Branch   string
	Upstream string // empty when no upstream is configured
	Ahead    int
	Behind   int
	Entries  []StatusEntry
}

// HasChanges reports whether the status carries any file entries.
func (s *Status) HasChanges() bool {
	return len(s.Entries) > 0
}

// LoadStatus queries the repository state at dir.
func LoadStatus(ctx context.Context, dir string) (*Status, error) {
	out, err := outputGit(ctx, dir, "status", "--porcelain=v2", "--branch")
	if err != nil {
		return nil, err
	}
	return ParseStatus(string(out)), nil
}

// ParseStatus parses porcelain v2 output with branch headers.
// Unknown line shapes are kept as KindUnrecognized entries so callers
// can count them without interpreting them.
func ParseStatus(out string) *Status {
	status := &Status{}

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "# "):
			parseBranchHeader(status, line)
		case strings.HasPrefix(line, "1 "):
			status.Entries = append(status.Entries, parseChanged(line))
		case strings.HasPrefix(line, "2 "):
			status.Entries = append(status.Entries, parseRenamed(line))
		case strings.HasPrefix(line, "? "):
			status.Entries = append(status.Entries, StatusEntry{
				Kind: KindUntracked,
				Path: line[2:],
			})
		case strings.HasPrefix(line, "! "):
			// Ignored paths carry no change state; skip.
		default:
			status.Entries = append(status.Entries, StatusEntry{
				Kind: KindUnrecognized,
				Path: line,
			})
		}
	}

	return status
}

// parseBranchHeader handles `# branch.*` lines.
func parseBranchHeader(status *Status, line string) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return
	}
	switch fields[1] {
	case "branch.oid":
		status.OID = fields[2]
	case "branch.head":
		status.Branch = fields[2]
	case "branch.upstream":
		status.Upstream = fields[2]
	case "branch.ab":
		// "# branch.ab +<ahead> -<behind>"
		if len(fields) >= 4 {
			status.Ahead, _ = strconv.Atoi(strings.TrimPrefix(fields[2], "+"))
			status.Behind, _ = strconv.Atoi(strings.TrimPrefix(fields[3], "-"))
		}
	}
}

// parseChanged handles ordinary changed entries:
// `1 XY sub mH mI mW hH hI path`. The path is the ninth field and may
// contain spaces.
func parseChanged(line string) StatusEntry {
	fields := strings.SplitN(line, " ", 9)
	if len(fields) < 2 || len(fields[1]) != 2 {
		return StatusEntry{Kind: KindUnrecognized, Path: line}
	}

	path := fields[len(fields)-1]
	return StatusEntry{
		Kind:     KindTracked,
		Staged:   fields[1][0],
		Unstaged: fields[1][1],
		Path:     path,
	}
}

// parseRenamed handles renamed/copied entries:
// `2 XY sub mH mI mW hH hI Xscore path<tab>origPath`.
func parseRenamed(line string) StatusEntry {
	fields := strings.SplitN(line, " ", 10)
	if len(fields) < 2 || len(fields[1]) != 2 {
		return StatusEntry{Kind: KindUnrecognized, Path: line}
	}

	path := fields[len(fields)-1]
	// Keep only the new path; the original follows a tab.
	if idx := strings.IndexByte(path, '\t'); idx >= 0 {
		path = path[:idx]
	}
	return StatusEntry{
		Kind:     KindTracked,
		Staged:   fields[1][0],
		Unstaged: fields[1][1],
		Path:     path,
	}
}
