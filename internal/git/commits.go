package git

import (
	"context"
	"strconv"
	"strings"
)

// Commit is a one-line commit summary.
type Commit struct {
	Hash       string
	Subject    string
	Decoration string // ref decorations like "origin/main, tag: v1.2.0"
}

// logFields is the --format spec for Commit: hash, decorations and
// subject separated by NUL so subjects may contain anything.
const logFields = "%h%x00%d%x00%s"

// parseCommits parses `git log --format=logFields` output.
func parseCommits(out string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\x00", 3)
		if len(parts) != 3 {
			continue
		}
		commits = append(commits, Commit{
			Hash:       parts[0],
			Decoration: strings.Trim(strings.TrimSpace(parts[1]), "()"),
			Subject:    parts[2],
		})
	}
	return commits
}

// CommitsBehind lists up to n commits present upstream but not locally,
// newest first. Requires a configured upstream.
func CommitsBehind(ctx context.Context, dir string, n int) ([]Commit, error) {
	out, err := outputGit(ctx, dir,
		"log", "--format="+logFields, "-n", strconv.Itoa(n), "HEAD..@{upstream}")
	if err != nil {
		return nil, err
	}
	return parseCommits(string(out)), nil
}

// AheadHashes lists abbreviated hashes of commits present locally but
// not upstream.
func AheadHashes(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "rev-list", "--abbrev-commit", "@{upstream}..HEAD")
	if err != nil {
		return nil, err
	}
	return splitLines(string(out)), nil
}

// RecentCommits lists up to n commits reachable from HEAD with their
// decorations, newest first.
func RecentCommits(ctx context.Context, dir string, n int) ([]Commit, error) {
	out, err := outputGit(ctx, dir,
		"log", "--format="+logFields, "-n", strconv.Itoa(n), "HEAD")
	if err != nil {
		return nil, err
	}
	return parseCommits(string(out)), nil
}
