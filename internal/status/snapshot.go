// Package status assembles and renders a categorized summary of the
// repository state: branch tracking info, tags, ahead/behind commit
// lists, and staged/unstaged/untracked file buckets.
package status

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/sweep/internal/git"
)

// Queries is the narrow repository query surface the renderer needs.
// The production implementation shells out to git; tests provide an
// in-memory fake.
type Queries interface {
	Load(ctx context.Context) (*git.Status, error)
	TagAtHead(ctx context.Context) string
	NearestTag(ctx context.Context) string
	TagsAtHead(ctx context.Context) ([]string, error)
	RemoteTags(ctx context.Context, remote string) ([]string, error)
	CommitsBehind(ctx context.Context, n int) ([]git.Commit, error)
	AheadHashes(ctx context.Context) ([]string, error)
	RecentCommits(ctx context.Context, n int) ([]git.Commit, error)
}

// GitQueries implements Queries against the repository at Dir using the
// git subprocess client.
type GitQueries struct {
	Dir string
}

func (q GitQueries) Load(ctx context.Context) (*git.Status, error) {
	return git.LoadStatus(ctx, q.Dir)
}

func (q GitQueries) TagAtHead(ctx context.Context) string {
	return git.TagAtHead(ctx, q.Dir)
}

func (q GitQueries) NearestTag(ctx context.Context) string {
	return git.NearestTag(ctx, q.Dir)
}

func (q GitQueries) TagsAtHead(ctx context.Context) ([]string, error) {
	return git.TagsAtHead(ctx, q.Dir)
}

func (q GitQueries) RemoteTags(ctx context.Context, remote string) ([]string, error) {
	return git.RemoteTags(ctx, q.Dir, remote)
}

func (q GitQueries) CommitsBehind(ctx context.Context, n int) ([]git.Commit, error) {
	return git.CommitsBehind(ctx, q.Dir, n)
}

func (q GitQueries) AheadHashes(ctx context.Context) ([]string, error) {
	return git.AheadHashes(ctx, q.Dir)
}

func (q GitQueries) RecentCommits(ctx context.Context, n int) ([]git.Commit, error) {
	return git.RecentCommits(ctx, q.Dir, n)
}

// Change is one (change-code, path) pair in a bucket.
type Change struct {
	Code byte
	Path string
}

// Snapshot is the in-memory parse of one status invocation. It is
// constructed, rendered, and discarded within a single call; nothing is
// cached across invocations.
type Snapshot struct {
	Branch   string
	Upstream string
	Ahead    int
	Behind   int

	Clean bool // no file changes and not ahead/behind

	ExactTag     string // tag exactly at HEAD, "" if none
	NearestTag   string // nearest reachable tag, only set when ExactTag is ""
	UnpushedTags []string

	BehindCommits []git.Commit    // upstream-only commits, bounded to Behind
	AheadSet      map[string]bool // hashes of local-only commits
	Graph         []git.Commit    // recent decorated commits, bounded

	Staged    []Change
	Unstaged  []Change
	Untracked []string
}

// Collect queries the repository and builds a snapshot. graphLimit
// bounds the decorated commit window.
func Collect(ctx context.Context, q Queries, graphLimit int) (*Snapshot, error) {
	st, err := q.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("query repository status: %w", err)
	}

	snap := &Snapshot{
		Branch:   st.Branch,
		Upstream: st.Upstream,
		Ahead:    st.Ahead,
		Behind:   st.Behind,
		AheadSet: map[string]bool{},
	}

	classify(snap, st.Entries)

	// Nothing changed, nothing in flight: a single clean line is all
	// there is to show.
	if !st.HasChanges() && st.Ahead == 0 && st.Behind == 0 {
		snap.Clean = true
		return snap, nil
	}

	collectTags(ctx, q, snap)

	if snap.Behind > 0 && snap.Upstream != "" {
		commits, err := q.CommitsBehind(ctx, snap.Behind)
		if err == nil {
			snap.BehindCommits = commits
		}
	}

	if snap.Ahead > 0 {
		if hashes, err := q.AheadHashes(ctx); err == nil {
			for _, h := range hashes {
				snap.AheadSet[h] = true
			}
		}
		if graph, err := q.RecentCommits(ctx, graphLimit); err == nil {
			snap.Graph = graph
		}
	} else if len(snap.Staged) == 0 && len(snap.Unstaged) == 0 && len(snap.Untracked) == 0 {
		// All buckets empty and nothing to push: fall back to a short
		// recent graph so the output is not just counters.
		if graph, err := q.RecentCommits(ctx, graphLimit); err == nil {
			snap.Graph = graph
		}
	}

	return snap, nil
}

// classify sorts parsed entries into the three buckets. A tracked file
// lands in both staged and unstaged when both columns carry a code.
func classify(snap *Snapshot, entries []git.StatusEntry) {
	for _, e := range entries {
		switch e.Kind {
		case git.KindUntracked:
			snap.Untracked = append(snap.Untracked, e.Path)
		case git.KindTracked:
			if e.Staged != git.Unchanged {
				snap.Staged = append(snap.Staged, Change{Code: e.Staged, Path: e.Path})
			}
			if e.Unstaged != git.Unchanged {
				snap.Unstaged = append(snap.Unstaged, Change{Code: e.Unstaged, Path: e.Path})
			}
		}
	}
}

// collectTags resolves the exact/nearest tag and the set of local tags
// at HEAD not yet present on the upstream remote. Tag queries are
// decoration; failures leave the fields empty.
func collectTags(ctx context.Context, q Queries, snap *Snapshot) {
	snap.ExactTag = q.TagAtHead(ctx)
	if snap.ExactTag == "" {
		snap.NearestTag = q.NearestTag(ctx)
	}

	if snap.Upstream == "" {
		return
	}
	remote, _, ok := strings.Cut(snap.Upstream, "/")
	if !ok {
		return
	}

	local, err := q.TagsAtHead(ctx)
	if err != nil || len(local) == 0 {
		return
	}
	remoteTags, err := q.RemoteTags(ctx, remote)
	if err != nil {
		return
	}

	pushed := make(map[string]bool, len(remoteTags))
	for _, t := range remoteTags {
		pushed[t] = true
	}
	for _, t := range local {
		if !pushed[t] {
			snap.UnpushedTags = append(snap.UnpushedTags, t)
		}
	}
}
