//go:build integration

package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGitCommand runs a git command and returns output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo with an initial commit pushed to a
// local bare origin. Returns the path to the working repo.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := resolvePath(t, t.TempDir())

	barePath := filepath.Join(dir, "origin.git")
	if err := os.MkdirAll(barePath, 0755); err != nil {
		t.Fatalf("failed to create bare repo dir: %v", err)
	}
	runGitCommand(t, barePath, "git", "init", "--bare")

	repoPath := filepath.Join(dir, "repo")
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	cmds := [][]string{
		{"git", "init", "-b", "main"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test User"},
		{"git", "config", "commit.gpgsign", "false"},
		{"git", "config", "tag.gpgsign", "false"},
	}
	for _, args := range cmds {
		runGitCommand(t, repoPath, args...)
	}

	makeCommit(t, repoPath, "README.md")

	runGitCommand(t, repoPath, "git", "remote", "add", "origin", barePath)
	runGitCommand(t, repoPath, "git", "push", "-u", "origin", "main")

	return repoPath
}

// makeCommit creates a file and commits it.
func makeCommit(t *testing.T, repoPath, filename string) {
	t.Helper()
	filePath := filepath.Join(repoPath, filename)
	if err := os.WriteFile(filePath, []byte("content for "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", filename)
	runGitCommand(t, repoPath, "git", "commit", "-m", "Add "+filename)
}

func TestLoadStatusClean(t *testing.T) {
	repoPath := setupTestRepo(t)

	status, err := LoadStatus(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("LoadStatus: %v", err)
	}

	if status.Branch != "main" {
		t.Errorf("Branch = %q, want main", status.Branch)
	}
	if status.Upstream != "origin/main" {
		t.Errorf("Upstream = %q, want origin/main", status.Upstream)
	}
	if status.HasChanges() {
		t.Errorf("HasChanges = true for clean repo, entries: %v", status.Entries)
	}
	if status.Ahead != 0 || status.Behind != 0 {
		t.Errorf("ahead/behind = %d/%d, want 0/0", status.Ahead, status.Behind)
	}
}

func TestLoadStatusBuckets(t *testing.T) {
	repoPath := setupTestRepo(t)

	// Staged: a new file added to the index.
	stagedPath := filepath.Join(repoPath, "staged.txt")
	if err := os.WriteFile(stagedPath, []byte("staged\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", "staged.txt")

	// Unstaged: a tracked file modified in the worktree.
	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("changed\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Untracked: a file git has never seen.
	untrackedPath := filepath.Join(repoPath, "scratch.txt")
	if err := os.WriteFile(untrackedPath, []byte("scratch\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	status, err := LoadStatus(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("LoadStatus: %v", err)
	}

	byPath := map[string]StatusEntry{}
	for _, e := range status.Entries {
		byPath[e.Path] = e
	}

	if e, ok := byPath["staged.txt"]; !ok || e.Staged != 'A' {
		t.Errorf("staged.txt entry = %+v, want staged A", e)
	}
	if e, ok := byPath["README.md"]; !ok || e.Unstaged != 'M' {
		t.Errorf("README.md entry = %+v, want unstaged M", e)
	}
	if e, ok := byPath["scratch.txt"]; !ok || e.Kind != KindUntracked {
		t.Errorf("scratch.txt entry = %+v, want untracked", e)
	}
}

func TestLoadStatusAheadBehind(t *testing.T) {
	repoPath := setupTestRepo(t)

	makeCommit(t, repoPath, "local.txt")
	makeCommit(t, repoPath, "local2.txt")

	status, err := LoadStatus(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("LoadStatus: %v", err)
	}
	if status.Ahead != 2 {
		t.Errorf("Ahead = %d, want 2", status.Ahead)
	}

	// Push, then rewind to create a behind state.
	runGitCommand(t, repoPath, "git", "push", "origin", "main")
	runGitCommand(t, repoPath, "git", "reset", "--hard", "HEAD~1")
	runGitCommand(t, repoPath, "git", "fetch", "origin")

	status, err = LoadStatus(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("LoadStatus: %v", err)
	}
	if status.Ahead != 0 || status.Behind != 1 {
		t.Errorf("ahead/behind = %d/%d, want 0/1", status.Ahead, status.Behind)
	}

	behind, err := CommitsBehind(context.Background(), repoPath, 5)
	if err != nil {
		t.Fatalf("CommitsBehind: %v", err)
	}
	if len(behind) != 1 || !strings.Contains(behind[0].Subject, "local2.txt") {
		t.Errorf("CommitsBehind = %v, want the rewound commit", behind)
	}
}

func TestAheadHashesAndRecentCommits(t *testing.T) {
	repoPath := setupTestRepo(t)

	makeCommit(t, repoPath, "unpushed.txt")

	ahead, err := AheadHashes(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("AheadHashes: %v", err)
	}
	if len(ahead) != 1 {
		t.Fatalf("AheadHashes = %v, want one hash", ahead)
	}

	recent, err := RecentCommits(context.Background(), repoPath, 10)
	if err != nil {
		t.Fatalf("RecentCommits: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentCommits = %d commits, want 2", len(recent))
	}
	if recent[0].Hash != ahead[0] {
		t.Errorf("newest commit %s not in ahead hashes %v", recent[0].Hash, ahead)
	}
	if !strings.Contains(recent[0].Decoration, "HEAD") {
		t.Errorf("HEAD commit missing decoration: %q", recent[0].Decoration)
	}
}

func TestTags(t *testing.T) {
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if tag := TagAtHead(ctx, repoPath); tag != "" {
		t.Errorf("TagAtHead on untagged repo = %q, want empty", tag)
	}

	runGitCommand(t, repoPath, "git", "tag", "v1.0.0")
	runGitCommand(t, repoPath, "git", "push", "origin", "v1.0.0")
	runGitCommand(t, repoPath, "git", "tag", "v1.0.1-local")

	if tag := TagAtHead(ctx, repoPath); tag == "" {
		t.Error("TagAtHead = empty on tagged HEAD")
	}

	atHead, err := TagsAtHead(ctx, repoPath)
	if err != nil {
		t.Fatalf("TagsAtHead: %v", err)
	}
	if len(atHead) != 2 {
		t.Errorf("TagsAtHead = %v, want both tags", atHead)
	}

	remote, err := RemoteTags(ctx, repoPath, "origin")
	if err != nil {
		t.Fatalf("RemoteTags: %v", err)
	}
	if len(remote) != 1 || remote[0] != "v1.0.0" {
		t.Errorf("RemoteTags = %v, want [v1.0.0]", remote)
	}

	// Nearest tag applies once HEAD moves past the tagged commit.
	makeCommit(t, repoPath, "after-tag.txt")
	if tag := TagAtHead(ctx, repoPath); tag != "" {
		t.Errorf("TagAtHead after new commit = %q, want empty", tag)
	}
	if tag := NearestTag(ctx, repoPath); tag == "" {
		t.Error("NearestTag = empty with a tag in history")
	}
}

func TestIsInsideRepo(t *testing.T) {
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if !IsInsideRepo(ctx, repoPath) {
		t.Error("IsInsideRepo = false inside a repo")
	}
	if IsInsideRepo(ctx, t.TempDir()) {
		t.Error("IsInsideRepo = true outside a repo")
	}
}
