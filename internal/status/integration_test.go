//go:build integration

package status

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

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

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

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

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# repo\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", "README.md")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Initial commit")

	runGitCommand(t, repoPath, "git", "remote", "add", "origin", barePath)
	runGitCommand(t, repoPath, "git", "push", "-u", "origin", "main")

	return repoPath
}

func TestCollectCleanRepo(t *testing.T) {
	repoPath := setupTestRepo(t)

	snap, err := Collect(context.Background(), GitQueries{Dir: repoPath}, 7)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if !snap.Clean {
		t.Errorf("Clean = false for a fresh pushed repo: %+v", snap)
	}
	if snap.Branch != "main" || snap.Upstream != "origin/main" {
		t.Errorf("branch = %q upstream = %q", snap.Branch, snap.Upstream)
	}
}

func TestCollectDirtyAheadRepo(t *testing.T) {
	repoPath := setupTestRepo(t)

	// One unpushed commit plus one untracked file.
	localPath := filepath.Join(repoPath, "local.txt")
	if err := os.WriteFile(localPath, []byte("local\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", "local.txt")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Add local.txt")
	runGitCommand(t, repoPath, "git", "tag", "v0.1.0")

	scratchPath := filepath.Join(repoPath, "scratch.txt")
	if err := os.WriteFile(scratchPath, []byte("scratch\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	snap, err := Collect(context.Background(), GitQueries{Dir: repoPath}, 7)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if snap.Clean {
		t.Error("Clean = true with an untracked file and an unpushed commit")
	}
	if snap.Ahead != 1 {
		t.Errorf("Ahead = %d, want 1", snap.Ahead)
	}
	if len(snap.Untracked) != 1 || snap.Untracked[0] != "scratch.txt" {
		t.Errorf("Untracked = %v", snap.Untracked)
	}
	if snap.ExactTag != "v0.1.0" {
		t.Errorf("ExactTag = %q, want v0.1.0", snap.ExactTag)
	}
	if len(snap.UnpushedTags) != 1 || snap.UnpushedTags[0] != "v0.1.0" {
		t.Errorf("UnpushedTags = %v, want [v0.1.0]", snap.UnpushedTags)
	}
	if len(snap.Graph) == 0 {
		t.Error("Graph empty for ahead repo")
	}
	if !snap.AheadSet[snap.Graph[0].Hash] {
		t.Errorf("newest graph commit %s not marked unpushed", snap.Graph[0].Hash)
	}
}
