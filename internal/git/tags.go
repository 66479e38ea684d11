package git

import (
	"context"
	"strings"
)

// TagAtHead returns the tag pointing exactly at HEAD, or "" when there
// is none.
func TagAtHead(ctx context.Context, dir string) string {
	out, err := outputGit(ctx, dir, "describe", "--tags", "--exact-match", "HEAD")
	if err != nil {
		// git exits non-zero when no tag matches; treat as no tag.
		return ""
	}
	return strings.TrimSpace(string(out))
}

// NearestTag returns the most recent tag reachable from HEAD, or ""
// when the repository has no tags.
func NearestTag(ctx context.Context, dir string) string {
	out, err := outputGit(ctx, dir, "describe", "--tags", "--abbrev=0", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// TagsAtHead returns all local tags pointing at HEAD.
func TagsAtHead(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "tag", "--points-at", "HEAD")
	if err != nil {
		return nil, err
	}
	return splitLines(string(out)), nil
}

// RemoteTags lists tag names on the given remote.
func RemoteTags(ctx context.Context, dir, remote string) ([]string, error) {
	out, err := outputGit(ctx, dir, "ls-remote", "--tags", "--refs", remote)
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, line := range splitLines(string(out)) {
		// "<oid>\trefs/tags/<name>"
		idx := strings.Index(line, "refs/tags/")
		if idx < 0 {
			continue
		}
		tags = append(tags, line[idx+len("refs/tags/"):])
	}
	return tags, nil
}

// splitLines splits output into trimmed, non-empty lines.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
