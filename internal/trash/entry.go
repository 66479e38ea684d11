package trash

import (
	"regexp"
	"strings"
	"time"
)

// SuffixLayout is the time.Format layout for the timestamp appended to
// trashed names: 8-digit date, underscore, 6-digit time, local time.
const SuffixLayout = "20060102_150405"

// suffixRe matches the trash timestamp suffix, anchored at end-of-name.
var suffixRe = regexp.MustCompile(`\.(\d{8}_\d{6})$`)

// Entry is one trashed item. It is not a persisted record: the
// filesystem entry's name carries all state.
type Entry struct {
	Name      string    // on-disk name, <leaf>.<timestamp>
	Path      string    // full path inside the trash directory
	IsDir     bool
	Size      int64     // lstat size; directory sizes are not walked
	TrashedAt time.Time // parsed from the suffix, zero if absent
}

// RestoredName returns the entry name with the trailing
// `.<8digits>_<6digits>` suffix removed. Names without the exact suffix
// are returned unchanged, extra segments and all.
func (e Entry) RestoredName() string {
	return suffixRe.ReplaceAllString(e.Name, "")
}

// Matches reports whether the entry name contains the pattern.
// Matching is substring and case-insensitive; there are no glob
// semantics.
func (e Entry) Matches(pattern string) bool {
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(pattern))
}

// EntryName composes the on-disk trash name for a leaf name at the
// given moment.
func EntryName(leaf string, now time.Time) string {
	return leaf + "." + now.Format(SuffixLayout)
}

// parseTrashedAt extracts the trash time from an entry name.
// Returns the zero time for names without the suffix.
func parseTrashedAt(name string) time.Time {
	m := suffixRe.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}
	}
	t, err := time.ParseInLocation(SuffixLayout, m[1], time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Match filters entries down to those matching the pattern.
func Match(entries []Entry, pattern string) []Entry {
	var matched []Entry
	for _, e := range entries {
		if e.Matches(pattern) {
			matched = append(matched, e)
		}
	}
	return matched
}

// DuplicateNames returns restored names that more than one of the given
// entries would resolve to. Used by strict restore mode to refuse
// last-match-wins overwrites.
func DuplicateNames(entries []Entry) []string {
	seen := make(map[string]int, len(entries))
	for _, e := range entries {
		seen[e.RestoredName()]++
	}

	var dups []string
	for name, n := range seen {
		if n > 1 {
			dups = append(dups, name)
		}
	}
	return dups
}
