package msvc

import (
	"sort"
	"strings"
)

// Snapshot is one capture of the full process environment, variable name to
// value. Names are kept exactly as dumped; the toolchain host treats them
// case-insensitively only during diff lookups, not in storage.
type Snapshot map[string]string

// ParseSnapshot reads a `set`-style environment dump into a Snapshot.
// Lines without an '=' are banner fluff and are skipped.
func ParseSnapshot(block string) Snapshot {
	snap := Snapshot{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r")
		name, value, ok := strings.Cut(line, "=")
		if !ok || name == "" {
			continue
		}
		snap[name] = value
	}
	return snap
}

// Diff returns the variables of after that are new or whose value changed
// relative to before. Value comparison ignores case to tolerate the
// configuration script rewriting values with different casing.
func Diff(before, after Snapshot) map[string]string {
	changed := map[string]string{}
	for name, newValue := range after {
		oldValue, existed := before[name]
		if existed && strings.EqualFold(oldValue, newValue) {
			continue
		}
		changed[name] = newValue
	}
	return changed
}

// SortedNames returns the variable names of a diff in stable order, for
// deterministic output.
func SortedNames(diff map[string]string) []string {
	names := make([]string, 0, len(diff))
	for name := range diff {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
