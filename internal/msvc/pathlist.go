package msvc

import "strings"

// pathListVariables are list-valued variables that vcvarsall prepends to
// without checking for existing entries. Repeated invocations would grow
// them without bound, eventually overflowing the environment.
var pathListVariables = []string{"PATH", "INCLUDE", "LIB", "LIBPATH"}

// pathListSeparator is the entry delimiter inside list-valued variables.
// The configuration script always emits Windows-style lists.
const pathListSeparator = ";"

// IsPathListVariable reports whether name is one of the known list-valued
// variables. Matching ignores case.
func IsPathListVariable(name string) bool {
	upper := strings.ToUpper(name)
	for _, known := range pathListVariables {
		if known == upper {
			return true
		}
	}
	return false
}

// NormalizePathList removes duplicate list entries, keeping the first
// occurrence and preserving order. Order preservation matters: earlier
// entries shadow later ones, so a reordering would silently change which
// installed toolchain wins.
func NormalizePathList(value string) string {
	parts := strings.Split(value, pathListSeparator)
	seen := make(map[string]struct{}, len(parts))
	dedup := make([]string, 0, len(parts))
	for _, p := range parts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		dedup = append(dedup, p)
	}
	return strings.Join(dedup, pathListSeparator)
}
