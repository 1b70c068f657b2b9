package msvc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// The configuration script lives at a fixed location inside every modern
// installation root.
const (
	scriptRelDir = "VC/Auxiliary/Build"
	scriptName   = "vcvarsall.bat"
)

// ResolveScript joins the fixed relative script path onto an installation
// root and verifies the script exists, returning its canonical absolute
// path.
func ResolveScript(root string) (string, error) {
	path := filepath.Join(root, filepath.FromSlash(scriptRelDir), scriptName)
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("configuration script not found under %s: %w", root, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", resolved, err)
	}
	if !fileExists(abs) {
		return "", fmt.Errorf("configuration script %s is not a regular file", abs)
	}
	return abs, nil
}

// ScriptInvocation builds the full command line invoking the configuration
// script: quoted path plus positional arguments. Installation roots commonly
// contain spaces, so the path is always quoted.
func ScriptInvocation(scriptPath string, args []string) string {
	parts := append([]string{`"` + scriptPath + `"`}, args...)
	return strings.Join(parts, " ")
}
