package msvc

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Locator finds the Visual Studio installation that should configure the
// environment. It consults vswhere first and falls back to probing the
// standard installation directories.
type Locator struct {
	// programFilesX86 is the 32-bit program-files root, used for the vswhere
	// installer directory and the legacy build-tools fallback.
	programFilesX86 string
	// searchRoots are the program-files roots probed during fallback, 32-bit
	// first to match the installer's historical layout.
	searchRoots []string
	// Logf receives diagnostic messages when set.
	Logf func(format string, args ...any)
}

// NewLocatorFromEnv builds a Locator from the fixed program-files root
// variables. Both must be present; this tool cannot guess installation
// bases.
func NewLocatorFromEnv(logf func(format string, args ...any)) (*Locator, error) {
	x86, err := requiredEnv("ProgramFiles(x86)")
	if err != nil {
		return nil, err
	}
	pf, err := requiredEnv("ProgramFiles")
	if err != nil {
		return nil, err
	}
	return &Locator{
		programFilesX86: x86,
		searchRoots:     []string{x86, pf},
		Logf:            logf,
	}, nil
}

// NewLocator builds a Locator over explicit roots. Used by tests and by
// callers that already resolved the bases.
func NewLocator(programFilesX86 string, searchRoots []string, logf func(format string, args ...any)) *Locator {
	return &Locator{programFilesX86: programFilesX86, searchRoots: searchRoots, Logf: logf}
}

func requiredEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("the environment variable %s isn't set or is invalid", key)
	}
	return v, nil
}

func (l *Locator) debugf(format string, args ...any) {
	if l.Logf != nil {
		l.Logf(format, args...)
	}
}

// vswhereQuery is the external installation-locator invocation. Swapped in
// tests.
var vswhereQuery = runVSWhere

func runVSWhere(args []string, searchPath string) (string, error) {
	cmd := exec.Command("vswhere", args...)
	if searchPath != "" {
		cmd.Env = append(os.Environ(), "PATH="+searchPath)
	}
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("vswhere failed: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return out.String(), nil
}

// installerDir is the standard location of vswhere, appended to the query
// PATH in case it is not already reachable.
func (l *Locator) installerDir() string {
	return filepath.Join(l.programFilesX86, "Microsoft Visual Studio", "Installer")
}

// querySearchPath returns the PATH used for the vswhere invocation: the
// process PATH extended with the standard installer directory.
func (l *Locator) querySearchPath() string {
	base := os.Getenv("PATH")
	if base == "" {
		return l.installerDir()
	}
	return base + string(os.PathListSeparator) + l.installerDir()
}

// findWithVSWhere asks vswhere for an installation root matching the
// selector and resolves the configuration script under it. Any failure here
// means "try the next strategy", never a fatal error.
func (l *Locator) findWithVSWhere(selector string) (string, error) {
	window, err := VersionWindow(selector)
	if err != nil {
		return "", err
	}
	args := []string{"-products", "*"}
	if window != "" {
		args = append(args, "-version", window)
	} else {
		args = append(args, "-latest")
	}
	args = append(args, "-prerelease", "-property", "installationPath", "-utf8")
	l.debugf("vswhere query: vswhere %s", strings.Join(args, " "))

	out, err := vswhereQuery(args, l.querySearchPath())
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(out)
	l.debugf("vswhere output: %s", path)
	if path == "" {
		return "", fmt.Errorf("vswhere returned no installation path")
	}
	// vswhere prints its own usage banner when invoked with arguments it does
	// not understand, and still exits zero.
	if strings.Contains(path, "Visual Studio Locator") || strings.Contains(path, "Copyright (C)") {
		return "", fmt.Errorf("query to vswhere failed:\n\t%s", path)
	}
	return ResolveScript(path)
}

// FindConfigScript locates the environment-configuration script for the
// given version selector (year, dotted version number, or empty for the
// newest installation). Returns ErrNotFound when every strategy fails.
func (l *Locator) FindConfigScript(selector string) (string, error) {
	if path, err := l.findWithVSWhere(selector); err == nil {
		l.debugf("found with vswhere: %s", path)
		return path, nil
	} else {
		l.debugf("not found with vswhere: %v", err)
	}

	// Probe the standard installation locations, newest year first.
	years := vsYears
	if selector != "" {
		years = []string{YearForVersion(VersionForSelector(selector))}
	}
	for _, root := range l.searchRoots {
		for _, year := range years {
			for _, edition := range vsEditions {
				candidate := filepath.Join(root, "Microsoft Visual Studio", year, edition, scriptRelDir, scriptName)
				l.debugf("trying standard location: %s", candidate)
				if fileExists(candidate) {
					l.debugf("found standard location: %s", candidate)
					return candidate, nil
				}
			}
		}
	}

	// Visual Studio 2015 and earlier shipped a standalone build-tools script.
	legacy := filepath.Join(l.programFilesX86, "Microsoft Visual C++ Build Tools", "vcbuildtools.bat")
	if fileExists(legacy) {
		l.debugf("found legacy build tools: %s", legacy)
		return legacy, nil
	}
	l.debugf("not found in legacy location: %s", legacy)

	return "", ErrNotFound
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !st.IsDir()
}
