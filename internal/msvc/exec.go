package msvc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// resolveExecutable resolves the child program against the process
// environment as updated by ApplyDiff, so programs that only exist on the
// configured PATH (cl, link, msbuild) are found. Names containing a path
// separator are resolved relative to the working directory.
func resolveExecutable(cmd string) (string, error) {
	if cmd == "" {
		return "", errors.New("empty program name")
	}
	if filepath.IsAbs(cmd) {
		if err := ensureExecutable(cmd); err != nil {
			return "", err
		}
		return cmd, nil
	}
	if strings.ContainsRune(cmd, os.PathSeparator) || strings.ContainsRune(cmd, '/') {
		abs, err := filepath.Abs(cmd)
		if err != nil {
			return "", err
		}
		if err := ensureExecutable(abs); err != nil {
			return "", err
		}
		return abs, nil
	}

	dirs := strings.Split(os.Getenv("PATH"), string(os.PathListSeparator))
	candidates := []string{cmd}
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(cmd), ".exe") {
		candidates = append([]string{cmd + ".exe"}, candidates...)
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, c := range candidates {
			abs, err := filepath.Abs(filepath.Join(dir, c))
			if err != nil {
				continue
			}
			if ensureExecutable(abs) == nil {
				return abs, nil
			}
		}
	}

	return "", fmt.Errorf("executable %q not found on PATH", cmd)
}

func ensureExecutable(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if runtime.GOOS == "windows" {
		return nil
	}
	if st.Mode()&0o111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}
	return nil
}
