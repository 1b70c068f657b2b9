package msvc

import "fmt"

// ComputeDiff runs the full discovery pipeline for a request: locate the
// installation, resolve the configuration script, run it inside a transcript
// shell, and return the resulting environment diff together with the script
// path that was used. No process state is mutated.
func ComputeDiff(req Request, logf func(format string, a ...any)) (map[string]string, string, error) {
	locator, err := NewLocatorFromEnv(logf)
	if err != nil {
		return nil, "", err
	}
	scriptPath, err := locator.FindConfigScript(req.VSVersion)
	if err != nil {
		return nil, "", err
	}
	diff, err := RunAndDiff(scriptPath, req.ScriptArgs(), logf)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", scriptPath, err)
	}
	return diff, scriptPath, nil
}

// Configure computes the request's environment diff and applies it to the
// current process, so a subsequently spawned child inherits the configured
// environment.
func Configure(req Request, logf func(format string, a ...any)) error {
	diff, _, err := ComputeDiff(req, logf)
	if err != nil {
		return err
	}
	return ApplyDiff(diff)
}
