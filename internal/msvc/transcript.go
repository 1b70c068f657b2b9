package msvc

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// The configuration script's only supported interface is "mutate the calling
// shell's environment", so the environment is captured inside the same shell
// invocation that runs it: dump, run, dump, with a stage separator between.

// stageSeparator delimits the three transcript stages. A form feed cannot
// appear in ordinary environment-variable text; on Windows it is what cls
// emits when stdout is not a console.
const stageSeparator = byte(0x0C)

// errorMarker flags a script output line as an error. vcvarsall prints these
// and still exits zero.
const errorMarker = "[ERROR"

// benignUsageLine is emitted by some vcvarsall releases even on successful
// invocations and must not be treated as a failure.
const benignUsageLine = "Error in script usage. the correct usage is:"

// transcriptScript renders the one-line composite script: dump the
// environment, run the configuration script, dump again.
func transcriptScript(scriptPath string, args []string) string {
	if runtime.GOOS == "windows" {
		return "set && cls && call " + ScriptInvocation(scriptPath, args) + " && cls && set\r\n"
	}
	// POSIX hosts source the script so its exports land in the transcript
	// shell. Arguments are passed by setting the positional parameters, which
	// `.` itself cannot do portably.
	line := "env && printf '\\f'"
	if len(args) > 0 {
		line += " && set -- " + strings.Join(args, " ")
	}
	line += ` && . "` + scriptPath + `" && printf '\f' && env`
	return line + "\n"
}

// runHostShell executes the composite script file through the host shell in
// a non-interactive, captured-output child. Swapped in tests.
var runHostShell = execHostShell

func execHostShell(scriptFile string) (stdout, stderr []byte, err error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", scriptFile)
	} else {
		cmd = exec.Command("sh", scriptFile)
	}
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err = cmd.Run()
	return out.Bytes(), errb.Bytes(), err
}

// SplitTranscript cuts the captured stdout on the stage separator. Anything
// other than exactly three stages means the script crashed, printed
// unexpected output, or the separator collided with real content.
func SplitTranscript(output []byte) (before, script, after string, err error) {
	parts := bytes.Split(output, []byte{stageSeparator})
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: expected 3 stages, got %d", ErrMalformedTranscript, len(parts))
	}
	return string(parts[0]), string(parts[1]), string(parts[2]), nil
}

// ScanScriptErrors inspects the configuration script's own output for
// error-marked lines. The one known benign usage line is excluded; any other
// marked line fails the run, because the script reports usage errors without
// a failing exit status.
func ScanScriptErrors(scriptOutput string) error {
	var marked []string
	for _, line := range strings.Split(scriptOutput, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.Contains(line, errorMarker) && !strings.Contains(line, benignUsageLine) {
			marked = append(marked, line)
		}
	}
	if len(marked) > 0 {
		return &UsageError{Lines: marked}
	}
	return nil
}

// RunAndDiff runs the configuration script with the given arguments inside a
// transcript shell and returns the environment variables it changed or
// introduced. logf may be nil.
func RunAndDiff(scriptPath string, args []string, logf func(format string, a ...any)) (map[string]string, error) {
	debugf := func(format string, a ...any) {
		if logf != nil {
			logf(format, a...)
		}
	}

	contents := transcriptScript(scriptPath, args)
	debugf("transcript script: %s", strings.TrimSpace(contents))

	suffix := ".sh"
	if runtime.GOOS == "windows" {
		suffix = ".bat"
	}
	tmp, err := os.CreateTemp("", "vsenv-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("create transcript script: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(contents); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write transcript script: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close transcript script: %w", err)
	}

	stdout, stderr, err := runHostShell(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("run configuration script: %w: %s", err, strings.TrimSpace(string(stderr)))
	}

	beforeBlock, scriptOutput, afterBlock, err := SplitTranscript(stdout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(stderr)))
	}
	debugf("configuration script output:\n%s", scriptOutput)

	if err := ScanScriptErrors(scriptOutput); err != nil {
		return nil, err
	}

	before := ParseSnapshot(beforeBlock)
	after := ParseSnapshot(afterBlock)
	diff := Diff(before, after)
	for _, name := range SortedNames(diff) {
		debugf("changed: %s=%s", name, diff[name])
	}
	return diff, nil
}
