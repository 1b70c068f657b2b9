package msvc

import (
	"errors"
	"strings"
	"testing"
)

func transcriptBytes(stages ...string) []byte {
	return []byte(strings.Join(stages, string(stageSeparator)))
}

func TestSplitTranscriptThreeStages(t *testing.T) {
	before, script, after, err := SplitTranscript(transcriptBytes("A=1\n", "banner\n", "A=2\n"))
	if err != nil {
		t.Fatalf("SplitTranscript: %v", err)
	}
	if before != "A=1\n" || script != "banner\n" || after != "A=2\n" {
		t.Fatalf("stages=%q %q %q", before, script, after)
	}
}

func TestSplitTranscriptRejectsWrongStageCount(t *testing.T) {
	for _, stages := range [][]string{
		{"A=1\n", "banner\n"},
		{"A=1\n", "banner\n", "A=2\n", "extra\n"},
	} {
		_, _, _, err := SplitTranscript(transcriptBytes(stages...))
		if !errors.Is(err, ErrMalformedTranscript) {
			t.Fatalf("stages=%d err=%v, want ErrMalformedTranscript", len(stages), err)
		}
	}
}

func TestScanScriptErrorsIgnoresBenignUsageLine(t *testing.T) {
	out := "[ERROR:vcvarsall.bat] Error in script usage. the correct usage is:\r\nUsage: vcvarsall.bat ...\r\n"
	if err := ScanScriptErrors(out); err != nil {
		t.Fatalf("benign usage line must not fail: %v", err)
	}
}

func TestScanScriptErrorsReportsMarkedLinesVerbatim(t *testing.T) {
	bad := `[ERROR:vcvarsall.bat] Invalid argument "sparc"`
	err := ScanScriptErrors("fluff\r\n" + bad + "\r\n")
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("err=%v, want UsageError", err)
	}
	if len(usage.Lines) != 1 || usage.Lines[0] != bad {
		t.Fatalf("lines=%q", usage.Lines)
	}
	if !strings.Contains(usage.Error(), bad) {
		t.Fatalf("message %q should carry the offending line", usage.Error())
	}
}

func TestRunAndDiffComputesChangesFromTranscript(t *testing.T) {
	old := runHostShell
	t.Cleanup(func() { runHostShell = old })

	runHostShell = func(scriptFile string) ([]byte, []byte, error) {
		return transcriptBytes(
			"A=1\nPATH=C:\\old\n",
			"** banner **\n",
			"A=1\nPATH=C:\\msvc;C:\\old\nINCLUDE=C:\\A;C:\\A;C:\\B\n",
		), nil, nil
	}

	diff, err := RunAndDiff(`C:\vs\vcvarsall.bat`, []string{"x64"}, nil)
	if err != nil {
		t.Fatalf("RunAndDiff: %v", err)
	}
	if diff["PATH"] != `C:\msvc;C:\old` {
		t.Fatalf("PATH=%q", diff["PATH"])
	}
	if diff["INCLUDE"] != `C:\A;C:\A;C:\B` {
		t.Fatalf("INCLUDE=%q (normalization happens at apply time)", diff["INCLUDE"])
	}
	if _, ok := diff["A"]; ok {
		t.Fatalf("unchanged A must not be in the diff")
	}
}

func TestRunAndDiffFailsOnUsageError(t *testing.T) {
	old := runHostShell
	t.Cleanup(func() { runHostShell = old })

	runHostShell = func(scriptFile string) ([]byte, []byte, error) {
		return transcriptBytes("A=1\n", "[ERROR:vcvarsall.bat] bad arch\n", "A=1\n"), nil, nil
	}

	_, err := RunAndDiff(`C:\vs\vcvarsall.bat`, []string{"sparc"}, nil)
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("err=%v, want UsageError", err)
	}
}

func TestRunAndDiffFailsOnMalformedOutput(t *testing.T) {
	old := runHostShell
	t.Cleanup(func() { runHostShell = old })

	runHostShell = func(scriptFile string) ([]byte, []byte, error) {
		return []byte("no separators at all\n"), []byte("stderr context"), nil
	}

	_, err := RunAndDiff(`C:\vs\vcvarsall.bat`, []string{"x64"}, nil)
	if !errors.Is(err, ErrMalformedTranscript) {
		t.Fatalf("err=%v, want ErrMalformedTranscript", err)
	}
	if !strings.Contains(err.Error(), "stderr context") {
		t.Fatalf("error %q should include captured stderr", err)
	}
}

func TestRunAndDiffSecondInvocationYieldsNoPathListGrowth(t *testing.T) {
	old := runHostShell
	t.Cleanup(func() { runHostShell = old })

	// First run: the script prepends its entries to a clean PATH-like var.
	runHostShell = func(scriptFile string) ([]byte, []byte, error) {
		return transcriptBytes("LIB=C:\\base\n", "", "LIB=C:\\msvc;C:\\base\n"), nil, nil
	}
	first, err := RunAndDiff(`C:\vs\vcvarsall.bat`, []string{"x64"}, nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	applied := NormalizePathList(first["LIB"])

	// Second run in the same process: the script prepends again on top of
	// the value applied after the first run.
	runHostShell = func(scriptFile string) ([]byte, []byte, error) {
		return transcriptBytes(
			"LIB="+applied+"\n",
			"",
			"LIB=C:\\msvc;"+applied+"\n",
		), nil, nil
	}
	second, err := RunAndDiff(`C:\vs\vcvarsall.bat`, []string{"x64"}, nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got := NormalizePathList(second["LIB"]); got != applied {
		t.Fatalf("second invocation changed LIB: %q -> %q", applied, got)
	}
}

func TestTranscriptScriptQuotesScriptPath(t *testing.T) {
	line := transcriptScript(`C:\Program Files\VS\vcvarsall.bat`, []string{"x64", "uwp"})
	if !strings.Contains(line, `"C:\Program Files\VS\vcvarsall.bat"`) {
		t.Fatalf("script path not quoted: %q", line)
	}
}
