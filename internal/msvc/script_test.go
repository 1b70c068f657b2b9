package msvc

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveScriptRequiresExistingScript(t *testing.T) {
	if _, err := ResolveScript(t.TempDir()); err == nil {
		t.Fatalf("expected error for root without a configuration script")
	}
}

func TestResolveScriptReturnsAbsolutePath(t *testing.T) {
	root := t.TempDir()
	writeScript(t, filepath.Join(root, "VC", "Auxiliary", "Build", "vcvarsall.bat"))

	got, err := ResolveScript(root)
	if err != nil {
		t.Fatalf("ResolveScript: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("path %q is not absolute", got)
	}
	if filepath.Base(got) != "vcvarsall.bat" {
		t.Fatalf("path=%q", got)
	}
}

func TestScriptInvocationQuotesPathOnly(t *testing.T) {
	got := ScriptInvocation(`C:\Program Files\VS\vcvarsall.bat`, []string{"x64", "uwp"})
	want := `"C:\Program Files\VS\vcvarsall.bat" x64 uwp`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if strings.Count(got, `"`) != 2 {
		t.Fatalf("arguments must not be quoted: %q", got)
	}
}
