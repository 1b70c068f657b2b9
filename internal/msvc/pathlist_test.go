package msvc

import "testing"

func TestNormalizePathListKeepsFirstOccurrence(t *testing.T) {
	got := NormalizePathList(`C:\A;C:\B;C:\A;C:\C;C:\B`)
	want := `C:\A;C:\B;C:\C`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNormalizePathListPreservesShadowingOrder(t *testing.T) {
	// The first entry must keep winning lookups after normalization.
	got := NormalizePathList(`C:\new\bin;C:\old\bin;C:\new\bin`)
	want := `C:\new\bin;C:\old\bin`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNormalizePathListIdempotent(t *testing.T) {
	once := NormalizePathList(`C:\A;C:\A;C:\B`)
	twice := NormalizePathList(once)
	if once != twice {
		t.Fatalf("second pass changed value: %q -> %q", once, twice)
	}
}

func TestNormalizePathListNoDuplicates(t *testing.T) {
	if got := NormalizePathList(`C:\A;C:\B`); got != `C:\A;C:\B` {
		t.Fatalf("got %q", got)
	}
}

func TestIsPathListVariable(t *testing.T) {
	for _, name := range []string{"PATH", "Path", "include", "LIB", "LibPath"} {
		if !IsPathListVariable(name) {
			t.Fatalf("%s should be a path-list variable", name)
		}
	}
	for _, name := range []string{"TEMP", "VSINSTALLDIR", "PATHEXT"} {
		if IsPathListVariable(name) {
			t.Fatalf("%s should not be a path-list variable", name)
		}
	}
}
