package msvc

import "strings"

// Request captures one toolchain-environment request. Construct it with
// NewRequest; fields are not modified afterwards.
type Request struct {
	// Arch is the canonical target architecture (x86, x64, arm, arm64, or a
	// cross tuple like x64_arm64).
	Arch string
	// VSVersion selects the Visual Studio installation: a year ("2022") or a
	// dotted version number ("17.0"). Empty means latest available.
	VSVersion string
	// SDK optionally pins the Windows SDK, passed through verbatim.
	SDK string
	// Toolset optionally pins the VC++ compiler toolset version.
	Toolset string
	// UWP targets the Universal Windows Platform.
	UWP bool
	// Spectre selects the Spectre-mitigated libraries.
	Spectre bool
}

// archAliases maps common alternative spellings onto the names vcvarsall
// understands. Matching ignores case.
var archAliases = map[string]string{
	"win32":  "x86",
	"win64":  "x64",
	"x86_64": "x64",
	"x86-64": "x64",
}

// NormalizeArch lowercases the requested architecture and resolves aliases.
func NormalizeArch(arch string) string {
	lower := strings.ToLower(strings.TrimSpace(arch))
	if canonical, ok := archAliases[lower]; ok {
		return canonical
	}
	return lower
}

// NewRequest builds a Request with the architecture normalized.
func NewRequest(arch, vsversion, sdk, toolset string, uwp, spectre bool) Request {
	return Request{
		Arch:      NormalizeArch(arch),
		VSVersion: strings.TrimSpace(vsversion),
		SDK:       strings.TrimSpace(sdk),
		Toolset:   strings.TrimSpace(toolset),
		UWP:       uwp,
		Spectre:   spectre,
	}
}

// ScriptArgs returns the positional arguments for the configuration script,
// in the order vcvarsall expects them.
func (r Request) ScriptArgs() []string {
	args := []string{r.Arch}
	if r.UWP {
		args = append(args, "uwp")
	}
	if r.SDK != "" {
		args = append(args, r.SDK)
	}
	if r.Toolset != "" {
		args = append(args, "-vcvars_ver="+r.Toolset)
	}
	if r.Spectre {
		args = append(args, "-vcvars_spectre_libs=spectre")
	}
	return args
}
