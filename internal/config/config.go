// internal/config/config.go

package config

// Settings holds the persistent defaults for a toolchain-environment
// request. Every field can also be set per-invocation through the matching
// flag, and through the environment as VSENV_<NAME>.
type Settings struct {
	Arch      string `mapstructure:"arch"`
	SDK       string `mapstructure:"sdk"`
	Spectre   bool   `mapstructure:"spectre"`
	Toolset   string `mapstructure:"toolset"`
	UWP       bool   `mapstructure:"uwp"`
	VSVersion string `mapstructure:"vsversion"`
}

// DefaultArch is the architecture used when nothing selects one.
const DefaultArch = "x64"

// FileName is the settings file searched for from the working directory
// upward.
const FileName = "vsenv.toml"
