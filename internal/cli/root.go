// internal/cli/root.go

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfg "github.com/devshell-tools/vsenv/internal/config"
	"github.com/devshell-tools/vsenv/internal/msvc"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagColor   string

	flagArch      string
	flagSDK       string
	flagSpectre   bool
	flagToolset   string
	flagUWP       bool
	flagVSVersion string
)

// rootCmd represents the base command. Invoked without a subcommand it
// behaves like `vsenv run`.
var rootCmd = &cobra.Command{
	Use:   "vsenv [flags] -- <program> [args...]",
	Short: "Run a command under a configured Visual Studio developer environment",
	Long: `vsenv locates your Visual C++ installation, runs its environment-configuration
script (vcvarsall.bat), captures the environment variables it establishes, and
launches the given program with only the changed or newly-added variables
exported. Repeated invocations do not grow PATH-like variables.

Defaults can be kept in a vsenv.toml file (found from the working directory
upward) or in VSENV_* environment variables; explicit flags win.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configureColor(flagColor)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return configureAndLaunch(cmd, args[0], args[1:])
	},
}

// Execute runs the CLI. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errorf("%s", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "print discovery and diff diagnostics to stderr")
	pf.StringVar(&flagColor, "color", "auto", "colorize diagnostics (auto|always|never)")
	pf.StringVar(&flagArch, "arch", cfg.DefaultArch, "target architecture (x64, x86, arm64, ...; aliases like win64 accepted)")
	pf.StringVar(&flagSDK, "sdk", "", "Windows SDK number to build for")
	pf.BoolVar(&flagSpectre, "spectre", false, "enable Spectre mitigations")
	pf.StringVar(&flagToolset, "toolset", "", "VC++ compiler toolset version")
	pf.BoolVar(&flagUWP, "uwp", false, "build for the Universal Windows Platform")
	pf.StringVar(&flagVSVersion, "vsversion", "", "Visual Studio version: a year (2019) or a version number (16.0)")
}

// buildRequest merges vsenv.toml / VSENV_* defaults with explicit flags.
// A flag that was set on the command line always wins over the settings.
func buildRequest(cmd *cobra.Command) (msvc.Request, error) {
	settings, path, err := cfg.Load("")
	if err != nil {
		return msvc.Request{}, err
	}
	if path != "" {
		debugf("settings loaded from %s", path)
	}

	// The toolchain flags are persistent on the root command; pflag marks
	// Changed on the shared flag objects, so this works both during Execute
	// and when called directly.
	flags := cmd.Root().PersistentFlags()
	arch := settings.Arch
	if flags.Changed("arch") {
		arch = flagArch
	}
	sdk := settings.SDK
	if flags.Changed("sdk") {
		sdk = flagSDK
	}
	spectre := settings.Spectre
	if flags.Changed("spectre") {
		spectre = flagSpectre
	}
	toolset := settings.Toolset
	if flags.Changed("toolset") {
		toolset = flagToolset
	}
	uwp := settings.UWP
	if flags.Changed("uwp") {
		uwp = flagUWP
	}
	vsversion := settings.VSVersion
	if flags.Changed("vsversion") {
		vsversion = flagVSVersion
	}

	req := msvc.NewRequest(arch, vsversion, sdk, toolset, uwp, spectre)
	debugf("request: arch=%s vsversion=%q sdk=%q toolset=%q uwp=%t spectre=%t",
		req.Arch, req.VSVersion, req.SDK, req.Toolset, req.UWP, req.Spectre)
	return req, nil
}

// configureAndLaunch is the full pipeline shared by the root, run and exec
// commands: configure the process environment, then hand control to the
// child and propagate its exit code.
func configureAndLaunch(cmd *cobra.Command, program string, args []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	if err := msvc.Configure(req, debugf); err != nil {
		return err
	}
	debugf("launching %q with args %v", program, args)
	code, err := msvc.Launch(program, args, debugf)
	if err != nil {
		return err
	}
	os.Exit(code)
	return nil // unreachable
}

// errorf prints a fatal error to stderr in the standard error shape.
func errorf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", a...)
}
