// internal/cli/run.go

package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// runCmd is the explicit form of the root command's default behavior.
var runCmd = &cobra.Command{
	Use:   "run [flags] -- <program> [args...]",
	Short: "Run a program under the configured developer environment",
	Long:  "Configure the Visual C++ developer environment in-process, then spawn the program with the configured environment inherited. The program's exit code is propagated; on Unix hosts a signal-terminated child exits as 128+signal.",
	Example: `
  vsenv run -- cl /c main.c
  vsenv run --arch x86 --vsversion 2019 -- msbuild app.sln
  vsenv run --toolset 14.29 -- nmake
`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("missing program; usage: vsenv run [flags] -- <program> [args...]")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return configureAndLaunch(cmd, args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
