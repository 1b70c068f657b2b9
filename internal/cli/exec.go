// internal/cli/exec.go

package cli

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

// execCmd accepts the child as a single shell-style command string, which is
// convenient when the invocation is itself built by another tool.
var execCmd = &cobra.Command{
	Use:   `exec [flags] "<command line>"`,
	Short: "Run a quoted command line under the configured developer environment",
	Example: `
  vsenv exec "cl /c main.c"
  vsenv exec --vsversion 2022 "msbuild app.sln /p:Configuration=Release"
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		argv, err := shlex.Split(args[0])
		if err != nil {
			return fmt.Errorf("parse command: %w", err)
		}
		if len(argv) == 0 {
			return errors.New("command must be non-empty")
		}
		return configureAndLaunch(cmd, argv[0], argv[1:])
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
