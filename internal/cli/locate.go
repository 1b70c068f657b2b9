// internal/cli/locate.go

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devshell-tools/vsenv/internal/msvc"
)

// locateCmd diagnoses discovery: it prints the configuration-script path
// that run/exec/env would use, without running it.
var locateCmd = &cobra.Command{
	Use:   "locate [flags]",
	Short: "Print the path of the configuration script that would be used",
	Example: `
  vsenv locate
  vsenv locate --vsversion 2017 --verbose
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildRequest(cmd)
		if err != nil {
			return err
		}
		locator, err := msvc.NewLocatorFromEnv(debugf)
		if err != nil {
			return err
		}
		path, err := locator.FindConfigScript(req.VSVersion)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
