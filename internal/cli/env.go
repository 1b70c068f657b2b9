// internal/cli/env.go

package cli

import (
	stdjson "encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devshell-tools/vsenv/internal/msvc"
)

var envJSON bool

// envCmd prints the computed environment diff without launching anything,
// so the result can be consumed by shells or other tooling.
var envCmd = &cobra.Command{
	Use:   "env [flags]",
	Short: "Print the environment changes the configuration script would make",
	Long:  "Run discovery and the configuration script, then print only the changed or newly-added environment variables (path-list variables deduplicated), one NAME=value per line. Nothing is applied to the current process.",
	Example: `
  vsenv env
  vsenv env --vsversion 2019 --json
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildRequest(cmd)
		if err != nil {
			return err
		}
		diff, scriptPath, err := msvc.ComputeDiff(req, debugf)
		if err != nil {
			return err
		}
		debugf("configuration script: %s", scriptPath)

		normalized := make(map[string]string, len(diff))
		for name, value := range diff {
			if msvc.IsPathListVariable(name) {
				value = msvc.NormalizePathList(value)
			}
			normalized[name] = value
		}

		if envJSON {
			js, err := stdjson.MarshalIndent(normalized, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(js))
			return nil
		}
		for _, name := range msvc.SortedNames(normalized) {
			fmt.Printf("%s=%s\n", name, normalized[name])
		}
		return nil
	},
}

func init() {
	envCmd.Flags().BoolVarP(&envJSON, "json", "j", false, "print machine-readable JSON")
	rootCmd.AddCommand(envCmd)
}
