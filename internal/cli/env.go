package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdslim/internal/configloader"
)

func newEnvCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "List environment variables that configure mdslim",
		Long: `List every MDSLIM_* environment variable mdslim reads, with a
short description of each. Environment values are applied after
built-in defaults and before command-line flags.`,
		Run: func(cmd *cobra.Command, _ []string) {
			vars := configloader.ListEnvVars()

			names := make([]string, 0, len(vars))
			width := 0
			for name := range vars {
				names = append(names, name)
				if len(name) > width {
					width = len(name)
				}
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintf(out, "%-*s  %s\n", width, name, vars[name])
			}
		},
	}

	return cmd
}
