package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List registered tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.app.Graph().TaskCount() == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks registered")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for task := range c.app.Graph().Tasks() {
				deps := make([]string, len(task.Dependencies))
				for i, d := range task.Dependencies {
					deps[i] = d.String()
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\n", task.Synopsis(), strings.Join(deps, ", "))
			}
			return w.Flush()
		},
	}
}
