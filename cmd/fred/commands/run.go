package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var rawArgs []string

	cmd := &cobra.Command{
		Use:   "run <task>",
		Short: "Run a task after its dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			supplied, err := parseArguments(rawArgs)
			if err != nil {
				return err
			}

			result, err := c.app.Execute(cmd.Context(), args[0], supplied)
			if err != nil {
				return err
			}
			if result != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&rawArgs, "arg", "a", nil, "Task argument as key=value (repeatable)")
	return cmd
}

// parseArguments turns key=value pairs into a named arguments map.
// A later pair overrides an earlier one with the same key.
func parseArguments(pairs []string) (map[string]any, error) {
	supplied := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "argument must be key=value"), "arg", pair)
		}
		supplied[key] = value
	}
	return supplied, nil
}
