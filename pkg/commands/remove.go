package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a custom prompt",
		Example: `
promptdb remove custom-1724832000000
`,
		Args: options.RequireIDArg(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return err
			}
			r := remove.Remove{
				ID:      io.ID,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
