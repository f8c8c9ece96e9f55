package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/runner/fav"
)

func addFav(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "fav <id>",
		Aliases: []string{"favorite", "star"},
		Short:   "Toggle a prompt as a favorite",
		Example: `
promptdb fav 3
promptdb fav custom-1724832000000
`,
		Args: options.RequireIDArg(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return err
			}
			r := fav.Fav{
				ID:      io.ID,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
