package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/runner/versions"
)

func addVersions(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	restore := -1

	cmd := &cobra.Command{
		Use:   "versions <id>",
		Short: "List a custom prompt's stored versions, or restore one",
		Example: `
promptdb versions custom-1724832000000
promptdb versions custom-1724832000000 --restore 0
`,
		Args: options.RequireIDArg(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return err
			}
			r := versions.Versions{
				ID:      io.ID,
				Restore: restore,
				ShowID:  io.ShowID,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().IntVar(&restore, "restore", -1,
		"Restore the version at this index. The current state is versioned first.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
