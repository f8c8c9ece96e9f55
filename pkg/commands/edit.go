package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
	"github.com/rajatvarna/PromptDB/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	do := &options.DraftOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a custom prompt, keeping the old fields as a version",
		Example: `
promptdb edit custom-1724832000000 -t "New title"
promptdb edit custom-1724832000000 --tags "dcf, valuation"
`,
		Args: options.RequireIDArg(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return err
			}
			r := edit.Edit{
				ID:      io.ID,
				ShowID:  io.ShowID,
				Service: s,
			}
			// Only fields whose flag was set take part in the update.
			if cmd.Flags().Changed("title") {
				r.Title = &do.Title
			}
			if cmd.Flags().Changed("description") {
				r.Description = &do.Description
			}
			if cmd.Flags().Changed("body") {
				r.Body = &do.Body
			}
			if cmd.Flags().Changed("category") {
				r.Category = &do.Category
			}
			if cmd.Flags().Changed("tags") {
				tags := prompt.SplitTags(do.Tags)
				r.Tags = &tags
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddDraftArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
