package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DraftOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a prompt to the library",
		Example: `
promptdb add -t "DCF Walkthrough" -d "Step by step DCF" -b "Build a DCF for [Company]." -c Valuation
promptdb add --from-template "SWOT Analysis"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return err
			}
			d, err := do.Draft()
			if err != nil {
				return output.HandleError(err)
			}
			r := add.Add{
				Draft:        d,
				FromTemplate: do.FromTemplate,
				ShowID:       io.ShowID,
				Service:      s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddDraftArgs(cmd, do)
	options.AddFromTemplateArg(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
