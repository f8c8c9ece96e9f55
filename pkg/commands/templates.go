package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/catalog"
)

func addTemplates(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the starter templates usable with add --from-template",
		Example: `
promptdb templates
promptdb add --from-template "SWOT Analysis"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 64
			b := color.New(color.Bold)
			tbl.AddRow(b.Sprint("Title"), b.Sprint("Category"), b.Sprint("Description"))
			for _, d := range catalog.Starters() {
				tbl.AddRow(d.Title, string(d.Category), d.Description)
			}
			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
