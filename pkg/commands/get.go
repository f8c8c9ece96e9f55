package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "List prompts, or show one in full",
		Example: `
promptdb get
promptdb get --search moat --sort az
promptdb get --category Valuation --favorites
promptdb get custom-1724832000000
`,
		Args: options.OptionalIDArg(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return err
			}
			q, err := qo.Query()
			if err != nil {
				return output.HandleError(err)
			}
			r := get.Get{
				ID:      io.ID,
				Query:   q,
				ShowID:  io.ShowID,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddQueryArgs(cmd, qo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
