package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/runner/rate"
)

func addRate(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	score := 0

	cmd := &cobra.Command{
		Use:   "rate <id> <score>",
		Short: "Rate a custom prompt from 1 to 5",
		Example: `
promptdb rate custom-1724832000000 5
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return err
			}
			io.ID = args[0]
			var err error
			score, err = strconv.Atoi(args[1])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return err
			}
			r := rate.Rate{
				ID:      io.ID,
				Score:   score,
				Service: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
