package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/genai"
	"github.com/rajatvarna/PromptDB/pkg/runner/run"
)

func addRun(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.VarsOptions{}
	optimize := false
	dryRun := false

	cmd := &cobra.Command{
		Use:   "run <id>",
		Short: "Render a prompt and execute it against the model",
		Long: "Render a prompt by filling its [bracket] variables and execute it\n" +
			"against the configured model. Use --dry-run to print the rendered\n" +
			"prompt without calling the model.",
		Example: `
promptdb run 3 --var "Company=ACME Corp" --var "Stock Ticker=ACME"
promptdb run custom-1724832000000 --dry-run
promptdb run 5 --optimize --var Industry=semiconductors
`,
		Args: options.RequireIDArg(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := newService()
			if err != nil {
				return err
			}
			values, err := vo.Values()
			if err != nil {
				return output.HandleError(err)
			}

			var client genai.Client
			if !dryRun || optimize {
				c, err := genai.New(genai.Config{Model: cfg.Model()})
				if err != nil {
					return output.HandleError(err)
				}
				client = c
			}

			r := run.Run{
				ID:       io.ID,
				Values:   values,
				Optimize: optimize,
				DryRun:   dryRun,
				Client:   client,
				Service:  s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddVarsArgs(cmd, vo)
	cmd.Flags().BoolVar(&optimize, "optimize", false,
		"Ask the model to improve the rendered prompt first.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Print the rendered prompt instead of executing it.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
