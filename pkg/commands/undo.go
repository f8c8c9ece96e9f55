package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/runner/undo"
)

func addUndo(topLevel *cobra.Command) {
	undoCmd := &cobra.Command{
		Use:   "undo",
		Short: "Step the custom collection back one change",
		Long: "Step the custom collection back one change.\n\n" +
			"History lives in memory for the session, so undo is most useful\n" +
			"inside 'promptdb shell'.",
		Example: `
promptdb shell
> remove custom-1724832000000
> undo
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return err
			}
			r := undo.Undo{Service: s}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	options.AddOutputArg(undoCmd, output)
	topLevel.AddCommand(undoCmd)

	redoCmd := &cobra.Command{
		Use:   "redo",
		Short: "Re-apply the most recently undone change",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return err
			}
			r := undo.Undo{Redo: true, Service: s}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	options.AddOutputArg(redoCmd, output)
	topLevel.AddCommand(redoCmd)
}
