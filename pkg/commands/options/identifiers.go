package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show prompt identifiers.")
}

// RequireIDArg makes the first positional argument the prompt id.
func RequireIDArg(o *IDOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("a prompt id is required")
		}
		o.ID = args[0]
		return nil
	}
}

// OptionalIDArg accepts an id as the first positional argument.
func OptionalIDArg(o *IDOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			o.ID = args[0]
		}
		return nil
	}
}
