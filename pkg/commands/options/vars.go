package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// VarsOptions collects repeated --var name=value pairs for rendering.
type VarsOptions struct {
	Pairs []string
}

func AddVarsArgs(cmd *cobra.Command, o *VarsOptions) {
	cmd.Flags().StringArrayVar(&o.Pairs, "var", nil,
		"Set a template variable, name=value. Repeatable.")
}

// Values parses the pairs into a map.
func (o *VarsOptions) Values() (map[string]string, error) {
	if len(o.Pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(o.Pairs))
	for _, pair := range o.Pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --var %q, expected name=value", pair)
		}
		out[strings.TrimSpace(name)] = value
	}
	return out, nil
}
