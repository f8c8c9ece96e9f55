package run

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/genai"
	"github.com/rajatvarna/PromptDB/pkg/printers"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
	"github.com/rajatvarna/PromptDB/pkg/template"
)

// Run renders a prompt with the supplied variable values and executes it
// against the model. DryRun stops after rendering; Optimize first asks
// the model to rewrite the rendered prompt.
type Run struct {
	ID       string
	Values   map[string]string
	Optimize bool
	DryRun   bool

	Client  genai.Client
	Service *app.Service
}

func (n *Run) Do(ctx context.Context) error {
	id, err := prompt.ParseID(n.ID)
	if err != nil {
		return err
	}
	p, err := n.Service.Get(id)
	if err != nil {
		return err
	}

	rendered := template.Render(p.Body, n.Values)
	if missing := template.Extract(rendered); len(missing) > 0 {
		pp := printers.PrettyPrint{}
		pp.Variables(missing)
	}

	if n.Optimize {
		if n.Client == nil {
			return genai.ErrNoAPIKey
		}
		rendered, err = genai.Optimize(ctx, n.Client, rendered)
		if err != nil {
			return err
		}
	}

	if n.DryRun {
		fmt.Println(rendered)
		return nil
	}
	if n.Client == nil {
		return genai.ErrNoAPIKey
	}

	out, err := n.Client.Generate(ctx, rendered)
	if err != nil {
		return err
	}
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(p.Title)
	fmt.Println(out)
	return nil
}
