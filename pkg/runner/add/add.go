package add

import (
	"context"
	"fmt"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/catalog"
	"github.com/rajatvarna/PromptDB/pkg/printers"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

type Add struct {
	Draft        prompt.Draft
	FromTemplate string
	ShowID       bool

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	d := n.Draft
	if n.FromTemplate != "" {
		starter, ok := catalog.StarterByTitle(n.FromTemplate)
		if !ok {
			return fmt.Errorf("no starter template named %q", n.FromTemplate)
		}
		d = merge(starter, n.Draft)
	}

	created, err := n.Service.Create(d)
	if err != nil && !app.IsWarning(err) {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Detail(created, false)
	if app.IsWarning(err) {
		fmt.Printf("warning: %v\n", err)
	}
	return nil
}

// merge overlays explicit draft fields on a starter template.
func merge(base, over prompt.Draft) prompt.Draft {
	if over.Title != "" {
		base.Title = over.Title
	}
	if over.Description != "" {
		base.Description = over.Description
	}
	if over.Body != "" {
		base.Body = over.Body
	}
	if over.Category != "" {
		base.Category = over.Category
	}
	if len(over.Tags) > 0 {
		base.Tags = over.Tags
	}
	return base
}
