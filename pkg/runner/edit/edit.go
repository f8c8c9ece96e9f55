package edit

import (
	"context"
	"fmt"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/printers"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// Edit applies a partial update to a custom prompt. Unset fields keep
// their current value; the prior state becomes a stored version.
type Edit struct {
	ID string

	Title       *string
	Description *string
	Body        *string
	Category    *string
	Tags        *[]string

	ShowID bool

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	id, err := prompt.ParseID(n.ID)
	if err != nil {
		return err
	}
	if !id.Custom() {
		return prompt.ErrImmutable
	}
	p, err := n.Service.Get(id)
	if err != nil {
		return err
	}

	d := prompt.Draft{
		Title:       p.Title,
		Description: p.Description,
		Body:        p.Body,
		Category:    p.Category,
		Tags:        p.Tags,
	}
	if n.Title != nil {
		d.Title = *n.Title
	}
	if n.Description != nil {
		d.Description = *n.Description
	}
	if n.Body != nil {
		d.Body = *n.Body
	}
	if n.Category != nil {
		c, err := prompt.ParseCategory(*n.Category)
		if err != nil {
			return err
		}
		d.Category = c
	}
	if n.Tags != nil {
		d.Tags = *n.Tags
	}

	err = n.Service.Update(id, d)
	if err != nil && !app.IsWarning(err) {
		return err
	}

	updated, getErr := n.Service.Get(id)
	if getErr != nil {
		return getErr
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Detail(updated, n.Service.Tracker.IsFavorite(id))
	if app.IsWarning(err) {
		fmt.Printf("warning: %v\n", err)
	}
	return nil
}
