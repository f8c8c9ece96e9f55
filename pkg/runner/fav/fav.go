package fav

import (
	"context"
	"fmt"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// Fav toggles favorite membership for any prompt, built-in or custom.
type Fav struct {
	ID string

	Service *app.Service
}

func (n *Fav) Do(ctx context.Context) error {
	id, err := prompt.ParseID(n.ID)
	if err != nil {
		return err
	}
	p, err := n.Service.Get(id)
	if err != nil {
		return err
	}

	favorited, err := n.Service.ToggleFavorite(id)
	if err != nil && !app.IsWarning(err) {
		return err
	}
	if favorited {
		fmt.Printf("★ favorited %q\n", p.Title)
	} else {
		fmt.Printf("unfavorited %q\n", p.Title)
	}
	if app.IsWarning(err) {
		fmt.Printf("warning: %v\n", err)
	}
	return nil
}
