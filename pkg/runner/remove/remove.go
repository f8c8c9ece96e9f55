package remove

import (
	"context"
	"fmt"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// Remove deletes a custom prompt and its versions. The deletion is
// undoable through the history stacks.
type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
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

	err = n.Service.Delete(id)
	if err != nil && !app.IsWarning(err) {
		return err
	}
	fmt.Printf("removed %q (%s)\n", p.Title, id)
	if app.IsWarning(err) {
		fmt.Printf("warning: %v\n", err)
	}
	return nil
}
