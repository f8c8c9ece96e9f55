package undo

import (
	"context"
	"fmt"

	"github.com/rajatvarna/PromptDB/pkg/app"
)

// Undo steps the custom collection back or forward through the history
// stacks. With nothing to step to it reports silently and succeeds.
type Undo struct {
	Redo bool

	Service *app.Service
}

func (n *Undo) Do(ctx context.Context) error {
	undo, redo := n.Service.History.Depth()

	var err error
	switch {
	case n.Redo && redo == 0:
		fmt.Println("nothing to redo")
		return nil
	case !n.Redo && undo == 0:
		fmt.Println("nothing to undo")
		return nil
	case n.Redo:
		err = n.Service.Redo()
	default:
		err = n.Service.Undo()
	}
	if err != nil && !app.IsWarning(err) {
		return err
	}

	undo, redo = n.Service.History.Depth()
	verb := "undo"
	if n.Redo {
		verb = "redo"
	}
	fmt.Printf("%s done; %d undo / %d redo steps remain\n", verb, undo, redo)
	if app.IsWarning(err) {
		fmt.Printf("warning: %v\n", err)
	}
	return nil
}
