package versions

import (
	"context"
	"fmt"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/printers"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// Versions lists a custom prompt's stored versions, or restores one by
// index when Restore is non-negative.
type Versions struct {
	ID      string
	Restore int

	ShowID bool

	Service *app.Service
}

func (n *Versions) Do(ctx context.Context) error {
	id, err := prompt.ParseID(n.ID)
	if err != nil {
		return err
	}

	if n.Restore >= 0 {
		err := n.Service.RestoreVersion(id, n.Restore)
		if err != nil && !app.IsWarning(err) {
			return err
		}
		p, getErr := n.Service.Get(id)
		if getErr != nil {
			return getErr
		}
		pp := printers.PrettyPrint{ShowID: n.ShowID}
		pp.Detail(p, n.Service.Tracker.IsFavorite(id))
		if app.IsWarning(err) {
			fmt.Printf("warning: %v\n", err)
		}
		return nil
	}

	p, err := n.Service.Get(id)
	if err != nil {
		return err
	}
	vs, err := n.Service.Versions(id)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Versions(p, vs)
	return nil
}
