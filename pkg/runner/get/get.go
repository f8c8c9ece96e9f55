package get

import (
	"context"
	"fmt"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/printers"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
	"github.com/rajatvarna/PromptDB/pkg/template"
	"github.com/rajatvarna/PromptDB/pkg/view"
)

// Get lists the merged library through the filter-sort pipeline, or shows
// a single prompt in full when an identity is given.
type Get struct {
	ID     string
	Query  view.Query
	ShowID bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.ID != "" {
		id, err := prompt.ParseID(n.ID)
		if err != nil {
			return err
		}
		p, err := n.Service.Get(id)
		if err != nil {
			return err
		}
		pp.Detail(p, n.Service.Tracker.IsFavorite(p.ID))
		pp.Variables(template.Extract(p.Body))
		return nil
	}

	items := n.Service.List(n.Query)
	pp.Title(title(n.Query))
	pp.List(n.Service.Tracker.Set(), items...)
	pp.Stats(n.Service.Stats(items))
	return nil
}

func title(q view.Query) string {
	switch {
	case q.Search != "":
		return fmt.Sprintf("Prompts matching %q", q.Search)
	case q.Selector != "" && q.Selector != view.SelectorAll:
		return string(q.Selector)
	default:
		return "All Prompts"
	}
}
