package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/timeutil"
	"github.com/rajatvarna/PromptDB/pkg/view"
)

// QueryOptions captures list filtering and ordering flags.
type QueryOptions struct {
	Search    string
	Category  string
	Favorites bool
	Sort      string
	Since     string
}

func AddQueryArgs(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Filter by a case insensitive substring of title, description, body or tags.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Show a single category.")
	cmd.Flags().BoolVarP(&o.Favorites, "favorites", "f", false,
		"Show only favorites.")
	cmd.Flags().StringVar(&o.Sort, "sort", "",
		"Order: newest, oldest, az or za.")
	cmd.Flags().StringVar(&o.Since, "since", "",
		"Only custom prompts created within a window, like 1w or 3d.")
}

// Query converts the flags to a view query.
func (o *QueryOptions) Query() (view.Query, error) {
	q := view.Query{Search: o.Search}

	switch {
	case o.Favorites:
		q.Selector = view.SelectorFavorites
	case o.Category != "":
		sel, err := view.ParseSelector(o.Category)
		if err != nil {
			return view.Query{}, err
		}
		q.Selector = sel
	}

	order, err := view.ParseSort(o.Sort)
	if err != nil {
		return view.Query{}, err
	}
	q.Sort = order

	if o.Since != "" {
		window, _, err := timeutil.ParseWindow(o.Since)
		if err != nil {
			return view.Query{}, err
		}
		q.SinceMillis = time.Now().Add(-window).UnixMilli()
	}
	return q, nil
}
