package rate

import (
	"context"
	"fmt"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// Rate folds a 1-5 score into a custom prompt's running average.
type Rate struct {
	ID    string
	Score int

	Service *app.Service
}

func (n *Rate) Do(ctx context.Context) error {
	id, err := prompt.ParseID(n.ID)
	if err != nil {
		return err
	}

	err = n.Service.Rate(id, n.Score)
	if err != nil && !app.IsWarning(err) {
		return err
	}

	p, getErr := n.Service.Get(id)
	if getErr != nil {
		return getErr
	}
	fmt.Printf("%q now rated %.1f across %d ratings\n", p.Title, p.Rating, p.RatingCount)
	if app.IsWarning(err) {
		fmt.Printf("warning: %v\n", err)
	}
	return nil
}
