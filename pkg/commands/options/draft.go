package options

import (
	"github.com/spf13/cobra"

	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// DraftOptions captures the editable prompt fields as flags.
type DraftOptions struct {
	Title       string
	Description string
	Body        string
	Category    string
	Tags        string

	FromTemplate string
}

func AddDraftArgs(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Prompt title.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"One line description.")
	cmd.Flags().StringVarP(&o.Body, "body", "b", "",
		"Prompt body, [brackets] mark variables.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category, one of the library sections.")
	cmd.Flags().StringVar(&o.Tags, "tags", "",
		"Comma separated tags.")
}

func AddFromTemplateArg(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVar(&o.FromTemplate, "from-template", "",
		"Start from a named starter template.")
}

// Draft converts the flags to a draft. An unknown category surfaces
// during validation, not here.
func (o *DraftOptions) Draft() (prompt.Draft, error) {
	d := prompt.Draft{
		Title:       o.Title,
		Description: o.Description,
		Body:        o.Body,
		Tags:        prompt.SplitTags(o.Tags),
	}
	if o.Category != "" {
		c, err := prompt.ParseCategory(o.Category)
		if err != nil {
			return prompt.Draft{}, err
		}
		d.Category = c
	}
	return d, nil
}
