package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/rajatvarna/PromptDB/pkg/favorites"
	"github.com/rajatvarna/PromptDB/pkg/prompt"
	"github.com/rajatvarna/PromptDB/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Stats prints the "showing x of y" line under a list.
func (pp *PrettyPrint) Stats(s view.Stats) {
	c := color.New(color.Faint)
	switch s.Displayed {
	case s.Total:
		_, _ = c.Printf("%d prompts\n", s.Total)
	default:
		_, _ = c.Printf("showing %d of %d prompts\n", s.Displayed, s.Total)
	}
}

// List prints one row per prompt: identity, favorite marker, title,
// category and rating.
func (pp *PrettyPrint) List(favs favorites.Set, prompts ...*prompt.Prompt) {
	if len(prompts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	if pp.ShowID {
		tbl.AddRow(bold("ID"), "", bold("Title"), bold("Category"), bold("Rating"))
	} else {
		tbl.AddRow("", bold("Title"), bold("Category"), bold("Rating"))
	}
	for _, p := range prompts {
		star := " "
		if favs.Has(p.ID) {
			star = "★"
		}
		if pp.ShowID {
			tbl.AddRow(p.ID.String(), star, p.Title, string(p.Category), rating(p))
		} else {
			tbl.AddRow(star, p.Title, string(p.Category), rating(p))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func rating(p *prompt.Prompt) string {
	if p.RatingCount == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f (%d)", p.Rating, p.RatingCount)
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

func origin(p *prompt.Prompt) string {
	if p.ID.Custom() {
		return "custom"
	}
	return "built-in"
}

func tags(p *prompt.Prompt) string {
	return strings.Join(p.Tags, ", ")
}
