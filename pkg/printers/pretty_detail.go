package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/rajatvarna/PromptDB/pkg/prompt"
)

// Detail prints the full prompt: metadata header, then the body verbatim
// so bracket tokens stay visible.
func (pp *PrettyPrint) Detail(p *prompt.Prompt, favorite bool) {
	t := color.New(color.Bold, color.Underline)
	f := color.New(color.Faint)

	_, _ = t.Print(p.Title)
	if favorite {
		_, _ = color.New(color.FgHiYellow).Print(" ★")
	}
	fmt.Println("")
	_, _ = f.Println(p.Description)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), p.ID.String())
	tbl.AddRow(bold("Origin"), origin(p))
	tbl.AddRow(bold("Category"), string(p.Category))
	if len(p.Tags) > 0 {
		tbl.AddRow(bold("Tags"), tags(p))
	}
	tbl.AddRow(bold("Rating"), rating(p))
	if n := len(p.Versions); n > 0 {
		tbl.AddRow(bold("Versions"), fmt.Sprintf("%d", n))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	fmt.Println("")
	fmt.Println(p.Body)
}

// Versions prints the stored versions of a prompt, oldest first. The
// index column is what the restore command takes.
func (pp *PrettyPrint) Versions(p *prompt.Prompt, versions []prompt.Version) {
	pp.Title(p.Title)
	if len(versions) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no versions\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.AddRow(bold("#"), bold("Saved"), bold("Title"), bold("Category"))
	for i, v := range versions {
		tbl.AddRow(fmt.Sprintf("%d", i), v.Created.Local().Format("2006-01-02 15:04"), v.Title, string(v.Category))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Variables prints the placeholder names a prompt body expects.
func (pp *PrettyPrint) Variables(names []string) {
	if len(names) == 0 {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Print("variables:")
	for _, n := range names {
		_, _ = f.Printf(" [%s]", n)
	}
	_, _ = f.Println("")
}
