package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addShell(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive session where undo and redo span commands",
		Long: "Run commands against one in-memory session, so every change is\n" +
			"undoable until the shell exits. Type 'exit' or ctrl-d to leave.",
		Example: `
promptdb shell
> add -t "DCF Walkthrough" -d "Step by step" -b "Build a DCF for [Company]." -c Valuation
> undo
> exit
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := newService(); err != nil {
				return err
			}

			prompt := color.New(color.Bold).Sprint("promptdb> ")
			sc := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print(prompt)
				if !sc.Scan() {
					fmt.Println("")
					break
				}
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}
				words, err := splitWords(line)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					continue
				}
				if words[0] == "shell" {
					fmt.Println("already in a shell")
					continue
				}

				// A fresh command tree per line keeps flag state clean;
				// the session service is shared through the package cache.
				root := New()
				root.SilenceUsage = true
				root.SilenceErrors = true
				root.SetArgs(words)
				if err := root.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
			return sc.Err()
		},
	}

	topLevel.AddCommand(cmd)
}

// splitWords splits a command line into words, honoring single and
// double quotes.
func splitWords(line string) ([]string, error) {
	var words []string
	var b strings.Builder
	var quote byte
	pending := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				b.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			pending = true
		case c == ' ' || c == '\t':
			if pending || b.Len() > 0 {
				words = append(words, b.String())
				b.Reset()
				pending = false
			}
		default:
			b.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if pending || b.Len() > 0 {
		words = append(words, b.String())
	}
	return words, nil
}
