package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// printMarkdown prints markdown on stdout, styled when stdout is a terminal.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}

// renderMarkdown styles markdown for the terminal. The text comes back
// unchanged when stdout is not a terminal or the renderer cannot be built.
func renderMarkdown(md string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
