package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to stdout with the configured glamour
// style, falling back to the raw text when rendering fails.
func printMarkdown(md, style string) {
	out, err := glamour.Render(md, style)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
