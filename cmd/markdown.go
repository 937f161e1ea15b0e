package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report on the terminal.
// If the renderer fails, the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
