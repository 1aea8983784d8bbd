package cli

import "github.com/charmbracelet/glamour"

// renderMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering is unavailable or stdout is not a TTY.
func renderMarkdown(md string) string {
	if !stdoutIsTTY() {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(80),
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
