package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"menuvroom/internal/selection"
)

// Options carries what the renderer needs besides the frame
type Options struct {
	Width       int
	ShowHotkeys bool
	Status      string
	Help        string
}

// Renderer draws a selection frame
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render produces the complete view
func (r *Renderer) Render(frame selection.Frame, opts Options) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Prompt.Render("run ›"))
	content.WriteString(" ")
	content.WriteString(r.styles.Query.Render(frame.Query))
	content.WriteString(r.styles.Cursor.Render(" "))
	content.WriteString("\n\n")

	switch {
	case len(frame.Items) > 0:
		for i, item := range frame.Items {
			content.WriteString(r.renderRow(i, item, i == frame.Selected, opts))
			content.WriteString("\n")
		}
	case frame.Query != "":
		content.WriteString(r.styles.Empty.Render("  no matches"))
		content.WriteString("\n")
	}

	if opts.Status != "" {
		content.WriteString(r.styles.Status.Render(opts.Status))
		content.WriteString("\n")
	}
	if opts.Help != "" {
		content.WriteString(r.styles.Help.Render(opts.Help))
	}
	return content.String()
}

func (r *Renderer) renderRow(i int, item string, selected bool, opts Options) string {
	label := "  "
	if opts.ShowHotkeys {
		if hk := selection.HotkeyLabel(i); hk != "" {
			label = r.styles.Hotkey.Render(hk) + " "
		}
	}

	row := " " + item + " "
	if !selected {
		return label + r.styles.Item.Render(row)
	}

	style := r.styles.SelectionBg
	if opts.Width > 0 {
		// fill to the edge of the terminal
		if w := opts.Width - lipgloss.Width(label); w > 0 {
			style = style.Width(w)
		}
	}
	return label + style.Render(row)
}
