package tui

import (
	"strings"
)

// Option is one entry of a Selector.
type Option struct {
	Label  string
	Detail string
}

// Selector is a vertical list with a cursor, used for the menu and its
// sub-screens.
type Selector struct {
	title   string
	options []Option
	cursor  int
	chosen  int
	back    bool
}

// NewSelector creates a selector with nothing chosen.
func NewSelector(title string, options []Option) Selector {
	return Selector{title: title, options: options, chosen: -1}
}

// Handle applies a menu action.
func (s Selector) Handle(action MenuAction) Selector {
	switch action {
	case MenuActionUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case MenuActionDown:
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case MenuActionSelect:
		if len(s.options) > 0 {
			s.chosen = s.cursor
		}
	case MenuActionBack:
		s.back = true
	}
	return s
}

// Chosen returns the index of the selected option, or -1.
func (s Selector) Chosen() int {
	return s.chosen
}

// WantsBack reports whether the user left the list.
func (s Selector) WantsBack() bool {
	return s.back
}

// Cursor returns the highlighted index.
func (s Selector) Cursor() int {
	return s.cursor
}

// Reset clears the choice and the back request, keeping the cursor.
func (s Selector) Reset() Selector {
	s.chosen = -1
	s.back = false
	return s
}

// View renders the list centered in width. The detail of the highlighted
// option is shown below the list.
func (s Selector) View(theme Theme, width int, footer string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render(s.title), width))
	b.WriteString("\n\n")

	if len(s.options) == 0 {
		b.WriteString(centerText(theme.Empty.Render("nothing here yet"), width))
		b.WriteString("\n")
	}

	labelW := 0
	for _, opt := range s.options {
		labelW = max(labelW, len(opt.Label))
	}

	for i, opt := range s.options {
		line := "  " + opt.Label + strings.Repeat(" ", labelW-len(opt.Label))
		style := theme.ItemNormal
		if i == s.cursor {
			line = "> " + opt.Label + strings.Repeat(" ", labelW-len(opt.Label))
			style = theme.ItemActive
		}
		b.WriteString(centerText(style.Render(line), width))
		b.WriteString("\n")
	}

	if s.cursor < len(s.options) && s.options[s.cursor].Detail != "" {
		b.WriteString("\n")
		b.WriteString(centerText(theme.Description.Render(s.options[s.cursor].Detail), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(theme.Footer.Render(footer), width))
	b.WriteString("\n")

	return b.String()
}
