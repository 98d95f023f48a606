package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// menuAction is the outcome of feeding one key event to a menu.
type menuAction int

const (
	menuNone menuAction = iota
	menuCommit
	menuCancel
)

type menuOption struct {
	label string
	value string
}

// menu is the single cursor-driven selector every wizard step builds on.
// Cursor state is owned per instance and passed by value with the model, so
// scripted key sequences drive it deterministically in tests. Up and down
// wrap around; enter commits; q or esc cancels without committing.
type menu struct {
	title   string
	options []menuOption
	cursor  int
}

func newMenu(title string, options ...menuOption) menu {
	return menu{title: title, options: options}
}

func (m *menu) move(delta int) {
	n := len(m.options)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// handle consumes one key event and reports whether the menu committed,
// cancelled, or just moved.
func (m *menu) handle(msg tea.KeyMsg) menuAction {
	switch msg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if len(m.options) > 0 {
			return menuCommit
		}
	case "q", "esc":
		return menuCancel
	}
	return menuNone
}

// selected returns the value under the cursor.
func (m menu) selected() string {
	if len(m.options) == 0 {
		return ""
	}
	return m.options[m.cursor].value
}

func (m menu) view(t Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render(m.title))
	b.WriteString("\n\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(t.Cursor.Render("► " + opt.label))
		} else {
			b.WriteString(t.Item.Render("  " + opt.label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
