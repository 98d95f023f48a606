package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptAction int

const (
	promptNone promptAction = iota
	promptSubmit
	promptCancel
)

// prompt is a bounded text-input step. Submission runs the validator; a
// malformed entry shows an inline error and re-prompts instead of aborting.
// Esc cancels back to the previous step.
type prompt struct {
	title    string
	help     string
	input    textinput.Model
	validate func(string) error
	errMsg   string
}

func newPrompt(title, placeholder, initial, help string, validate func(string) error) prompt {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.SetValue(initial)
	ti.Focus()
	return prompt{
		title:    title,
		help:     help,
		input:    ti,
		validate: validate,
	}
}

// handle consumes one message. On submit the validated value is available
// via value().
func (p *prompt) handle(msg tea.Msg) (promptAction, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			v := strings.TrimSpace(p.input.Value())
			if p.validate != nil {
				if err := p.validate(v); err != nil {
					p.errMsg = err.Error()
					return promptNone, nil
				}
			}
			p.errMsg = ""
			return promptSubmit, nil
		case "esc":
			return promptCancel, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return promptNone, cmd
}

func (p prompt) value() string {
	return strings.TrimSpace(p.input.Value())
}

func (p prompt) view(t Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render(p.title))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")
	if p.errMsg != "" {
		b.WriteString(t.Error.Render("✗ " + p.errMsg))
		b.WriteString("\n")
	}
	if p.help != "" {
		b.WriteString(t.Help.Render(p.help))
		b.WriteString("\n")
	}
	return b.String()
}

// Validators shared by the numeric and source prompts.

func intInRange(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if n < min || n > max {
			return fmt.Errorf("value must be between %d and %d", min, max)
		}
		return nil
	}
}

func anyInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("not a number")
	}
	return nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// validSource accepts a workshop ID (all digits) or a path-shaped string.
// Wallpaper IDs are never checked against a catalog.
func validSource(s string) error {
	if s == "" {
		return fmt.Errorf("background ID or path required")
	}
	if isDigits(s) {
		return nil
	}
	if strings.ContainsRune(s, '/') || strings.HasPrefix(s, ".") || strings.HasPrefix(s, "~") {
		return nil
	}
	return fmt.Errorf("enter a numeric workshop ID or a path (e.g. 2317494988 or ./my-wallpaper)")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func mustInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
