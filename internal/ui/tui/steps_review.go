package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/usecase"
)

// Step 9: review. The command is compiled once on entry and regenerated on
// every re-entry; it is never patched in place.

func (m *model) enterReview() {
	m.compiled, m.compileErr = domain.CompileCommand(m.cfg, m.deps.RendererExe)
	if m.compileErr != nil {
		// Unreachable through the wizard flow; reaching it is a defect.
		m.deps.Logger.Error("review.compile_failed", "err", m.compileErr)
		m.mn = newMenu("Review Configuration",
			menuOption{label: "Go back", value: "back"},
		)
	} else {
		m.mn = newMenu("Review Configuration",
			menuOption{label: "Execute", value: "execute"},
			menuOption{label: "Save command", value: "save"},
			menuOption{label: "Execute & Save", value: "both"},
			menuOption{label: "Go back", value: "back"},
		)
	}
	m.scr = scrReview
}

func (m model) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		var action usecase.ReviewAction
		switch m.mn.selected() {
		case "execute":
			action = usecase.ActionExecute
		case "save":
			action = usecase.ActionSave
		case "both":
			action = usecase.ActionExecuteAndSave
		case "back":
			// Back to mode selection; detected displays and entered
			// settings are kept.
			m.enterMode()
			return m, nil
		}
		m.dispatching = true
		return m, tea.Batch(m.spin.Tick, cmdDispatch(m.deps, action, m.compiled))
	case menuCancel:
		m.enterScreenshotAsk()
	}
	return m, nil
}

func (m model) viewReview() string {
	if m.compileErr != nil {
		return m.theme.Error.Render("Internal error: "+userMessage(m.compileErr)) +
			"\n\n" + m.mn.view(m.theme)
	}
	return m.theme.Accent.Render("Command to execute:") + "\n" +
		m.compiled.String() + "\n\n" +
		renderSummary(m.theme, m.cfg) + "\n" +
		m.mn.view(m.theme)
}

func (m model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter", "q", "esc":
		if m.result != nil && m.result.Failed() {
			// Failed actions return to review for a retry or a different
			// choice.
			m.enterReview()
		} else {
			m.toast = "Done"
			m.enterHome()
		}
	}
	return m, nil
}

func (m model) viewResult() string {
	if m.result == nil {
		return "No result"
	}
	return renderDispatchResult(m.theme, *m.result)
}
