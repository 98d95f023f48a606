package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
)

// Home

func (m *model) enterHome() {
	m.scr = scrHome
	m.mn = newMenu("Welcome",
		menuOption{label: "Start new configuration", value: "start"},
		menuOption{label: "Exit", value: "exit"},
	)
}

func (m model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		if m.mn.selected() == "start" {
			m.toast = ""
			m.resetConfig()
			m.enterMode()
			return m, nil
		}
		return m, tea.Quit
	case menuCancel:
		// Quit at the top level is a normal exit, not an error.
		return m, tea.Quit
	}
	return m, nil
}

// Step 1: background mode selection. Cancel here aborts the wizard session.

func (m *model) enterMode() {
	multiLabel := "Multiple backgrounds (per screen)"
	if m.detectDone && len(m.displays) == 0 {
		multiLabel += " — no displays detected"
	}
	m.mn = newMenu("Background Mode",
		menuOption{label: "Single background (all screens)", value: string(domain.ModeSingle)},
		menuOption{label: multiLabel, value: string(domain.ModeMulti)},
		menuOption{label: "Window mode (floating window)", value: string(domain.ModeWindow)},
		menuOption{label: "Cancel", value: "cancel"},
	)
	m.scr = scrMode
}

func (m model) updateMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		m.toast = ""
		switch domain.Mode(m.mn.selected()) {
		case domain.ModeSingle:
			m.cfg.Mode = domain.ModeSingle
			m.cfg.Window = nil
			m.pending.Target = domain.TargetAllScreens
			m.enterSourcePrompt(scrSource)
		case domain.ModeMulti:
			if len(m.displays) == 0 {
				m.toast = "No displays detected; multi-screen mode is unavailable"
				return m, nil
			}
			m.cfg.Mode = domain.ModeMulti
			m.cfg.Window = nil
			m.enterMultiOverview()
		case domain.ModeWindow:
			m.cfg.Mode = domain.ModeWindow
			m.pending.Target = ""
			m.enterSourcePrompt(scrSource)
		default: // Cancel
			m.enterHome()
		}
	case menuCancel:
		m.enterHome()
	}
	return m, nil
}

// Step 2: background source. Used both for single/window mode (scrSource)
// and per-screen in multi mode (scrScreenSource).

func (m *model) enterSourcePrompt(scr screen) {
	title := "Background ID or path"
	if scr == scrScreenSource {
		title = fmt.Sprintf("Background for %s (ID or path)", m.pending.Target)
	}
	m.pr = newPrompt(title, "2317494988 or ./my-wallpaper", m.pending.Source,
		"workshop ID (digits) or a filesystem path", validSource)
	m.scr = scr
}

func (m model) updateSource(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.pr.handle(msg)
	switch action {
	case promptSubmit:
		m.pending.Source = m.pr.value()
		if m.scr == scrSource && m.cfg.Mode == domain.ModeWindow {
			m.geomField = 0
			m.enterGeomPrompt()
		} else {
			m.enterScaling()
		}
	case promptCancel:
		// Background sub-steps unwind to mode selection (multi per-screen
		// sub-flows unwind to the overview instead).
		if m.scr == scrScreenSource {
			m.enterMultiOverview()
		} else {
			m.enterMode()
		}
	}
	return m, cmd
}

// Window geometry: four bounded integers collected one prompt at a time.
// X/Y may be negative for multi-monitor offsets; width/height must be
// positive.

var geomFields = []struct {
	title    string
	validate func(string) error
}{
	{"Window X position", anyInt},
	{"Window Y position", anyInt},
	{"Window width", positiveInt},
	{"Window height", positiveInt},
}

func (m *model) enterGeomPrompt() {
	f := geomFields[m.geomField]
	var initial string
	switch cur := m.geomValue(m.geomField); {
	case cur != 0:
		initial = fmt.Sprintf("%d", cur)
	}
	m.pr = newPrompt(f.title, "e.g. 100", initial, "integer value", f.validate)
	m.scr = scrWindowGeom
}

func (m *model) geomValue(field int) int {
	switch field {
	case 0:
		return m.geom.X
	case 1:
		return m.geom.Y
	case 2:
		return m.geom.Width
	default:
		return m.geom.Height
	}
}

func (m *model) setGeomValue(field, v int) {
	switch field {
	case 0:
		m.geom.X = v
	case 1:
		m.geom.Y = v
	case 2:
		m.geom.Width = v
	default:
		m.geom.Height = v
	}
}

func (m model) updateWindowGeom(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.pr.handle(msg)
	switch action {
	case promptSubmit:
		m.setGeomValue(m.geomField, mustInt(m.pr.value()))
		if m.geomField < len(geomFields)-1 {
			m.geomField++
			m.enterGeomPrompt()
		} else {
			m.enterScaling()
		}
	case promptCancel:
		if m.geomField > 0 {
			m.geomField--
			m.enterGeomPrompt()
		} else {
			m.enterSourcePrompt(scrSource)
		}
	}
	return m, cmd
}

// Multi-screen overview: add/remove screens until done.

func (m *model) enterMultiOverview() {
	m.mn = newMenu("Multi-Screen Configuration",
		menuOption{label: "Add screen", value: "add"},
		menuOption{label: "Remove screen", value: "remove"},
		menuOption{label: "Done", value: "done"},
	)
	m.scr = scrMultiOverview
}

func (m model) updateMultiOverview(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		switch m.mn.selected() {
		case "add":
			m.enterPickDisplay()
		case "remove":
			if len(m.cfg.Backgrounds) == 0 {
				m.toast = "Nothing to remove yet"
				return m, nil
			}
			m.enterRemoveScreen()
		case "done":
			if len(m.cfg.Backgrounds) == 0 {
				m.toast = "Configure at least one screen first"
				return m, nil
			}
			m.toast = ""
			m.enterPerformance()
		}
	case menuCancel:
		m.enterMode()
	}
	return m, nil
}

func (m model) viewMultiOverview() string {
	var header string
	if len(m.cfg.Backgrounds) == 0 {
		header = m.theme.Subtitle.Render("No screens configured yet") + "\n\n"
	} else {
		header = m.theme.Accent.Render(fmt.Sprintf("Configured screens: %d", len(m.cfg.Backgrounds))) + "\n"
		for i, b := range m.cfg.Backgrounds {
			header += fmt.Sprintf("%d. %s → %s%s\n", i+1, b.Target, b.Source, assignmentDetails(b))
		}
		header += "\n"
	}
	return header + m.mn.view(m.theme)
}

func (m *model) enterPickDisplay() {
	opts := make([]menuOption, 0, len(m.displays))
	for _, d := range m.displays {
		opts = append(opts, menuOption{label: d.Label(), value: d.Connector})
	}
	m.mn = newMenu("Select Display", opts...)
	m.scr = scrPickDisplay
}

func (m model) updatePickDisplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		m.pending = domain.BackgroundAssignment{Target: m.mn.selected()}
		m.enterSourcePrompt(scrScreenSource)
	case menuCancel:
		m.enterMultiOverview()
	}
	return m, nil
}

// Step 3: scaling and clamp, per background.

func (m *model) enterScaling() {
	m.mn = newMenu("Scaling Mode",
		menuOption{label: "Default", value: string(domain.ScalingDefault)},
		menuOption{label: "Stretch", value: string(domain.ScalingStretch)},
		menuOption{label: "Fit", value: string(domain.ScalingFit)},
		menuOption{label: "Fill", value: string(domain.ScalingFill)},
	)
	m.scr = scrScaling
}

func (m model) updateScaling(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		m.pending.Scaling = domain.ScalingMode(m.mn.selected())
		m.enterClamping()
	case menuCancel:
		m.cancelBackgroundStep()
	}
	return m, nil
}

func (m *model) enterClamping() {
	m.mn = newMenu("Clamping Mode",
		menuOption{label: "None", value: string(domain.ClampUnset)},
		menuOption{label: "Clamp", value: string(domain.ClampClamp)},
		menuOption{label: "Border", value: string(domain.ClampBorder)},
		menuOption{label: "Repeat", value: string(domain.ClampRepeat)},
	)
	m.scr = scrClamping
}

func (m model) updateClamping(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		m.pending.Clamp = domain.ClampMode(m.mn.selected())
		m.finishAssignment()
	case menuCancel:
		m.cancelBackgroundStep()
	}
	return m, nil
}

// cancelBackgroundStep unwinds a scaling/clamp cancel: multi sub-flows go
// back to the overview, single/window go back to mode selection. Settings
// entered in later steps are never touched.
func (m *model) cancelBackgroundStep() {
	if m.cfg.Mode == domain.ModeMulti {
		m.enterMultiOverview()
	} else {
		m.enterMode()
	}
}

// finishAssignment commits the pending background and advances.
func (m *model) finishAssignment() {
	switch m.cfg.Mode {
	case domain.ModeMulti:
		m.cfg.Backgrounds = append(m.cfg.Backgrounds, m.pending)
		m.pending = domain.BackgroundAssignment{}
		m.enterMultiOverview()
	case domain.ModeWindow:
		g := m.geom
		m.cfg.Backgrounds = []domain.BackgroundAssignment{m.pending}
		m.cfg.Window = &g
		m.enterPerformance()
	default:
		m.cfg.Backgrounds = []domain.BackgroundAssignment{m.pending}
		m.cfg.Window = nil
		m.enterPerformance()
	}
}

func (m *model) enterRemoveScreen() {
	opts := make([]menuOption, 0, len(m.cfg.Backgrounds))
	for i, b := range m.cfg.Backgrounds {
		opts = append(opts, menuOption{
			label: fmt.Sprintf("%s → %s", b.Target, b.Source),
			value: fmt.Sprintf("%d", i),
		})
	}
	m.mn = newMenu("Select Screen to Remove", opts...)
	m.scr = scrRemoveScreen
}

func (m model) updateRemoveScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		idx := mustInt(m.mn.selected())
		if idx >= 0 && idx < len(m.cfg.Backgrounds) {
			m.cfg.Backgrounds = append(m.cfg.Backgrounds[:idx], m.cfg.Backgrounds[idx+1:]...)
		}
		m.enterMultiOverview()
	case menuCancel:
		m.enterMultiOverview()
	}
	return m, nil
}
