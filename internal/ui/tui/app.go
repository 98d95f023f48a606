package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/usecase"
)

type screen int

const (
	scrHome screen = iota
	scrMode
	scrSource
	scrWindowGeom
	scrMultiOverview
	scrPickDisplay
	scrScreenSource
	scrScaling
	scrClamping
	scrRemoveScreen
	scrPerformance
	scrFPSInput
	scrSound
	scrSoundMode
	scrVolumeInput
	scrInteraction
	scrScreenshotAsk
	scrScreenshot
	scrFormat
	scrDelayInput
	scrReview
	scrResult
)

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	mn   menu
	pr   prompt
	spin spinner.Model

	// Display detection runs once at startup; going back to mode selection
	// reuses the cached result.
	displays   []domain.DisplayInfo
	detectDone bool

	// cfg is the single Configuration this wizard session mutates. pending
	// holds the background assignment being built across source/scaling/
	// clamp sub-steps; geom collects window geometry field by field.
	cfg       domain.Configuration
	pending   domain.BackgroundAssignment
	geom      domain.WindowGeometry
	geomField int

	compiled    domain.CommandLine
	compileErr  error
	dispatching bool
	result      *usecase.DispatchResult

	toast  string
	width  int
	height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		spin:  sp,
	}
	m.resetConfig()
	m.enterHome()
	return m
}

// resetConfig seeds a fresh Configuration from the tool config defaults.
func (m *model) resetConfig() {
	def := m.deps.Config.Defaults
	m.cfg = domain.Configuration{
		Performance: domain.PerformanceSettings{FPS: def.FPS},
		Sound:       domain.SoundSettings{Volume: def.Volume},
		Screenshot: domain.ScreenshotSettings{
			Format: domain.FormatPNG,
			Delay:  def.ScreenshotDelay,
		},
		AssetsDir:  m.deps.Config.Renderer.AssetsDir,
		Properties: m.deps.Config.Renderer.Properties,
	}
	m.pending = domain.BackgroundAssignment{}
	m.geom = domain.WindowGeometry{}
	m.geomField = 0
	m.compiled = nil
	m.compileErr = nil
	m.result = nil
}

func (m model) Init() tea.Cmd {
	return cmdDetectDisplays(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case displaysDetectedMsg:
		m.detectDone = true
		m.displays = msg.displays
		if msg.err != nil {
			m.toast = "Display detection unavailable; multi-screen mode is disabled"
		}
		return m, nil

	case dispatchDoneMsg:
		m.dispatching = false
		res := msg.result
		m.result = &res
		m.scr = scrResult
		return m, nil

	case spinner.TickMsg:
		if m.dispatching {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.dispatching {
			return m, nil
		}
	}

	if m.dispatching {
		return m, nil
	}

	switch m.scr {
	case scrHome:
		return m.updateHome(msg)
	case scrMode:
		return m.updateMode(msg)
	case scrSource, scrScreenSource:
		return m.updateSource(msg)
	case scrWindowGeom:
		return m.updateWindowGeom(msg)
	case scrMultiOverview:
		return m.updateMultiOverview(msg)
	case scrPickDisplay:
		return m.updatePickDisplay(msg)
	case scrScaling:
		return m.updateScaling(msg)
	case scrClamping:
		return m.updateClamping(msg)
	case scrRemoveScreen:
		return m.updateRemoveScreen(msg)
	case scrPerformance:
		return m.updatePerformance(msg)
	case scrFPSInput:
		return m.updateFPSInput(msg)
	case scrSound:
		return m.updateSound(msg)
	case scrSoundMode:
		return m.updateSoundMode(msg)
	case scrVolumeInput:
		return m.updateVolumeInput(msg)
	case scrInteraction:
		return m.updateInteraction(msg)
	case scrScreenshotAsk:
		return m.updateScreenshotAsk(msg)
	case scrScreenshot:
		return m.updateScreenshot(msg)
	case scrFormat:
		return m.updateFormat(msg)
	case scrDelayInput:
		return m.updateDelayInput(msg)
	case scrReview:
		return m.updateReview(msg)
	case scrResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Wallpaper Engine Helper") + "\n" +
		m.theme.Subtitle.Render("Build and launch a linux-wallpaperengine command") + "\n"

	var body string
	switch {
	case m.dispatching:
		body = m.spin.View() + " Working..."
	case m.scr == scrHome:
		body = m.viewHome()
	case m.scr == scrMultiOverview:
		body = m.viewMultiOverview()
	case m.scr == scrReview:
		body = m.viewReview()
	case m.scr == scrResult:
		body = m.viewResult()
	case m.isPromptScreen():
		body = m.pr.view(m.theme)
	default:
		body = m.mn.view(m.theme)
	}

	out := header + "\n" + m.theme.Card.Render(body)
	if m.toast != "" {
		out += "\n" + m.theme.Accent.Render(m.toast)
	}
	out += "\n" + m.theme.Help.Render(m.helpLine())
	return wrap.Render(out)
}

func (m model) isPromptScreen() bool {
	switch m.scr {
	case scrSource, scrScreenSource, scrWindowGeom, scrFPSInput, scrVolumeInput, scrDelayInput:
		return true
	}
	return false
}

func (m model) helpLine() string {
	if m.isPromptScreen() {
		return "enter confirm • esc back"
	}
	switch m.scr {
	case scrHome:
		return "↑/↓ navigate • enter select • q quit"
	case scrResult:
		return "enter continue"
	default:
		return "↑/↓ navigate • enter select • q back"
	}
}

var _ tea.Model = model{}
