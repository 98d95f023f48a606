package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
)

func onOff(disabled bool) string {
	if disabled {
		return "Disabled"
	}
	return "Enabled"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Step 5: performance.

func (m *model) enterPerformance() {
	cursor := m.mn.cursor
	if m.scr != scrPerformance {
		cursor = 0
	}
	m.mn = newMenu("Performance Settings",
		menuOption{label: fmt.Sprintf("FPS: %d", m.cfg.Performance.FPS), value: "fps"},
		menuOption{label: "Pause on fullscreen: " + yesNo(m.cfg.Performance.PauseOnFullscreen), value: "pause"},
		menuOption{label: "Done", value: "done"},
	)
	m.mn.cursor = cursor
	m.scr = scrPerformance
}

func (m model) updatePerformance(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		switch m.mn.selected() {
		case "fps":
			m.pr = newPrompt(
				fmt.Sprintf("Frame rate limit (%d-%d)", domain.MinFPS, domain.MaxFPS),
				fmt.Sprintf("%d", domain.DefaultFPS),
				fmt.Sprintf("%d", m.cfg.Performance.FPS),
				"frames per second",
				intInRange(domain.MinFPS, domain.MaxFPS),
			)
			m.scr = scrFPSInput
		case "pause":
			m.cfg.Performance.PauseOnFullscreen = !m.cfg.Performance.PauseOnFullscreen
			m.enterPerformance()
		case "done":
			m.enterSound()
		}
	case menuCancel:
		// Back into the background step, values intact.
		if m.cfg.Mode == domain.ModeMulti {
			m.enterMultiOverview()
		} else {
			m.enterSourcePrompt(scrSource)
		}
	}
	return m, nil
}

func (m model) updateFPSInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.pr.handle(msg)
	switch action {
	case promptSubmit:
		m.cfg.Performance.FPS = mustInt(m.pr.value())
		m.enterPerformance()
	case promptCancel:
		m.enterPerformance()
	}
	return m, cmd
}

// Step 6: sound.

func (m *model) enterSound() {
	cursor := m.mn.cursor
	if m.scr != scrSound {
		cursor = 0
	}
	volumeLabel := fmt.Sprintf("Volume: %d", m.cfg.Sound.Volume)
	if m.cfg.Sound.Silent {
		volumeLabel = "Mode: Silent"
	}
	m.mn = newMenu("Sound Settings",
		menuOption{label: volumeLabel, value: "mode"},
		menuOption{label: "Auto-mute: " + onOff(m.cfg.Sound.NoAutoMute), value: "automute"},
		menuOption{label: "Audio processing: " + onOff(m.cfg.Sound.NoAudioProcessing), value: "audioproc"},
		menuOption{label: "Done", value: "done"},
	)
	m.mn.cursor = cursor
	m.scr = scrSound
}

func (m model) updateSound(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		switch m.mn.selected() {
		case "mode":
			m.enterSoundMode()
		case "automute":
			m.cfg.Sound.NoAutoMute = !m.cfg.Sound.NoAutoMute
			m.enterSound()
		case "audioproc":
			m.cfg.Sound.NoAudioProcessing = !m.cfg.Sound.NoAudioProcessing
			m.enterSound()
		case "done":
			m.enterInteraction()
		}
	case menuCancel:
		m.enterPerformance()
	}
	return m, nil
}

func (m *model) enterSoundMode() {
	m.mn = newMenu("Sound Mode",
		menuOption{label: "Silent", value: "silent"},
		menuOption{label: "With volume control", value: "volume"},
	)
	m.scr = scrSoundMode
}

func (m model) updateSoundMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		if m.mn.selected() == "silent" {
			m.cfg.Sound.Silent = true
			m.enterSound()
		} else {
			m.cfg.Sound.Silent = false
			m.pr = newPrompt(
				fmt.Sprintf("Volume (%d-%d)", domain.MinVolume, domain.MaxVolume),
				fmt.Sprintf("%d", domain.DefaultVolume),
				fmt.Sprintf("%d", m.cfg.Sound.Volume),
				"playback volume; ignored when silent",
				intInRange(domain.MinVolume, domain.MaxVolume),
			)
			m.scr = scrVolumeInput
		}
	case menuCancel:
		m.enterSound()
	}
	return m, nil
}

func (m model) updateVolumeInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.pr.handle(msg)
	switch action {
	case promptSubmit:
		m.cfg.Sound.Volume = mustInt(m.pr.value())
		m.enterSound()
	case promptCancel:
		m.enterSound()
	}
	return m, cmd
}

// Step 7: interaction.

func (m *model) enterInteraction() {
	cursor := m.mn.cursor
	if m.scr != scrInteraction {
		cursor = 0
	}
	m.mn = newMenu("Interaction Settings",
		menuOption{label: "Mouse: " + onOff(m.cfg.Interaction.DisableMouse), value: "mouse"},
		menuOption{label: "Parallax: " + onOff(m.cfg.Interaction.DisableParallax), value: "parallax"},
		menuOption{label: "Done", value: "done"},
	)
	m.mn.cursor = cursor
	m.scr = scrInteraction
}

func (m model) updateInteraction(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		switch m.mn.selected() {
		case "mouse":
			m.cfg.Interaction.DisableMouse = !m.cfg.Interaction.DisableMouse
			m.enterInteraction()
		case "parallax":
			m.cfg.Interaction.DisableParallax = !m.cfg.Interaction.DisableParallax
			m.enterInteraction()
		case "done":
			m.enterScreenshotAsk()
		}
	case menuCancel:
		m.enterSound()
	}
	return m, nil
}

// Step 8: screenshot, entered only on opt-in.

func (m *model) enterScreenshotAsk() {
	m.mn = newMenu("Screenshot Capture",
		menuOption{label: "Configure", value: "configure"},
		menuOption{label: "Skip", value: "skip"},
	)
	m.scr = scrScreenshotAsk
}

func (m model) updateScreenshotAsk(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		if m.mn.selected() == "configure" {
			m.cfg.Screenshot.Enabled = true
			m.enterScreenshot()
		} else {
			// Skip is an opt-out: it also clears a previously entered but
			// backed-out options screen.
			m.cfg.Screenshot.Enabled = false
			m.enterReview()
		}
	case menuCancel:
		m.enterInteraction()
	}
	return m, nil
}

func (m *model) enterScreenshot() {
	cursor := m.mn.cursor
	if m.scr != scrScreenshot {
		cursor = 0
	}
	enabled := "Disabled"
	if m.cfg.Screenshot.Enabled {
		enabled = "Enabled"
	}
	m.mn = newMenu("Screenshot Options",
		menuOption{label: "Screenshot: " + enabled, value: "toggle"},
		menuOption{label: "Format: " + string(m.cfg.Screenshot.Format), value: "format"},
		menuOption{label: fmt.Sprintf("Delay: %d s", m.cfg.Screenshot.Delay), value: "delay"},
		menuOption{label: "Done", value: "done"},
	)
	m.mn.cursor = cursor
	m.scr = scrScreenshot
}

func (m model) updateScreenshot(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		switch m.mn.selected() {
		case "toggle":
			m.cfg.Screenshot.Enabled = !m.cfg.Screenshot.Enabled
			m.enterScreenshot()
		case "format":
			m.enterFormat()
		case "delay":
			m.pr = newPrompt("Screenshot delay (seconds)",
				fmt.Sprintf("%d", domain.DefaultScreenshotDelay),
				fmt.Sprintf("%d", m.cfg.Screenshot.Delay),
				"non-negative number of seconds",
				intInRange(0, 3600),
			)
			m.scr = scrDelayInput
		case "done":
			m.enterReview()
		}
	case menuCancel:
		m.enterScreenshotAsk()
	}
	return m, nil
}

func (m *model) enterFormat() {
	m.mn = newMenu("Screenshot Format",
		menuOption{label: "PNG", value: string(domain.FormatPNG)},
		menuOption{label: "JPEG", value: string(domain.FormatJPEG)},
		menuOption{label: "BMP", value: string(domain.FormatBMP)},
	)
	m.scr = scrFormat
}

func (m model) updateFormat(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.mn.handle(key) {
	case menuCommit:
		m.cfg.Screenshot.Format = domain.ScreenshotFormat(m.mn.selected())
		m.enterScreenshot()
	case menuCancel:
		m.enterScreenshot()
	}
	return m, nil
}

func (m model) updateDelayInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.pr.handle(msg)
	switch action {
	case promptSubmit:
		m.cfg.Screenshot.Delay = mustInt(m.pr.value())
		m.enterScreenshot()
	case promptCancel:
		m.enterScreenshot()
	}
	return m, cmd
}
