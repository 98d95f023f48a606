package tui

import (
	"fmt"
	"strings"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/usecase"
)

func (m model) viewHome() string {
	intro := m.theme.Subtitle.Render("This tool walks you through configuring your wallpaper setup\nand builds the matching renderer command.") + "\n\n"
	var detect string
	switch {
	case !m.detectDone:
		detect = m.theme.Help.Render("Detecting displays...") + "\n\n"
	case len(m.displays) == 0:
		detect = m.theme.Help.Render("No displays detected") + "\n\n"
	default:
		labels := make([]string, len(m.displays))
		for i, d := range m.displays {
			labels[i] = d.Label()
		}
		detect = m.theme.Help.Render("Displays: "+strings.Join(labels, ", ")) + "\n\n"
	}
	return intro + detect + m.mn.view(m.theme)
}

func assignmentDetails(b domain.BackgroundAssignment) string {
	var parts []string
	if b.Scaling != domain.ScalingDefault {
		parts = append(parts, "scaling: "+string(b.Scaling))
	}
	if b.Clamp != domain.ClampUnset {
		parts = append(parts, "clamping: "+string(b.Clamp))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func renderSummary(t Theme, cfg domain.Configuration) string {
	var b strings.Builder
	b.WriteString(t.Accent.Render("Configuration Summary:"))
	b.WriteString("\n")

	switch cfg.Mode {
	case domain.ModeMulti:
		b.WriteString(fmt.Sprintf("  • Screens configured: %d\n", len(cfg.Backgrounds)))
		for _, bg := range cfg.Backgrounds {
			b.WriteString(fmt.Sprintf("    %s → %s%s\n", bg.Target, bg.Source, assignmentDetails(bg)))
		}
	default:
		if len(cfg.Backgrounds) > 0 {
			b.WriteString(fmt.Sprintf("  • Background: %s%s\n", cfg.Backgrounds[0].Source, assignmentDetails(cfg.Backgrounds[0])))
		}
		if cfg.Window != nil {
			b.WriteString(fmt.Sprintf("  • Window: %s\n", cfg.Window))
		}
	}

	if cfg.Performance.FPS != 0 {
		b.WriteString(fmt.Sprintf("  • FPS: %d\n", cfg.Performance.FPS))
	}
	if cfg.Sound.Silent {
		b.WriteString("  • Sound: silent\n")
	} else {
		b.WriteString(fmt.Sprintf("  • Volume: %d\n", cfg.Sound.Volume))
	}
	if cfg.Screenshot.Enabled {
		b.WriteString(fmt.Sprintf("  • Screenshot: %s after %d s\n", cfg.Screenshot.Format, cfg.Screenshot.Delay))
	}

	return b.String()
}

func renderDispatchResult(t Theme, res usecase.DispatchResult) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Result"))
	b.WriteString("\n\n")

	if res.Saved {
		b.WriteString("✓ Command saved to " + res.SavePath + "\n")
	}
	if res.SaveErr != nil {
		b.WriteString(t.Error.Render("✗ Save failed: "+userMessage(res.SaveErr)) + "\n")
	}
	if res.Launched {
		b.WriteString("✓ Wallpaper engine launched\n")
	}
	if res.LaunchErr != nil {
		b.WriteString(t.Error.Render("✗ Launch failed: "+userMessage(res.LaunchErr)) + "\n")
	}

	return b.String()
}
