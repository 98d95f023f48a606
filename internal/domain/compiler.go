package domain

import "strconv"

// CompileCommand renders a validated Configuration into the renderer's
// argument vector. Pure and deterministic: identical input yields an
// identical token sequence. The emission order is renderer-sensitive and
// must not be reordered:
//
//	exe, --window, per-screen blocks, --fps, --pause-on-fullscreen,
//	sound flags, interaction flags, screenshot block, pass-through
//	options, trailing positional source.
//
// Settings equal to the renderer's documented default emit nothing, so
// generated commands stay minimal; the renderer accepts explicit values too.
func CompileCommand(cfg Configuration, exe string) (CommandLine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cmd := CommandLine{exe}

	if cfg.Mode == ModeWindow {
		cmd = append(cmd, "--window", cfg.Window.String())
	}

	for _, b := range cfg.Backgrounds {
		switch cfg.Mode {
		case ModeMulti:
			cmd = append(cmd, "--screen-root", b.Target, "--bg", b.Source)
		case ModeSingle:
			// The source travels as the trailing positional; a concrete
			// connector target still needs --screen-root.
			if b.Target != "" && b.Target != TargetAllScreens {
				cmd = append(cmd, "--screen-root", b.Target)
			}
		case ModeWindow:
			// Positional source only.
		}
		if b.Scaling != ScalingDefault {
			cmd = append(cmd, "--scaling", string(b.Scaling))
		}
		if b.Clamp != ClampUnset {
			cmd = append(cmd, "--clamping", string(b.Clamp))
		}
	}

	if cfg.Performance.FPS != 0 {
		cmd = append(cmd, "--fps", strconv.Itoa(cfg.Performance.FPS))
	}
	if cfg.Performance.PauseOnFullscreen {
		cmd = append(cmd, "--pause-on-fullscreen")
	}

	if cfg.Sound.Silent {
		cmd = append(cmd, "--silent")
	} else if v := cfg.Sound.Volume; v != DefaultVolume {
		// 0 is a deliberate "muted but not silent" choice and must reach
		// the renderer; only the documented default is omitted.
		cmd = append(cmd, "--volume", strconv.Itoa(v))
	}
	if cfg.Sound.NoAutoMute {
		cmd = append(cmd, "--noautomute")
	}
	if cfg.Sound.NoAudioProcessing {
		cmd = append(cmd, "--no-audio-processing")
	}

	if cfg.Interaction.DisableMouse {
		cmd = append(cmd, "--disable-mouse")
	}
	if cfg.Interaction.DisableParallax {
		cmd = append(cmd, "--disable-parallax")
	}

	if cfg.Screenshot.Enabled {
		format := cfg.Screenshot.Format
		if format == "" {
			format = FormatPNG
		}
		cmd = append(cmd,
			"--screenshot",
			"--screenshot-format", string(format),
			"--screenshot-delay", strconv.Itoa(cfg.Screenshot.Delay),
		)
	}

	if cfg.AssetsDir != "" {
		cmd = append(cmd, "--assets-dir", cfg.AssetsDir)
	}
	for _, p := range cfg.Properties {
		cmd = append(cmd, "--set-property", p)
	}

	if cfg.Mode != ModeMulti {
		cmd = append(cmd, cfg.Backgrounds[0].Source)
	}

	return cmd, nil
}
