package domain

import "fmt"

// Mode selects how backgrounds are applied.
type Mode string

const (
	ModeSingle Mode = "single" // one background on all screens
	ModeMulti  Mode = "multi"  // one background per screen
	ModeWindow Mode = "window" // floating window with explicit geometry
)

// TargetAllScreens is the assignment target used in single mode.
const TargetAllScreens = "all-screens"

// ScalingMode is how a background is resized to the screen resolution.
// The zero value means "renderer default" and emits no flag.
type ScalingMode string

const (
	ScalingDefault ScalingMode = ""
	ScalingStretch ScalingMode = "stretch"
	ScalingFit     ScalingMode = "fit"
	ScalingFill    ScalingMode = "fill"
)

// ClampMode is the renderer's edge-handling option for scaled backgrounds.
// The zero value means unset and emits no flag.
type ClampMode string

const (
	ClampUnset  ClampMode = ""
	ClampClamp  ClampMode = "clamp"
	ClampBorder ClampMode = "border"
	ClampRepeat ClampMode = "repeat"
)

// ScreenshotFormat is the output format for the renderer's screenshot option.
type ScreenshotFormat string

const (
	FormatPNG  ScreenshotFormat = "png"
	FormatJPEG ScreenshotFormat = "jpeg"
	FormatBMP  ScreenshotFormat = "bmp"
)

// Renderer defaults. Values equal to these are omitted from compiled
// commands to keep them minimal.
const (
	DefaultFPS             = 30
	DefaultVolume          = 15
	DefaultScreenshotDelay = 5

	// FPS bounds accepted by the renderer.
	MinFPS = 1
	MaxFPS = 240

	MinVolume = 0
	MaxVolume = 100
)

// BackgroundAssignment binds one background source to a target screen.
// Source is a workshop ID or a filesystem path. In single and window mode
// the source travels as the trailing positional argument instead of --bg.
type BackgroundAssignment struct {
	Target  string
	Source  string
	Scaling ScalingMode
	Clamp   ClampMode
}

// WindowGeometry positions the floating window in window mode. X and Y may
// be negative (multi-monitor offsets); width and height must be positive.
type WindowGeometry struct {
	X, Y          int
	Width, Height int
}

func (g WindowGeometry) String() string {
	return fmt.Sprintf("%dx%dx%dx%d", g.X, g.Y, g.Width, g.Height)
}

// PerformanceSettings: FPS 0 means unset (renderer default, no flag).
type PerformanceSettings struct {
	FPS               int
	PauseOnFullscreen bool
}

// SoundSettings. Volume is ignored when Silent is set. The disable-style
// booleans mirror the renderer flags so the zero value emits nothing.
type SoundSettings struct {
	Silent            bool
	Volume            int
	NoAutoMute        bool
	NoAudioProcessing bool
}

// InteractionSettings. Mouse and parallax default to enabled in the
// renderer, so only disabling is explicit.
type InteractionSettings struct {
	DisableMouse    bool
	DisableParallax bool
}

// ScreenshotSettings. Delay is in seconds and must be non-negative.
type ScreenshotSettings struct {
	Enabled bool
	Format  ScreenshotFormat
	Delay   int
}

// Configuration is the aggregate the wizard builds and the compiler reads.
// Invariants (checked by Validate):
//   - Mode is one of single/multi/window
//   - Backgrounds is non-empty; exactly one entry unless Mode is multi
//   - Window is present iff Mode is window, with positive width/height
//   - FPS is 0 or within [MinFPS, MaxFPS]; Volume within [MinVolume, MaxVolume]
//   - screenshot delay is non-negative; enum fields hold known values
type Configuration struct {
	Mode        Mode
	Backgrounds []BackgroundAssignment
	Window      *WindowGeometry
	Performance PerformanceSettings
	Sound       SoundSettings
	Interaction InteractionSettings
	Screenshot  ScreenshotSettings

	// Pass-through options sourced from the tool config, not the wizard.
	AssetsDir  string
	Properties []string
}

func invalid(op, msg string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, ErrInvalidConfig),
	}
}

// Validate checks the aggregate invariants. A violation here reaching the
// compiler indicates a wizard defect, not user error.
func (c Configuration) Validate() error {
	const op = "domain.validate"

	switch c.Mode {
	case ModeSingle, ModeMulti, ModeWindow:
	default:
		return invalid(op, fmt.Sprintf("unknown mode %q", c.Mode))
	}

	if len(c.Backgrounds) == 0 {
		return invalid(op, "no backgrounds configured")
	}
	if c.Mode != ModeMulti && len(c.Backgrounds) != 1 {
		return invalid(op, fmt.Sprintf("mode %s requires exactly one background, got %d", c.Mode, len(c.Backgrounds)))
	}

	if c.Mode == ModeWindow {
		if c.Window == nil {
			return invalid(op, "window mode without geometry")
		}
		if c.Window.Width <= 0 || c.Window.Height <= 0 {
			return invalid(op, fmt.Sprintf("window size %dx%d not positive", c.Window.Width, c.Window.Height))
		}
	} else if c.Window != nil {
		return invalid(op, fmt.Sprintf("geometry set but mode is %s", c.Mode))
	}

	for i, b := range c.Backgrounds {
		if b.Source == "" {
			return invalid(op, fmt.Sprintf("background %d has no source", i))
		}
		if c.Mode == ModeMulti && b.Target == "" {
			return invalid(op, fmt.Sprintf("background %d has no target screen", i))
		}
		switch b.Scaling {
		case ScalingDefault, ScalingStretch, ScalingFit, ScalingFill:
		default:
			return invalid(op, fmt.Sprintf("unknown scaling mode %q", b.Scaling))
		}
		switch b.Clamp {
		case ClampUnset, ClampClamp, ClampBorder, ClampRepeat:
		default:
			return invalid(op, fmt.Sprintf("unknown clamp mode %q", b.Clamp))
		}
	}

	if fps := c.Performance.FPS; fps != 0 && (fps < MinFPS || fps > MaxFPS) {
		return invalid(op, fmt.Sprintf("fps %d outside [%d,%d]", fps, MinFPS, MaxFPS))
	}
	if v := c.Sound.Volume; v < MinVolume || v > MaxVolume {
		return invalid(op, fmt.Sprintf("volume %d outside [%d,%d]", v, MinVolume, MaxVolume))
	}

	if c.Screenshot.Delay < 0 {
		return invalid(op, fmt.Sprintf("screenshot delay %d negative", c.Screenshot.Delay))
	}
	switch c.Screenshot.Format {
	case "", FormatPNG, FormatJPEG, FormatBMP:
	default:
		return invalid(op, fmt.Sprintf("unknown screenshot format %q", c.Screenshot.Format))
	}

	return nil
}
