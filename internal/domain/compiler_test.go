package domain

import (
	"reflect"
	"strings"
	"testing"
)

const exe = "/opt/wallpaperengine/linux-wallpaperengine"

func singleConfig(source string, fps int) Configuration {
	return Configuration{
		Mode: ModeSingle,
		Backgrounds: []BackgroundAssignment{
			{Target: TargetAllScreens, Source: source},
		},
		Performance: PerformanceSettings{FPS: fps},
		Sound:       SoundSettings{Volume: DefaultVolume},
	}
}

func TestCompileSingleAllDefaults(t *testing.T) {
	cmd, err := CompileCommand(singleConfig("2317494988", 30), exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := CommandLine{exe, "--fps", "30", "2317494988"}
	if !reflect.DeepEqual(cmd, want) {
		t.Fatalf("got %v, want %v", cmd, want)
	}
}

func TestCompileMultiScreen(t *testing.T) {
	cfg := Configuration{
		Mode: ModeMulti,
		Backgrounds: []BackgroundAssignment{
			{Target: "HDMI-1", Source: "wallpaper1", Scaling: ScalingFit},
			{Target: "DP-1", Source: "wallpaper2", Scaling: ScalingStretch},
		},
		Performance: PerformanceSettings{FPS: 60},
		Sound:       SoundSettings{Volume: 50},
	}

	cmd, err := CompileCommand(cfg, exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := CommandLine{exe,
		"--screen-root", "HDMI-1", "--bg", "wallpaper1", "--scaling", "fit",
		"--screen-root", "DP-1", "--bg", "wallpaper2", "--scaling", "stretch",
		"--fps", "60",
		"--volume", "50",
	}
	if !reflect.DeepEqual(cmd, want) {
		t.Fatalf("got %v, want %v", cmd, want)
	}
}

func TestCompileWindowMode(t *testing.T) {
	cfg := Configuration{
		Mode:        ModeWindow,
		Backgrounds: []BackgroundAssignment{{Source: "2317494988"}},
		Window:      &WindowGeometry{X: 100, Y: 100, Width: 800, Height: 600},
		Sound:       SoundSettings{Volume: DefaultVolume},
	}

	cmd, err := CompileCommand(cfg, exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := CommandLine{exe, "--window", "100x100x800x600", "2317494988"}
	if !reflect.DeepEqual(cmd, want) {
		t.Fatalf("got %v, want %v", cmd, want)
	}
}

func TestCompileDeterministic(t *testing.T) {
	cfg := Configuration{
		Mode: ModeMulti,
		Backgrounds: []BackgroundAssignment{
			{Target: "HDMI-1", Source: "a", Scaling: ScalingFill, Clamp: ClampBorder},
			{Target: "eDP-1", Source: "b"},
		},
		Performance: PerformanceSettings{FPS: 144, PauseOnFullscreen: true},
		Sound:       SoundSettings{Silent: true, NoAutoMute: true},
		Interaction: InteractionSettings{DisableParallax: true},
		Screenshot:  ScreenshotSettings{Enabled: true, Format: FormatJPEG, Delay: 10},
	}

	first, err := CompileCommand(cfg, exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := CompileCommand(cfg, exe)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
}

func TestCompileBooleanFlagMinimality(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Configuration)
		flag   string
	}{
		{"pause_on_fullscreen", func(c *Configuration) { c.Performance.PauseOnFullscreen = true }, "--pause-on-fullscreen"},
		{"silent", func(c *Configuration) { c.Sound.Silent = true }, "--silent"},
		{"noautomute", func(c *Configuration) { c.Sound.NoAutoMute = true }, "--noautomute"},
		{"no_audio_processing", func(c *Configuration) { c.Sound.NoAudioProcessing = true }, "--no-audio-processing"},
		{"disable_mouse", func(c *Configuration) { c.Interaction.DisableMouse = true }, "--disable-mouse"},
		{"disable_parallax", func(c *Configuration) { c.Interaction.DisableParallax = true }, "--disable-parallax"},
		{"screenshot", func(c *Configuration) { c.Screenshot.Enabled = true }, "--screenshot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := singleConfig("123", 0)
			cmd, err := CompileCommand(base, exe)
			if err != nil {
				t.Fatalf("default compile: %v", err)
			}
			if contains(cmd, tt.flag) {
				t.Fatalf("default config emitted %s: %v", tt.flag, cmd)
			}

			tt.mutate(&base)
			cmd, err = CompileCommand(base, exe)
			if err != nil {
				t.Fatalf("non-default compile: %v", err)
			}
			if !contains(cmd, tt.flag) {
				t.Fatalf("non-default config missing %s: %v", tt.flag, cmd)
			}
		})
	}
}

func TestCompileVolumeOmittedAtDefault(t *testing.T) {
	cfg := singleConfig("123", 30)
	cfg.Sound.Volume = DefaultVolume

	cmd, err := CompileCommand(cfg, exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if contains(cmd, "--volume") {
		t.Fatalf("default volume emitted a flag: %v", cmd)
	}
}

func TestCompileVolumeZeroEmitted(t *testing.T) {
	cfg := singleConfig("1", 30)
	cfg.Sound.Volume = 0

	cmd, err := CompileCommand(cfg, exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := CommandLine{exe, "--fps", "30", "--volume", "0", "1"}
	if !reflect.DeepEqual(cmd, want) {
		t.Fatalf("got %v, want %v", cmd, want)
	}
}

func TestCompileSilentSuppressesVolume(t *testing.T) {
	cfg := singleConfig("123", 30)
	cfg.Sound.Silent = true
	cfg.Sound.Volume = 80

	cmd, err := CompileCommand(cfg, exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if contains(cmd, "--volume") {
		t.Fatalf("silent config emitted --volume: %v", cmd)
	}
	if !contains(cmd, "--silent") {
		t.Fatalf("silent config missing --silent: %v", cmd)
	}
}

func TestCompileScreenshotBlock(t *testing.T) {
	cfg := singleConfig("123", 30)
	cfg.Screenshot = ScreenshotSettings{Enabled: true, Format: FormatBMP, Delay: 7}

	cmd, err := CompileCommand(cfg, exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	joined := strings.Join(cmd, " ")
	if !strings.Contains(joined, "--screenshot --screenshot-format bmp --screenshot-delay 7") {
		t.Fatalf("screenshot block wrong: %v", cmd)
	}
}

func TestCompilePassThroughOptions(t *testing.T) {
	cfg := singleConfig("123", 30)
	cfg.AssetsDir = "/usr/share/wallpaperengine/assets"
	cfg.Properties = []string{"rate=1.5", "schemecolor=0 0 0"}

	cmd, err := CompileCommand(cfg, exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	joined := strings.Join(cmd, " ")
	if !strings.Contains(joined, "--assets-dir /usr/share/wallpaperengine/assets") {
		t.Fatalf("missing assets dir: %v", cmd)
	}
	if !strings.Contains(joined, "--set-property rate=1.5 --set-property schemecolor=0 0 0") {
		t.Fatalf("missing properties: %v", cmd)
	}
	if cmd[len(cmd)-1] != "123" {
		t.Fatalf("positional source must stay last: %v", cmd)
	}
}

func TestCompileSingleWithConcreteTarget(t *testing.T) {
	cfg := Configuration{
		Mode:        ModeSingle,
		Backgrounds: []BackgroundAssignment{{Target: "HDMI-1", Source: "999"}},
		Sound:       SoundSettings{Volume: DefaultVolume},
	}

	cmd, err := CompileCommand(cfg, exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := CommandLine{exe, "--screen-root", "HDMI-1", "999"}
	if !reflect.DeepEqual(cmd, want) {
		t.Fatalf("got %v, want %v", cmd, want)
	}
}

func TestCompileInvalidConfigurations(t *testing.T) {
	window := &WindowGeometry{X: 0, Y: 0, Width: 800, Height: 600}

	tests := []struct {
		name string
		cfg  Configuration
	}{
		{"unknown mode", Configuration{Mode: "weird", Backgrounds: []BackgroundAssignment{{Source: "1"}}}},
		{"empty backgrounds", Configuration{Mode: ModeSingle}},
		{"two backgrounds in single", Configuration{Mode: ModeSingle, Backgrounds: []BackgroundAssignment{{Source: "1"}, {Source: "2"}}}},
		{"window mode without geometry", Configuration{Mode: ModeWindow, Backgrounds: []BackgroundAssignment{{Source: "1"}}}},
		{"zero window size", Configuration{Mode: ModeWindow, Backgrounds: []BackgroundAssignment{{Source: "1"}}, Window: &WindowGeometry{Width: 0, Height: 600}}},
		{"geometry outside window mode", Configuration{Mode: ModeSingle, Backgrounds: []BackgroundAssignment{{Source: "1"}}, Window: window}},
		{"fps too high", func() Configuration { c := singleConfig("1", 300); return c }()},
		{"fps negative", func() Configuration { c := singleConfig("1", -5); return c }()},
		{"volume too high", func() Configuration {
			c := singleConfig("1", 30)
			c.Sound.Volume = 150
			return c
		}()},
		{"negative screenshot delay", func() Configuration {
			c := singleConfig("1", 30)
			c.Screenshot.Delay = -1
			return c
		}()},
		{"unknown scaling", func() Configuration {
			c := singleConfig("1", 30)
			c.Backgrounds[0].Scaling = "zoom"
			return c
		}()},
		{"unknown clamp", func() Configuration {
			c := singleConfig("1", 30)
			c.Backgrounds[0].Clamp = "wrap"
			return c
		}()},
		{"multi background without target", Configuration{Mode: ModeMulti, Backgrounds: []BackgroundAssignment{{Source: "1"}}}},
		{"background without source", Configuration{Mode: ModeSingle, Backgrounds: []BackgroundAssignment{{Target: TargetAllScreens}}}},
		{"unknown screenshot format", func() Configuration {
			c := singleConfig("1", 30)
			c.Screenshot.Format = "tiff"
			return c
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileCommand(tt.cfg, exe)
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsKind(err, KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
		})
	}
}

func TestCompileZeroFPSIsUnset(t *testing.T) {
	cmd, err := CompileCommand(singleConfig("1", 0), exe)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if contains(cmd, "--fps") {
		t.Fatalf("unset fps emitted a flag: %v", cmd)
	}
}

func contains(cmd CommandLine, token string) bool {
	for _, t := range cmd {
		if t == token {
			return true
		}
	}
	return false
}
