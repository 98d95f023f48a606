// Package xrandr detects connected displays on X11 sessions by parsing
// xrandr output.
package xrandr

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/ports"
)

// RunCommand executes an external command and returns its stdout. Injected
// so tests can feed canned xrandr output.
type RunCommand func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

type Detector struct {
	run       RunCommand
	withNames bool
}

type Option func(*Detector)

// WithRunner replaces the subprocess runner. Useful for tests.
func WithRunner(run RunCommand) Option {
	return func(d *Detector) { d.run = run }
}

// WithoutNames skips the second xrandr call that resolves monitor names.
func WithoutNames() Option {
	return func(d *Detector) { d.withNames = false }
}

func New(opts ...Option) *Detector {
	d := &Detector{
		run:       defaultRun,
		withNames: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var _ ports.DisplayLister = (*Detector)(nil)

// List parses `xrandr --query` for connected outputs and, best-effort,
// resolves monitor names from `xrandr --prop`. Unparseable lines are
// skipped; only a failing xrandr invocation is an error. Zero connected
// outputs is a valid empty result.
func (d *Detector) List(ctx context.Context) ([]domain.DisplayInfo, error) {
	out, err := d.run(ctx, "xrandr", "--query")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "xrandr.list",
			Kind: domain.KindDetection,
			Err:  err,
		}
	}

	displays := parseQuery(string(out))
	if len(displays) == 0 || !d.withNames {
		return displays, nil
	}

	// Name resolution is cosmetic: a failing --prop call leaves names empty.
	props, err := d.run(ctx, "xrandr", "--prop")
	if err == nil {
		names := parseMonitorNames(string(props))
		for i := range displays {
			displays[i].Name = names[displays[i].Connector]
		}
	}

	return displays, nil
}

// modeRe matches the active mode field, e.g. 1920x1080+0+0 or 2560x1440-0+0.
var modeRe = regexp.MustCompile(`^(\d+x\d+)[+-]\d+[+-]\d+$`)

func parseQuery(out string) []domain.DisplayInfo {
	var displays []domain.DisplayInfo
	seen := map[string]bool{}

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		// "<connector> connected [primary] <WxH+X+Y> ..."
		if len(fields) < 2 || fields[1] != "connected" {
			continue
		}
		connector := fields[0]
		if seen[connector] {
			continue
		}
		seen[connector] = true

		var resolution string
		for _, f := range fields[2:] {
			if m := modeRe.FindStringSubmatch(f); m != nil {
				resolution = m[1]
				break
			}
		}

		displays = append(displays, domain.DisplayInfo{
			Connector:  connector,
			Resolution: resolution,
			Recognized: domain.KnownConnector(connector),
		})
	}

	return displays
}

// parseMonitorNames walks `xrandr --prop` output and maps connectors to
// human-readable names, preferring an explicit "Monitor name:" property and
// falling back to the EDID product-name descriptor.
func parseMonitorNames(out string) map[string]string {
	names := map[string]string{}

	var (
		current  string
		edidHex  strings.Builder
		inEDID   bool
		finalize = func() {
			if current == "" {
				return
			}
			if _, ok := names[current]; !ok && edidHex.Len() > 0 {
				if name := nameFromEDID(edidHex.String()); name != "" {
					names[current] = name
				}
			}
			edidHex.Reset()
		}
	)

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)

		// New connector section.
		if len(fields) >= 2 && (fields[1] == "connected" || fields[1] == "disconnected") && !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			finalize()
			current = ""
			inEDID = false
			if fields[1] == "connected" {
				current = fields[0]
			}
			continue
		}
		if current == "" {
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Monitor name:"):
			if v := strings.TrimSpace(strings.TrimPrefix(trimmed, "Monitor name:")); v != "" {
				names[current] = v
			}
			inEDID = false

		case strings.HasPrefix(trimmed, "EDID:"):
			inEDID = true
			edidHex.Reset()

		case inEDID && isHexLine(trimmed):
			edidHex.WriteString(trimmed)

		default:
			inEDID = false
		}
	}
	finalize()

	return names
}

func isHexLine(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
