package domain

import "regexp"

// connectorRe matches the connector families the renderer is known to accept.
var connectorRe = regexp.MustCompile(`^(HDMI|DP|eDP)-\d+$`)

// DisplayInfo describes one connected output. Immutable once detected.
type DisplayInfo struct {
	// Connector is the video output identifier, e.g. "HDMI-1", "DP-2".
	// Unique within a detection run.
	Connector string

	// Name is the human-readable monitor name derived from EDID metadata.
	// Best-effort and purely cosmetic; empty when unresolvable.
	Name string

	// Resolution is the active mode as reported by the listing utility,
	// e.g. "1920x1080". Cosmetic only.
	Resolution string

	// Recognized reports whether Connector matches a known prefix family.
	// Unrecognized connectors are still usable; this only affects labels.
	Recognized bool
}

// KnownConnector reports whether s looks like HDMI-n, DP-n or eDP-n.
func KnownConnector(s string) bool {
	return connectorRe.MatchString(s)
}

// Label renders the display for menus: connector, monitor name and
// resolution when available.
func (d DisplayInfo) Label() string {
	label := d.Connector
	if d.Name != "" {
		label += " - " + d.Name
	}
	if d.Resolution != "" {
		label += " (" + d.Resolution + ")"
	}
	if !d.Recognized {
		label += " [unrecognized]"
	}
	return label
}
