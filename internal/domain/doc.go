// Package domain contains the core model for the wallpaper-engine helper.
//
// The domain is terminal- and process-agnostic: it does not depend on the TUI,
// os/exec, or the filesystem. Infra/adapters map into/from these types. The
// command compiler lives here because it is pure data-to-token logic.
package domain
