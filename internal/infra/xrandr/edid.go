package xrandr

import (
	"encoding/hex"
	"strings"
)

// EDID layout constants: four 18-byte display descriptors start at byte 54,
// a descriptor tagged 0xFC carries the monitor name in its last 13 bytes.
const (
	edidMinLen        = 128
	descriptorStart   = 54
	descriptorLen     = 18
	descriptorCount   = 4
	tagProductName    = 0xFC
	descriptorNameOff = 5
)

// nameFromEDID extracts the display product name from a hex-encoded EDID
// block. Returns "" when the EDID is short, malformed, or carries no name
// descriptor; the caller treats that as "no friendly name".
func nameFromEDID(hexData string) string {
	raw, err := hex.DecodeString(hexData)
	if err != nil || len(raw) < edidMinLen {
		return ""
	}

	for i := 0; i < descriptorCount; i++ {
		off := descriptorStart + i*descriptorLen
		desc := raw[off : off+descriptorLen]

		// Display descriptors (as opposed to timing descriptors) start with
		// two zero bytes; byte 3 is the tag.
		if desc[0] != 0 || desc[1] != 0 || desc[3] != tagProductName {
			continue
		}

		name := string(desc[descriptorNameOff:])
		if i := strings.IndexByte(name, '\n'); i >= 0 {
			name = name[:i]
		}
		name = strings.TrimRight(name, " \x00")
		if name != "" && printable(name) {
			return name
		}
	}

	return ""
}

func printable(s string) bool {
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}
