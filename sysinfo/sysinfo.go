// Package sysinfo provides the single-fact lookups shown in the report:
// clock, user, OS release, kernel, thermal sensor and uptime. It also owns
// the ANSI color codes and text formatting helpers shared by the renderers.
package sysinfo

import "github.com/pkg/errors"

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorHeader = "\033[1;36m"
	ColorTitle  = "\033[1;33m"
	ColorValue  = "\033[1;37m"
	ColorTable  = "\033[0;32m"
)

// Placeholders printed in place of a value that could not be obtained.
const (
	Unknown    = "(unknown)"
	Unreadable = "(cannot be read)"
)

var (
	// ErrNotFound is returned when a source was readable but did not
	// contain the requested value.
	ErrNotFound = errors.New("value not found")

	// ErrUnsupported is returned on platforms without the needed system call.
	ErrUnsupported = errors.New("unsupported platform")
)

// SystemInfo holds the display-ready values of every single-fact lookup.
// Fields that could not be read already carry their placeholder.
type SystemInfo struct {
	// Timestamp is the local date and time, "DD Month YYYY HH:MM:SS"
	Timestamp string

	// Username is the invoking user's name
	Username string

	// OSRelease is the PRETTY_NAME from os-release
	OSRelease string

	// Kernel is the kernel release string
	Kernel string

	// Temperature is the first thermal zone reading in degrees Celsius
	Temperature string

	// Uptime is the time since boot in whole days, hours and minutes
	Uptime string
}

// Palette paints text with ANSI colors, or leaves it untouched when
// colors are disabled.
type Palette struct {
	enabled bool
}

// NewPalette returns a Palette. A disabled palette emits no escape codes.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

// Paint wraps text with the color code followed by a reset code.
func (p Palette) Paint(text, color string) string {
	if !p.enabled {
		return text
	}
	return color + text + ColorReset
}
