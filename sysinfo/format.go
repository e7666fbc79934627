// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// TimestampLayout renders as "DD Month YYYY HH:MM:SS".
const TimestampLayout = "02 January 2006 15:04:05"

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var sizeUnits = [...]string{"B", "K", "M", "G", "T", "P"}

// HumanBytes converts a byte count to a compact human-readable string.
//
// The value is divided by 1024 while it is at least 1024 and the unit is
// below P, then printed with one decimal digit and the unit letter.
//
// Example: HumanBytes(1536) returns "1.5K"
func HumanBytes(bytes uint64) string {
	size := float64(bytes)
	i := 0
	for size >= 1024.0 && i < len(sizeUnits)-1 {
		size /= 1024.0
		i++
	}
	return strconv.FormatFloat(size, 'f', 1, 64) + sizeUnits[i]
}

// FormatTimestamp renders t in its own location using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatTemperature renders degrees Celsius with one decimal place.
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%.1f°C", celsius)
}

// FormatUptime splits seconds since boot into whole days, hours and minutes.
// Fractions are truncated, never rounded.
//
// Example: FormatUptime(90061) returns "1 days, 1 hours, 1 minutes"
func FormatUptime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(seconds)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, minutes)
}

// VisibleWidth calculates the display width of s excluding ANSI escape codes.
// Wide runes count as two columns.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// PadRight pads s with spaces on the right up to width display columns.
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	if w := VisibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// PadLeft pads s with spaces on the left up to width display columns.
func PadLeft(s string, width int) string {
	if w := VisibleWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
