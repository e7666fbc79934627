// Package ascii draws the framed header line printed above the report.
package ascii

import (
	"strings"

	"sysinfo/sysinfo"
)

// Rule lengths on either side of the banner text.
const (
	leftRule  = 19
	rightRule = 18
)

// Banner frames text between runs of '=' and paints it in the header color.
//
// Example: Banner("15 October 2026 12:30:45", pal) returns
// "=================== 15 October 2026 12:30:45 =================="
func Banner(text string, pal sysinfo.Palette) string {
	line := strings.Repeat("=", leftRule) + " " + text + " " + strings.Repeat("=", rightRule)
	return pal.Paint(line, sysinfo.ColorHeader)
}
