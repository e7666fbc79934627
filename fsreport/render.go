package fsreport

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"sysinfo/sysinfo"
)

// Column widths in display cells.
const (
	deviceWidth  = 18
	mountWidth   = 18
	typeWidth    = 8
	sizeWidth    = 8
	percentWidth = 6
)

const indent = "  "

// Render writes the report table to w: a colored header line followed by
// one line per row, or a single placeholder line for a degraded report.
func Render(w io.Writer, rep Report, pal sysinfo.Palette) {
	if rep.Degraded {
		fmt.Fprintln(w, indent+sysinfo.Unreadable)
		return
	}

	header := formatLine("Filesystem", "Mountpoint", "Type", "Size", "Used", "Avail", "Use%")
	fmt.Fprintln(w, pal.Paint(header, sysinfo.ColorTable))

	for _, r := range rep.Rows {
		pct := strconv.Itoa(r.Usage.UsedPercent) + "%"
		fmt.Fprintln(w, formatLine(escapeControl(r.Device), escapeControl(r.MountPoint), r.FSType, r.Size, r.Used, r.Avail, pct))
	}
}

// escapeControl writes control characters back in the mount table's \ooo
// form so a row always stays on one line.
func escapeControl(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == 0x7f {
			fmt.Fprintf(&b, "\\%03o", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

func formatLine(device, mount, fstype, size, used, avail, pct string) string {
	return indent + strings.Join([]string{
		sysinfo.PadRight(device, deviceWidth),
		sysinfo.PadRight(mount, mountWidth),
		sysinfo.PadRight(fstype, typeWidth),
		sysinfo.PadLeft(size, sizeWidth),
		sysinfo.PadLeft(used, sizeWidth),
		sysinfo.PadLeft(avail, sizeWidth),
		sysinfo.PadLeft(pct, percentWidth),
	}, " ")
}
