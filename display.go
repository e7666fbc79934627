package main

import (
	"fmt"
	"io"

	"sysinfo/ascii"
	"sysinfo/fsreport"
	"sysinfo/sysinfo"
)

// labelWidth is the column width of field titles before the colon.
const labelWidth = 19

// displayReport renders the full report in its fixed order: header, user,
// OS release, kernel, mounted filesystems, temperature and uptime.
func displayReport(w io.Writer, pal sysinfo.Palette, info *sysinfo.SystemInfo, disks fsreport.Report) {
	fmt.Fprintln(w, ascii.Banner(info.Timestamp, pal))
	printField(w, pal, "User", info.Username)
	printField(w, pal, "OS Release", info.OSRelease)
	printField(w, pal, "Kernel", info.Kernel)

	fmt.Fprintln(w, pal.Paint(sysinfo.PadRight("Mounted SSD/HDD", labelWidth)+":", sysinfo.ColorTitle))
	fsreport.Render(w, disks, pal)

	printField(w, pal, "Temperature", info.Temperature)
	printField(w, pal, "Uptime", info.Uptime)
}

// printField writes one "Label   : value" line with title and value colors.
func printField(w io.Writer, pal sysinfo.Palette, label, value string) {
	title := pal.Paint(sysinfo.PadRight(label, labelWidth)+": ", sysinfo.ColorTitle)
	fmt.Fprintln(w, title+pal.Paint(value, sysinfo.ColorValue))
}
