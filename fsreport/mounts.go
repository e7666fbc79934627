// Package fsreport builds a df-style capacity table for the mounted
// filesystems that hold real storage, leaving out pseudo and virtual mounts.
package fsreport

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MountsPath is the live mount table, relative to the builder root.
const MountsPath = "/proc/mounts"

// MountEntry represents one line of the mount table.
type MountEntry struct {
	Device     string
	MountPoint string
	FSType     string
	// Options holds the remaining fields (mount options, dump, pass) verbatim.
	Options string
}

// ParseMounts reads a mount table in /proc/mounts format. Entries are
// returned in table order; lines with fewer than three fields are ignored.
// On a read error the entries parsed so far are returned with the error.
func ParseMounts(r io.Reader) ([]MountEntry, error) {
	var entries []MountEntry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if e, ok := parseMountLine(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return entries, errors.Wrap(err, "read mount table")
	}
	return entries, nil
}

func parseMountLine(line string) (MountEntry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return MountEntry{}, false
	}
	return MountEntry{
		Device:     unescapeOctal(fields[0]),
		MountPoint: unescapeOctal(fields[1]),
		FSType:     fields[2],
		Options:    strings.Join(fields[3:], " "),
	}, true
}

// unescapeOctal decodes the \ooo escapes the kernel writes for space, tab,
// newline and backslash. Malformed escapes are kept as-is.
func unescapeOctal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) {
			if v, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(v))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
