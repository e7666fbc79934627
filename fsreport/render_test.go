package fsreport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysinfo/sysinfo"
)

func TestRender(t *testing.T) {
	rep := Report{Rows: []Row{{
		Device:     "/dev/sda1",
		MountPoint: "/",
		FSType:     "ext4",
		Usage:      Usage{UsedPercent: 60},
		Size:       "1000.0B",
		Used:       "600.0B",
		Avail:      "400.0B",
	}}}

	var buf bytes.Buffer
	Render(&buf, rep, sysinfo.NewPalette(false))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"  Filesystem         Mountpoint         Type         Size     Used    Avail   Use%",
		lines[0])
	assert.Equal(t,
		"  /dev/sda1          /                  ext4      1000.0B   600.0B   400.0B    60%",
		lines[1])
}

func TestRenderHeaderColor(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Report{}, sysinfo.NewPalette(true))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, sysinfo.ColorTable))
	assert.Contains(t, out, "Filesystem")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRenderDegraded(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, Report{Degraded: true}, sysinfo.NewPalette(true))

	assert.Equal(t, "  (cannot be read)\n", buf.String())
}

func TestRenderLongFieldsOverflow(t *testing.T) {
	rep := Report{Rows: []Row{{
		Device:     "/dev/mapper/vg0-very-long-volume",
		MountPoint: "/srv",
		FSType:     "ext4",
		Size:       "1.0G",
		Used:       "0.0B",
		Avail:      "1.0G",
	}}}

	var buf bytes.Buffer
	Render(&buf, rep, sysinfo.NewPalette(false))
	assert.Contains(t, buf.String(), "  /dev/mapper/vg0-very-long-volume /srv ")
}

func TestRenderEscapesControlCharacters(t *testing.T) {
	rep := Report{Rows: []Row{{
		Device:     "/dev/sd\tg1",
		MountPoint: "/mnt/a\nb",
		FSType:     "ext4",
		Size:       "1.0G",
		Used:       "0.0B",
		Avail:      "1.0G",
	}}}

	var buf bytes.Buffer
	Render(&buf, rep, sysinfo.NewPalette(false))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `  /dev/sd\011g1      /mnt/a\012b `), lines[1])
	assert.NotContains(t, lines[1], "\t")
}
