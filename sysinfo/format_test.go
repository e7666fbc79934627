package sysinfo

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0.0B"},
		{512, "512.0B"},
		{1023, "1023.0B"},
		{1024, "1.0K"},
		{1536, "1.5K"},
		{1024 * 1024, "1.0M"},
		{5 * 1024 * 1024 * 1024, "5.0G"},
		{3 * 1024 * 1024 * 1024 * 1024, "3.0T"},
		{1 << 50, "1.0P"},
		{2048 << 50, "2048.0P"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, HumanBytes(tc.in), "HumanBytes(%d)", tc.in)
	}
}

func TestHumanBytesShape(t *testing.T) {
	shape := regexp.MustCompile(`^\d+\.\d[BKMGTP]$`)
	for _, in := range []uint64{0, 1, 999, 4096, 123456789, 1 << 40, 1 << 55, math.MaxUint64} {
		assert.Regexp(t, shape, HumanBytes(in))
	}
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0 days, 0 hours, 0 minutes", FormatUptime(59.99))
	assert.Equal(t, "1 days, 1 hours, 1 minutes", FormatUptime(90061))
	assert.Equal(t, "2 days, 23 hours, 59 minutes", FormatUptime(2*86400+23*3600+59*60+59.9))
	assert.Equal(t, "0 days, 0 hours, 0 minutes", FormatUptime(-5))
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "45.0°C", FormatTemperature(45))
	assert.Equal(t, "52.3°C", FormatTemperature(52.312))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 7, 8, 9, 0, time.UTC)
	assert.Equal(t, "05 March 2026 07:08:09", FormatTimestamp(ts))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "Hi   ", PadRight("Hi", 5))
	assert.Equal(t, "HelloWorld", PadRight("HelloWorld", 5))
	assert.Equal(t, "   Hi", PadLeft("Hi", 5))
	assert.Equal(t, "世界 ", PadRight("世界", 5))

	colored := ColorTitle + "Hi" + ColorReset
	assert.Equal(t, colored+"   ", PadRight(colored, 5))
	assert.Equal(t, 2, VisibleWidth(colored))
}

func TestPalette(t *testing.T) {
	assert.Equal(t, ColorValue+"x"+ColorReset, NewPalette(true).Paint("x", ColorValue))
	assert.Equal(t, "x", NewPalette(false).Paint("x", ColorValue))
}
