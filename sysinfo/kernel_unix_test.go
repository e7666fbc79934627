//go:build linux || darwin || freebsd || netbsd || openbsd

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelRelease(t *testing.T) {
	release, err := kernelRelease()
	require.NoError(t, err)
	assert.NotEmpty(t, release)
	assert.NotContains(t, release, "\x00")
}
