package fsreport

import "strings"

// Reasons reported by Rules.Match.
const (
	ReasonFSType       = "fstype"
	ReasonDevicePrefix = "device-prefix"
)

var defaultSkipFSTypes = []string{
	"proc", "sysfs", "devtmpfs", "tmpfs", "cgroup", "cgroup2", "pstore", "securityfs",
	"debugfs", "tracefs", "configfs", "overlay", "squashfs", "ramfs", "autofs",
	"binfmt_misc", "fusectl", "bpf", "nsfs",
}

var defaultSkipDevicePrefixes = []string{
	"none", "proc", "sysfs", "tmpfs", "devtmpfs", "cgroup", "overlay", "udev",
}

// Rules decides which mount entries are pseudo filesystems. A Rules value
// is immutable once built and safe to share.
type Rules struct {
	fsTypes        map[string]struct{}
	devicePrefixes []string
}

// NewRules builds a rule set excluding the exact filesystem types and the
// device-name prefixes given. Empty prefixes are dropped since they would
// match every device.
func NewRules(fsTypes, devicePrefixes []string) Rules {
	r := Rules{
		fsTypes:        make(map[string]struct{}, len(fsTypes)),
		devicePrefixes: make([]string, 0, len(devicePrefixes)),
	}
	for _, t := range fsTypes {
		r.fsTypes[t] = struct{}{}
	}
	for _, p := range devicePrefixes {
		if p != "" {
			r.devicePrefixes = append(r.devicePrefixes, p)
		}
	}
	return r
}

// DefaultRules returns the built-in pseudo filesystem rules.
func DefaultRules() Rules {
	return NewRules(defaultSkipFSTypes, defaultSkipDevicePrefixes)
}

// Match reports whether e is excluded and which rule excluded it.
func (r Rules) Match(e MountEntry) (string, bool) {
	if _, ok := r.fsTypes[e.FSType]; ok {
		return ReasonFSType, true
	}
	for _, p := range r.devicePrefixes {
		if strings.HasPrefix(e.Device, p) {
			return ReasonDevicePrefix, true
		}
	}
	return "", false
}
