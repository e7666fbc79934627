package sysinfo

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Well-known pseudo-files, relative to the prober root.
const (
	OSReleasePath   = "/etc/os-release"
	ThermalZonePath = "/sys/class/thermal/thermal_zone0/temp"
	UptimePath      = "/proc/uptime"
)

// UserEnv is the environment variable holding the invoking user's name.
const UserEnv = "USER"

// Prober performs the single-fact lookups against a filesystem root,
// an environment and a clock. The zero value is not usable; use NewProber.
type Prober struct {
	// Root prefixes every pseudo-file path. "/" reads the running host.
	Root string

	// LookupEnv resolves environment variables.
	LookupEnv func(key string) (string, bool)

	// Now returns the current local time.
	Now func() time.Time

	// Kernel release lookup, replaceable in tests.
	uname func() (string, error)

	log logrus.FieldLogger
}

// NewProber returns a Prober reading the live host below root.
func NewProber(root string, log logrus.FieldLogger) *Prober {
	if root == "" {
		root = "/"
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Prober{
		Root:      root,
		LookupEnv: os.LookupEnv,
		Now:       time.Now,
		uname:     kernelRelease,
		log:       log,
	}
}

// Gather runs every lookup and returns display-ready values. Failures are
// logged at debug level and replaced by their placeholder.
func (p *Prober) Gather() *SystemInfo {
	info := &SystemInfo{
		Timestamp: FormatTimestamp(p.Now()),
	}

	if user, err := p.User(); err == nil {
		info.Username = user
	} else {
		p.log.WithError(err).Debug("user lookup failed")
		info.Username = Unknown
	}

	info.OSRelease = p.fallback("os release", p.OSRelease)
	info.Kernel = p.fallback("kernel", p.Kernel)
	info.Temperature = p.fallback("temperature", func() (string, error) {
		c, err := p.Temperature()
		if err != nil {
			return "", err
		}
		return FormatTemperature(c), nil
	})
	info.Uptime = p.fallback("uptime", func() (string, error) {
		s, err := p.Uptime()
		if err != nil {
			return "", err
		}
		return FormatUptime(s), nil
	})

	return info
}

func (p *Prober) fallback(what string, fn func() (string, error)) string {
	v, err := fn()
	if err != nil {
		p.log.WithError(err).Debugf("%s lookup failed", what)
		return Unreadable
	}
	return v
}

// path resolves a well-known absolute path below the prober root.
func (p *Prober) path(name string) string {
	return filepath.Join(p.Root, name)
}

// User returns the value of $USER. An unset or empty variable is ErrNotFound.
func (p *Prober) User() (string, error) {
	v, ok := p.LookupEnv(UserEnv)
	if !ok || v == "" {
		return "", errors.Wrapf(ErrNotFound, "$%s", UserEnv)
	}
	return v, nil
}

// OSRelease returns the PRETTY_NAME value from os-release with any
// surrounding quotes removed.
func (p *Prober) OSRelease() (string, error) {
	path := p.path(OSReleasePath)
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if v, ok := strings.CutPrefix(scanner.Text(), "PRETTY_NAME="); ok {
			return unquote(strings.TrimSpace(v)), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return "", errors.Wrapf(ErrNotFound, "PRETTY_NAME in %s", path)
}

// unquote strips a leading quote and everything from its closing match.
func unquote(v string) string {
	if v == "" || (v[0] != '"' && v[0] != '\'') {
		return v
	}
	q := v[0]
	v = v[1:]
	if i := strings.IndexByte(v, q); i >= 0 {
		v = v[:i]
	}
	return v
}

// Kernel returns the kernel release string reported by uname(2).
func (p *Prober) Kernel() (string, error) {
	return p.uname()
}

// Temperature returns the first thermal zone reading in degrees Celsius.
func (p *Prober) Temperature() (float64, error) {
	path := p.path(ThermalZonePath)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", path)
	}
	milli, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", path)
	}
	return float64(milli) / 1000.0, nil
}

// Uptime returns seconds since boot.
func (p *Prober) Uptime() (float64, error) {
	path := p.path(UptimePath)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", path)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, errors.Wrapf(ErrNotFound, "uptime in %s", path)
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", path)
	}
	return seconds, nil
}
