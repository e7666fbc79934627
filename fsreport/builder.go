package fsreport

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"sysinfo/sysinfo"
)

// StatFunc queries capacity statistics for a path.
type StatFunc func(path string) (Capacity, error)

// Row is one line of the filesystem report.
type Row struct {
	Device     string
	MountPoint string
	FSType     string
	Usage      Usage

	// Human-readable Usage fields.
	Size  string
	Used  string
	Avail string
}

// Report is the outcome of reading the live mount table. Degraded is set
// when the mount table itself could not be opened; Rows is then empty.
type Report struct {
	Rows     []Row
	Degraded bool
	Err      error
}

// Builder turns a mount table into report rows.
type Builder struct {
	rules Rules
	stat  StatFunc
	root  string
	log   logrus.FieldLogger
}

// Option configures a Builder.
type Option func(*Builder)

// WithRules replaces the default pseudo filesystem rules.
func WithRules(r Rules) Option {
	return func(b *Builder) {
		b.rules = r
	}
}

// WithStatFunc replaces the statfs query.
func WithStatFunc(fn StatFunc) Option {
	return func(b *Builder) {
		b.stat = fn
	}
}

// WithRoot reads the mount table and queries mount points below root,
// e.g. a host filesystem bind-mounted into a container.
func WithRoot(root string) Option {
	return func(b *Builder) {
		b.root = root
	}
}

// WithLogger sets the logger used for skipped entries.
func WithLogger(log logrus.FieldLogger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// NewBuilder returns a Builder using DefaultRules and Statfs on "/"
// unless overridden.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		rules: DefaultRules(),
		stat:  Statfs,
		root:  "/",
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.root == "" {
		b.root = "/"
	}
	return b
}

// Collect reads the live mount table and builds the report.
func (b *Builder) Collect() Report {
	path := filepath.Join(b.root, MountsPath)
	f, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "open %s", path)
		b.log.WithError(err).Debug("mount table unavailable")
		return Report{Degraded: true, Err: err}
	}
	defer f.Close()

	rows, err := b.Build(f)
	if err != nil {
		b.log.WithError(err).Debug("mount table truncated")
	}
	return Report{Rows: rows}
}

// Build parses the mount table from r and returns one row per entry that
// passes the rules and can be queried, in table order. A read error stops
// parsing; the rows built so far are returned with it.
func (b *Builder) Build(r io.Reader) ([]Row, error) {
	entries, err := ParseMounts(r)

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		if row, ok := b.row(e); ok {
			rows = append(rows, row)
		}
	}
	return rows, err
}

func (b *Builder) row(e MountEntry) (Row, bool) {
	log := b.log.WithFields(logrus.Fields{
		"device":     e.Device,
		"mountpoint": e.MountPoint,
		"fstype":     e.FSType,
	})

	if reason, skip := b.rules.Match(e); skip {
		log.WithField("reason", reason).Debug("skipping mount")
		return Row{}, false
	}

	capacity, err := b.stat(filepath.Join(b.root, e.MountPoint))
	if err != nil {
		log.WithError(err).WithField("reason", "statfs").Debug("skipping mount")
		return Row{}, false
	}

	usage := capacity.Usage()
	return Row{
		Device:     e.Device,
		MountPoint: e.MountPoint,
		FSType:     e.FSType,
		Usage:      usage,
		Size:       sysinfo.HumanBytes(usage.Total),
		Used:       sysinfo.HumanBytes(usage.Used),
		Avail:      sysinfo.HumanBytes(usage.Available),
	}, true
}
