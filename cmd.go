package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"sysinfo/fsreport"
	"sysinfo/sysinfo"
)

const (
	helpArg    = "--help"
	versionArg = "--version"
)

const helpTemplate = `sysinfo - {{.Short}}
Usage: sysinfo [OPTION]

{{.LocalFlags.FlagUsages}}
Without options, the program prints the full report.
`

// environment is everything the command reads from or writes to the process.
type environment struct {
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(key string) (string, bool)
	now       func() time.Time
}

type options struct {
	noColor bool
	debug   bool
	root    string
}

// newRootCommand builds the sysinfo command. Only the first argument can
// select help or version output; anything else, including malformed or
// unknown options, still prints the report.
func newRootCommand(env environment) *cobra.Command {
	opts := &options{root: "/"}

	cmd := &cobra.Command{
		Use:                "sysinfo",
		Short:              "Display system information",
		Version:            Version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				switch args[0] {
				case helpArg:
					return cmd.Help()
				case versionArg:
					fmt.Fprintf(cmd.OutOrStdout(), "sysinfo v%s\n", cmd.Version)
					return nil
				}
			}

			flags := cmd.Flags()
			parseErr := flags.Parse(args)

			log := newLogger(env.stderr, opts.debug)
			if parseErr != nil {
				log.WithError(parseErr).Debug("ignoring options")
			}
			for _, arg := range flags.Args() {
				log.WithField("arg", arg).Debug("ignoring argument")
			}

			prober := sysinfo.NewProber(opts.root, log)
			prober.LookupEnv = env.lookupEnv
			prober.Now = env.now

			builder := fsreport.NewBuilder(
				fsreport.WithRoot(opts.root),
				fsreport.WithLogger(log),
			)

			displayReport(cmd.OutOrStdout(), sysinfo.NewPalette(!opts.noColor), prober.Gather(), builder.Collect())
			return nil
		},
	}

	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)
	cmd.SetHelpTemplate(helpTemplate)

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}
	flags.Bool("help", false, "Show this help (first argument only)")
	flags.Bool("version", false, "Show program version (first argument only)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	flags.StringVar(&opts.root, "root", "/", "Read /proc, /sys and /etc below this directory")
	flags.BoolVar(&opts.debug, "debug", false, "Log lookup failures to stderr")

	return cmd
}

// newLogger returns a logger that discards everything unless debug is set,
// so the report stays the only output.
func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetOutput(io.Discard)
	if debug {
		log.SetOutput(w)
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
