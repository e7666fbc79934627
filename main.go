// Package main provides the sysinfo command-line tool, which prints a
// colorized summary of the local machine: date and time, user, OS release,
// kernel, mounted filesystem capacities, CPU temperature and uptime.
package main

import (
	"fmt"
	"os"
	"time"
)

// Version is the program version, overridable with
// -ldflags "-X main.Version=...".
var Version = "1.3"

func main() {
	cmd := newRootCommand(environment{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
		now:       time.Now,
	})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sysinfo: %v\n", err)
		os.Exit(1)
	}
}
