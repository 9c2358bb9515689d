// Command randstr prints random strings built from character classes.
//
// Usage:
//
//	randstr -c letter,digit -m digit,symbol -l 20 -n 5
//	randstr --custom 'ACGT' -c custom -l 32
//	RANDSTR_LENGTH=8 randstr --config randstr.yaml
//
// Configuration is layered: defaults < --config YAML file < RANDSTR_* env < flags.
// The config file also accepts the keys written by randstr.Config.WriteYAML
// (upper, must_digit, ...); any other key is rejected. Exit status is 2 for
// bad configuration and 1 when the configuration cannot be compiled.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// newLogger returns a text logger writing to w.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// Run compiles opts and writes opts.Count strings to w, one per line.
func Run(opts Options, w io.Writer, log *logrus.Logger) error {
	spec, err := opts.Spec()
	if err != nil {
		return err
	}
	g, err := spec.TryBuild()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"alphabet":  len(g.Alphabet()),
		"mandatory": g.MandatoryCount(),
		"length":    g.Len(),
		"count":     opts.Count,
		"seeded":    opts.Seed != 0,
	}).Debug("generator compiled")

	bw := bufio.NewWriter(w)
	for i := 0; i < opts.Count; i++ {
		if _, err := fmt.Fprintln(bw, g.Generate()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // the configuration is well-formed but cannot be compiled
	exitUsage   = 2 // bad flags, config file, env value or class name
)

// execute is main without the process: it parses args, runs and reports the
// exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("randstr", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	opts, err := Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	log := newLogger(stderr, opts.Verbose)
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		return exitUsage
	}

	if err := Run(opts, stdout, log); err != nil {
		log.WithError(err).Error("generation failed")
		return exitFailure
	}
	return exitOK
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
