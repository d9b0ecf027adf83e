package logger

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger for diagnostics and a plain writer for user facing output.
// Debug and error messages go to stderr through logrus, info messages go to stdout untouched.
type Logger struct {
	log *logrus.Logger
	out io.Writer
}

// NewLoggerWithOutput returns a Logger writing user facing output to stdout and
// diagnostics to stderr. Commands create one in their pre-run hook and hand an
// entry from it to the rest client so it can also log.
func NewLoggerWithOutput(verbose bool, stdout, stderr io.Writer) *Logger {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !verbose,
	})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return &Logger{
		log: log,
		out: stdout,
	}
}

// Entry returns a logrus entry tagged with the component name.
func (l *Logger) Entry(component string) *logrus.Entry {
	return l.log.WithField("component", component)
}

// Debug prints a formatted message to stderr only if verbose is set.
// Consider these messages useful for developers of the CLI.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Infoln prints all args to stdout followed by a newline.
func (l *Logger) Infoln(args ...interface{}) {
	fmt.Fprintln(l.out, args...)
}

// Infof prints a formatted message to stdout
func (l *Logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format, args...)
}
