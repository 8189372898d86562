// Package logging builds the logrus logger shared by the CLI and clients.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger for env. "prod" logs JSON at info level; anything else
// logs text at debug level. verbose forces debug level.
func New(env string, out io.Writer, verbose bool) *logrus.Entry {
	l := logrus.New()
	if out != nil {
		l.Out = out
	}

	if env == "prod" {
		l.Formatter = &logrus.JSONFormatter{}
		l.Level = logrus.InfoLevel
	} else {
		l.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
		l.Level = logrus.DebugLevel
	}
	if verbose {
		l.Level = logrus.DebugLevel
	}

	return l.WithField("env", env)
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.Out = io.Discard
	return logrus.NewEntry(l)
}
