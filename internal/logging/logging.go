// Package logging builds the logrus loggers used across the CLI.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = logrus.WarnLevel

// ParseLevel parses a logrus level name. An empty string yields DefaultLevel.
func ParseLevel(s string) (logrus.Level, error) {
	if s == "" {
		return DefaultLevel, nil
	}
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a logger writing text lines to w at level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	l.SetLevel(level)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel)
}
