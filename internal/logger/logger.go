// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

// SetVerbose enables debug-level output.
func SetVerbose(verbose bool) {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return
	}
	log.SetLevel(logrus.WarnLevel)
}

// SetOutput redirects log output, used by tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// WithField returns an entry with a single field attached.
func WithField(key string, value any) *logrus.Entry {
	return log.WithField(key, value)
}

// WithFields returns an entry with the given fields attached.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

// Warnf logs a formatted warning.
func Warnf(format string, args ...any) {
	log.Warnf(format, args...)
}

// Errorf logs a formatted error.
func Errorf(format string, args ...any) {
	log.Errorf(format, args...)
}
