// Package logging builds the process logger.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a logger writing plain text to w.
// debug lowers the level to Debug; quiet raises it to Warn.
func New(w io.Writer, debug, quiet bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	switch {
	case debug:
		logger.SetLevel(log.DebugLevel)
	case quiet:
		logger.SetLevel(log.WarnLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}
