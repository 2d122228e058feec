package telemetry

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns the process logger. Warn level by default so CLI and TUI
// output stays clean; PUSTAKA_DEBUG enables debug logging.
func New() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "pustaka",
		ReportTimestamp: true,
	})
	if os.Getenv("PUSTAKA_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
