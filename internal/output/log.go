// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug logging, caller reporting and timestamps.
	Verbose bool
}

// SetupLogging configures the logger based on verbosity.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: cfg.Verbose,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// IsVerbose reports whether debug logging is enabled.
func IsVerbose() bool {
	return logger.GetLevel() <= log.DebugLevel
}

// StepLogger returns a child logger prefixed with the given step name.
func StepLogger(name string) *log.Logger {
	return logger.WithPrefix(name)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// stdout is where Println writes. Tests swap it out.
var stdout io.Writer = os.Stdout

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}
