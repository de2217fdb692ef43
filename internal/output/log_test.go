package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	SetupLogging(cfg)
	logger = log.NewWithOptions(&buf, log.Options{
		Level:           logger.GetLevel(),
		ReportTimestamp: cfg.Verbose,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
	return &buf
}

// captureStdout redirects Println into a buffer for the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestSetupLogging_TimestampDefaultOff(t *testing.T) {
	buf := captureLog(LogConfig{})
	logger.Info("hello")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()),
		"output should not start with a timestamp")
}

func TestSetupLogging_VerboseEnablesTimestamps(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true})
	logger.Info("hello")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestWarn_WritesWarningLevel(t *testing.T) {
	buf := captureLog(LogConfig{})
	Warn("ignoring extra positional arguments", "args", []string{"x"})
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "ignoring extra positional arguments")
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel(), "verbose should set debug level")
	assert.True(t, IsVerbose())
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel(), "default should be info level")
	assert.False(t, IsVerbose())
}

func TestStepLogger_HasPrefix(t *testing.T) {
	SetupLogging(LogConfig{})
	stepLog := StepLogger("git clone")
	assert.Contains(t, stepLog.GetPrefix(), "git clone")
}

func TestPrintln(t *testing.T) {
	buf := captureStdout(t)
	Println("tasty")
	Println("more")
	assert.Equal(t, "tasty\nmore\n", buf.String())
}
