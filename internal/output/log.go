// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger is the process-wide diagnostic logger. It writes to stderr so that
// diagnostics never interleave with the progress log on stdout.
var logger = newLogger(os.Stderr, LogConfig{})

// stdout is where Print and Println write.
var stdout io.Writer = os.Stdout

// LogConfig holds logging options resolved from flags and configuration.
type LogConfig struct {
	// Verbose enables debug output, caller reporting and timestamps.
	Verbose bool

	// Timestamps toggles timestamps on log lines. Nil means on.
	// Verbose forces timestamps on regardless of this value.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

func (c LogConfig) timestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return true
}

func newLogger(w io.Writer, cfg LogConfig) *log.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.timestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      time.Kitchen,
	})
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	logger = newLogger(os.Stderr, cfg)
}

// ProjectLogger returns a child logger whose lines are prefixed with the
// project name. It inherits the level of the global logger.
func ProjectLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render("p:" + name))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

// Print writes msg to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println writes msg to stdout followed by a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}

// SetStdout redirects Print and Println, returning a function restoring the
// previous writer.
func SetStdout(w io.Writer) func() {
	prev := stdout
	stdout = w
	return func() { stdout = prev }
}
