package internal

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a log level name, defaulting to INFO.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger provides leveled logging with an optional component prefix.
type Logger struct {
	level  LogLevel
	logger *log.Logger
	prefix string
}

var defaultLogger = NewLogger(INFO, "", os.Stdout)

// InitLogger configures the process-wide default logger.
func InitLogger(level LogLevel, prefix string) {
	defaultLogger = NewLogger(level, prefix, os.Stdout)
}

// NewLogger creates a new logger instance
func NewLogger(level LogLevel, prefix string, writer io.Writer) *Logger {
	if prefix != "" && !strings.HasSuffix(prefix, " ") {
		prefix += " "
	}
	return &Logger{
		level:  level,
		logger: log.New(writer, "", log.LstdFlags),
		prefix: prefix,
	}
}

// SetLevel sets the log level for the logger
func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) print(level LogLevel, format string, args ...any) {
	if level < l.level {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.logger.Printf("[%s] %s%s", level, l.prefix, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) { l.print(DEBUG, format, args...) }

// Info logs an info message
func (l *Logger) Info(format string, args ...any) { l.print(INFO, format, args...) }

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) { l.print(WARN, format, args...) }

// Error logs an error message
func (l *Logger) Error(format string, args ...any) { l.print(ERROR, format, args...) }

// Package-level convenience functions that use the default logger
func LogDebug(format string, args ...any) { defaultLogger.Debug(format, args...) }
func LogInfo(format string, args ...any)  { defaultLogger.Info(format, args...) }
func LogWarn(format string, args ...any)  { defaultLogger.Warn(format, args...) }
func LogError(format string, args ...any) { defaultLogger.Error(format, args...) }
