package logger

import (
	"log"
)

// SimpleLogger prefixes.
const (
	TracePrefix = "TRACE "
	DebugPrefix = "DEBUG "
	InfoPrefix  = "INFO "
	WarnPrefix  = "WARN "
	ErrorPrefix = "ERROR "
)

// SimpleLogger implements the logger.Logger interface on top of the
// standard log.Logger.
type SimpleLogger struct {
	logger *log.Logger
	level  Level
}

var _ Logger = (*SimpleLogger)(nil)

// NewSimpleLogger returns a new SimpleLogger.
func NewSimpleLogger(logger *log.Logger, level Level) *SimpleLogger {
	return &SimpleLogger{
		logger: logger,
		level:  level,
	}
}

// Trace logs at LevelTrace.
// Arguments are handled in the manner of fmt.Println.
func (l *SimpleLogger) Trace(msg any) {
	l.print(LevelTrace, TracePrefix, msg)
}

// Tracef logs at LevelTrace.
// Arguments are handled in the manner of fmt.Printf.
func (l *SimpleLogger) Tracef(format string, args ...any) {
	l.printf(LevelTrace, TracePrefix, format, args...)
}

// Debug logs at LevelDebug.
// Arguments are handled in the manner of fmt.Println.
func (l *SimpleLogger) Debug(msg any) {
	l.print(LevelDebug, DebugPrefix, msg)
}

// Debugf logs at LevelDebug.
// Arguments are handled in the manner of fmt.Printf.
func (l *SimpleLogger) Debugf(format string, args ...any) {
	l.printf(LevelDebug, DebugPrefix, format, args...)
}

// Info logs at LevelInfo.
// Arguments are handled in the manner of fmt.Println.
func (l *SimpleLogger) Info(msg any) {
	l.print(LevelInfo, InfoPrefix, msg)
}

// Infof logs at LevelInfo.
// Arguments are handled in the manner of fmt.Printf.
func (l *SimpleLogger) Infof(format string, args ...any) {
	l.printf(LevelInfo, InfoPrefix, format, args...)
}

// Warn logs at LevelWarn.
// Arguments are handled in the manner of fmt.Println.
func (l *SimpleLogger) Warn(msg any) {
	l.print(LevelWarn, WarnPrefix, msg)
}

// Warnf logs at LevelWarn.
// Arguments are handled in the manner of fmt.Printf.
func (l *SimpleLogger) Warnf(format string, args ...any) {
	l.printf(LevelWarn, WarnPrefix, format, args...)
}

// Error logs at LevelError.
// Arguments are handled in the manner of fmt.Println.
func (l *SimpleLogger) Error(msg any) {
	l.print(LevelError, ErrorPrefix, msg)
}

// Errorf logs at LevelError.
// Arguments are handled in the manner of fmt.Printf.
func (l *SimpleLogger) Errorf(format string, args ...any) {
	l.printf(LevelError, ErrorPrefix, format, args...)
}

// Enabled reports whether the logger handles records at the given
// level.
func (l *SimpleLogger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *SimpleLogger) print(level Level, prefix string, msg any) {
	if l.Enabled(level) && level < LevelOff {
		l.logger.SetPrefix(prefix)
		l.logger.Println(msg)
	}
}

func (l *SimpleLogger) printf(level Level, prefix string, format string, args ...any) {
	if l.Enabled(level) && level < LevelOff {
		l.logger.SetPrefix(prefix)
		l.logger.Printf(format, args...)
	}
}
