package platracerlog

import (
	"fmt"
	"log"
	"os"
)

// Logger is a minimal leveled logger. The zero value (and a nil
// *Logger) is usable and discards all output; pass a *Logger built
// with New to control the destination.
type Logger struct {
	out *log.Logger
}

// defaultLogger writes to os.Stderr with a "platracer: " prefix.
var defaultLogger = New(os.Stderr)

// New returns a Logger writing to w.
func New(w *os.File) *Logger {
	return &Logger{out: log.New(w, "platracer: ", log.LstdFlags)}
}

// Default returns the package-wide default logger.
func Default() *Logger { return defaultLogger }

// Debugf logs a low-priority diagnostic, such as a lock timeout.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log("DEBUG", format, args...)
}

// Infof logs a routine informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log("INFO", format, args...)
}

// Warnf logs a condition the caller recovered from locally, such as a
// structural invariant violation that forced a full rebuild.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log("WARN", format, args...)
}

func (l *Logger) log(level, format string, args ...interface{}) {
	if l == nil || l.out == nil {
		return
	}
	l.out.Print(level + " " + fmt.Sprintf(format, args...))
}
