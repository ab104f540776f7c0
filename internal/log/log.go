// Package log wires the process-wide slog default to a rotating log
// file. TUI programs own the terminal, so nothing may ever log to
// stdout or stderr.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
)

// Setup routes the default slog logger to logFile with rotation.
// Subsequent calls are no-ops.
func Setup(logFile string, debug bool) {
	initOnce.Do(func() {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		}

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}

		handler := slog.NewJSONHandler(rotator, &slog.HandlerOptions{
			Level:     level,
			AddSource: debug,
		})

		slog.SetDefault(slog.New(handler))
		initialized.Store(true)
	})
}

// Initialized reports whether Setup has run.
func Initialized() bool {
	return initialized.Load()
}

// RecoverPanic writes a timestamped crash report for a panicking
// goroutine and runs cleanup, typically a terminal restore.
func RecoverPanic(name string, cleanup func()) {
	r := recover()
	if r == nil {
		return
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("dropdown-panic-%s-%s.log", name, timestamp)

	if file, err := os.Create(filename); err == nil {
		defer file.Close()
		fmt.Fprintf(file, "Panic in %s: %v\n\n", name, r)
		fmt.Fprintf(file, "Time: %s\n\n", time.Now().Format(time.RFC3339))
		fmt.Fprintf(file, "Stack Trace:\n%s\n", debug.Stack())
	}
	// Before Setup the default handler still writes to stderr, which
	// would corrupt the terminal under the TUI.
	if Initialized() {
		slog.Error("panic", "in", name, "value", r)
	}

	if cleanup != nil {
		cleanup()
	}
}
