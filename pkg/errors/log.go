package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs recovered panics to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Slot != "" {
		fmt.Fprintf(os.Stderr, "[vx panic] %s slot=%s: %v\n", err.Op, err.Slot, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[vx panic] %s: %v\n", err.Op, err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
