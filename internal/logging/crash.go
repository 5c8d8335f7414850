package logging

import (
	"fmt"
	"runtime/debug"
)

// Recover logs a panic raised by a request handler instead of letting it
// take down the input method process. It must be deferred directly:
//
//	defer log.Recover("ProcessKeyEvent")
//
// It reports whether a panic was recovered.
func (l *Logger) Recover(op string) bool {
	r := recover()
	if r == nil {
		return false
	}
	l.Error("panic recovered",
		"op", op,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
	return true
}
