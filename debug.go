package panzoom

import (
	"fmt"
	"io"
)

// SetDebugMode enables or disables debug logging. When enabled, committed
// transforms, gesture transitions, and bound recomputation are printed to
// stderr.
func (p *Panzoom) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// DebugMode reports whether debug logging is enabled.
func (p *Panzoom) DebugMode() bool {
	return p.debug
}

// SetDebugOutput redirects debug logging. nil discards it.
func (p *Panzoom) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	p.debugOut = w
}

func (p *Panzoom) debugf(format string, args ...any) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(p.debugOut, "[panzoom] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("panzoom debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}
