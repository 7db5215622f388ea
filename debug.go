package parabox

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing. Only populated when Game debug mode is on.
type debugStats struct {
	frame       uint64
	tickTime    time.Duration
	subscribers int
	failed      bool
}

// debugLog prints frame timing to stderr.
func (g *Game) debugLog(stats debugStats) {
	if !g.debug {
		return
	}
	status := "ok"
	if stats.failed {
		status = "failed"
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[parabox] frame %d | tick: %v | subscribers: %d | %s\n",
		stats.frame, stats.tickTime, stats.subscribers, status)
}

// debugLogError prints a frame error to stderr.
func debugLogError(frame uint64, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[parabox] frame %d error: %v\n", frame, err)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("parabox debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if node tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[parabox] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckBoxDepth warns on stderr when a box is nested deeper than the
// renderer can show (each level shrinks to a quarter of its parent's width).
const debugMaxBoxDepth = 6

func debugCheckBoxDepth(w *World, b Box) {
	if d := w.Depth(b); d > debugMaxBoxDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[parabox] warning: box %d nested %d deep (threshold %d)\n",
			b, d, debugMaxBoxDepth)
	}
}

// globalDebug mirrors the most recently set debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
