package diagram

import (
	"fmt"
	"io"
	"os"
)

// debugLog writes "[diagram]"-prefixed lines when enabled. A nil *debugLog is
// valid and silent, so components built without a diagram can still call it.
type debugLog struct {
	enabled bool
	out     io.Writer
}

func (d *debugLog) logf(format string, args ...any) {
	if d == nil || !d.enabled {
		return
	}
	w := d.out
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, "[diagram] "+format+"\n", args...)
}

// debugMaxDegree is the curve degree past which Bernstein evaluation starts to
// lose precision noticeably in float64.
const debugMaxDegree = 20

// debugCheckDegree warns when a control polygon is unusually large.
func (d *debugLog) debugCheckDegree(points []Vec2) {
	if n := len(points) - 1; n > debugMaxDegree {
		d.logf("warning: curve degree %d exceeds %d", n, debugMaxDegree)
	}
}
