package diagram

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// scriptStep is a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	T      float64 `json:"t,omitempty"`
}

// script is the top-level JSON structure of an interaction script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"move": true, "press": true, "release": true, "leave": true,
	"drag": true, "wait": true, "play": true, "pause": true,
	"reset": true, "set_t": true, "snapshot": true,
	"add_point": true, "remove_point": true,
}

// Snapshotter captures the diagram when a script reaches a "snapshot" step.
type Snapshotter interface {
	Snapshot(d *BezierDiagram, label string) error
}

// ScriptRunner sequences injected pointer events, playback commands and
// snapshots across frames. Attach it with BezierDiagram.SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadScript parses a JSON interaction script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "diagram: parse script")
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("diagram: parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, errors.Errorf("diagram: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScriptFile reads and parses a script file.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "diagram: read script %s", path)
	}
	return LoadScript(data)
}

// SetScript attaches a runner. Its step method is called at the start of every
// Update. nil detaches.
func (d *BezierDiagram) SetScript(r *ScriptRunner) { d.script = r }

// SetSnapshotter sets the target of "snapshot" steps. Without one, snapshot
// steps are logged and skipped.
func (d *BezierDiagram) SetSnapshotter(s Snapshotter) { d.snapshotter = s }

// Done reports whether every step has run and all injected input drained.
func (r *ScriptRunner) Done() bool { return r.done }

// Errors returns the snapshot errors collected while running.
func (r *ScriptRunner) Errors() []error { return r.errs }

// step advances the runner by one frame.
func (r *ScriptRunner) step(d *BezierDiagram) {
	if r.done {
		return
	}
	// Pending injections drain before the next step.
	if len(d.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	d.log.logf("script step %d: %s", r.cursor-1, st.Action)

	switch st.Action {
	case "move":
		d.InjectMove(st.X, st.Y)
	case "press":
		d.InjectPress(st.X, st.Y)
	case "release":
		d.InjectRelease()
	case "leave":
		d.InjectLeave()
	case "drag":
		d.InjectDrag(Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "play":
		d.Play()
	case "pause":
		d.Pause()
	case "reset":
		d.Reset()
	case "set_t":
		d.SetT(st.T)
	case "add_point":
		d.AddControlPoint()
	case "remove_point":
		d.RemoveControlPoint()
	case "snapshot":
		if d.snapshotter == nil {
			d.log.logf("snapshot %q skipped: no snapshotter", st.Label)
			break
		}
		if err := d.snapshotter.Snapshot(d, st.Label); err != nil {
			r.errs = append(r.errs, errors.Wrapf(err, "diagram: snapshot %q", st.Label))
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(d.injectQueue) == 0 {
		r.done = true
	}
}
