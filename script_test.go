package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type recordingSnapshotter struct {
	labels []string
	ts     []float64
	first  []Vec2
	err    error
}

func (r *recordingSnapshotter) Snapshot(d *BezierDiagram, label string) error {
	r.labels = append(r.labels, label)
	r.ts = append(r.ts, d.T())
	r.first = append(r.first, d.ControlPoints()[0])
	return r.err
}

// runScript updates d until its script is done, giving up after limit frames.
func runScript(t *testing.T, d *BezierDiagram, r *ScriptRunner, limit int) {
	t.Helper()
	for i := 0; i < limit && !r.Done(); i++ {
		d.Update(0)
	}
	if !r.Done() {
		t.Fatalf("script not done after %d frames", limit)
	}
}

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "snapshot", "label": "initial"},
			{"action": "press", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "set_t", "t": 0.5}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "snapshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Frames != 3 || runner.steps[3].T != 0.5 {
		t.Error("step 2/3 mismatch")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"invalid json", `not json`, "parse script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "click"}]}`, `unknown action "click"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"action": "play"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScriptFile(path); err != nil {
		t.Fatalf("LoadScriptFile: %v", err)
	}
	if _, err := LoadScriptFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestRunnerDragAndSnapshot(t *testing.T) {
	d := newTestDiagram(DefaultOptions())
	snap := &recordingSnapshotter{}
	d.SetSnapshotter(snap)

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "snapshot", "label": "before"},
		{"action": "drag", "fromX": 200, "fromY": 380, "toX": 240, "toY": 340, "frames": 3},
		{"action": "set_t", "t": 0.25},
		{"action": "snapshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetScript(runner)
	runScript(t, d, runner, 50)

	if strings.Join(snap.labels, ",") != "before,after" {
		t.Fatalf("snapshots = %v", snap.labels)
	}
	if snap.first[0] != Vec(-5, -2) {
		t.Errorf("first snapshot saw point %v, want (-5, -2)", snap.first[0])
	}
	if !vecApprox(snap.first[1], Vec(-4, -1), epsilon) {
		t.Errorf("second snapshot saw point %v, want (-4, -1)", snap.first[1])
	}
	if snap.ts[1] != 0.25 {
		t.Errorf("t at second snapshot = %f, want 0.25", snap.ts[1])
	}
	if len(runner.Errors()) != 0 {
		t.Errorf("unexpected errors: %v", runner.Errors())
	}
}

func TestRunnerWaitsForInjection(t *testing.T) {
	d := newTestDiagram(DefaultOptions())
	runner, err := LoadScript([]byte(`{"steps": [{"action": "press", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetScript(runner)

	runner.step(d)
	if d.PendingInput() != 2 {
		t.Fatalf("expected 2 queued events, got %d", d.PendingInput())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	d.processInjectedInput()
	d.processInjectedInput()

	runner.step(d)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerWait(t *testing.T) {
	d := newTestDiagram(DefaultOptions())
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "play"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetScript(runner)

	for i := 0; i < 3; i++ {
		d.Update(0)
		if d.Playing() {
			t.Fatalf("playing after %d frames, want to wait 3", i+1)
		}
	}
	d.Update(0)
	if !d.Playing() {
		t.Error("play step did not run after the wait")
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerPlaybackAndPoints(t *testing.T) {
	d := newTestDiagram(DefaultOptions())
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "add_point"},
		{"action": "add_point"},
		{"action": "remove_point"},
		{"action": "play"},
		{"action": "pause"},
		{"action": "set_t", "t": 0.7},
		{"action": "reset"},
		{"action": "move", "x": 400, "y": 205},
		{"action": "leave"},
		{"action": "snapshot", "label": "nobody listening"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetScript(runner)
	runScript(t, d, runner, 50)

	if d.Order() != 4 {
		t.Errorf("Order = %d, want 4", d.Order())
	}
	if d.Playing() || d.T() != 0 {
		t.Errorf("after reset: playing=%v t=%f", d.Playing(), d.T())
	}
	if _, ok := d.HoverT(); ok {
		t.Error("hover survived leave")
	}
}

func TestRunnerCollectsSnapshotErrors(t *testing.T) {
	d := newTestDiagram(DefaultOptions())
	d.SetSnapshotter(&recordingSnapshotter{err: errors.New("disk full")})
	runner, err := LoadScript([]byte(`{"steps": [{"action": "snapshot", "label": "x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetScript(runner)
	runScript(t, d, runner, 5)

	errs := runner.Errors()
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), `snapshot "x": disk full`) {
		t.Errorf("Errors() = %v", errs)
	}
}
