package parabox

import (
	"encoding/json"
	"fmt"
	"strings"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Dir    string `json:"dir,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Col    int    `json:"col,omitempty"`
	Row    int    `json:"row,omitempty"`

	dir Direction
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected key events, waits, position checks and
// screenshots across frames for automated play testing. Attach to a Scene
// via SetTestRunner.
//
// Actions: press and release take "dir"; hold takes "dir" and "frames";
// wait takes "frames"; expect takes the actor's expected "col" and "row";
// screenshot takes "label".
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "press", "release", "hold":
			d, ok := ParseDirection(st.Dir)
			if !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown direction %q", i, st.Dir)
			}
			st.dir = d
		case "wait", "expect", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before injected input is processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of every expect step that did not hold.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "press":
		s.InjectPress(st.dir)
	case "release":
		s.InjectRelease(st.dir)
	case "hold":
		s.InjectHold(st.dir, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		snap := s.game.Snapshot()
		want := Cell{Col: st.Col, Row: st.Row}
		if snap.Cell != want {
			r.failures = append(r.failures, fmt.Sprintf(
				"step %d: frame %d: actor at %v, want %v (held: %s)",
				r.cursor-1, snap.Frame, snap.Cell, want, heldSummary(snap.Input)))
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// heldSummary lists the held directions of in with their hold frames.
func heldSummary(in DirectionalInput) string {
	var parts []string
	for d := DirUp; d <= DirRight; d++ {
		if h := in.Held(d); h > 0 {
			parts = append(parts, fmt.Sprintf("%s %g", d, h))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
