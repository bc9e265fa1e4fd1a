package slideact

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	X       float64 `json:"x,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Animate bool    `json:"animate,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true, "drag": true,
	"wait": true, "complete": true, "uncomplete": true, "reset": true,
	"lock": true, "unlock": true, "enable": true, "disable": true,
}

// TestRunner sequences injected input and programmatic commands across
// frames for scripted scenario runs. Attach to a Slider via SetTestRunner.
//
// A script looks like:
//
//	{"steps": [
//	  {"action": "drag", "fromX": 20, "toX": 300, "frames": 6},
//	  {"action": "wait", "frames": 30},
//	  {"action": "reset"}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Slider via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the slider. The runner's step method
// is called from Slider.Update before injected input is processed.
func (s *Slider) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Slider.Update.
func (r *TestRunner) step(s *Slider) {
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
	case "press":
		s.InjectPress(st.X)
	case "move":
		s.InjectMove(st.X)
	case "release":
		s.InjectRelease()
	case "click":
		s.InjectClick(st.X)
	case "drag":
		s.InjectDrag(st.FromX, st.ToX, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "complete":
		s.SetCompleted(true, st.Animate)
	case "uncomplete":
		s.SetCompleted(false, st.Animate)
	case "reset":
		s.Reset()
	case "lock":
		s.SetLocked(true)
	case "unlock":
		s.SetLocked(false)
	case "enable":
		s.SetEnabled(true)
	case "disable":
		s.SetEnabled(false)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
