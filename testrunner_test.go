package slideact

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "drag", "fromX": 30, "toX": 290, "frames": 4},
			{"action": "wait", "frames": 3},
			{"action": "reset"},
			{"action": "complete", "animate": true}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[0]; st.Action != "drag" || st.FromX != 30 || st.ToX != 290 || st.Frames != 4 {
		t.Errorf("step 0 mismatch: %+v", st)
	}
	if runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if !runner.steps[3].Animate {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	s := newTestSlider(t)
	failures := 0
	s.OnSlideUserFailed = func(bool) { failures++ }

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 200}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	s.Update(0)
	if failures != 1 {
		t.Fatalf("expected the outside press on frame 1, got %d failures", failures)
	}
	s.Update(0)
	s.Update(0)
	if !runner.Done() {
		t.Error("expected runner to be done")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := newTestSlider(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "lock"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 3; i++ {
		s.Update(0)
		if s.IsLocked() {
			t.Fatalf("locked after %d frames, want after 4", i+1)
		}
	}
	s.Update(0)
	if !s.IsLocked() {
		t.Error("expected lock on frame 4")
	}
	if !runner.Done() {
		t.Error("expected runner to be done")
	}
}

func TestRunnerFullScenario(t *testing.T) {
	s := newTestSlider(t)
	var r recorder
	r.attach(s)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 30, "toX": 300, "frames": 4},
		{"action": "wait", "frames": 4},
		{"action": "reset"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 100 && !runner.Done(); i++ {
		s.Update(0.25)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	finish(s)

	assertState(t, s, StateIdle)
	for _, name := range []string{"bump", "complete", "reset-started", "reset"} {
		if countOf(r.events, name) != 1 {
			t.Errorf("expected one %q in %v", name, r.events)
		}
	}
}

func TestRunnerToggles(t *testing.T) {
	s := newTestSlider(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "disable"},
		{"action": "enable"},
		{"action": "complete"},
		{"action": "uncomplete"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	s.Update(0)
	assertState(t, s, StateDisabled)
	s.Update(0)
	assertState(t, s, StateIdle)
	s.Update(0)
	assertState(t, s, StateCompleted)
	s.Update(0)
	assertState(t, s, StateIdle)
	if !runner.Done() {
		t.Error("expected runner to be done")
	}
}
