package fractal

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays input across frames for automated runs. Each frame it waits
// for previously injected events to drain, then performs at most one step.
//
//	{"steps": [
//		{"action": "click", "x": 30, "y": 30},
//		{"action": "wait", "frames": 3},
//		{"action": "key"},
//		{"action": "quit"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "key", "wait", "quit":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has been performed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame, injecting into w.
func (s *Script) step(w *HeadlessWindow) {
	if s.done {
		return
	}
	if w.Pending() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.finish(w)
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "click":
		w.InjectClick(st.X, st.Y)
	case "key":
		w.InjectEvent(Event{Type: EventOther})
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		s.finish(w)
	}
}

// finish ends the script with a quit request.
func (s *Script) finish(w *HeadlessWindow) {
	s.done = true
	w.InjectQuit()
}
