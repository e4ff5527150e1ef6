package tactile

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// scriptStep is a single action in a touch script.
type scriptStep struct {
	Action string  `json:"action"`
	ID     int     `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a touch script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected touches across frames, for replaying gestures in
// tests and demos. Attach it to a Router with SetScript.
//
//	{"steps": [
//	  {"action": "tap", "id": 1, "x": 0.2, "y": 0.1},
//	  {"action": "wait", "frames": 30},
//	  {"action": "drag", "id": 1, "fromX": 0, "fromY": 0, "toX": 0.5, "toY": 0, "frames": 8}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON touch script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse touch script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse touch script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "press", "move", "release", "tap", "drag", "wait":
		default:
			return nil, fmt.Errorf("parse touch script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches s to the router. One step runs at the start of each
// Update once the inject queue has drained. Pass nil to detach.
func (r *Router) SetScript(s *Script) {
	r.script = s
}

// Done reports whether every step has been executed and injected.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *Script) step(r *Router) {
	if s.done {
		return
	}
	if len(r.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		r.InjectPress(st.ID, st.X, st.Y)
	case "move":
		r.InjectMove(st.ID, st.X, st.Y)
	case "release":
		r.InjectRelease(st.ID, st.X, st.Y)
	case "tap":
		r.InjectTap(st.ID, st.X, st.Y)
	case "drag":
		r.InjectDrag(st.ID, Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(r.injectQueue) == 0 {
		s.done = true
	}
}
