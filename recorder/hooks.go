package recorder

// Hooks is the stimulus/session lifecycle capability set. The recorder
// calls each hook synchronously at a fixed point in the session and
// ignores anything it does; leave a field nil to get a no-op. A hook
// that blocks delays the session by exactly that long.
type Hooks struct {
	SessionStart  func() // before the first trial
	SessionEnd    func() // after the loop, even on a mid-session fault
	StimulusStart func() // after the rest interval, before capture
	StimulusEnd   func() // after capture, before normalization
}

func (h Hooks) fill() Hooks {
	nop := func() {}
	if h.SessionStart == nil {
		h.SessionStart = nop
	}
	if h.SessionEnd == nil {
		h.SessionEnd = nop
	}
	if h.StimulusStart == nil {
		h.StimulusStart = nop
	}
	if h.StimulusEnd == nil {
		h.StimulusEnd = nop
	}
	return h
}
