package recorder

import (
	"time"

	"github.com/Commanchae/bci-data-collection/stream"
)

// runTrial is one full acquisition cycle, strictly ordered: rest, cue
// on, capture for the wall-clock duration, cue off, shape-normalize.
// The stimulus-end cue fires even when the capture fails, so paired
// cues stay balanced for the operator.
func (r *Recorder) runTrial(inlet stream.Inlet, duration, rest time.Duration) ([][]float64, error) {
	time.Sleep(rest)

	r.hooks.StimulusStart()
	raw, err := captureWindow(inlet, duration)
	r.hooks.StimulusEnd()
	if err != nil {
		return nil, err
	}

	return PadTrim(raw, r.fs, duration), nil
}
