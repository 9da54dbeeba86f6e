// Package recorder implements the trial acquisition loop: timed signal
// window capture from a live stream, synchronized with stimulus cues
// and normalized to a fixed per-window sample count.
package recorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Commanchae/bci-data-collection/stream"
)

// DefaultResolveTimeout bounds stream discovery when RunSession has to
// bind its own inlet.
const DefaultResolveTimeout = 4 * time.Second

// ErrNoStream reports that no stream was discovered within the timeout.
// It is a normal outcome, not a fault: nothing was recorded and the
// caller may retry.
var ErrNoStream = errors.New("no stream found")

// Config describes one recorder instance.
type Config struct {
	SamplingFrequency float64 // Hz; defaults to 256
	StreamType        string  // advertised stream type; defaults to "EEG"
	AdditionalFields  []string
	Hooks             Hooks
}

// Recorder runs acquisition sessions and owns the accumulated dataset.
// A recorder is single-session at a time: trials run strictly
// sequentially and the dataset is only mutated by the session loop.
type Recorder struct {
	fs         float64
	streamType string
	hooks      Hooks
	binder     *stream.Binder
	dataset    *Dataset
	log        *logrus.Entry
}

// New builds a recorder. binder may be nil when every session will be
// handed an already-bound inlet.
func New(cfg Config, binder *stream.Binder) *Recorder {
	if cfg.SamplingFrequency <= 0 {
		cfg.SamplingFrequency = 256
	}
	if cfg.StreamType == "" {
		cfg.StreamType = "EEG"
	}
	return &Recorder{
		fs:         cfg.SamplingFrequency,
		streamType: cfg.StreamType,
		hooks:      cfg.Hooks.fill(),
		binder:     binder,
		dataset:    NewDataset(cfg.AdditionalFields...),
		log:        logrus.WithField("component", "recorder"),
	}
}

// Dataset exposes the recorder's accumulated dataset. It keeps growing
// across sessions on the same recorder.
func (r *Recorder) Dataset() *Dataset { return r.dataset }

// SamplingFrequency reports the configured rate in Hz.
func (r *Recorder) SamplingFrequency() float64 { return r.fs }

// SessionOptions parameterizes one bounded run of trials.
type SessionOptions struct {
	Iterations int
	Duration   time.Duration // capture window per trial
	Rest       time.Duration // idle interval before each capture
	Metadata   map[string]Field
}

// RunSession runs Iterations trials over the given inlet and appends
// the results to the recorder's dataset. A nil inlet triggers one
// bounded discovery pass first; ErrNoStream comes back if it finds
// nothing, with zero side effects.
//
// Metadata is validated before any trial runs. Each completed trial
// appends its normalized window immediately, so a fault mid-session
// leaves a valid partial dataset; metadata fields are extended only
// after every trial has completed.
func (r *Recorder) RunSession(inlet stream.Inlet, opts SessionOptions) error {
	if inlet == nil {
		if r.binder == nil {
			return ErrNoStream
		}
		in, ok := r.binder.Bind(r.streamType, DefaultResolveTimeout)
		if !ok {
			r.log.WithField("type", r.streamType).Warn("no stream found")
			return ErrNoStream
		}
		// an inlet bound here belongs to this session alone
		defer in.Close()
		inlet = in
	}

	resolved := make(map[string][]string, len(opts.Metadata))
	for name, f := range opts.Metadata {
		vals, err := f.resolve(name, opts.Iterations)
		if err != nil {
			return err
		}
		resolved[name] = vals
	}

	r.hooks.SessionStart()
	defer r.hooks.SessionEnd()

	for i := 0; i < opts.Iterations; i++ {
		w, err := r.runTrial(inlet, opts.Duration, opts.Rest)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i+1, err)
		}
		r.dataset.appendRecording(w)
		r.log.WithFields(logrus.Fields{
			"trial":     i + 1,
			"of":        opts.Iterations,
			"timesteps": TargetLength(r.fs, opts.Duration),
		}).Info("trial recorded")
	}

	for name, vals := range resolved {
		r.dataset.extendField(name, vals)
	}
	return nil
}
