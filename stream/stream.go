// Package stream discovers live multi-channel sensor streams and opens
// inlets for pulling samples from them. The recorder treats an inlet as
// a plain blocking pull source; the transport behind it (TCP bridge,
// simulator) is interchangeable.
package stream

import "time"

// Sample is one timestep across all channels of a stream.
type Sample struct {
	Values    []float64
	Timestamp float64 // seconds, source clock
}

// Info describes an advertised stream.
type Info struct {
	Name         string
	Type         string // e.g. "EEG"
	ChannelCount int
	SamplingRate float64 // nominal, Hz
	Source       string  // endpoint or device identifier
}

// Inlet is a bound, live connection to one stream. Pull blocks until
// the next sample arrives and advances the read position; an inlet is
// not rewindable. An inlet belongs to a single session at a time.
type Inlet interface {
	Info() Info
	Pull() (Sample, error)
	Close() error
}

// Candidate is a discovered stream that has not been opened yet.
type Candidate interface {
	Info() Info
	Open() (Inlet, error)
}

// Resolver performs one bounded discovery pass, returning every stream
// whose advertised property matches the requested value. An empty slice
// means nothing was found within the timeout.
type Resolver interface {
	Resolve(property, value string, timeout time.Duration) []Candidate
}
