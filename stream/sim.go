package stream

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// SimResolver advertises a single synthetic stream, for dry runs and
// tests without hardware. Each channel carries a sine at a slightly
// different frequency plus Gaussian noise, paced at the nominal rate.
type SimResolver struct {
	Name       string
	StreamType string
	Channels   int
	Rate       float64 // Hz
}

func NewSimResolver(streamType string, channels int, rate float64) *SimResolver {
	return &SimResolver{
		Name:       "simulated",
		StreamType: streamType,
		Channels:   channels,
		Rate:       rate,
	}
}

func (r *SimResolver) Resolve(property, value string, _ time.Duration) []Candidate {
	info := Info{
		Name:         r.Name,
		Type:         r.StreamType,
		ChannelCount: r.Channels,
		SamplingRate: r.Rate,
		Source:       "sim",
	}
	switch property {
	case "type":
		if value != r.StreamType {
			return nil
		}
	case "name":
		if value != r.Name {
			return nil
		}
	default:
		return nil
	}
	return []Candidate{simCandidate{info: info}}
}

type simCandidate struct{ info Info }

func (c simCandidate) Info() Info { return c.info }

func (c simCandidate) Open() (Inlet, error) {
	return &simInlet{
		info:     c.info,
		interval: time.Duration(float64(time.Second) / c.info.SamplingRate),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

type simInlet struct {
	info     Info
	interval time.Duration
	next     time.Time
	elapsed  float64 // seconds of signal generated so far
	rng      *rand.Rand
	closed   bool
}

func (in *simInlet) Info() Info { return in.info }

func (in *simInlet) Pull() (Sample, error) {
	if in.closed {
		return Sample{}, errors.New("inlet closed")
	}
	now := time.Now()
	if in.next.IsZero() {
		in.next = now
	}
	if wait := in.next.Sub(now); wait > 0 {
		time.Sleep(wait)
	}
	in.next = in.next.Add(in.interval)

	vals := make([]float64, in.info.ChannelCount)
	for c := range vals {
		freq := 8.0 + 2.0*float64(c) // spread channels across the alpha/beta bands
		vals[c] = 40*math.Sin(2*math.Pi*freq*in.elapsed) + 5*in.rng.NormFloat64()
	}
	ts := in.elapsed
	in.elapsed += 1.0 / in.info.SamplingRate
	return Sample{Values: vals, Timestamp: ts}, nil
}

func (in *simInlet) Close() error {
	in.closed = true
	return nil
}
