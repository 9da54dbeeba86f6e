package stream

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Binder turns one discovery pass into a bound inlet.
type Binder struct {
	resolver Resolver
	log      *logrus.Entry
}

func NewBinder(r Resolver) *Binder {
	return &Binder{
		resolver: r,
		log:      logrus.WithField("component", "binder"),
	}
}

// Bind searches for a stream advertising the given type for up to
// timeout and opens the first candidate that accepts a connection. The
// second return value reports whether a stream was bound; there is no
// internal retry. Candidates that fail to open are skipped.
func (b *Binder) Bind(streamType string, timeout time.Duration) (Inlet, bool) {
	candidates := b.resolver.Resolve("type", streamType, timeout)
	for _, c := range candidates {
		in, err := c.Open()
		if err != nil {
			b.log.WithError(err).WithField("stream", c.Info().Name).
				Warn("could not open inlet, skipping candidate")
			continue
		}
		info := in.Info()
		b.log.WithFields(logrus.Fields{
			"stream":   info.Name,
			"type":     info.Type,
			"channels": info.ChannelCount,
			"srate":    info.SamplingRate,
		}).Info("bound to stream")
		return in, true
	}
	return nil, false
}
