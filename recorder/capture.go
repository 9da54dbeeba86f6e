package recorder

import (
	"fmt"
	"time"

	"github.com/Commanchae/bci-data-collection/stream"
)

// captureWindow pulls samples one at a time until d of wall-clock time
// has elapsed, then returns them channel-major. How many timesteps come
// back depends entirely on how fast the inlet delivers; a stalled inlet
// yields channels with zero columns, which is legal normalizer input.
func captureWindow(inlet stream.Inlet, d time.Duration) ([][]float64, error) {
	channels := inlet.Info().ChannelCount
	start := time.Now()
	var rows [][]float64 // [timestep][channel], the pull order
	for time.Since(start) < d {
		s, err := inlet.Pull()
		if err != nil {
			return nil, fmt.Errorf("pull sample: %w", err)
		}
		rows = append(rows, s.Values)
	}
	return transpose(rows, channels), nil
}

// transpose flips a [timestep][channel] buffer to [channel][timestep].
func transpose(rows [][]float64, channels int) [][]float64 {
	out := make([][]float64, channels)
	for c := range out {
		col := make([]float64, len(rows))
		for t, row := range rows {
			if c < len(row) {
				col[t] = row[c]
			}
		}
		out[c] = col
	}
	return out
}
