package recorder

import "math"

// WindowStats summarizes one channel of a window, for operator logs and
// the session manifest.
type WindowStats struct {
	Mean float64 `json:"mean" yaml:"mean"`
	RMS  float64 `json:"rms" yaml:"rms"`
	Peak float64 `json:"peak" yaml:"peak"` // max absolute value
}

// ChannelStats computes per-channel summary statistics for a
// [channel][timestep] window.
func ChannelStats(w [][]float64) []WindowStats {
	out := make([]WindowStats, len(w))
	for c, row := range w {
		if len(row) == 0 {
			continue
		}
		var sum, energy, peak float64
		for _, v := range row {
			sum += v
			energy += v * v
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		n := float64(len(row))
		out[c] = WindowStats{
			Mean: sum / n,
			RMS:  math.Sqrt(energy / n),
			Peak: peak,
		}
	}
	return out
}
