package recorder

import "time"

// TargetLength is the fixed number of timesteps every normalized window
// must have: the integer part of sampling_frequency * duration.
func TargetLength(fs float64, d time.Duration) int {
	return int(fs * d.Seconds())
}

// PadTrim reshapes a raw [channel][timestep] capture to exactly
// TargetLength timesteps per channel: short captures are right-padded
// with zeros, long ones lose their tail. The input is not modified.
func PadTrim(raw [][]float64, fs float64, d time.Duration) [][]float64 {
	target := TargetLength(fs, d)
	out := make([][]float64, len(raw))
	for c, row := range raw {
		padded := make([]float64, target)
		copy(padded, row)
		out[c] = padded
	}
	return out
}
