package recorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetLength(t *testing.T) {
	tests := []struct {
		name string
		fs   float64
		d    time.Duration
		want int
	}{
		{"two seconds at 256 Hz", 256, 2 * time.Second, 512},
		{"fractional product truncates", 250, 1003 * time.Millisecond, 250},
		{"sub-second window", 256, 500 * time.Millisecond, 128},
		{"zero duration", 256, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetLength(tt.fs, tt.d))
		})
	}
}

func TestPadTrimPadsShortCapture(t *testing.T) {
	raw := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	got := PadTrim(raw, 5, time.Second) // target 5

	require.Len(t, got, 2)
	assert.Equal(t, []float64{1, 2, 3, 0, 0}, got[0])
	assert.Equal(t, []float64{4, 5, 6, 0, 0}, got[1])
}

func TestPadTrimTruncatesLongCapture(t *testing.T) {
	raw := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}
	got := PadTrim(raw, 2, time.Second) // target 2

	require.Len(t, got, 2)
	assert.Equal(t, []float64{1, 2}, got[0])
	assert.Equal(t, []float64{5, 6}, got[1])
}

func TestPadTrimExactLengthIsCopy(t *testing.T) {
	raw := [][]float64{{1, 2}, {3, 4}}
	got := PadTrim(raw, 2, time.Second)

	assert.Equal(t, raw, got)
	got[0][0] = 99
	assert.Equal(t, 1.0, raw[0][0], "input must not alias the output")
}

func TestPadTrimIdempotent(t *testing.T) {
	raw := [][]float64{{1, 2, 3}, {4, 5, 6}}
	once := PadTrim(raw, 8, time.Second)
	twice := PadTrim(once, 8, time.Second)
	assert.Equal(t, once, twice)
}

func TestPadTrimEmptyCapture(t *testing.T) {
	raw := [][]float64{{}, {}, {}}
	got := PadTrim(raw, 4, time.Second)

	require.Len(t, got, 3)
	for _, row := range got {
		assert.Equal(t, []float64{0, 0, 0, 0}, row)
	}
}

// Mixed-length captures at 256 Hz and 2 s all land on 512 timesteps:
// 500 is zero-padded, 512 untouched, 600 loses its tail.
func TestPadTrimMixedLengths(t *testing.T) {
	const channels = 5
	for _, tRaw := range []int{500, 512, 600} {
		raw := make([][]float64, channels)
		for c := range raw {
			raw[c] = make([]float64, tRaw)
			for i := range raw[c] {
				raw[c][i] = float64(i + 1)
			}
		}

		got := PadTrim(raw, 256, 2*time.Second)
		require.Len(t, got, channels)
		for c := range got {
			require.Len(t, got[c], 512)
		}
		switch {
		case tRaw < 512:
			assert.Equal(t, float64(tRaw), got[0][tRaw-1])
			for _, v := range got[0][tRaw:] {
				assert.Zero(t, v)
			}
		default:
			assert.Equal(t, 512.0, got[0][511])
		}
	}
}
