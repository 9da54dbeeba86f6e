package recorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureWindowTransposesToChannelMajor(t *testing.T) {
	inlet := newFakeInlet(2)
	inlet.delay = 2 * time.Millisecond

	raw, err := captureWindow(inlet, 15*time.Millisecond)
	require.NoError(t, err)

	require.Len(t, raw, 2)
	require.Equal(t, len(raw[0]), len(raw[1]))
	require.NotEmpty(t, raw[0])
	for i := range raw[0] {
		// the fake emits pull#+100*channel, so channel rows are distinct
		assert.Equal(t, float64(i+1), raw[0][i])
		assert.Equal(t, float64(i+1)+100, raw[1][i])
	}
}

func TestCaptureWindowSlowInlet(t *testing.T) {
	inlet := newFakeInlet(3)
	inlet.delay = 30 * time.Millisecond

	raw, err := captureWindow(inlet, 20*time.Millisecond)
	require.NoError(t, err)

	// One blocking pull outlives the window; capture stops right after.
	require.Len(t, raw, 3)
	assert.Len(t, raw[0], 1)
}

func TestTranspose(t *testing.T) {
	rows := [][]float64{{1, 10}, {2, 20}, {3, 30}}
	got := transpose(rows, 2)
	assert.Equal(t, [][]float64{{1, 2, 3}, {10, 20, 30}}, got)
}

func TestTransposeRaggedRowZeroFills(t *testing.T) {
	rows := [][]float64{{1, 10}, {2}}
	got := transpose(rows, 2)
	assert.Equal(t, [][]float64{{1, 2}, {10, 0}}, got)
}

func TestTransposeNoSamples(t *testing.T) {
	got := transpose(nil, 4)
	require.Len(t, got, 4)
	for _, row := range got {
		assert.Empty(t, row)
	}
}
