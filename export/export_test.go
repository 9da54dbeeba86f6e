package export_test

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OpenPSG/edf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Commanchae/bci-data-collection/export"
	"github.com/Commanchae/bci-data-collection/recorder"
)

func sampleDataset() *recorder.Dataset {
	ramp := func(offset float64) []float64 {
		row := make([]float64, 8)
		for i := range row {
			row[i] = offset + float64(i)
		}
		return row
	}
	return &recorder.Dataset{
		Recordings: [][][]float64{
			{ramp(0), ramp(100)},
			{ramp(10), ramp(110)},
		},
		Fields: map[string][]string{"condition": {"rest", "task"}},
	}
}

func TestWriteSessionArtifacts(t *testing.T) {
	ds := sampleDataset()
	dir, err := export.Write(ds, export.Options{
		Dir:               t.TempDir(),
		SamplingFrequency: 8,
		TrialDuration:     time.Second,
		ChannelLabels:     []string{"TP9", "AF7"},
		SubjectID:         "subject-01",
		EDF:               true,
	})
	require.NoError(t, err)

	var roundTrip recorder.Dataset
	data, err := os.ReadFile(filepath.Join(dir, "windows.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, ds.Recordings, roundTrip.Recordings)
	assert.Equal(t, ds.Fields, roundTrip.Fields)

	var m export.Manifest
	data, err = os.ReadFile(filepath.Join(dir, "manifest.yaml"))
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, 2, m.Trials)
	assert.Equal(t, 2, m.Channels)
	assert.Equal(t, 8.0, m.SamplingFrequency)
	assert.Equal(t, 1.0, m.TrialDuration)
	assert.Equal(t, ds.Fields, m.Fields)
	require.Len(t, m.WindowStats, 2)
	require.Len(t, m.WindowStats[0], 2)

	edfFiles, err := filepath.Glob(filepath.Join(dir, "*.edf"))
	require.NoError(t, err)
	require.Len(t, edfFiles, 1)

	f, err := os.Open(edfFiles[0])
	require.NoError(t, err)
	defer f.Close()

	r, err := edf.Open(f)
	require.NoError(t, err)

	// exactly two signals were written
	_, err = r.Signal(2)
	assert.Error(t, err)

	sr, err := r.Signal(0)
	require.NoError(t, err)
	samples := make([]float64, 16)
	n, err := sr.Read(samples)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	// both trials of channel 0, back to back, within 16-bit resolution
	for i := 0; i < 8; i++ {
		assert.InDelta(t, float64(i), samples[i], 0.2)
		assert.InDelta(t, float64(i+10), samples[8+i], 0.2)
	}
	_, err = sr.Read(samples)
	assert.Equal(t, io.EOF, err)

	sr, err = r.Signal(1)
	require.NoError(t, err)
	n, err = sr.Read(samples)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	assert.InDelta(t, 100.0, samples[0], 0.2)
	assert.InDelta(t, 110.0, samples[8], 0.2)
}

func TestWriteEmptyDatasetSkipsEDF(t *testing.T) {
	dir, err := export.Write(recorder.NewDataset(), export.Options{
		Dir:               t.TempDir(),
		SamplingFrequency: 256,
		TrialDuration:     2 * time.Second,
		EDF:               true,
	})
	require.NoError(t, err)

	edfFiles, err := filepath.Glob(filepath.Join(dir, "*.edf"))
	require.NoError(t, err)
	assert.Empty(t, edfFiles)

	_, err = os.Stat(filepath.Join(dir, "manifest.yaml"))
	assert.NoError(t, err)
}
