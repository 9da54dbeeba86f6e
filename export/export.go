// Package export persists a recorded session dataset under a
// timestamped session directory: raw windows as JSON, a YAML manifest,
// and optionally an EDF file for EEG tooling.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/Commanchae/bci-data-collection/recorder"
)

// Options configures one export.
type Options struct {
	Dir               string // output root; session dir is created inside
	SamplingFrequency float64
	TrialDuration     time.Duration
	ChannelLabels     []string // optional, padded with generic labels
	SubjectID         string   // optional, recorded in the EDF header
	EDF               bool
}

// Manifest is the human-readable session summary written next to the
// data files.
type Manifest struct {
	SessionID         string                   `yaml:"session_id"`
	GeneratedAt       time.Time                `yaml:"generated_at"`
	SamplingFrequency float64                  `yaml:"sampling_frequency"`
	TrialDuration     float64                  `yaml:"trial_duration_seconds"`
	Trials            int                      `yaml:"trials"`
	Channels          int                      `yaml:"channels"`
	Fields            map[string][]string      `yaml:"fields,omitempty"`
	WindowStats       [][]recorder.WindowStats `yaml:"window_stats,omitempty"`
}

// Write persists the dataset and returns the session directory path.
func Write(ds *recorder.Dataset, opts Options) (string, error) {
	sid, dir, err := mkSessionDir(opts.Dir)
	if err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(dir, "windows.json"), ds); err != nil {
		return "", err
	}

	channels := 0
	if ds.Trials() > 0 {
		channels = len(ds.Recordings[0])
	}
	stats := make([][]recorder.WindowStats, 0, ds.Trials())
	for _, w := range ds.Recordings {
		stats = append(stats, recorder.ChannelStats(w))
	}
	m := Manifest{
		SessionID:         sid,
		GeneratedAt:       time.Now(),
		SamplingFrequency: opts.SamplingFrequency,
		TrialDuration:     opts.TrialDuration.Seconds(),
		Trials:            ds.Trials(),
		Channels:          channels,
		Fields:            ds.Fields,
		WindowStats:       stats,
	}
	if err := writeYAML(filepath.Join(dir, "manifest.yaml"), m); err != nil {
		return "", err
	}

	if opts.EDF && ds.Trials() > 0 {
		edfPath := filepath.Join(dir, sid+".edf")
		if err := writeEDF(edfPath, sid, ds, opts); err != nil {
			return "", err
		}
	}

	logrus.WithFields(logrus.Fields{
		"component": "export",
		"dir":       dir,
		"trials":    ds.Trials(),
	}).Info("session exported")
	return dir, nil
}

func mkSessionDir(outputsRoot string) (string, string, error) {
	ts := time.Now().Format("20060102-150405")
	sid := "session_" + ts
	dir := filepath.Join(outputsRoot, sid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	return sid, dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	defer enc.Close()
	return enc.Encode(v)
}
