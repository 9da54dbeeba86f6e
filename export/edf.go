package export

import (
	"fmt"
	"os"
	"time"

	"github.com/OpenPSG/edf"

	"github.com/Commanchae/bci-data-collection/recorder"
)

// EDF physical range for raw EEG in microvolts. Values beyond the range
// clip at the digital extremes.
const (
	physMin = -3276.8
	physMax = 3276.7
)

// writeEDF stores the dataset as one EDF data record per trial.
func writeEDF(path, recordingID string, ds *recorder.Dataset, opts Options) error {
	channels := len(ds.Recordings[0])
	samplesPerRecord := 0
	if channels > 0 {
		samplesPerRecord = len(ds.Recordings[0][0])
	}

	signals := make([]edf.Signal, channels)
	for c := range signals {
		label := fmt.Sprintf("EEG ch%d", c+1)
		if c < len(opts.ChannelLabels) {
			label = opts.ChannelLabels[c]
		}
		signals[c] = edf.Signal{
			Label:             label,
			TransducerType:    "AgAgCl electrode",
			PhysicalDimension: "uV",
			PhysicalMin:       physMin,
			PhysicalMax:       physMax,
			DigitalMin:        -32768,
			DigitalMax:        32767,
			SamplesPerRecord:  samplesPerRecord,
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := edf.Create(f, edf.Header{
		Version:            edf.Version0,
		PatientID:          opts.SubjectID,
		RecordingID:        recordingID,
		StartTime:          time.Now(),
		DataRecordDuration: opts.TrialDuration,
		SignalCount:        channels,
		Signals:            signals,
	})
	if err != nil {
		return fmt.Errorf("create edf: %w", err)
	}

	for i, rec := range ds.Recordings {
		if err := w.WriteRecord(rec); err != nil {
			return fmt.Errorf("write edf record %d: %w", i+1, err)
		}
	}
	return w.Close()
}
