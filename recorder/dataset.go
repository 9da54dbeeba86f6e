package recorder

// Dataset accumulates recordings and per-trial metadata across one or
// more sessions on the same recorder. Append-only: each completed trial
// adds exactly one window to Recordings, and metadata fields are
// extended once per successful session.
type Dataset struct {
	Recordings [][][]float64       `json:"recordings"` // trial -> [channel][timestep]
	Fields     map[string][]string `json:"fields,omitempty"`
}

func NewDataset(fields ...string) *Dataset {
	d := &Dataset{Fields: make(map[string][]string, len(fields))}
	for _, f := range fields {
		d.Fields[f] = []string{}
	}
	return d
}

// Trials is the number of completed trials held so far.
func (d *Dataset) Trials() int { return len(d.Recordings) }

func (d *Dataset) appendRecording(w [][]float64) {
	d.Recordings = append(d.Recordings, w)
}

func (d *Dataset) extendField(name string, values []string) {
	d.Fields[name] = append(d.Fields[name], values...)
}
