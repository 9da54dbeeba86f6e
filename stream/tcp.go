package stream

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"
)

// Bridge wire protocol: on connect the bridge sends one JSON handshake
// line {"name":..,"type":..,"channels":N,"srate":F}, then one JSON line
// per sample: {"data":[..],"ts":seconds}.

const openTimeout = 2 * time.Second

type handshake struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Channels int     `json:"channels"`
	SRate    float64 `json:"srate"`
}

type wireSample struct {
	Data []float64 `json:"data"`
	TS   float64   `json:"ts"`
}

func (h handshake) property(name string) string {
	switch name {
	case "type":
		return h.Type
	case "name":
		return h.Name
	}
	return ""
}

func (h handshake) info(endpoint string) Info {
	return Info{
		Name:         h.Name,
		Type:         h.Type,
		ChannelCount: h.Channels,
		SamplingRate: h.SRate,
		Source:       endpoint,
	}
}

// TCPResolver probes a fixed set of bridge endpoints for advertised
// streams.
type TCPResolver struct {
	endpoints []string
	log       *logrus.Entry
}

func NewTCPResolver(endpoints []string) *TCPResolver {
	return &TCPResolver{
		endpoints: endpoints,
		log:       logrus.WithField("component", "resolver"),
	}
}

// Resolve dials each configured endpoint in turn until the timeout is
// spent, collecting every stream whose handshake matches the requested
// property. Unreachable endpoints are skipped.
func (r *TCPResolver) Resolve(property, value string, timeout time.Duration) []Candidate {
	deadline := time.Now().Add(timeout)
	var out []Candidate
	for _, ep := range r.endpoints {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		hs, err := probe(ep, remaining)
		if err != nil {
			r.log.WithError(err).WithField("endpoint", ep).Debug("endpoint probe failed")
			continue
		}
		if hs.property(property) != value {
			continue
		}
		out = append(out, &tcpCandidate{info: hs.info(ep), endpoint: ep})
	}
	return out
}

func probe(endpoint string, timeout time.Duration) (*handshake, error) {
	conn, err := net.DialTimeout("tcp", endpoint, timeout)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	return readHandshake(bufio.NewReader(conn))
}

func readHandshake(r *bufio.Reader) (*handshake, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("read handshake: %w", err)
	}
	var hs handshake
	if err := json.Unmarshal(line, &hs); err != nil {
		return nil, fmt.Errorf("decode handshake: %w", err)
	}
	if hs.Channels <= 0 {
		return nil, fmt.Errorf("handshake advertises %d channels", hs.Channels)
	}
	return &hs, nil
}

type tcpCandidate struct {
	info     Info
	endpoint string
}

func (c *tcpCandidate) Info() Info { return c.info }

// Open dials the bridge again for a dedicated sample connection. The
// bridge resends its handshake on every connection; it is consumed here
// so the first Pull returns a sample.
func (c *tcpCandidate) Open() (Inlet, error) {
	conn, err := net.DialTimeout("tcp", c.endpoint, openTimeout)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(conn)
	hs, err := readHandshake(br)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &tcpInlet{info: hs.info(c.endpoint), conn: conn, r: br}, nil
}

type tcpInlet struct {
	info Info
	conn net.Conn
	r    *bufio.Reader
}

func (in *tcpInlet) Info() Info { return in.info }

func (in *tcpInlet) Pull() (Sample, error) {
	line, err := in.r.ReadBytes('\n')
	if err != nil {
		return Sample{}, fmt.Errorf("pull: %w", err)
	}
	var ws wireSample
	if err := json.Unmarshal(line, &ws); err != nil {
		return Sample{}, fmt.Errorf("decode sample: %w", err)
	}
	return Sample{Values: ws.Data, Timestamp: ws.TS}, nil
}

func (in *tcpInlet) Close() error { return in.conn.Close() }
