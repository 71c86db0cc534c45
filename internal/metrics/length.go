package metrics

import "github.com/san-kum/dsaviz/internal/oplog"

type PeakLength struct {
	name string
	peak int
}

func NewPeakLength() *PeakLength {
	return &PeakLength{name: "peak_length"}
}

func (p *PeakLength) Name() string { return p.name }

func (p *PeakLength) Observe(e oplog.Entry) {
	if e.Length > p.peak {
		p.peak = e.Length
	}
}

func (p *PeakLength) Value() float64 { return float64(p.peak) }

func (p *PeakLength) Reset() { p.peak = 0 }

type MeanLength struct {
	name    string
	sum     int
	samples int
}

func NewMeanLength() *MeanLength {
	return &MeanLength{name: "mean_length"}
}

func (m *MeanLength) Name() string { return m.name }

func (m *MeanLength) Observe(e oplog.Entry) {
	m.sum += e.Length
	m.samples++
}

func (m *MeanLength) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.samples)
}

func (m *MeanLength) Reset() {
	m.sum = 0
	m.samples = 0
}
