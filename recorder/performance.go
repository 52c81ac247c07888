package recorder

import (
	"fmt"
	"io"
	"time"
)

// 計測する処理の区分
const (
	PhaseSetup   = "setup"
	PhaseRefData = "ref_data"
	PhaseEOSData = "eos_data"
	PhaseFigs    = "figs"
	PhaseCSV     = "write_csv"
)

var phases = []string{PhaseSetup, PhaseRefData, PhaseEOSData, PhaseFigs, PhaseCSV}

// Performance records the wall time of the phases of a run.
type Performance struct {
	RunID   string
	NumEval int // 評価した格子点の数

	start   time.Time
	last    time.Time
	elapsed map[string]time.Duration
	now     func() time.Time
}

// NewPerformance starts the clock.
func NewPerformance(runID string) *Performance {
	return newPerformance(runID, time.Now)
}

func newPerformance(runID string, now func() time.Time) *Performance {
	t := now()
	return &Performance{RunID: runID, start: t, last: t, elapsed: map[string]time.Duration{}, now: now}
}

// Mark ends phase and starts the next one.
func (p *Performance) Mark(phase string) time.Duration {
	t := p.now()
	d := t.Sub(p.last)
	p.elapsed[phase] += d
	p.last = t
	return d
}

// Elapsed returns the time spent in phase.
func (p *Performance) Elapsed(phase string) time.Duration {
	return p.elapsed[phase]
}

// Total returns the time from the start to the last mark.
func (p *Performance) Total() time.Duration {
	return p.last.Sub(p.start)
}

// Report writes the report as "key: value" lines with times in seconds.
func (p *Performance) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run_id: %s\nnum_eval: %d\ntime_total [s]: %g\n",
		p.RunID, p.NumEval, p.Total().Seconds()); err != nil {
		return err
	}
	for _, ph := range phases {
		if _, err := fmt.Fprintf(w, "time_%s [s]: %g\n", ph, p.Elapsed(ph).Seconds()); err != nil {
			return err
		}
	}
	return nil
}
