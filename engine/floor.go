package engine

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/admissibility-sim/admissibility-sim/engine/trace"
)

// FloorReport is one periodic residual-floor measurement: total cost after
// relaxation (the cost that rerouting cannot currently eliminate), where it
// concentrates, and how much relaxation saved this round.
type FloorReport struct {
	Step               int     `json:"step"`
	ActiveCommitments  int     `json:"active_commitments"`
	RawCost            float64 `json:"raw_cost"`
	ResidualCost       float64 `json:"residual_cost"`
	SaturationFraction float64 `json:"saturation_fraction"`
	Bottleneck         string  `json:"bottleneck"`
	CumulativeAction   float64 `json:"cumulative_action"`
	CostSaved          float64 `json:"cost_saved"`
}

// FloorResult is the complete outcome of driving a commitment stream to its
// end or to saturation.
type FloorResult struct {
	Reports   []FloorReport `json:"reports"`
	Saturated bool          `json:"saturated"`
	// RejectedStep is the stream index of the first rejected commitment,
	// -1 when the whole stream was admitted.
	RejectedStep int        `json:"rejected_step"`
	FinalLoad    LoadVector `json:"final_load"`
	FinalAction  float64    `json:"final_action"`

	Routed  []RoutedCommitment `json:"-"`
	History *History           `json:"-"`
}

// WriteJSON serializes the floor reports for external consumption.
func (fr *FloorResult) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fr)
}

// FloorEstimator drives an ordered stream of commitments through the
// admission controller, periodically relaxing all active routes, and reports
// the irreducible residual cost over time.
type FloorEstimator struct {
	net      *Network
	cfg      Config
	admitter *AdmissionController
	relaxer  *Relaxer

	tr      *trace.RunTrace
	metrics *Metrics
}

// NewFloorEstimator builds the estimator and its admission/relaxation
// machinery over one network.
func NewFloorEstimator(net *Network, cfg Config) (*FloorEstimator, error) {
	admitter, err := NewAdmissionController(net, cfg)
	if err != nil {
		return nil, err
	}
	return &FloorEstimator{
		net:      net,
		cfg:      cfg,
		admitter: admitter,
		relaxer:  NewRelaxer(admitter),
		metrics:  &Metrics{},
	}, nil
}

// AttachTrace enables decision-trace recording for this estimator.
// Pass nil to disable.
func (fe *FloorEstimator) AttachTrace(tr *trace.RunTrace) {
	fe.tr = tr
}

// Metrics returns the aggregate counters accumulated by Run.
func (fe *FloorEstimator) Metrics() *Metrics {
	return fe.metrics
}

// Run processes the stream in order. Each commitment is admitted against the
// currently-active load; the first rejection stops the stream (saturation is a
// terminal, expected outcome, not an error) and returns everything gathered
// so far. Every RelaxEvery admissions, and on the final commitment, the
// relaxer reroutes the active set and a FloorReport is recorded.
//
// Across the stream, ResidualCost in successive reports is non-decreasing:
// each new commitment only adds constraints, never removes them.
func (fe *FloorEstimator) Run(stream []Commitment) (*FloorResult, error) {
	for _, c := range stream {
		if err := c.Validate(fe.net); err != nil {
			return nil, err
		}
	}

	history, err := NewHistory(fe.net, fe.cfg)
	if err != nil {
		return nil, err
	}
	history.Append(NewLoadVector()) // initial empty state

	result := &FloorResult{RejectedStep: -1}
	var active []RoutedCommitment
	load := NewLoadVector()

	logrus.Infof("floor estimation: %d commitments, relax every %d", len(stream), fe.cfg.RelaxEvery)

	for step, c := range stream {
		routed, outcome, err := fe.admitter.Admit(c, load)
		if err != nil {
			return nil, err
		}
		fe.recordAdmission(step, c, routed, outcome)

		if !outcome.Admitted {
			logrus.Infof("saturation at step %d: %s (%s)", step, c, outcome.Reason)
			fe.metrics.RejectedCommitments++
			result.Saturated = true
			result.RejectedStep = step
			break
		}

		fe.metrics.AdmittedCommitments++
		active = append(active, *routed)
		load = load.Add(routed.LoadContribution())
		history.Append(load)
		logrus.Debugf("step %d: admitted %s via %s cost=%.3f headroom=%.3f",
			step, c, routed.Path, outcome.TotalCost, outcome.MinHeadroom)

		if (step+1)%fe.cfg.RelaxEvery == 0 || step == len(stream)-1 {
			active, load = fe.relaxAndReport(step, active, load, history, result)
		}
	}

	result.Routed = active
	result.History = history
	result.FinalLoad = load
	result.FinalAction = history.Action()
	fe.metrics.FinalAction = history.Action()
	fe.metrics.FinalResidualCost = fe.net.TotalCost(load)
	return result, nil
}

// relaxAndReport runs one relaxation round over the active set and appends a
// FloorReport. It returns the relaxed routing and load, which replace the
// running state of the stream.
func (fe *FloorEstimator) relaxAndReport(step int, active []RoutedCommitment, load LoadVector,
	history *History, result *FloorResult) ([]RoutedCommitment, LoadVector) {

	rawCost := fe.net.TotalCost(load)
	rr := fe.relaxer.Relax(active, fe.cfg.IterationCap)

	if rr.Rerouted > 0 {
		history.Append(rr.Load)
	}

	residual := fe.net.TotalCost(rr.Load)
	saturation, bottleneck := fe.net.SaturationFraction(rr.Load)
	report := FloorReport{
		Step:               step,
		ActiveCommitments:  len(rr.Routed),
		RawCost:            rawCost,
		ResidualCost:       residual,
		SaturationFraction: saturation,
		Bottleneck:         bottleneck,
		CumulativeAction:   history.Action(),
		CostSaved:          rr.CostSaved,
	}
	result.Reports = append(result.Reports, report)

	fe.metrics.RelaxationRuns++
	fe.metrics.TotalCostSaved += rr.CostSaved
	if saturation > fe.metrics.PeakSaturation {
		fe.metrics.PeakSaturation = saturation
	}
	fe.recordRelaxation(step, rawCost, rr)

	logrus.Infof("step %d: residual=%.3f saturation=%.1f%% saved=%.3f bottleneck=%s",
		step, residual, saturation*100, rr.CostSaved, bottleneck)
	return rr.Routed, rr.Load
}

func (fe *FloorEstimator) recordAdmission(step int, c Commitment, routed *RoutedCommitment, outcome AdmissionOutcome) {
	if fe.tr == nil {
		return
	}
	rec := trace.AdmissionRecord{
		CommitmentID: c.ID,
		Step:         step,
		Admitted:     outcome.Admitted,
		Reason:       outcome.Reason,
		Candidates:   outcome.Candidates,
		TotalCost:    outcome.TotalCost,
		MinHeadroom:  outcome.MinHeadroom,
		Bottleneck:   outcome.Bottleneck,
	}
	if routed != nil {
		rec.PathNodes = routed.Path.Nodes
	}
	fe.tr.RecordAdmission(rec)
}

func (fe *FloorEstimator) recordRelaxation(step int, rawCost float64, rr RelaxationResult) {
	if fe.tr == nil {
		return
	}
	fe.tr.RecordRelaxation(trace.RelaxationRecord{
		Step:       step,
		Passes:     rr.Passes,
		Converged:  rr.Converged,
		Rerouted:   rr.Rerouted,
		CostBefore: rawCost,
		CostAfter:  rawCost - rr.CostSaved,
		CostSaved:  rr.CostSaved,
	})
}

// String summarizes a report line for logs and CLI output.
func (r FloorReport) String() string {
	return fmt.Sprintf("step=%d residual=%.3f saturation=%.1f%% action=%.3f saved=%.3f bottleneck=%s",
		r.Step, r.ResidualCost, r.SaturationFraction*100, r.CumulativeAction, r.CostSaved, r.Bottleneck)
}
