// Package report derives evaluation metrics from a ground-truth document
// and a prediction document.
//
// Everything in this package is a pure function over already-loaded
// documents: normalize both event sequences, align them greedily, then
// aggregate detection, field, clock, ordering and match-level sections
// into one immutable Report.
package report

import (
	"github.com/google/uuid"

	"github.com/okian/matscore/internal/domain/align"
	"github.com/okian/matscore/internal/domain/model"
	"github.com/okian/matscore/internal/domain/normalize"
)

// Default tolerances, in seconds.
const (
	DefaultClockTolerance      = align.DefaultToleranceSeconds
	DefaultFieldClockTolerance = 5
)

const unknown = "unknown"

// Report is the complete evaluation of one prediction document against one
// ground-truth document. It is constructed once and never mutated.
type Report struct {
	RunID           string               `json:"run_id"`
	ResultFile      string               `json:"result_file,omitempty"`
	Model           string               `json:"model"`
	MediaResolution string               `json:"media_resolution"`
	GTEventCount    int                  `json:"gt_event_count"`
	PredEventCount  int                  `json:"pred_event_count"`
	ClockTolerance  int                  `json:"clock_tolerance"`
	GTAthlete1      string               `json:"gt_athlete_1"`
	GTAthlete2      string               `json:"gt_athlete_2"`
	Detection       Detection            `json:"detection"`
	FieldAccuracy   map[string]FieldStat `json:"field_accuracy,omitempty"`
	ClockAccuracy   *ClockAccuracy       `json:"clock_accuracy,omitempty"`
	Sequence        Sequence             `json:"sequence"`
	MatchLevel      MatchLevel           `json:"match_level"`
	Matches         []align.Pairing      `json:"matches"`
}

// Option applies a configuration option to an evaluation.
type Option func(*evaluator)

// WithClockTolerance sets the alignment clock tolerance in seconds.
func WithClockTolerance(seconds int) Option {
	return func(e *evaluator) {
		if seconds >= 0 {
			e.clockTolerance = seconds
		}
	}
}

// WithFieldClockTolerance sets the tolerance used when scoring the
// match_clock field on matched pairings.
func WithFieldClockTolerance(seconds int) Option {
	return func(e *evaluator) {
		if seconds >= 0 {
			e.fieldClockTolerance = seconds
		}
	}
}

// WithResultFile records the originating result file name in the report.
func WithResultFile(name string) Option {
	return func(e *evaluator) { e.resultFile = name }
}

type evaluator struct {
	clockTolerance      int
	fieldClockTolerance int
	resultFile          string
}

// Evaluate runs the full pipeline: normalize both sequences against the
// ground-truth athlete names, align them, and aggregate every metrics
// section plus the full pairing list.
func Evaluate(gt model.GroundTruth, res model.Result, opts ...Option) Report {
	e := evaluator{
		clockTolerance:      DefaultClockTolerance,
		fieldClockTolerance: DefaultFieldClockTolerance,
	}
	for _, opt := range opts {
		opt(&e)
	}

	// Ground-truth names are the canonical identity reference for BOTH
	// sequences; predictions that label athletes differently still land in
	// the same identity space.
	gtEvents := normalize.Events(gt.Events, gt.Athlete1Name, gt.Athlete2Name)
	predEvents := normalize.Events(res.Analysis.Events, gt.Athlete1Name, gt.Athlete2Name)

	pairings := align.Align(gtEvents, predEvents, e.clockTolerance)

	mdl := res.Model
	if mdl == "" {
		mdl = unknown
	}
	resolution := res.MediaResolution
	if resolution == "" {
		resolution = unknown
	}

	return Report{
		RunID:           uuid.NewString(),
		ResultFile:      e.resultFile,
		Model:           mdl,
		MediaResolution: resolution,
		GTEventCount:    len(gtEvents),
		PredEventCount:  len(predEvents),
		ClockTolerance:  e.clockTolerance,
		GTAthlete1:      gt.Athlete1Name,
		GTAthlete2:      gt.Athlete2Name,
		Detection:       ComputeDetection(pairings),
		FieldAccuracy:   ComputeFieldAccuracy(pairings, e.fieldClockTolerance),
		ClockAccuracy:   ComputeClockAccuracy(pairings),
		Sequence:        ComputeSequence(pairings),
		MatchLevel:      ComputeMatchLevel(gt, res.Analysis),
		Matches:         pairings,
	}
}
