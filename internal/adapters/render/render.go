// Package render writes evaluation reports in human-readable or JSON form.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/okian/matscore/internal/domain/model"
	"github.com/okian/matscore/internal/domain/report"
)

const rule = "======================================================================"

// Report writes a human-readable evaluation report.
func Report(w io.Writer, rep report.Report) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "EVALUATION REPORT: %s\n", rep.ResultFile)
	fmt.Fprintf(w, "Model: %s | Resolution: %s\n", rep.Model, rep.MediaResolution)
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "\nEvents: %d predicted vs %d ground truth\n", rep.PredEventCount, rep.GTEventCount)
	fmt.Fprintf(w, "Clock tolerance: ±%ds (matching by match_clock)\n", rep.ClockTolerance)

	det := rep.Detection
	fmt.Fprintf(w, "\n--- Event Detection ---\n")
	fmt.Fprintf(w, "  True Positives:  %d\n", det.TruePositives)
	fmt.Fprintf(w, "  False Negatives: %d (missed events)\n", det.FalseNegatives)
	fmt.Fprintf(w, "  False Positives: %d (hallucinated events)\n", det.FalsePositives)
	fmt.Fprintf(w, "  Precision: %.1f%%\n", det.Precision*100)
	fmt.Fprintf(w, "  Recall:    %.1f%%\n", det.Recall*100)
	fmt.Fprintf(w, "  F1 Score:  %.1f%%\n", det.F1*100)

	if len(rep.FieldAccuracy) > 0 {
		fmt.Fprintf(w, "\n--- Field Accuracy (matched events only) ---\n")
		fields := make([]string, 0, len(rep.FieldAccuracy))
		for field := range rep.FieldAccuracy {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			stats := rep.FieldAccuracy[field]
			fmt.Fprintf(w, "  %s: %d/%d (%.1f%%)\n", field, stats.Correct, stats.Total, stats.Accuracy*100)
		}
	}

	if ca := rep.ClockAccuracy; ca != nil {
		fmt.Fprintf(w, "\n--- Match Clock Accuracy ---\n")
		fmt.Fprintf(w, "  Mean Absolute Error: %.1fs\n", ca.MeanAbsoluteError)
		fmt.Fprintf(w, "  Range: %ds - %ds\n", ca.MinError, ca.MaxError)
		fmt.Fprintf(w, "  Events with clock: %d\n", ca.MatchedWithClock)
	}

	seq := rep.Sequence
	fmt.Fprintf(w, "\n--- Sequence Ordering ---\n")
	fmt.Fprintf(w, "  Pairs in correct order: %.1f%%\n", seq.PairsInOrder*100)
	fmt.Fprintf(w, "  Inversions: %d/%d\n", seq.Inversions, seq.TotalPairs)

	ml := rep.MatchLevel
	fmt.Fprintf(w, "\n--- Match-Level ---\n")
	fmt.Fprintf(w, "  Final Score: %s (GT: %s, Pred: %s)\n", mark(ml.FinalScoreCorrect), ml.GTFinalScore, ml.PredFinalScore)
	fmt.Fprintf(w, "  Winner: %s (GT: %s, Pred: %s)\n", mark(ml.WinnerCorrect), ml.GTWinner, ml.PredWinner)

	fmt.Fprintf(w, "\n--- Event Matching Detail ---\n")
	for _, m := range rep.Matches {
		switch {
		case m.Matched:
			fmt.Fprintf(w, "  ✓ GT[%d] ↔ Pred[%d]: %s @ %s → %s | %s\n",
				*m.GTIndex, *m.PredIndex,
				athleteLabel(m.GT.Athlete, rep.GTAthlete1, rep.GTAthlete2),
				clockOrUnknown(m.GT), clockOrUnknown(m.Pred), m.GT.Action)
		case m.GT != nil:
			fmt.Fprintf(w, "  ✗ MISSED GT[%d]: %s @ %s | %s\n",
				*m.GTIndex,
				athleteLabel(m.GT.Athlete, rep.GTAthlete1, rep.GTAthlete2),
				clockOrUnknown(m.GT), m.GT.Action)
		default:
			fmt.Fprintf(w, "  ✗ EXTRA Pred[%d]: A%s @ %s | %s\n",
				*m.PredIndex, m.Pred.Athlete, clockOrUnknown(m.Pred), m.Pred.Action)
		}
	}
	fmt.Fprintln(w)
}

// Summary writes a comparison table across multiple reports.
func Summary(w io.Writer, reports []report.Report) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SUMMARY COMPARISON")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-30s %-10s %-8s %-8s %-8s\n", "Model", "Res", "F1", "Prec", "Recall")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, rep := range reports {
		det := rep.Detection
		res := strings.ReplaceAll(rep.MediaResolution, "MEDIA_RESOLUTION_", "")
		fmt.Fprintf(w, "%-30s %-10s %-8s %-8s %-8s\n",
			rep.Model, res,
			percent(det.F1), percent(det.Precision), percent(det.Recall))
	}
}

// JSON writes one or more reports as an indented JSON document.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// athleteLabel maps a normalized identity back to the athlete's first name
// for readable output.
func athleteLabel(athlete model.Athlete, name1, name2 string) string {
	name := ""
	switch athlete {
	case "1":
		name = name1
	case "2":
		name = name2
	}
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return "A" + string(athlete)
}

func clockOrUnknown(e *model.Event) string {
	if e.MatchClock == "" {
		return "?"
	}
	return e.MatchClock
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
