package report

import (
	"github.com/okian/matscore/internal/domain/align"
	"github.com/okian/matscore/internal/domain/model"
)

// Detection summarizes event detection quality.
type Detection struct {
	TruePositives  int     `json:"true_positives"`
	FalseNegatives int     `json:"false_negatives"`
	FalsePositives int     `json:"false_positives"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
}

// ComputeDetection derives precision, recall and F1 from an alignment.
// Zero denominators yield 0, never a fault.
func ComputeDetection(pairings []align.Pairing) Detection {
	var d Detection
	for _, p := range pairings {
		switch {
		case p.Matched:
			d.TruePositives++
		case p.GT != nil:
			d.FalseNegatives++
		default:
			d.FalsePositives++
		}
	}
	if d.TruePositives+d.FalsePositives > 0 {
		d.Precision = float64(d.TruePositives) / float64(d.TruePositives+d.FalsePositives)
	}
	if d.TruePositives+d.FalseNegatives > 0 {
		d.Recall = float64(d.TruePositives) / float64(d.TruePositives+d.FalseNegatives)
	}
	if d.Precision+d.Recall > 0 {
		d.F1 = 2 * d.Precision * d.Recall / (d.Precision + d.Recall)
	}
	return d
}

// FieldStat reports exact-match accuracy for one event field.
type FieldStat struct {
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// fieldSpec describes how one field is checked: whether the ground-truth
// side carries a comparable value, and whether the prediction agrees.
type fieldSpec struct {
	name    string
	present func(gt *model.Event) bool
	equal   func(gt, pred *model.Event) bool
}

func intField(name string, get func(e *model.Event) *int) fieldSpec {
	return fieldSpec{
		name:    name,
		present: func(gt *model.Event) bool { return get(gt) != nil },
		equal: func(gt, pred *model.Event) bool {
			g, p := get(gt), get(pred)
			return p != nil && *g == *p
		},
	}
}

func stringField(name string, get func(e *model.Event) string) fieldSpec {
	return fieldSpec{
		name:    name,
		present: func(gt *model.Event) bool { return get(gt) != "" },
		equal:   func(gt, pred *model.Event) bool { return get(gt) == get(pred) },
	}
}

func clockField(name string, toleranceSeconds int) fieldSpec {
	return fieldSpec{
		name:    name,
		present: func(gt *model.Event) bool { return gt.MatchClock != "" },
		equal: func(gt, pred *model.Event) bool {
			g, gok := model.ParseClock(gt.MatchClock)
			p, pok := model.ParseClock(pred.MatchClock)
			if !gok || !pok {
				return false
			}
			diff := g - p
			if diff < 0 {
				diff = -diff
			}
			return diff <= toleranceSeconds
		},
	}
}

// ComputeFieldAccuracy scores per-field agreement over matched pairings.
// Comparisons are restricted to pairings where the ground-truth value is
// present and non-empty. All fields use exact equality except match_clock,
// which tolerates a small parsed-seconds difference. Fields with no
// eligible comparison are left out; no matched pairings yields an empty
// map.
func ComputeFieldAccuracy(pairings []align.Pairing, clockToleranceSeconds int) map[string]FieldStat {
	specs := []fieldSpec{
		intField("points_change", func(e *model.Event) *int { return e.PointsChange }),
		intField("advantages_change", func(e *model.Event) *int { return e.AdvantagesChange }),
		intField("penalties_change", func(e *model.Event) *int { return e.PenaltiesChange }),
		stringField("action", func(e *model.Event) string { return e.Action }),
		stringField("running_score", func(e *model.Event) string { return e.RunningScore }),
		stringField("running_advantages", func(e *model.Event) string { return e.RunningAdvantages }),
		stringField("running_penalties", func(e *model.Event) string { return e.RunningPenalties }),
		clockField("match_clock", clockToleranceSeconds),
	}

	stats := make(map[string]FieldStat)
	for _, spec := range specs {
		var correct, total int
		for _, p := range pairings {
			if !p.Matched || !spec.present(p.GT) {
				continue
			}
			total++
			if spec.equal(p.GT, p.Pred) {
				correct++
			}
		}
		if total > 0 {
			stats[spec.name] = FieldStat{
				Correct:  correct,
				Total:    total,
				Accuracy: float64(correct) / float64(total),
			}
		}
	}
	return stats
}

// ClockAccuracy summarizes absolute clock error over matched pairings
// where both clocks parse.
type ClockAccuracy struct {
	MeanAbsoluteError float64 `json:"mean_absolute_error"`
	MaxError          int     `json:"max_error"`
	MinError          int     `json:"min_error"`
	MatchedWithClock  int     `json:"matched_with_clock"`
}

// ComputeClockAccuracy collects clock-error statistics. It returns nil when
// no matched pairing has two parseable clocks, so the section is omitted
// rather than reported with defaults.
func ComputeClockAccuracy(pairings []align.Pairing) *ClockAccuracy {
	var (
		sum, count int
		minErr     int
		maxErr     int
	)
	for _, p := range pairings {
		if !p.Matched {
			continue
		}
		g, gok := model.ParseClock(p.GT.MatchClock)
		pr, pok := model.ParseClock(p.Pred.MatchClock)
		if !gok || !pok {
			continue
		}
		err := g - pr
		if err < 0 {
			err = -err
		}
		if count == 0 || err < minErr {
			minErr = err
		}
		if count == 0 || err > maxErr {
			maxErr = err
		}
		sum += err
		count++
	}
	if count == 0 {
		return nil
	}
	return &ClockAccuracy{
		MeanAbsoluteError: float64(sum) / float64(count),
		MaxError:          maxErr,
		MinError:          minErr,
		MatchedWithClock:  count,
	}
}

// Sequence reports how well the prediction preserves event ordering.
// This is a raw discordant-pair count over matched pairings, not a full
// Kendall-tau normalization.
type Sequence struct {
	PairsInOrder float64 `json:"pairs_in_order"`
	TotalPairs   int     `json:"total_pairs"`
	Inversions   int     `json:"inversions"`
}

// ComputeSequence counts inversions between ground-truth order and
// prediction order among matched pairings. Fewer than two matched pairings
// is perfect order by definition.
func ComputeSequence(pairings []align.Pairing) Sequence {
	matched := make([]align.Pairing, 0, len(pairings))
	for _, p := range pairings {
		if p.Matched {
			matched = append(matched, p)
		}
	}
	// matched pairings are already in ground-truth index order by
	// construction of the alignment
	if len(matched) < 2 {
		return Sequence{PairsInOrder: 1.0}
	}

	var seq Sequence
	for i := 0; i < len(matched); i++ {
		for j := i + 1; j < len(matched); j++ {
			seq.TotalPairs++
			if *matched[i].PredIndex > *matched[j].PredIndex {
				seq.Inversions++
			}
		}
	}
	seq.PairsInOrder = float64(seq.TotalPairs-seq.Inversions) / float64(seq.TotalPairs)
	return seq
}

// MatchLevel holds direct equality checks between top-level match fields,
// independent of the event alignment.
type MatchLevel struct {
	FinalScoreCorrect   bool   `json:"final_score_correct"`
	GTFinalScore        string `json:"gt_final_score"`
	PredFinalScore      string `json:"pred_final_score"`
	WinnerCorrect       bool   `json:"winner_correct"`
	GTWinner            string `json:"gt_winner"`
	PredWinner          string `json:"pred_winner"`
	Athlete1NameCorrect bool   `json:"athlete_1_name_correct"`
	Athlete2NameCorrect bool   `json:"athlete_2_name_correct"`
}

// ComputeMatchLevel compares final score, winner and athlete names.
func ComputeMatchLevel(gt model.GroundTruth, analysis model.Analysis) MatchLevel {
	return MatchLevel{
		FinalScoreCorrect:   gt.FinalScore == analysis.FinalScore,
		GTFinalScore:        gt.FinalScore,
		PredFinalScore:      analysis.FinalScore,
		WinnerCorrect:       gt.Winner == analysis.Winner,
		GTWinner:            gt.Winner,
		PredWinner:          analysis.Winner,
		Athlete1NameCorrect: gt.Athlete1Name == analysis.Athlete1Name,
		Athlete2NameCorrect: gt.Athlete2Name == analysis.Athlete2Name,
	}
}
