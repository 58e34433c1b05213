// Package align pairs predicted scoring events with ground-truth events.
//
// The matcher is a single greedy left-to-right pass over the ground truth,
// not a minimum-cost assignment. The greedy policy is part of the contract:
// reported metrics must stay comparable across evaluation runs, so the
// known suboptimality under equally-eligible candidates is preserved
// rather than "fixed".
package align

import "github.com/okian/matscore/internal/domain/model"

// DefaultToleranceSeconds is the default maximum clock difference for two
// events to count as the same real-world occurrence.
const DefaultToleranceSeconds = 10

// Pairing relates one ground-truth event to one prediction event.
// Exactly one of three shapes: matched (both sides set), false negative
// (ground truth only) or false positive (prediction only). Nil index and
// event pointers mark the absent side.
type Pairing struct {
	GTIndex   *int         `json:"gt_index"`
	PredIndex *int         `json:"pred_index"`
	GT        *model.Event `json:"gt_event"`
	Pred      *model.Event `json:"pred_event"`
	Matched   bool         `json:"matched"`
}

// Align matches prediction events to ground-truth events.
//
// For each ground-truth event in order, the closest not-yet-consumed
// prediction with the same normalized athlete is selected, provided the
// absolute time difference is within toleranceSeconds. Time differences
// come from the parsed match clocks; if either side's clock does not
// parse, timestamp_seconds is compared instead, under the same tolerance.
// Ties keep the first candidate in scan order: only a strictly smaller
// difference replaces the current best.
//
// Every ground-truth index and every prediction index appears in exactly
// one pairing; a prediction is consumed by at most one ground-truth event.
func Align(gt, pred []model.Event, toleranceSeconds int) []Pairing {
	pairings := make([]Pairing, 0, len(gt)+len(pred))
	consumed := make([]bool, len(pred))

	for gi := range gt {
		g := &gt[gi]
		gtClock, gtClockOK := model.ParseClock(g.MatchClock)

		bestIdx := -1
		bestDiff := 0
		for pi := range pred {
			if consumed[pi] {
				continue
			}
			p := &pred[pi]
			if g.Athlete != p.Athlete {
				continue
			}

			var diff int
			predClock, predClockOK := model.ParseClock(p.MatchClock)
			if gtClockOK && predClockOK {
				diff = abs(gtClock - predClock)
			} else {
				diff = abs(g.Timestamp() - p.Timestamp())
			}

			if diff > toleranceSeconds {
				continue
			}
			if bestIdx == -1 || diff < bestDiff {
				bestIdx = pi
				bestDiff = diff
			}
		}

		if bestIdx >= 0 {
			consumed[bestIdx] = true
			pairings = append(pairings, Pairing{
				GTIndex:   intPtr(gi),
				PredIndex: intPtr(bestIdx),
				GT:        &gt[gi],
				Pred:      &pred[bestIdx],
				Matched:   true,
			})
			continue
		}
		// false negative: the prediction never saw this event
		pairings = append(pairings, Pairing{
			GTIndex: intPtr(gi),
			GT:      &gt[gi],
		})
	}

	// false positives: predictions nothing in the ground truth claimed
	for pi := range pred {
		if consumed[pi] {
			continue
		}
		pairings = append(pairings, Pairing{
			PredIndex: intPtr(pi),
			Pred:      &pred[pi],
		})
	}

	return pairings
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func intPtr(v int) *int { return &v }
