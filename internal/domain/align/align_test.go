package align_test

import (
	"testing"

	"github.com/okian/matscore/internal/domain/align"
	"github.com/okian/matscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func event(athlete, clock string) model.Event {
	return model.Event{Athlete: model.Athlete(athlete), MatchClock: clock}
}

func matchedCount(pairings []align.Pairing) int {
	n := 0
	for _, p := range pairings {
		if p.Matched {
			n++
		}
	}
	return n
}

func TestAlignIdenticalSequences(t *testing.T) {
	Convey("Given identical ground-truth and prediction sequences", t, func() {
		gt := []model.Event{
			event("1", "9:30"),
			event("2", "7:12"),
			event("1", "4:01"),
		}
		pred := append([]model.Event(nil), gt...)

		Convey("When aligning", func() {
			pairings := align.Align(gt, pred, align.DefaultToleranceSeconds)

			Convey("Then every pairing is matched at its own index", func() {
				So(pairings, ShouldHaveLength, 3)
				for i, p := range pairings {
					So(p.Matched, ShouldBeTrue)
					So(*p.GTIndex, ShouldEqual, i)
					So(*p.PredIndex, ShouldEqual, i)
				}
			})
		})
	})
}

func TestAlignAthleteIdentity(t *testing.T) {
	Convey("Given predictions that always name the wrong athlete", t, func() {
		gt := []model.Event{event("1", "9:30"), event("1", "7:12")}
		pred := []model.Event{event("2", "9:30"), event("2", "7:12")}

		Convey("When aligning with a huge tolerance", func() {
			pairings := align.Align(gt, pred, 10_000)

			Convey("Then no pairing matches regardless of timing", func() {
				So(matchedCount(pairings), ShouldEqual, 0)
				So(pairings, ShouldHaveLength, 4)
			})

			Convey("And ground-truth events become false negatives, predictions false positives", func() {
				So(pairings[0].GT, ShouldNotBeNil)
				So(pairings[0].Pred, ShouldBeNil)
				So(pairings[2].GT, ShouldBeNil)
				So(pairings[2].Pred, ShouldNotBeNil)
			})
		})
	})
}

func TestAlignTolerance(t *testing.T) {
	Convey("Given a single ground-truth event at 8:45", t, func() {
		gt := []model.Event{event("1", "8:45")}

		Convey("When the prediction is 10 seconds off", func() {
			pairings := align.Align(gt, []model.Event{event("1", "8:55")}, 10)

			Convey("Then the boundary is inclusive", func() {
				So(matchedCount(pairings), ShouldEqual, 1)
			})
		})

		Convey("When the prediction is 11 seconds off", func() {
			pairings := align.Align(gt, []model.Event{event("1", "8:56")}, 10)

			Convey("Then the pair does not match", func() {
				So(matchedCount(pairings), ShouldEqual, 0)
				So(pairings, ShouldHaveLength, 2)
			})
		})
	})
}

func TestAlignClosestCandidateWins(t *testing.T) {
	Convey("Given several candidates within tolerance", t, func() {
		gt := []model.Event{event("1", "5:00")}
		pred := []model.Event{
			event("1", "5:08"),
			event("1", "5:02"),
			event("1", "4:55"),
		}

		Convey("When aligning", func() {
			pairings := align.Align(gt, pred, 10)

			Convey("Then the smallest absolute difference is chosen", func() {
				So(pairings[0].Matched, ShouldBeTrue)
				So(*pairings[0].PredIndex, ShouldEqual, 1)
			})
		})
	})

	Convey("Given two candidates at the exact same distance", t, func() {
		gt := []model.Event{event("1", "5:00")}
		pred := []model.Event{
			event("1", "5:05"),
			event("1", "4:55"),
		}

		Convey("When aligning", func() {
			pairings := align.Align(gt, pred, 10)

			Convey("Then the first in scan order wins the tie", func() {
				So(pairings[0].Matched, ShouldBeTrue)
				So(*pairings[0].PredIndex, ShouldEqual, 0)
			})
		})
	})
}

func TestAlignNoDoubleConsumption(t *testing.T) {
	Convey("Given two ground-truth events competing for one prediction", t, func() {
		gt := []model.Event{event("1", "5:00"), event("1", "5:01")}
		pred := []model.Event{event("1", "5:00")}

		Convey("When aligning", func() {
			pairings := align.Align(gt, pred, 10)

			Convey("Then the prediction is consumed exactly once", func() {
				So(matchedCount(pairings), ShouldEqual, 1)
				So(*pairings[0].PredIndex, ShouldEqual, 0)
				So(pairings[1].Pred, ShouldBeNil)
				So(pairings, ShouldHaveLength, 2)
			})
		})
	})
}

func TestAlignTimestampFallback(t *testing.T) {
	Convey("Given events without parseable clocks", t, func() {
		ts := func(athlete string, seconds int) model.Event {
			return model.Event{Athlete: model.Athlete(athlete), TimestampSeconds: model.Int(seconds)}
		}

		Convey("When both sides carry only timestamp_seconds", func() {
			pairings := align.Align(
				[]model.Event{ts("1", 120)},
				[]model.Event{ts("1", 126)},
				10,
			)

			Convey("Then timestamps are compared under the same tolerance", func() {
				So(matchedCount(pairings), ShouldEqual, 1)
			})
		})

		Convey("When the timestamp difference exceeds the tolerance", func() {
			pairings := align.Align(
				[]model.Event{ts("1", 120)},
				[]model.Event{ts("1", 135)},
				10,
			)

			Convey("Then the fallback does not bypass the tolerance", func() {
				So(matchedCount(pairings), ShouldEqual, 0)
			})
		})

		Convey("When only one side's clock parses", func() {
			gt := []model.Event{{Athlete: "1", MatchClock: "8:45", TimestampSeconds: model.Int(100)}}
			pred := []model.Event{{Athlete: "1", MatchClock: "n/a", TimestampSeconds: model.Int(104)}}

			pairings := align.Align(gt, pred, 10)

			Convey("Then the comparison falls back to timestamps", func() {
				So(matchedCount(pairings), ShouldEqual, 1)
			})
		})

		Convey("When timestamps are absent on both sides", func() {
			gt := []model.Event{{Athlete: "1"}}
			pred := []model.Event{{Athlete: "1"}}

			pairings := align.Align(gt, pred, 10)

			Convey("Then absent timestamps compare as zero and match", func() {
				So(matchedCount(pairings), ShouldEqual, 1)
			})
		})
	})
}

func TestAlignEmptySequences(t *testing.T) {
	Convey("Given empty inputs", t, func() {
		Convey("When both sequences are empty", func() {
			So(align.Align(nil, nil, 10), ShouldBeEmpty)
		})

		Convey("When only the prediction is empty", func() {
			pairings := align.Align([]model.Event{event("1", "5:00")}, nil, 10)

			Convey("Then the ground truth becomes a false negative", func() {
				So(pairings, ShouldHaveLength, 1)
				So(pairings[0].Matched, ShouldBeFalse)
				So(pairings[0].GT, ShouldNotBeNil)
			})
		})

		Convey("When only the ground truth is empty", func() {
			pairings := align.Align(nil, []model.Event{event("2", "5:00")}, 10)

			Convey("Then the prediction becomes a false positive", func() {
				So(pairings, ShouldHaveLength, 1)
				So(pairings[0].Matched, ShouldBeFalse)
				So(pairings[0].Pred, ShouldNotBeNil)
			})
		})
	})
}
