package normalize_test

import (
	"testing"

	"github.com/okian/matscore/internal/domain/model"
	"github.com/okian/matscore/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAthlete(t *testing.T) {
	Convey("Given the ground-truth athlete names", t, func() {
		name1 := "Ana Silva"
		name2 := "Bea Costa"

		Convey("When the value is already a canonical identity", func() {
			Convey("Then it passes through unchanged", func() {
				So(normalize.Athlete("1", name1, name2), ShouldEqual, normalize.Athlete1)
				So(normalize.Athlete("2", name1, name2), ShouldEqual, normalize.Athlete2)
			})
		})

		Convey("When the value equals a full athlete name", func() {
			Convey("Then it maps to the matching side", func() {
				So(normalize.Athlete("Ana Silva", name1, name2), ShouldEqual, normalize.Athlete1)
				So(normalize.Athlete("Bea Costa", name1, name2), ShouldEqual, normalize.Athlete2)
			})
		})

		Convey("When only a partial label is given", func() {
			Convey("Then the first-name substring fallback resolves it", func() {
				So(normalize.Athlete("Ana S. (blue gi)", name1, name2), ShouldEqual, normalize.Athlete1)
				So(normalize.Athlete("athlete Bea", name1, name2), ShouldEqual, normalize.Athlete2)
			})
		})

		Convey("When nothing matches", func() {
			Convey("Then it defaults to athlete 1 rather than failing", func() {
				So(normalize.Athlete("Carlos", name1, name2), ShouldEqual, normalize.Athlete1)
				So(normalize.Athlete("", name1, name2), ShouldEqual, normalize.Athlete1)
			})
		})

		Convey("When the full-name rule and the substring rule disagree", func() {
			// "Ana" is the first token of name1 but the value equals name2.
			Convey("Then exact equality wins over the substring fallback", func() {
				So(normalize.Athlete("Bea Costa", "Bea Something", "Bea Costa"), ShouldEqual, normalize.Athlete2)
			})
		})

		Convey("When athlete names are empty", func() {
			Convey("Then resolution still never fails", func() {
				So(normalize.Athlete("anyone", "", ""), ShouldEqual, normalize.Athlete1)
			})
		})
	})
}

func TestEvents(t *testing.T) {
	Convey("Given a sequence with mixed athlete labels", t, func() {
		events := []model.Event{
			{Athlete: "1", Action: "takedown"},
			{Athlete: "Bea Costa", Action: "sweep"},
			{Athlete: "Ana", Action: "guard pass"},
		}

		Convey("When normalizing against the ground-truth names", func() {
			out := normalize.Events(events, "Ana Silva", "Bea Costa")

			Convey("Then every athlete is a canonical identity", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].Athlete, ShouldEqual, normalize.Athlete1)
				So(out[1].Athlete, ShouldEqual, normalize.Athlete2)
				So(out[2].Athlete, ShouldEqual, normalize.Athlete1)
			})

			Convey("And the other fields survive untouched", func() {
				So(out[1].Action, ShouldEqual, "sweep")
			})

			Convey("And the input sequence is not mutated", func() {
				So(events[1].Athlete, ShouldEqual, model.Athlete("Bea Costa"))
			})

			Convey("And normalizing again is a no-op", func() {
				again := normalize.Events(out, "Ana Silva", "Bea Costa")
				So(again, ShouldResemble, out)
			})
		})
	})
}
