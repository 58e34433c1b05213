package model_test

import (
	"testing"

	"github.com/okian/matscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseClock(t *testing.T) {
	Convey("Given displayed match clock values", t, func() {
		Convey("When parsing the canonical M:SS form", func() {
			seconds, ok := model.ParseClock("8:45")

			Convey("Then it should convert to seconds", func() {
				So(ok, ShouldBeTrue)
				So(seconds, ShouldEqual, 525)
			})
		})

		Convey("When parsing a bare integer string", func() {
			seconds, ok := model.ParseClock("45")

			Convey("Then it should parse as that many seconds", func() {
				So(ok, ShouldBeTrue)
				So(seconds, ShouldEqual, 45)
			})
		})

		Convey("When parsing zero-padded minutes and seconds", func() {
			seconds, ok := model.ParseClock("02:05")

			Convey("Then leading zeros should not matter", func() {
				So(ok, ShouldBeTrue)
				So(seconds, ShouldEqual, 125)
			})
		})

		Convey("When parsing the empty string", func() {
			_, ok := model.ParseClock("")

			Convey("Then the clock should be absent", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When parsing garbage", func() {
			Convey("Then non-numeric text should be absent", func() {
				_, ok := model.ParseClock("soon")
				So(ok, ShouldBeFalse)
			})

			Convey("And a three-part clock should be absent", func() {
				_, ok := model.ParseClock("1:02:03")
				So(ok, ShouldBeFalse)
			})

			Convey("And a non-numeric minute should be absent", func() {
				_, ok := model.ParseClock("x:45")
				So(ok, ShouldBeFalse)
			})
		})
	})
}
