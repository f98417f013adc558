package friction_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/envelopes/internal/domain/friction"
	"github.com/okian/envelopes/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStress(t *testing.T) {
	Convey("Given Byerlee friction with hydrostatic pore pressure", t, func() {
		p := model.FaultFriction{Mu: 0.73, Lambda: 0.36, C0: 0}

		Convey("When evaluating at the surface without cohesion", func() {
			Convey("Then every kind should give zero", func() {
				for _, k := range friction.Kinds() {
					s, err := friction.Stress(0, p, k, 2750)
					So(err, ShouldBeNil)
					So(s, ShouldAlmostEqual, 0, 1e-12)
				}
			})
		})

		Convey("When evaluating at 10 km", func() {
			thrust, err1 := friction.Stress(10, p, friction.Thrust, 2750)
			ext, err2 := friction.Stress(10, p, friction.Extension, 2750)
			strike, err3 := friction.Stress(10, p, friction.StrikeSlip, 2750)

			Convey("Then it should reproduce the hand-computed values", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(err3, ShouldBeNil)
				So(thrust, ShouldAlmostEqual, 495.945676, 1e-5)
				So(ext, ShouldAlmostEqual, 128.037826, 1e-5)
				So(strike, ShouldAlmostEqual, 203.530400, 1e-5)
			})

			Convey("And thrust should be strongest and extension weakest", func() {
				So(thrust, ShouldBeGreaterThan, strike)
				So(strike, ShouldBeGreaterThan, ext)
			})
		})

		Convey("When the rock is dry", func() {
			wet, _ := friction.Stress(10, p, friction.Thrust, 2750)
			dry, _ := friction.Stress(10, model.FaultFriction{Mu: 0.73}, friction.Thrust, 2750)

			Convey("Then strength should rise by 1/(1-lambda)", func() {
				So(dry, ShouldAlmostEqual, wet/0.64, 1e-6)
			})
		})
	})

	Convey("Given a cohesive rock at the surface", t, func() {
		p := model.FaultFriction{Mu: 0.73, Lambda: 0.36, C0: 10}
		root := math.Sqrt(0.73*0.73 + 1)

		Convey("Then stress should depend on cohesion alone", func() {
			thrust, _ := friction.Stress(0, p, friction.Thrust, 2750)
			ext, _ := friction.Stress(0, p, friction.Extension, 2750)
			strike, _ := friction.Stress(0, p, friction.StrikeSlip, 2750)
			So(thrust, ShouldAlmostEqual, 2*10/(root-0.73), 1e-9)
			So(ext, ShouldAlmostEqual, -2*10/(root+0.73), 1e-9)
			So(strike, ShouldAlmostEqual, 2*10/root, 1e-9)
		})
	})

	Convey("Given an unknown fault kind", t, func() {
		_, err := friction.Stress(10, model.DefaultFaultFriction(), friction.Kind(42), 2750)

		Convey("Then it should be an invalid argument", func() {
			So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestParseKind(t *testing.T) {
	Convey("Given fault kind names", t, func() {
		cases := map[string]friction.Kind{
			"thrust":      friction.Thrust,
			"inverse":     friction.Thrust,
			"extension":   friction.Extension,
			"normal":      friction.Extension,
			"strike-slip": friction.StrikeSlip,
			"Strike":      friction.StrikeSlip,
		}

		Convey("Then known names should resolve", func() {
			for name, want := range cases {
				k, err := friction.ParseKind(name)
				So(err, ShouldBeNil)
				So(k, ShouldEqual, want)
			}
		})

		Convey("Then round-tripping String should resolve", func() {
			for _, k := range friction.Kinds() {
				got, err := friction.ParseKind(k.String())
				So(err, ShouldBeNil)
				So(got, ShouldEqual, k)
			}
		})

		Convey("Then unknown names should be invalid arguments", func() {
			_, err := friction.ParseKind("oblique")
			So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestLine(t *testing.T) {
	Convey("Given the reference horizons", t, func() {
		h := model.DefaultHorizons()

		Convey("When building a thrust slope to 10 km", func() {
			line, err := friction.Line(10, model.DefaultFaultFriction(), friction.Thrust, h)

			Convey("Then it should be a two-point profile from the surface", func() {
				So(err, ShouldBeNil)
				So(line.Validate(), ShouldBeNil)
				So(line.Depth, ShouldResemble, []float64{0, 10})
				So(line.Value[0], ShouldEqual, 0.0)
				So(line.Value[1], ShouldAlmostEqual, 495.945676, 1e-5)
			})
		})

		Convey("When the depth is negative", func() {
			_, err := friction.Line(-1, model.DefaultFaultFriction(), friction.Thrust, h)

			Convey("Then it should be rejected", func() {
				So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
			})
		})

		Convey("When building Goetze's criterion", func() {
			line := friction.GoetzeLine(h)

			Convey("Then it should cover surface, moho and lab", func() {
				So(line.Depth, ShouldResemble, []float64{0, 34.4, 81})
				So(line.Value[0], ShouldEqual, 0.0)
				So(line.Value[1], ShouldAlmostEqual, 927.70909, 1e-5)
				So(line.Value[2], ShouldAlmostEqual, 2449.4854237, 1e-5)
			})
		})
	})
}
