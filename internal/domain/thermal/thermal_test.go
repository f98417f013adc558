package thermal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/envelopes/internal/domain/model"
	"github.com/okian/envelopes/internal/domain/thermal"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSteadyState(t *testing.T) {
	Convey("Given the default crust", t, func() {
		crust := model.DefaultCrust()

		Convey("When evaluating at the reference depth", func() {
			got := thermal.SteadyState(0, 280.65, []float64{0}, crust)

			Convey("Then it should return the reference temperature", func() {
				So(got[0], ShouldEqual, 280.65)
			})
		})

		Convey("When evaluating at 10 km", func() {
			got := thermal.SteadyState(0, 280.65, []float64{10}, crust)

			Convey("Then it should match the closed form", func() {
				So(got[0], ShouldAlmostEqual, 520.2914342629, 1e-9)
			})
		})

		Convey("When the reference depth is shifted", func() {
			a := thermal.SteadyState(0, 300, []float64{5}, crust)
			b := thermal.SteadyState(20, 300, []float64{25}, crust)

			Convey("Then only the offset should matter", func() {
				So(a[0], ShouldAlmostEqual, b[0], 1e-9)
			})
		})
	})
}

func TestGeotherm(t *testing.T) {
	Convey("Given the reference two-layer model", t, func() {
		in := thermal.DefaultGeothermInput()
		g, err := thermal.NewGeotherm(in)
		So(err, ShouldBeNil)

		Convey("Then the mesh should span the lithosphere", func() {
			So(g.Profile.Len(), ShouldEqual, 4096)
			So(g.Profile.Validate(), ShouldBeNil)
			So(g.Profile.Depth[0], ShouldEqual, 0.0)
			So(g.Profile.Depth[4095], ShouldEqual, 81.0)
			So(g.Profile.Value[0], ShouldEqual, 280.65)
		})

		Convey("Then the report should describe the model", func() {
			So(g.Report.MohoTemp, ShouldAlmostEqual, 669.6517437, 1e-6)
			So(g.Report.LABTemp, ShouldAlmostEqual, 1139.3878336, 1e-6)
			So(g.Report.CrustGradient, ShouldAlmostEqual, 65/2.51, 1e-12)
			So(g.Report.MantleGradient, ShouldAlmostEqual, 34/3.35, 1e-12)
		})

		Convey("Then temperature should be continuous across the moho", func() {
			split := 0
			for g.Profile.Depth[split] <= in.Horizons.Moho {
				split++
			}
			crustLast := g.Profile.Value[split-1]
			mantleAtRef := thermal.SteadyState(g.Profile.Depth[split-1], crustLast, []float64{g.Profile.Depth[split-1]}, in.Mantle)
			So(mantleAtRef[0], ShouldEqual, crustLast)

			step := g.Profile.Depth[1] - g.Profile.Depth[0]
			jump := g.Profile.Value[split] - crustLast
			So(jump, ShouldBeGreaterThan, 0)
			So(jump, ShouldBeLessThanOrEqualTo, in.Mantle.Gradient()*step)
			So(g.Profile.Value[split], ShouldAlmostEqual, crustLast+0.20075388, 1e-6)
		})

		Convey("Then the celsius view should shift every sample", func() {
			c := g.Celsius()
			So(c.Value[0], ShouldAlmostEqual, 7.5, 1e-9)
			So(g.Profile.Value[0], ShouldEqual, 280.65)
		})
	})

	Convey("Given invalid geotherm inputs", t, func() {
		Convey("When the mesh has one point", func() {
			in := thermal.DefaultGeothermInput()
			in.Points = 1
			_, err := thermal.NewGeotherm(in)
			So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("When the surface temperature is not absolute", func() {
			in := thermal.DefaultGeothermInput()
			in.SurfaceTemp = 0
			_, err := thermal.NewGeotherm(in)
			So(errors.Is(err, model.ErrDomainPrecondition), ShouldBeTrue)
		})

		Convey("When the horizons are inverted", func() {
			in := thermal.DefaultGeothermInput()
			in.Horizons.LAB = 20
			_, err := thermal.NewGeotherm(in)
			So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("When a conductivity is zero", func() {
			in := thermal.DefaultGeothermInput()
			in.Mantle.K = 0
			_, err := thermal.NewGeotherm(in)
			So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestBoreholes(t *testing.T) {
	Convey("Given the reference horizons", t, func() {
		h := model.DefaultHorizons()

		Convey("When projecting the KTB borehole", func() {
			s, err := thermal.BoreholeCurve("KTB", 280.65, h)

			Convey("Then it should reproduce the literal gradient", func() {
				So(err, ShouldBeNil)
				So(len(s), ShouldEqual, 2)
				So(s[0].Name, ShouldEqual, "KTB borehole")
				So(s[0].Depth, ShouldResemble, []float64{0, 9.101})
				So(s[0].Value[0], ShouldAlmostEqual, 7.5, 1e-9)
				So(s[0].Value[1], ShouldAlmostEqual, 257.7775, 1e-9)
			})

			Convey("And the projection should end at moho times gradient", func() {
				So(s[1].Depth, ShouldResemble, []float64{9.101, 34.4})
				So(s[1].Value[0], ShouldAlmostEqual, 257.7775, 1e-9)
				So(s[1].Value[1], ShouldAlmostEqual, 946.0, 1e-9)
			})
		})

		Convey("When listing every borehole", func() {
			Convey("Then each should give valid profiles", func() {
				for _, name := range thermal.BoreholeNames() {
					s, err := thermal.BoreholeCurve(name, 280.65, h)
					So(err, ShouldBeNil)
					for _, series := range s {
						So(series.Validate(), ShouldBeNil)
					}
				}
			})
		})

		Convey("When the Kola gradient is requested", func() {
			s, _ := thermal.BoreholeCurve("Kola", 273.15, h)

			Convey("Then it should start at 0 °C", func() {
				So(s[0].Value[0], ShouldAlmostEqual, 0, 1e-12)
				So(s[0].Value[1], ShouldAlmostEqual, 12.262*15.5, 1e-9)
			})
		})

		Convey("When the borehole is unknown", func() {
			_, err := thermal.BoreholeCurve("SG-3", 280.65, h)

			Convey("Then it should be an invalid argument", func() {
				So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
			})
		})
	})
}

func TestTriplePoint(t *testing.T) {
	Convey("Given the reference horizons", t, func() {
		h := model.DefaultHorizons()

		Convey("When drawing the Holdoway triple point", func() {
			s, err := thermal.TriplePointLines("Holdoway", h)

			Convey("Then three reaction lines should meet at the triple point", func() {
				So(err, ShouldBeNil)
				So(len(s), ShouldEqual, 3)
				depth := 380000 / (2750 * 9.80665)
				So(s[0].Depth[1], ShouldAlmostEqual, depth, 1e-9)
				So(s[0].Value[1], ShouldEqual, 500.0)
				So(s[1].Value, ShouldResemble, []float64{602.85, 500})
				So(s[2].Value, ShouldResemble, []float64{500, 696.85})
				So(s[2].Depth[1], ShouldEqual, 34.4)
				for _, line := range s {
					So(line.Validate(), ShouldBeNil)
				}
			})
		})

		Convey("When drawing the Pattison triple point", func() {
			s, err := thermal.TriplePointLines("Pattison", h)

			Convey("Then it should sit deeper", func() {
				So(err, ShouldBeNil)
				So(s[0].Depth[1], ShouldAlmostEqual, 16.686265303, 1e-6)
				So(s[1].Value[0], ShouldEqual, 800)
			})
		})

		Convey("When the variant is unknown", func() {
			_, err := thermal.TriplePointLines("Bohlen", h)
			So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestGraniteSolidus(t *testing.T) {
	Convey("Given the reference horizons", t, func() {
		s := thermal.GraniteSolidus(model.DefaultHorizons())

		Convey("Then the wet curve should be ordered by depth", func() {
			So(len(s), ShouldEqual, 2)
			So(s[0].Validate(), ShouldBeNil)
			So(s[0].Len(), ShouldEqual, 26)
			So(s[0].Value[0], ShouldEqual, 961.86)
			last := s[0].Len() - 1
			So(s[0].Depth[last], ShouldAlmostEqual, 1297.289e6/(2750*9.80665)/1000, 1e-9)
		})

		Convey("Then the linear solidus should reach the moho", func() {
			So(s[1].Depth, ShouldResemble, []float64{0, 34.4})
			So(s[1].Value[1], ShouldAlmostEqual, 1055.2828892, 1e-6)
			So(math.IsNaN(s[1].Value[1]), ShouldBeFalse)
		})
	})
}
