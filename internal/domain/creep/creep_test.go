package creep_test

import (
	"errors"
	"testing"

	"github.com/okian/envelopes/internal/domain/creep"
	"github.com/okian/envelopes/internal/domain/flowlaw"
	"github.com/okian/envelopes/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStress(t *testing.T) {
	Convey("Given the Luan quartz flow law", t, func() {
		law, err := flowlaw.Quartz("Luan")
		So(err, ShouldBeNil)
		p := creep.QuartzParams()

		Convey("When evaluating at 600 K without pressure", func() {
			s, err := creep.Stress(law, p, []float64{600}, nil)

			Convey("Then it should match the closed form", func() {
				So(err, ShouldBeNil)
				So(len(s), ShouldEqual, 1)
				So(s[0], ShouldAlmostEqual, 40.5629259, 1e-5)
			})
		})

		Convey("When temperature increases", func() {
			s, err := creep.Stress(law, p, []float64{500, 600, 700, 800, 900}, nil)

			Convey("Then the required stress should decrease", func() {
				So(err, ShouldBeNil)
				for i := 1; i < len(s); i++ {
					So(s[i], ShouldBeLessThan, s[i-1])
				}
			})
		})

		Convey("When strain rate increases", func() {
			slow, _ := creep.Stress(law, creep.QuartzParams(creep.WithStrainRate(1e-15)), []float64{700}, nil)
			ref, _ := creep.Stress(law, p, []float64{700}, nil)
			fast, _ := creep.Stress(law, creep.QuartzParams(creep.WithStrainRate(1e-13)), []float64{700}, nil)

			Convey("Then the required stress should increase", func() {
				So(slow[0], ShouldBeLessThan, ref[0])
				So(ref[0], ShouldBeLessThan, fast[0])
			})
		})

		Convey("When the grain exponent is zero", func() {
			a, _ := creep.Stress(law, creep.QuartzParams(creep.WithGrainSize(10, 0)), []float64{700}, nil)
			b, _ := creep.Stress(law, creep.QuartzParams(creep.WithGrainSize(500, 0)), []float64{700}, nil)

			Convey("Then grain size should not matter", func() {
				So(a[0], ShouldEqual, b[0])
			})
		})

		Convey("When a scalar pressure is supplied to a zero-volume law", func() {
			a, _ := creep.Stress(law, p, []float64{700, 800}, nil)
			b, err := creep.Stress(law, p, []float64{700, 800}, []float64{1e9})

			Convey("Then it should broadcast and have no effect", func() {
				So(err, ShouldBeNil)
				So(b, ShouldResemble, a)
			})
		})

		Convey("When a temperature is not positive", func() {
			_, err := creep.Stress(law, p, []float64{600, 0}, nil)

			Convey("Then it should violate the domain precondition", func() {
				So(errors.Is(err, model.ErrDomainPrecondition), ShouldBeTrue)
			})
		})

		Convey("When the strain rate is not positive", func() {
			_, err := creep.Stress(law, creep.QuartzParams(creep.WithStrainRate(0)), []float64{600}, nil)

			Convey("Then it should violate the domain precondition", func() {
				So(errors.Is(err, model.ErrDomainPrecondition), ShouldBeTrue)
			})
		})

		Convey("When pressures do not match temperatures", func() {
			_, err := creep.Stress(law, p, []float64{600, 700, 800}, []float64{1, 2})

			Convey("Then it should be an invalid argument", func() {
				So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
			})
		})

		Convey("When no temperatures are given", func() {
			s, err := creep.Stress(law, p, []float64{}, nil)

			Convey("Then the result should be empty", func() {
				So(err, ShouldBeNil)
				So(s, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a malformed preset", t, func() {
		_, err := creep.Stress(flowlaw.Preset{Law: "bad"}, creep.QuartzParams(), []float64{600}, nil)

		Convey("Then it should be an invalid argument", func() {
			So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestProfiles(t *testing.T) {
	Convey("Given a coarse geotherm and the reference horizons", t, func() {
		h := model.DefaultHorizons()
		geotherm := model.Profile{
			Depth: []float64{0, 10, 20, 34.4, 50, 81, 90},
			Value: []float64{280, 500, 650, 800, 1000, 1300, 1350},
		}

		Convey("When building a quartz profile from 10 km", func() {
			law, _ := flowlaw.Quartz("Luan")
			prof, err := creep.QuartzProfile(geotherm, 10, h, law, creep.QuartzParams())

			Convey("Then it should cover [10, moho] inclusive", func() {
				So(err, ShouldBeNil)
				So(prof.Depth, ShouldResemble, []float64{10, 20, 34.4})
				So(prof.Validate(), ShouldBeNil)
			})

			Convey("And stresses should match the point formula", func() {
				s, _ := creep.Stress(law, creep.QuartzParams(), []float64{500}, nil)
				So(prof.Value[0], ShouldEqual, s[0])
			})
		})

		Convey("When building an olivine profile", func() {
			law, _ := flowlaw.Olivine("Hirth-dry")
			prof, err := creep.OlivineProfile(geotherm, h, law, creep.OlivineParams())

			Convey("Then it should cover [moho, lab] inclusive", func() {
				So(err, ShouldBeNil)
				So(prof.Depth, ShouldResemble, []float64{34.4, 50, 81})
			})

			Convey("And it should include the overburden load", func() {
				So(prof.Value[1], ShouldAlmostEqual, 303.0240562, 1e-4)
			})
		})

		Convey("When Hirth-wet runs over a two-sample mantle geotherm", func() {
			law, _ := flowlaw.Olivine("Hirth-wet")
			mantle := model.Profile{Depth: []float64{50, 81}, Value: []float64{1000, 1300}}
			prof, err := creep.OlivineProfile(mantle, h, law, creep.OlivineParams())

			Convey("Then the load should use depth in km", func() {
				So(err, ShouldBeNil)
				So(prof.Value[0], ShouldAlmostEqual, 702.44, 1e-2)
				So(prof.Value[1], ShouldAlmostEqual, 11.37, 1e-2)
			})

			Convey("And the SI load should be available on request", func() {
				si, err := creep.Profile(mantle, creep.Range{Low: h.Moho, High: h.LAB}, law, creep.OlivineParams(), creep.LithostaticPressure(h))
				So(err, ShouldBeNil)
				So(si.Value[0], ShouldAlmostEqual, 2079.65, 1e-2)
				So(si.Value[1], ShouldAlmostEqual, 47.20, 1e-2)
			})
		})

		Convey("When the range excludes every sample", func() {
			law, _ := flowlaw.Quartz("Gleason")
			prof, err := creep.Profile(geotherm, creep.Range{Low: 91, High: 100}, law, creep.QuartzParams(), nil)

			Convey("Then it should return empty arrays without error", func() {
				So(err, ShouldBeNil)
				So(prof.Empty(), ShouldBeTrue)
				So(len(prof.Value), ShouldEqual, 0)
			})
		})

		Convey("When z0 is below the moho", func() {
			law, _ := flowlaw.Quartz("Luan")
			prof, err := creep.QuartzProfile(geotherm, 40, h, law, creep.QuartzParams())

			Convey("Then the quartz profile should be empty", func() {
				So(err, ShouldBeNil)
				So(prof.Empty(), ShouldBeTrue)
			})
		})

		Convey("When the geotherm is misaligned", func() {
			law, _ := flowlaw.Quartz("Luan")
			bad := model.Profile{Depth: []float64{0, 1}, Value: []float64{300}}
			_, err := creep.QuartzProfile(bad, 0, h, law, creep.QuartzParams())

			Convey("Then it should be an invalid argument", func() {
				So(errors.Is(err, model.ErrInvalidArgument), ShouldBeTrue)
			})
		})

		Convey("When the geotherm reaches the surface at 0 K", func() {
			law, _ := flowlaw.Quartz("Luan")
			cold := model.Profile{Depth: []float64{0, 10}, Value: []float64{0, 500}}
			_, err := creep.QuartzProfile(cold, 0, h, law, creep.QuartzParams())

			Convey("Then the precondition error should propagate", func() {
				So(errors.Is(err, model.ErrDomainPrecondition), ShouldBeTrue)
			})
		})
	})
}
