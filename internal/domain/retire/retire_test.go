package retire_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/internal/domain/profile"
	"github.com/gridironsim/gridiron/internal/domain/retire"
	. "github.com/smartystreets/goconvey/convey"
)

func testRegistry(t *testing.T) *profile.Registry {
	t.Helper()
	reg, err := profile.DefaultRegistry()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

func TestDecideTiers(t *testing.T) {
	Convey("Given a retirement model over the stock registry", t, func() {
		reg := testRegistry(t)
		m := retire.New(reg, retire.WithSeed(7))

		Convey("When a player is under the position's minimum career length", func() {
			// QB minimum is 4 seasons.
			d, err := m.Decide(uuid.New(), retire.Input{
				Position: model.Quarterback, Age: 30, SeasonsPlayed: 2,
			})
			So(err, ShouldBeNil)

			Convey("Then the player never retires, with no draw", func() {
				So(d.Retired, ShouldBeFalse)
				So(d.Probability, ShouldEqual, 0)
				So(d.Roll, ShouldEqual, -1)
			})
		})

		Convey("When a player is at the force-retire age", func() {
			// QB force-retire is 45.
			d, err := m.Decide(uuid.New(), retire.Input{
				Position: model.Quarterback, Age: 45, SeasonsPlayed: 20,
			})
			So(err, ShouldBeNil)

			Convey("Then the player always retires, with no draw", func() {
				So(d.Retired, ShouldBeTrue)
				So(d.Probability, ShouldEqual, 100)
				So(d.Roll, ShouldEqual, -1)
			})
		})

		Convey("When a player is past the force-retire age", func() {
			d, err := m.Decide(uuid.New(), retire.Input{
				Position: model.Quarterback, Age: 51, SeasonsPlayed: 25,
			})
			So(err, ShouldBeNil)
			So(d.Retired, ShouldBeTrue)
			So(d.Probability, ShouldEqual, 100)
		})

		Convey("When the career floor and force age both apply", func() {
			// The floor wins: a 45-year-old rookie is not forced out.
			d, err := m.Decide(uuid.New(), retire.Input{
				Position: model.Quarterback, Age: 45, SeasonsPlayed: 1,
			})
			So(err, ShouldBeNil)
			So(d.Retired, ShouldBeFalse)
			So(d.Probability, ShouldEqual, 0)
		})

		Convey("When a player falls into the stochastic tier", func() {
			d, err := m.Decide(uuid.New(), retire.Input{
				Position: model.Quarterback, Age: 37, SeasonsPlayed: 12, OverallDelta: -5,
			})
			So(err, ShouldBeNil)

			Convey("Then the probability follows base * age * decline scaling", func() {
				// base 6 * age-37 multiplier 1.6 * (1 + 0.5*0.6) = 12.48
				So(d.Probability, ShouldAlmostEqual, 12.48)
			})

			Convey("And the draw lies in [0,100)", func() {
				So(d.Roll, ShouldBeGreaterThanOrEqualTo, 0)
				So(d.Roll, ShouldBeLessThan, 100)
				So(d.Retired, ShouldEqual, d.Roll < d.Probability)
			})
		})

		Convey("When the rating improved season over season", func() {
			d, err := m.Decide(uuid.New(), retire.Input{
				Position: model.Quarterback, Age: 37, SeasonsPlayed: 12, OverallDelta: 4,
			})
			So(err, ShouldBeNil)

			Convey("Then the decline factor contributes nothing", func() {
				// base 6 * age-37 multiplier 1.6, no decline scaling.
				So(d.Probability, ShouldAlmostEqual, 9.6)
			})
		})

		Convey("When the rating drop exceeds the saturation point", func() {
			capped, err := m.Decide(uuid.New(), retire.Input{
				Position: model.Quarterback, Age: 37, SeasonsPlayed: 12, OverallDelta: -30,
			})
			So(err, ShouldBeNil)
			atCap, err := m.Decide(uuid.New(), retire.Input{
				Position: model.Quarterback, Age: 37, SeasonsPlayed: 12, OverallDelta: -10,
			})
			So(err, ShouldBeNil)

			Convey("Then the decline factor is capped at one", func() {
				So(capped.Probability, ShouldAlmostEqual, atCap.Probability)
			})
		})

		Convey("When the scaled probability would exceed 100", func() {
			p := profile.Profile{
				Position: model.Quarterback,
				Weights:  profile.Weights{Pass: 1.0},
				Retirement: profile.RetirementParams{
					MinCareerYears: 1, ForceRetireAge: 60, BaseRetireAge: 30,
					BaseProbabilityPct: 90, SkillWeight: 1.0,
				},
				AgeCurve: []profile.CurvePoint{{Age: 30, Multiplier: 5.0}},
			}
			hotReg, err := profile.NewRegistry(p)
			So(err, ShouldBeNil)
			hot := retire.New(hotReg, retire.WithSeed(7))

			d, err := hot.Decide(uuid.New(), retire.Input{
				Position: model.Quarterback, Age: 35, SeasonsPlayed: 10, OverallDelta: -10,
			})
			So(err, ShouldBeNil)

			Convey("Then it clamps to 100 and the player retires", func() {
				So(d.Probability, ShouldEqual, 100)
				So(d.Retired, ShouldBeTrue)
			})
		})

		Convey("When the position is not registered", func() {
			_, err := m.Decide(uuid.New(), retire.Input{Position: model.Position("XX"), Age: 30})
			So(err, ShouldWrap, profile.ErrUnknownPosition)
		})
	})
}

func TestDecideDeterminism(t *testing.T) {
	Convey("Given two models built with the same seed", t, func() {
		reg := testRegistry(t)
		a := retire.New(reg, retire.WithSeed(99))
		b := retire.New(reg, retire.WithSeed(99))

		ids := make([]uuid.UUID, 20)
		for i := range ids {
			ids[i] = uuid.New()
		}
		in := retire.Input{Position: model.RunningBack, Age: 31, SeasonsPlayed: 8, OverallDelta: -3}

		Convey("Then each player's outcome is identical regardless of order", func() {
			forward := make([]retire.Decision, len(ids))
			for i, id := range ids {
				d, err := a.Decide(id, in)
				So(err, ShouldBeNil)
				forward[i] = d
			}
			// Evaluate in reverse on the second model.
			for i := len(ids) - 1; i >= 0; i-- {
				d, err := b.Decide(ids[i], in)
				So(err, ShouldBeNil)
				So(d.Roll, ShouldEqual, forward[i].Roll)
				So(d.Retired, ShouldEqual, forward[i].Retired)
			}
		})
	})

	Convey("Given two models built with different seeds", t, func() {
		reg := testRegistry(t)
		a := retire.New(reg, retire.WithSeed(1))
		b := retire.New(reg, retire.WithSeed(2))
		in := retire.Input{Position: model.RunningBack, Age: 31, SeasonsPlayed: 8}

		Convey("Then the draws diverge for at least one player", func() {
			diverged := false
			for i := 0; i < 10; i++ {
				id := uuid.New()
				da, err := a.Decide(id, in)
				So(err, ShouldBeNil)
				db, err := b.Decide(id, in)
				So(err, ShouldBeNil)
				if da.Roll != db.Roll {
					diverged = true
				}
			}
			So(diverged, ShouldBeTrue)
		})
	})
}
