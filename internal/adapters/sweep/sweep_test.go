package sweep_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/adapters/repository"
	"github.com/gridironsim/gridiron/internal/adapters/sweep"
	"github.com/gridironsim/gridiron/internal/domain/career"
	"github.com/gridironsim/gridiron/internal/domain/model"
	"github.com/gridironsim/gridiron/internal/domain/profile"
	"github.com/gridironsim/gridiron/internal/domain/rating"
	"github.com/gridironsim/gridiron/internal/domain/retire"
	"github.com/gridironsim/gridiron/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func newTracker(t *testing.T) *career.Tracker {
	t.Helper()
	reg, err := profile.DefaultRegistry()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return career.NewTracker(rating.NewCalculator(reg), retire.New(reg, retire.WithSeed(7)))
}

func rosterPlayer(pos model.Position, age, seasons int) model.Player {
	return model.Player{
		ID:            uuid.New(),
		Name:          "Roster Player",
		Position:      pos,
		Age:           age,
		SeasonsPlayed: seasons,
		Attributes:    model.SkillAttributes{Run: 70, Pass: 60, Receive: 55, Block: 60, Kick: 45},
		Overall:       65,
		Status:        model.StatusActive,
	}
}

func TestRun(t *testing.T) {
	Convey("Given a pool over a small roster", t, func() {
		store := repository.NewMemStore()
		ctx := context.Background()

		young := rosterPlayer(model.Quarterback, 25, 2)
		aging := rosterPlayer(model.RunningBack, 35, 12)
		So(store.PutPlayer(ctx, young), ShouldBeNil)
		So(store.PutPlayer(ctx, aging), ShouldBeNil)

		pool := sweep.NewPool(newTracker(t), store, sweep.WithWorkerCount(2))

		Convey("When running a season rollover", func() {
			report, err := pool.Run(ctx, 1)
			So(err, ShouldBeNil)

			Convey("Then every active player is evaluated", func() {
				So(report.Season, ShouldEqual, 1)
				So(report.Evaluated, ShouldEqual, 2)
				So(report.Skipped, ShouldEqual, 0)
			})

			Convey("And the aging back is force-retired", func() {
				So(report.Retired, ShouldEqual, 1)
				got, err := store.Player(ctx, aging.ID)
				So(err, ShouldBeNil)
				So(got.Status, ShouldEqual, model.StatusRetired)
				So(got.Age, ShouldEqual, 36)
			})

			Convey("And the young quarterback plays on", func() {
				got, err := store.Player(ctx, young.ID)
				So(err, ShouldBeNil)
				So(got.Status, ShouldEqual, model.StatusActive)
				So(got.Age, ShouldEqual, 26)
				So(got.SeasonsPlayed, ShouldEqual, 3)
			})

			Convey("And each evaluated player has a recorded decision", func() {
				for _, id := range []uuid.UUID{young.ID, aging.ID} {
					decisions, err := store.Decisions(ctx, id)
					So(err, ShouldBeNil)
					So(len(decisions), ShouldEqual, 1)
					So(decisions[0].Season, ShouldEqual, 1)
				}
			})
		})

		Convey("When a progression supplies new attributes", func() {
			bump := func(p model.Player) *model.SkillAttributes {
				attrs := p.Attributes
				attrs.Run += 5
				return &attrs
			}
			pool := sweep.NewPool(newTracker(t), store,
				sweep.WithWorkerCount(2),
				sweep.WithProgression(bump),
			)

			report, err := pool.Run(ctx, 1)
			So(err, ShouldBeNil)

			Convey("Then rating changes are counted and persisted", func() {
				So(report.RatingsChanged, ShouldBeGreaterThan, 0)
				got, err := store.Player(ctx, young.ID)
				So(err, ShouldBeNil)
				So(got.Attributes.Run, ShouldEqual, 75)
			})
		})
	})
}

func TestRunIsolatesFailures(t *testing.T) {
	Convey("Given a roster containing one corrupt record", t, func() {
		store := repository.NewMemStore()
		ctx := context.Background()

		healthy := rosterPlayer(model.Quarterback, 25, 2)
		corrupt := rosterPlayer(model.Position("XX"), 27, 4)
		So(store.PutPlayer(ctx, healthy), ShouldBeNil)
		So(store.PutPlayer(ctx, corrupt), ShouldBeNil)

		pool := sweep.NewPool(newTracker(t), store, sweep.WithWorkerCount(2))

		Convey("When running the rollover", func() {
			report, err := pool.Run(ctx, 1)
			So(err, ShouldBeNil)

			Convey("Then the corrupt player is skipped, not fatal", func() {
				So(report.Evaluated, ShouldEqual, 1)
				So(report.Skipped, ShouldEqual, 1)
				So(len(report.Skips), ShouldEqual, 1)
				So(report.Skips[0].PlayerID, ShouldEqual, corrupt.ID)
				So(report.Skips[0].Reason, ShouldNotBeBlank)
			})

			Convey("And the corrupt record is left untouched", func() {
				got, err := store.Player(ctx, corrupt.ID)
				So(err, ShouldBeNil)
				So(got.Age, ShouldEqual, 27)
				So(got.Status, ShouldEqual, model.StatusActive)
			})

			Convey("And the healthy player still advances", func() {
				got, err := store.Player(ctx, healthy.ID)
				So(err, ShouldBeNil)
				So(got.Age, ShouldEqual, 26)
			})
		})
	})
}

func TestRunEmptyRoster(t *testing.T) {
	Convey("Given a pool over an empty store", t, func() {
		store := repository.NewMemStore()
		pool := sweep.NewPool(newTracker(t), store, sweep.WithWorkerCount(2))

		Convey("When running the rollover", func() {
			report, err := pool.Run(context.Background(), 1)
			So(err, ShouldBeNil)
			So(report.Evaluated, ShouldEqual, 0)
			So(report.Retired, ShouldEqual, 0)
			So(report.Skipped, ShouldEqual, 0)
		})
	})
}

func TestRunCancelled(t *testing.T) {
	Convey("Given a cancelled context", t, func() {
		store := repository.NewMemStore()
		ctx, cancel := context.WithCancel(context.Background())
		for i := 0; i < 20; i++ {
			So(store.PutPlayer(ctx, rosterPlayer(model.Quarterback, 25, 2)), ShouldBeNil)
		}
		cancel()

		pool := sweep.NewPool(newTracker(t), store, sweep.WithWorkerCount(1))

		Convey("When running the rollover", func() {
			_, err := pool.Run(ctx, 1)

			Convey("Then it either completes or reports the cancellation", func() {
				if err != nil {
					So(err, ShouldWrap, context.Canceled)
				}
			})
		})
	})
}
