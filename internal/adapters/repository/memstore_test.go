package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gridironsim/gridiron/internal/adapters/repository"
	"github.com/gridironsim/gridiron/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func player(name string, overall int) model.Player {
	return model.Player{
		ID:            uuid.New(),
		Name:          name,
		Position:      model.RunningBack,
		Age:           25,
		SeasonsPlayed: 3,
		Attributes:    model.SkillAttributes{Run: 80, Pass: 40, Receive: 60, Block: 55, Kick: 40},
		Overall:       overall,
		Status:        model.StatusActive,
	}
}

func TestMemStorePlayers(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		store := repository.NewMemStore()
		ctx := context.Background()

		Convey("When putting and fetching a player", func() {
			p := player("Dante Hawkins", 78)
			So(store.PutPlayer(ctx, p), ShouldBeNil)

			got, err := store.Player(ctx, p.ID)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, p)
			So(store.Count(ctx), ShouldEqual, 1)
		})

		Convey("When putting the same player twice", func() {
			p := player("Dante Hawkins", 78)
			So(store.PutPlayer(ctx, p), ShouldBeNil)
			p.Overall = 81
			So(store.PutPlayer(ctx, p), ShouldBeNil)

			Convey("Then the record is replaced, not duplicated", func() {
				got, err := store.Player(ctx, p.ID)
				So(err, ShouldBeNil)
				So(got.Overall, ShouldEqual, 81)
				So(store.Count(ctx), ShouldEqual, 1)
			})
		})

		Convey("When fetching an unknown id", func() {
			_, err := store.Player(ctx, uuid.New())
			So(err, ShouldWrap, repository.ErrNotFound)
		})

		Convey("When listing active players", func() {
			active := player("Active One", 70)
			retired := player("Gone Away", 65)
			retired.Status = model.StatusRetired
			So(store.PutPlayer(ctx, active), ShouldBeNil)
			So(store.PutPlayer(ctx, retired), ShouldBeNil)

			players, err := store.ActivePlayers(ctx)
			So(err, ShouldBeNil)

			Convey("Then retired players are excluded", func() {
				So(len(players), ShouldEqual, 1)
				So(players[0].ID, ShouldEqual, active.ID)
			})
		})

		Convey("When listing active players across shards", func() {
			for i := 0; i < 50; i++ {
				So(store.PutPlayer(ctx, player("P", 60+i%30)), ShouldBeNil)
			}
			players, err := store.ActivePlayers(ctx)
			So(err, ShouldBeNil)
			So(len(players), ShouldEqual, 50)

			Convey("Then the order is deterministic by id", func() {
				for i := 1; i < len(players); i++ {
					So(players[i-1].ID.String(), ShouldBeLessThan, players[i].ID.String())
				}
			})
		})
	})
}

func TestMemStoreApplySeason(t *testing.T) {
	Convey("Given a store with one active player", t, func() {
		store := repository.NewMemStore()
		ctx := context.Background()
		p := player("Dante Hawkins", 78)
		So(store.PutPlayer(ctx, p), ShouldBeNil)

		decision := model.RetirementDecision{PlayerID: p.ID, Season: 1, Probability: 12.5, Roll: 40.0}
		events := []model.HistoryEvent{{
			ID: uuid.New(), PlayerID: p.ID, Season: 1,
			Type: model.EventSkillUpdated, Detail: "overall 78 -> 80", TS: time.Now(),
		}}

		Convey("When applying a season outcome", func() {
			updated := p
			updated.Age++
			updated.SeasonsPlayed++
			updated.Overall = 80
			So(store.ApplySeason(ctx, updated, decision, events), ShouldBeNil)

			Convey("Then the player, decision, and events land together", func() {
				got, err := store.Player(ctx, p.ID)
				So(err, ShouldBeNil)
				So(got.Age, ShouldEqual, 26)
				So(got.Overall, ShouldEqual, 80)

				decisions, err := store.Decisions(ctx, p.ID)
				So(err, ShouldBeNil)
				So(len(decisions), ShouldEqual, 1)
				So(decisions[0].Probability, ShouldAlmostEqual, 12.5)

				history, err := store.History(ctx, p.ID)
				So(err, ShouldBeNil)
				So(len(history), ShouldEqual, 1)
				So(history[0].Detail, ShouldEqual, "overall 78 -> 80")
			})
		})

		Convey("When applying a season for an untracked player", func() {
			stranger := player("Stranger", 60)
			err := store.ApplySeason(ctx, stranger, decision, nil)
			So(err, ShouldWrap, repository.ErrNotFound)
		})

		Convey("When reading audit trails for an unknown player", func() {
			_, err := store.Decisions(ctx, uuid.New())
			So(err, ShouldWrap, repository.ErrNotFound)
			_, err = store.History(ctx, uuid.New())
			So(err, ShouldWrap, repository.ErrNotFound)
		})
	})
}

func TestMemStoreTopN(t *testing.T) {
	Convey("Given a store with a mixed roster", t, func() {
		store := repository.NewMemStore(repository.WithShardCount(4))
		ctx := context.Background()

		overalls := []int{88, 95, 71, 88, 60}
		for i, o := range overalls {
			p := player("P", o)
			p.Name = []string{"Ann", "Bo", "Cy", "Dee", "Ed"}[i]
			So(store.PutPlayer(ctx, p), ShouldBeNil)
		}
		retired := player("Retired Great", 99)
		retired.Status = model.StatusRetired
		So(store.PutPlayer(ctx, retired), ShouldBeNil)

		Convey("When asking for the top three", func() {
			entries, err := store.TopN(ctx, 3)
			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 3)

			Convey("Then entries are ranked by overall descending", func() {
				So(entries[0].Overall, ShouldEqual, 95)
				So(entries[1].Overall, ShouldEqual, 88)
				So(entries[2].Overall, ShouldEqual, 88)
				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[2].Rank, ShouldEqual, 3)
			})

			Convey("And ties break by id ascending", func() {
				So(entries[1].PlayerID, ShouldBeLessThan, entries[2].PlayerID)
			})

			Convey("And retired players never rank", func() {
				for _, e := range entries {
					So(e.Name, ShouldNotEqual, "Retired Great")
				}
			})
		})

		Convey("When asking for more than the roster holds", func() {
			entries, err := store.TopN(ctx, 50)
			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 5)
		})

		Convey("When the limit is not positive", func() {
			_, err := store.TopN(ctx, 0)
			So(err, ShouldWrap, repository.ErrInvalidLimit)
			_, err = store.TopN(ctx, -3)
			So(err, ShouldWrap, repository.ErrInvalidLimit)
		})
	})
}
