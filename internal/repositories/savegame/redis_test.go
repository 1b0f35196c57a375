package savegame_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-crawl/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  savegame.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.ctx = context.Background()
	s.clock = &clock.Fixed{At: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := savegame.NewRedis(&savegame.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet_RoundTripsParty() {
	party := testutils.CreateTestParty()
	party[0].HP = 3
	party[1].MP = 4

	out, err := s.repo.Save(s.ctx, &savegame.SaveInput{Slot: &savegame.Slot{
		SlotID: "slot1", Name: "Before the stairs", Party: party, Gold: 120,
	}})
	s.Require().NoError(err)
	s.Equal(s.clock.At, out.Slot.SavedAt)
	s.True(s.mr.Exists("savegame:slot1"))

	members, err := s.mr.Members("savegame:slots")
	s.Require().NoError(err)
	s.Equal([]string{"slot1"}, members)

	got, err := s.repo.Get(s.ctx, &savegame.GetInput{SlotID: "slot1"})
	s.Require().NoError(err)
	s.Equal("Before the stairs", got.Slot.Name)
	s.Equal(120, got.Slot.Gold)
	s.Require().Len(got.Slot.Party, 3)
	s.Equal(*party[0], *got.Slot.Party[0])
	s.Equal(*party[1], *got.Slot.Party[1])
	s.True(s.clock.At.Equal(got.Slot.SavedAt))
}

func (s *RedisRepositoryTestSuite) TestSave_Overwrites() {
	_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Slot: &savegame.Slot{SlotID: "slot1", Gold: 1}})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	_, err = s.repo.Save(s.ctx, &savegame.SaveInput{Slot: &savegame.Slot{SlotID: "slot1", Gold: 2}})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &savegame.GetInput{SlotID: "slot1"})
	s.Require().NoError(err)
	s.Equal(2, got.Slot.Gold)
	s.True(s.clock.At.Equal(got.Slot.SavedAt))
}

func (s *RedisRepositoryTestSuite) TestList_SortedAndSkipsMissing() {
	for _, id := range []string{"b", "a", "c"} {
		_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Slot: &savegame.Slot{SlotID: id}})
		s.Require().NoError(err)
	}
	s.mr.Del("savegame:c")

	out, err := s.repo.List(s.ctx, &savegame.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Slots, 2)
	s.Equal("a", out.Slots[0].SlotID)
	s.Equal("b", out.Slots[1].SlotID)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Slot: &savegame.Slot{SlotID: "slot1"}})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &savegame.DeleteInput{SlotID: "slot1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("savegame:slot1"))

	_, err = s.repo.Delete(s.ctx, &savegame.DeleteInput{SlotID: "slot1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{"nil slot", func() error {
			_, err := s.repo.Save(s.ctx, &savegame.SaveInput{})
			return err
		}},
		{"empty id", func() error {
			_, err := s.repo.Get(s.ctx, &savegame.GetInput{})
			return err
		}},
		{"colon in id", func() error {
			_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Slot: &savegame.Slot{SlotID: "a:b"}})
			return err
		}},
		{"nil config", func() error {
			_, err := savegame.NewRedis(nil)
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(errors.IsInvalidArgument(tc.call()))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, &savegame.GetInput{SlotID: "missing"})
	s.True(errors.IsNotFound(err))
}
