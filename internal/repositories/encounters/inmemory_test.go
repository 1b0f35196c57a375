package encounters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-crawl/internal/entities"
	"github.com/KirkDiggler/rpg-crawl/internal/errors"
	"github.com/KirkDiggler/rpg-crawl/internal/repositories/encounters"
)

type InMemoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *encounters.InMemoryRepository
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = encounters.NewInMemory()
}

func (s *InMemoryTestSuite) TestSaveGetUpdateDelete() {
	enc := &entities.Encounter{ID: "enc_1", Round: 1, State: entities.EncounterAwaitingPlayer}

	_, err := s.repo.Save(s.ctx, &encounters.SaveInput{Encounter: enc})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "enc_1"})
	s.Require().NoError(err)
	s.Equal(1, got.Encounter.Round)

	next := &entities.Encounter{ID: "enc_1", Round: 2, State: entities.EncounterEnded}
	_, err = s.repo.Update(s.ctx, &encounters.UpdateInput{Encounter: next})
	s.Require().NoError(err)

	got, err = s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "enc_1"})
	s.Require().NoError(err)
	s.Equal(2, got.Encounter.Round)
	s.True(got.Encounter.IsOver())

	_, err = s.repo.Delete(s.ctx, &encounters.DeleteInput{EncounterID: "enc_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "enc_1"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestSave_Duplicate() {
	enc := &entities.Encounter{ID: "enc_1"}
	_, err := s.repo.Save(s.ctx, &encounters.SaveInput{Encounter: enc})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, &encounters.SaveInput{Encounter: enc})
	s.True(errors.IsAlreadyExists(err))
}

func (s *InMemoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &encounters.SaveInput{Encounter: &entities.Encounter{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &encounters.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, &encounters.UpdateInput{Encounter: &entities.Encounter{ID: "missing"}})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &encounters.DeleteInput{EncounterID: "missing"})
	s.True(errors.IsNotFound(err))
}
