package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Registry").
		Fieldf("MPCost", "must not be negative, got %d", -1)
	errors.ValidateRange("MagicResistance", 120, 0, 100, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "MagicResistance: must be between 0 and 100")
	s.Contains(err.Error(), "MPCost: must not be negative, got -1")
	s.Contains(err.Error(), "Registry: is required")
	s.NotNil(errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("Level", 5, 1, 20, vb)
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestMessageIsStable() {
	build := func() string {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("b").RequiredField("a").RequiredField("c")
		return vb.Build().Error()
	}
	s.Equal(build(), build())
	s.Contains(build(), "a: is required; b: is required; c: is required")
}
