package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-crawl/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "save slot not found",
			expected: "NOT_FOUND: save slot not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "bad dice expression",
			expected: "INVALID_ARGUMENT: bad dice expression",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("encounter not found").
		WithMeta("encounter_id", "enc_1").
		WithMeta("round", 3)

	s.Equal("enc_1", err.Meta["encounter_id"])
	s.Equal(3, err.Meta["round"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to save party")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to save party", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found").WithMeta("slot_id", "alpha")
	wrapped := errors.Wrap(baseErr, "save slot not found")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("alpha", wrapped.Meta["slot_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("timeout"), errors.CodeUnavailable, "redis unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("redis unavailable", wrapped.Message)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	wrapped := errors.Wrap(errors.FailedPrecondition("combat has ended"), "action rejected")

	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.True(errors.IsFailedPrecondition(wrapped))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Equal("wrapped message", errors.GetMessage(errors.Wrap(errors.NotFound("inner"), "wrapped message")))
	s.Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeFailedPrecondition, 4},
		{errors.CodeUnavailable, 5},
		{errors.CodeInternal, 1},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
