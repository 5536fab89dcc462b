package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
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
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "game state not loaded",
			expected: "FAILED_PRECONDITION: game state not loaded",
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

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to write save slot")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to write save slot", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("save slot not found").WithMeta("key", "trivia-quest:save")
	wrapped := errors.Wrap(baseErr, "load failed")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("trivia-quest:save", wrapped.Meta["key"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("bad json"), errors.CodeDataLoss, "snapshot unreadable")

	s.Equal(errors.CodeDataLoss, wrapped.Code)
	s.Equal("snapshot unreadable", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.Is(errors.Wrap(errors.NotFound("a"), "b"), errors.NotFound("c")))
	s.False(errors.Is(errors.InvalidArgument("a"), errors.NotFound("a")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("x")))
	s.Equal(errors.CodeCanceled, errors.GetCode(fmt.Errorf("request: %w", context.Canceled)))
	s.Equal(errors.CodeDeadlineExceeded, errors.GetCode(context.DeadlineExceeded))
	s.Equal(errors.CodeDeadlineExceeded, errors.Wrap(context.DeadlineExceeded, "save timed out").Code)
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeFailedPrecondition, http.StatusServiceUnavailable},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeDataLoss, http.StatusInternalServerError},
		{errors.Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.InvalidArgument("unknown operation").WithMeta("op", "fly")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("unknown operation", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsInvalidArgument(back))
	s.Equal("fly", errors.GetMeta(back)["op"])
}

func (s *ErrorsTestSuite) TestGRPCCodes() {
	all := []errors.Code{
		errors.CodeOK,
		errors.CodeCanceled,
		errors.CodeInvalidArgument,
		errors.CodeDeadlineExceeded,
		errors.CodeNotFound,
		errors.CodeFailedPrecondition,
		errors.CodeInternal,
		errors.CodeUnavailable,
		errors.CodeDataLoss,
	}
	for _, code := range all {
		s.Run(code.String(), func() {
			if code == errors.CodeOK {
				return
			}
			back := errors.FromGRPCError(status.Error(code.GRPCCode(), "x"))
			s.Equal(code, errors.GetCode(back))
		})
	}

	s.Equal(codes.Unknown, errors.Code("SOMETHING_ELSE").GRPCCode())
	s.Equal(errors.CodeInternal, errors.GetCode(errors.FromGRPCError(status.Error(codes.Aborted, "x"))))
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainError() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestToGRPCErrorContext() {
	st, ok := status.FromError(errors.ToGRPCError(context.Canceled))
	s.Require().True(ok)
	s.Equal(codes.Canceled, st.Code())
}
