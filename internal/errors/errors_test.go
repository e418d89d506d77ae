package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/layout-api/internal/errors"
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
			message:  "room not found",
			expected: "NOT_FOUND: room not found",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "x outside room",
			expected: "OUT_OF_RANGE: x outside room",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("component not found").
		WithMeta("component_id", "base-cabinet-60").
		WithMeta("room_id", "kitchen-1")

	s.Assert().Equal("base-cabinet-60", err.Meta["component_id"])
	s.Assert().Equal("kitchen-1", err.Meta["room_id"])

	err2 := errors.Internal("catalog load failed").
		WithMetaMap(map[string]any{
			"rows":   12,
			"source": "sqlite",
		})

	s.Assert().Equal(12, err2.Meta["rows"])
	s.Assert().Equal("sqlite", err2.Meta["source"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("database is locked")
	wrapped := errors.Wrap(baseErr, "failed to load room template")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load room template", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("row not found").WithMeta("room_type", "kitchen")
	wrapped := errors.Wrapf(baseErr, "template %s not found", "kitchen")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("template kitchen not found", wrapped.Message)
	s.Assert().Equal("kitchen", wrapped.Meta["room_type"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapDoesNotShareMeta() {
	baseErr := errors.NotFound("row not found").WithMeta(errors.MetaRoomType, "kitchen")
	wrapped := errors.Wrap(baseErr, "lookup failed").WithMeta(errors.MetaRoomID, "k1")

	s.Assert().Equal("k1", wrapped.Meta[errors.MetaRoomID])
	s.Assert().NotContains(baseErr.Meta, errors.MetaRoomID)
}

func (s *ErrorsTestSuite) TestRoomNotActive() {
	err := errors.RoomNotActive("kitchen-1")

	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal("room kitchen-1 is not active", err.Message)
	s.Assert().Equal("kitchen-1", err.Meta[errors.MetaRoomID])

	id, ok := errors.RoomID(errors.Wrap(err, "transform failed"))
	s.Assert().True(ok)
	s.Assert().Equal("kitchen-1", id)
	_, ok = errors.RoomID(errors.Internal("boom"))
	s.Assert().False(ok)

	comp := errors.InvalidArgument("unknown layer").WithComponent("base-cabinet-60")
	s.Assert().Equal("base-cabinet-60", comp.Meta[errors.MetaComponentID])
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("flag missing").WithMeta("flag", "unified")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "flag store unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("flag store unavailable", wrapped.Message)
	s.Assert().Equal("unified", wrapped.Meta["flag"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestTemplateLookupChain() {
	// repository -> orchestrator -> gRPC -> client
	repoErr := errors.NotFoundf("room template %s not found", "garage").
		WithMeta(errors.MetaRoomType, "garage")
	orchErr := errors.Wrapf(repoErr, "failed to load template for room type %s", "garage")
	clientErr := errors.FromGRPCError(errors.ToGRPCError(orchErr))

	for _, err := range []error{repoErr, orchErr, clientErr, fmt.Errorf("activate: %w", orchErr)} {
		s.Assert().True(errors.IsNotFound(err))
		s.Assert().False(errors.IsInvalidArgument(err))
		s.Assert().Equal("garage", errors.GetMeta(err)[errors.MetaRoomType])
	}
	s.Assert().Equal("failed to load template for room type garage", errors.GetMessage(clientErr))
	s.Assert().True(errors.Is(orchErr, errors.NotFound("any")))
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.OutOfRangef("x=%g outside [0, %g]", 410.0, 400.0)
	s.Assert().True(errors.IsOutOfRange(err))
	s.Assert().Equal("x=410 outside [0, 400]", err.Message)

	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPreconditionf("flag %s disabled", "unified")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailablef("redis at %s", "localhost:6379")))
	s.Assert().Equal(errors.CodeUnimplemented, errors.Unimplemented("isometric view").Code)
}

func (s *ErrorsTestSuite) TestUncodedErrors() {
	plain := fmt.Errorf("database is locked")

	s.Assert().True(errors.IsInternal(plain))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(plain))
	s.Assert().Equal("database is locked", errors.GetMessage(plain))
	s.Assert().Nil(errors.GetMeta(plain))

	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Nil(errors.GetMeta(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeOutOfRange, 400},
		{errors.CodeFailedPrecondition, 412},
		{errors.CodeInternal, 500},
		{errors.CodeUnavailable, 503},
		{errors.CodeUnimplemented, 501},
		{errors.Code("BOGUS"), 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.NotFound("room not found").
		WithMeta("room_id", "kitchen-1").
		WithMeta("attempt", 2)

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("room not found", st.Message())

	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Assert().Equal(string(errors.CodeNotFound), info.GetReason())
	s.Assert().Equal(errors.ErrorDomain, info.GetDomain())
	s.Assert().Equal("kitchen-1", info.GetMetadata()["room_id"])
	s.Assert().Equal("2", info.GetMetadata()["attempt"])

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(back))
	s.Assert().Equal("kitchen-1", errors.GetMeta(back)["room_id"])

	grpcErr2 := status.Error(codes.InvalidArgument, "invalid input")
	err2 := errors.FromGRPCError(grpcErr2)
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(err2))
	s.Assert().Equal("invalid input", errors.GetMessage(err2))
}

func (s *ErrorsTestSuite) TestToGRPCErrorPassThrough() {
	s.Assert().Nil(errors.ToGRPCError(nil))

	already := status.Error(codes.Aborted, "aborted")
	s.Assert().Equal(already, errors.ToGRPCError(already))

	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Assert().Equal(codes.Internal, st.Code())
	s.Assert().Equal(codes.OK, errors.GRPCStatus(nil).Code())
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeOutOfRange, codes.OutOfRange},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("BOGUS"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
