package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error independently of the transport
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

type codeMapping struct {
	http int
	grpc codes.Code
}

var codeMappings = map[Code]codeMapping{
	CodeOK:                 {http.StatusOK, codes.OK},
	CodeCanceled:           {http.StatusRequestTimeout, codes.Canceled},
	CodeInvalidArgument:    {http.StatusBadRequest, codes.InvalidArgument},
	CodeDeadlineExceeded:   {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	CodeNotFound:           {http.StatusNotFound, codes.NotFound},
	CodeAlreadyExists:      {http.StatusConflict, codes.AlreadyExists},
	CodePermissionDenied:   {http.StatusForbidden, codes.PermissionDenied},
	CodeResourceExhausted:  {http.StatusTooManyRequests, codes.ResourceExhausted},
	CodeFailedPrecondition: {http.StatusPreconditionFailed, codes.FailedPrecondition},
	CodeAborted:            {http.StatusConflict, codes.Aborted},
	CodeOutOfRange:         {http.StatusBadRequest, codes.OutOfRange},
	CodeUnimplemented:      {http.StatusNotImplemented, codes.Unimplemented},
	CodeInternal:           {http.StatusInternalServerError, codes.Internal},
	CodeUnavailable:        {http.StatusServiceUnavailable, codes.Unavailable},
	CodeDataLoss:           {http.StatusInternalServerError, codes.DataLoss},
	CodeUnauthenticated:    {http.StatusUnauthorized, codes.Unauthenticated},
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	if m, ok := codeMappings[c]; ok {
		return m.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if m, ok := codeMappings[c]; ok {
		return m.grpc
	}
	return codes.Unknown
}

// grpcCodeToCode converts a gRPC code back to ours; unknown codes are internal
func grpcCodeToCode(grpcCode codes.Code) Code {
	for c, m := range codeMappings {
		if m.grpc == grpcCode {
			return c
		}
	}
	return CodeInternal
}
