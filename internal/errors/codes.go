package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error for both transports
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

type transportCodes struct {
	grpc codes.Code
	http int
}

// FailedPrecondition answers 503: the engine uses it for "no state loaded yet",
// which clears once startup finishes.
var codeTable = map[Code]transportCodes{
	CodeOK:                 {codes.OK, http.StatusOK},
	CodeCanceled:           {codes.Canceled, 499},
	CodeInvalidArgument:    {codes.InvalidArgument, http.StatusBadRequest},
	CodeDeadlineExceeded:   {codes.DeadlineExceeded, http.StatusGatewayTimeout},
	CodeNotFound:           {codes.NotFound, http.StatusNotFound},
	CodeFailedPrecondition: {codes.FailedPrecondition, http.StatusServiceUnavailable},
	CodeInternal:           {codes.Internal, http.StatusInternalServerError},
	CodeUnavailable:        {codes.Unavailable, http.StatusServiceUnavailable},
	CodeDataLoss:           {codes.DataLoss, http.StatusInternalServerError},
}

var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(codeTable))
	for c, t := range codeTable {
		m[t.grpc] = c
	}
	return m
}()

func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the gRPC status code; unknown codes map to Unknown
func (c Code) GRPCCode() codes.Code {
	if t, ok := codeTable[c]; ok {
		return t.grpc
	}
	return codes.Unknown
}

// HTTPStatus returns the status the REST gateway answers with
func (c Code) HTTPStatus() int {
	if t, ok := codeTable[c]; ok {
		return t.http
	}
	return http.StatusInternalServerError
}

func codeFromGRPC(c codes.Code) Code {
	if code, ok := fromGRPC[c]; ok {
		return code
	}
	return CodeInternal
}
