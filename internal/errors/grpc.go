package errors

import (
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts err to a gRPC status error. Metadata travels as a
// structpb.Struct detail when it can be represented as one.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := GetCode(err)
	st := status.New(code.GRPCCode(), GetMessage(err))

	if meta := GetMeta(err); len(meta) > 0 {
		details, detailErr := structpb.NewStruct(meta)
		if detailErr == nil {
			if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
				st = withDetails
			}
		}
	}

	return st.Err()
}

// FromGRPCError turns a status error received by a client back into an *Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	e := &Error{Code: codeFromGRPC(st.Code()), Message: st.Message()}
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			e.Meta = meta.AsMap()
			break
		}
	}
	return e
}
