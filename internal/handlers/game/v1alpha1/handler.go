package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/handlers/commands"
)

// HandlerConfig holds dependencies for the game handler
type HandlerConfig struct {
	Router commands.Router
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Router == nil {
		return errors.InvalidArgument("router is required")
	}
	return nil
}

// Handler implements GameServiceServer
type Handler struct {
	router commands.Router
}

// Ensure Handler implements GameServiceServer
var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new game handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{router: cfg.Router}, nil
}

// GetState returns the committed game state and its combat phase
func (h *Handler) GetState(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	out, err := h.router.State(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(out)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// Execute runs one named operation
func (h *Handler) Execute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	op := fields["op"].GetStringValue()
	if op == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("op is required"))
	}

	var args json.RawMessage
	if v, ok := fields["args"]; ok {
		raw, err := protojson.Marshal(v)
		if err != nil {
			return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid args"))
		}
		args = raw
	}

	out, err := h.router.Execute(ctx, &commands.ExecuteInput{Op: op, Args: args})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(map[string]any{
		"op":     out.Op,
		"result": out.Result,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// toStruct converts any JSON-tagged value into a protobuf Struct
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to convert response")
	}
	return out, nil
}
