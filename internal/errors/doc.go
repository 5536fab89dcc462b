// Package errors provides the coded error type used across trivia-quest.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Codes map onto gRPC status codes for the gRPC transport and onto
// HTTP statuses for the REST gateway.
//
// Game operations do not use this package to report a failed purchase or an
// unaffordable upgrade: those come back as an output with Success set to false.
// Errors are reserved for things the caller did wrong or the process could not
// do:
//
//	return nil, errors.InvalidArgument("weapon ID is required")
//	return nil, errors.FailedPrecondition("game state not loaded")
//	return nil, errors.Wrap(err, "failed to read save slot")
//
// Repository layer:
//   - NotFound for an empty save slot
//   - Wrap driver errors with the key in metadata
//
// Orchestrator layer:
//   - InvalidArgument for nil or empty inputs
//   - FailedPrecondition when no state is loaded
//
// Handler layer:
//   - ToGRPCError / Code.HTTPStatus at the edge
package errors
