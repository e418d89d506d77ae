// Package errors provides coded errors for the layout service.
//
// Errors carry a Code, a user-facing message, an optional cause and free-form
// metadata. Codes map onto gRPC status codes and HTTP status codes so the same
// error can leave the service through either transport.
//
// # Basic Usage
//
//	err := errors.NotFoundf("room %s is not active", roomID)
//	err := errors.RoomNotActive(roomID).WithMeta(errors.MetaWall, wall)
//
// Wrapping keeps the code of a coded cause:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load room template")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	vb.Positive("width", dims.Width).Between("slope", slope, 0, 45)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer Guidelines
//
// Repositories return NotFound / Internal and put ids in metadata.
// Orchestrators validate input (InvalidArgument) and preconditions
// (FailedPrecondition, e.g. an inactive room). Handlers convert with
// ToGRPCError or Code.HTTPStatus and never invent codes of their own.
//
// The geometric core itself does not return errors for placement conflicts or
// strategy fallbacks; those are results, not failures.
package errors
