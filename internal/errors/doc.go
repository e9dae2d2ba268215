// Package errors provides structured errors for rpg-arena.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form metadata. Codes map onto gRPC status codes at the handler layer
// and onto HTTP status codes for the ops server.
//
// # Battle taxonomy
//
// The battle controller reports three families of failure:
//
//	errors.NotFoundf("opponent %s not found", id)     // NotFound
//	errors.InvalidState("battle is not active")        // FailedPrecondition
//	errors.Transient("ledger confirmation timed out")  // Unavailable, safe to retry
//
// Bad caller input is reported through the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("battle_id", input.BattleID, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # Wrapping
//
// Wrap keeps the code of the wrapped error; WrapWithCode replaces it:
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to persist battle")
//	}
//
// # gRPC
//
// Handlers convert with ToGRPCError. Metadata travels as a structpb.Struct
// status detail and is restored by FromGRPCError on the client side.
package errors
