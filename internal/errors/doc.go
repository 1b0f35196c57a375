// Package errors provides structured errors for the crawl engine and its stores.
//
// Errors carry a Code, a message safe to show a player or operator, an optional
// cause and free-form metadata:
//
//	err := errors.NotFoundf("save slot %s not found", slotID).
//	    WithMeta("slot_id", slotID)
//
// Wrapping keeps the code of the innermost *Error:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load party")
//	}
//
// Config structs validate through ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Registry == nil {
//	    vb.RequiredField("Registry")
//	}
//	return vb.Build()
//
// Engine outcomes such as a fizzled spell or an attack with no living targets
// are not errors. They are reported on the result types of the orchestrators;
// this package is for misuse, missing data and storage failures.
package errors
