package service

import "errors"

// Sentinel error kinds returned by the service layer. Handlers match
// them with errors.Is and map each kind to a transport status; the
// services themselves never deal in HTTP codes.
var (
	// ErrNotFound: the entity does not exist, or sits outside the
	// caller's region scope — the two cases are deliberately
	// indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrForbidden: the entity is visible but the caller's role may not
	// perform the action.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState: the action is not valid for the entity's current
	// lifecycle state.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation: malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrConflict: the mutation would violate an invariant that another
	// mutation already settled (e.g. cancelling twice).
	ErrConflict = errors.New("conflict")
)
