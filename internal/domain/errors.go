package domain

import "errors"

// ErrNotFound is returned when the requested trip or itinerary entry does not
// exist in the local store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, arrival before departure).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an identifier is already taken, either a trip
// id in the store or an entity id inside one itinerary list.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrPrecondition is returned when an operation is attempted before the state
// it depends on has been set up (e.g. creating a trip with no destination).
// Nothing is changed when it is returned.
var ErrPrecondition = errors.New("precondition not met")
