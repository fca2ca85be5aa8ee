package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// package, destination, activity, or passenger does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing name, negative cost, unknown tier).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a create would clash with an existing record,
// such as a second destination with the same name in one package.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrCapacityExceeded is returned when an activity has no free spaces left.
var ErrCapacityExceeded = errors.New("activity capacity exceeded")

// ErrPackageFull is returned when a travel package already holds as many
// passengers as its capacity allows.
var ErrPackageFull = errors.New("package is full")

// ErrInsufficientBalance is returned when a passenger cannot afford an
// activity and their tier does not waive the balance check.
var ErrInsufficientBalance = errors.New("insufficient balance")
