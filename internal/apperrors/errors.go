package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrSourceUnavailable indicates that a read or aggregate against the event
// store failed. The whole ledger build is aborted; retry policy belongs to
// the caller.
var ErrSourceUnavailable = errors.New("event source unavailable")

// ErrMalformedEvent indicates an event is missing a field the engine cannot
// default (e.g. its date). The offending event is dropped from the ledger and
// logged; it never fails the whole request.
var ErrMalformedEvent = errors.New("malformed event")
