package utils

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them so callers
// can classify with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrModelCall    = errors.New("model call error")
	ErrParse        = errors.New("parse error")
	ErrPrecondition = errors.New("precondition error")
)

var (
	ErrEmptyDescription = fmt.Errorf("%w: description is empty", ErrValidation)
	ErrEmptyMessage     = fmt.Errorf("%w: message is empty", ErrValidation)
	ErrInvalidMode      = fmt.Errorf("%w: chat mode must be 'place' or 'hotel'", ErrValidation)
	ErrInvalidInput     = fmt.Errorf("%w: invalid input", ErrValidation)
	ErrInvalidBooking   = fmt.Errorf("%w: hotel, full name and phone are required", ErrValidation)

	ErrEmptyResponse = fmt.Errorf("%w: model returned no text", ErrModelCall)

	ErrNoTargetDay         = fmt.Errorf("%w: no day selected for the suggestion", ErrPrecondition)
	ErrNoActivePlan        = fmt.Errorf("%w: trip has no plan to add to", ErrPrecondition)
	ErrDuplicateSuggestion = fmt.Errorf("%w: suggestion already in this day", ErrPrecondition)
)

var (
	ErrTripNotFound  = errors.New("trip not found")
	ErrPlanNotFound  = errors.New("plan not found")
	ErrInvalidPage   = errors.New("invalid page parameter")
	ErrDatabaseError = errors.New("database error")
)
