package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidConfig          = errors.New("invalid planner configuration")
	ErrDestinationRequired    = errors.New("destination is required")
	ErrTripNotFound           = errors.New("trip not found")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI behavior")
	ErrAIUnavailable          = errors.New("AI model not configured")
	ErrIntentNotUnderstood    = errors.New("could not understand trip request")
)
