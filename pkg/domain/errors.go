package domain

import "errors"

// ErrInvalidDirection is returned when a scroll direction is not one of
// up, down, left, right (case-insensitive).
var ErrInvalidDirection = errors.New("invalid direction")

// ErrMissingParameter is returned when a required call parameter is absent.
var ErrMissingParameter = errors.New("missing required parameter")
