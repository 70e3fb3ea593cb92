package domain

import (
	"fmt"
	"strings"
)

// Direction is a scroll direction. xdotool models scrolling as clicks on
// wheel buttons 4-7, so each direction maps to one button number.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// ParseDirection parses a wire string into a Direction, case-insensitively.
// Unknown strings are a validation error; no subprocess must run for them.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	default:
		return 0, fmt.Errorf("%w: %q (use: up, down, left, right)", ErrInvalidDirection, s)
	}
}

// WheelButton returns the xdotool button number for this direction.
func (d Direction) WheelButton() int {
	switch d {
	case DirectionUp:
		return 4
	case DirectionDown:
		return 5
	case DirectionLeft:
		return 6
	default:
		return 7
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	default:
		return "right"
	}
}
