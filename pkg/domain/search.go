package domain

import "strings"

// SearchType selects which window attribute a search matches against.
type SearchType int

const (
	SearchAny SearchType = iota
	SearchName
	SearchClass
	SearchClassName
)

// ParseSearchType parses a wire string into a SearchType, case-insensitively.
// Unlike ParseDirection this is lenient: unrecognized values fall back to
// SearchAny rather than failing. The asymmetry is part of the contract.
func ParseSearchType(s string) SearchType {
	switch strings.ToLower(s) {
	case "name":
		return SearchName
	case "class":
		return SearchClass
	case "classname":
		return SearchClassName
	default:
		return SearchAny
	}
}

// Flag returns the xdotool search flag for this type, or "" for SearchAny
// which uses the utility's default matching across all attributes.
func (s SearchType) Flag() string {
	switch s {
	case SearchName:
		return "--name"
	case SearchClass:
		return "--class"
	case SearchClassName:
		return "--classname"
	default:
		return ""
	}
}
