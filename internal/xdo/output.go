package xdo

import (
	"strconv"
	"strings"

	"github.com/aretw0/xdomcp/pkg/domain"
)

// shellVar extracts the integer value of a KEY=VALUE line if the line
// carries the given prefix (including the '='). Unparsable values default
// to 0; the lenient fallback is an observable contract of the position and
// geometry operations, not something to tighten.
func shellVar(line, prefix string) (int, bool) {
	if !strings.HasPrefix(line, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(line[len(prefix):])
	if err != nil {
		return 0, true
	}
	return n, true
}

// ParseMouseLocation parses "getmouselocation --shell" output. Missing or
// malformed X=/Y= lines leave the coordinate at 0.
func ParseMouseLocation(out string) domain.MouseLocation {
	var loc domain.MouseLocation
	for _, line := range strings.Split(out, "\n") {
		if v, ok := shellVar(line, "X="); ok {
			loc.X = v
		} else if v, ok := shellVar(line, "Y="); ok {
			loc.Y = v
		}
	}
	return loc
}

// ParseWindowGeometry parses "getwindowgeometry --shell" output. Keys are
// matched case-sensitively; unrecognized lines are ignored.
func ParseWindowGeometry(out string) domain.WindowGeometry {
	var geo domain.WindowGeometry
	for _, line := range strings.Split(out, "\n") {
		if v, ok := shellVar(line, "X="); ok {
			geo.X = v
		} else if v, ok := shellVar(line, "Y="); ok {
			geo.Y = v
		} else if v, ok := shellVar(line, "WIDTH="); ok {
			geo.Width = v
		} else if v, ok := shellVar(line, "HEIGHT="); ok {
			geo.Height = v
		} else if v, ok := shellVar(line, "SCREEN="); ok {
			geo.Screen = v
		}
	}
	return geo
}

// WindowIDs splits window-search output into one ID per non-empty line.
func WindowIDs(out string) []string {
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ids = append(ids, line)
		}
	}
	return ids
}
