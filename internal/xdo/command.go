// Package xdo translates validated operation parameters into xdotool
// argument vectors and parses the utility's line-oriented output back into
// structured values. Everything here is pure; process execution lives in
// the adapters.
package xdo

import (
	"strconv"

	"github.com/aretw0/xdomcp/pkg/domain"
)

// MoveMouse builds the argv for an absolute cursor move.
func MoveMouse(x, y int) []string {
	return []string{"mousemove", strconv.Itoa(x), strconv.Itoa(y)}
}

// Click builds the argv for a button click at the current position.
func Click(button int) []string {
	return []string{"click", strconv.Itoa(button)}
}

// ClickAt builds a single argv that moves and clicks; xdotool chains both
// commands in one invocation, so this is never two subprocess calls.
func ClickAt(x, y, button int) []string {
	return []string{"mousemove", strconv.Itoa(x), strconv.Itoa(y), "click", strconv.Itoa(button)}
}

// TypeText builds the argv for typing text with a per-keystroke delay.
func TypeText(text string, delayMs int) []string {
	return []string{"type", "--delay", strconv.Itoa(delayMs), text}
}

// KeyPress builds the argv for a key or combo press. The key spec is passed
// through verbatim; xdotool rejects invalid names with a non-zero exit.
func KeyPress(key string) []string {
	return []string{"key", key}
}

// Scroll builds the argv for wheel scrolling, expressed as repeated clicks
// on the direction's wheel button.
func Scroll(dir domain.Direction, clicks int) []string {
	return []string{"click", "--repeat", strconv.Itoa(clicks), strconv.Itoa(dir.WheelButton())}
}

// DoubleClick builds the argv for a left-button double click.
func DoubleClick() []string {
	return []string{"click", "--repeat", "2", "1"}
}

// MouseLocation builds the argv for querying the cursor position in
// KEY=VALUE shell format.
func MouseLocation() []string {
	return []string{"getmouselocation", "--shell"}
}

// SearchWindows builds the argv for a window search. SearchAny omits the
// attribute flag so the utility matches across all attributes.
func SearchWindows(st domain.SearchType, query string) []string {
	args := []string{"search"}
	if flag := st.Flag(); flag != "" {
		args = append(args, flag)
	}
	return append(args, query)
}

// ActiveWindow builds the argv for querying the focused window's ID.
func ActiveWindow() []string {
	return []string{"getactivewindow"}
}

// WindowGeometry builds the argv for querying a window's position and size
// in KEY=VALUE shell format. The window ID is passed through unmodified.
func WindowGeometry(windowID string) []string {
	return []string{"getwindowgeometry", "--shell", windowID}
}

// WindowName builds the argv for querying a window's title.
func WindowName(windowID string) []string {
	return []string{"getwindowname", windowID}
}
