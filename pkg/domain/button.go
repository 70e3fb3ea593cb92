package domain

// Mouse buttons as understood by xdotool. Values outside 1-3 are forwarded
// to the utility untouched; they only render as "unknown" in result text.
const (
	ButtonLeft   = 1
	ButtonMiddle = 2
	ButtonRight  = 3
)

// ButtonName returns the human-readable name for a mouse button number.
func ButtonName(button int) string {
	switch button {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}
