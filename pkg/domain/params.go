package domain

// Defaults for optional operation parameters. These are fixed at definition
// time; the dispatcher seeds each params struct with them before decoding
// the caller's arguments on top.
const (
	DefaultButton       = ButtonLeft
	DefaultTypeDelayMs  = 12
	DefaultScrollClicks = 3
	DefaultSearchType   = "any"
)

// MoveMouseParams moves the cursor to absolute screen coordinates.
type MoveMouseParams struct {
	X int `json:"x" mapstructure:"x"`
	Y int `json:"y" mapstructure:"y"`
}

// ClickParams clicks a button at the current cursor position.
type ClickParams struct {
	Button int `json:"button" mapstructure:"button"`
}

// ClickAtParams moves the cursor and clicks in a single invocation.
type ClickAtParams struct {
	X      int `json:"x" mapstructure:"x"`
	Y      int `json:"y" mapstructure:"y"`
	Button int `json:"button" mapstructure:"button"`
}

// TypeTextParams types text as keyboard input with a per-keystroke delay.
type TypeTextParams struct {
	Text    string `json:"text" mapstructure:"text"`
	DelayMs int    `json:"delay" mapstructure:"delay"`
}

// KeyPressParams presses a key or combo (e.g. "Return", "ctrl+shift+t").
// The key syntax is not validated locally; xdotool rejects bad names.
type KeyPressParams struct {
	Key string `json:"key" mapstructure:"key"`
}

// ScrollParams scrolls the wheel. Direction keeps the caller's original
// casing; result text echoes it back as given.
type ScrollParams struct {
	Direction string `json:"direction" mapstructure:"direction"`
	Clicks    int    `json:"clicks" mapstructure:"clicks"`
}

// SearchWindowParams searches for windows matching a query.
type SearchWindowParams struct {
	Query      string `json:"query" mapstructure:"query"`
	SearchType string `json:"search_type" mapstructure:"search_type"`
}

// WindowIDParams addresses a single window by the ID xdotool reported.
type WindowIDParams struct {
	WindowID string `json:"window_id" mapstructure:"window_id"`
}
