package domain

// MouseLocation is the parsed result of "xdotool getmouselocation --shell".
type MouseLocation struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WindowGeometry is the parsed result of "xdotool getwindowgeometry --shell".
type WindowGeometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Screen int `json:"screen"`
}
