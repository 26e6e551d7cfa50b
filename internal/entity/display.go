package entity

import "fmt"

// Bounds are a display's pixel rectangle in the virtual desktop.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Display describes one attached monitor as enumerated by the host.
type Display struct {
	Index   int    `json:"index"`
	Primary bool   `json:"primary"`
	Bounds  Bounds `json:"bounds"`
}

// Label is the name the setup form shows, e.g. "Display 2 (1920x1080)".
func (d Display) Label() string {
	return fmt.Sprintf("Display %d (%dx%d)", d.Index+1, d.Bounds.Width, d.Bounds.Height)
}
