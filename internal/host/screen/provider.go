// Package screen enumerates the attached monitors.
package screen

import (
	"image"

	"github.com/kbinani/screenshot"

	"github.com/nmgaston/protect-kiosk/internal/entity"
)

// fallbackBounds stands in when no display can be enumerated, e.g. over a
// headless session.
var fallbackBounds = entity.Bounds{Width: 1920, Height: 1080}

// Provider -.
type Provider struct {
	count  func() int
	bounds func(i int) image.Rectangle
}

// New -.
func New() *Provider {
	return &Provider{
		count:  screenshot.NumActiveDisplays,
		bounds: screenshot.GetDisplayBounds,
	}
}

// Displays lists the monitors in enumeration order. The primary is the one
// whose bounds contain the desktop origin, else the first.
func (p *Provider) Displays() []entity.Display {
	n := p.count()
	if n <= 0 {
		return []entity.Display{{Index: 0, Primary: true, Bounds: fallbackBounds}}
	}

	displays := make([]entity.Display, n)
	primary := -1

	for i := range n {
		b := p.bounds(i)

		displays[i] = entity.Display{
			Index: i,
			Bounds: entity.Bounds{
				X:      b.Min.X,
				Y:      b.Min.Y,
				Width:  b.Dx(),
				Height: b.Dy(),
			},
		}

		if primary < 0 && image.Pt(0, 0).In(b) {
			primary = i
		}
	}

	if primary < 0 {
		primary = 0
	}

	displays[primary].Primary = true

	return displays
}

// Primary -.
func (p *Provider) Primary() entity.Display {
	for _, d := range p.Displays() {
		if d.Primary {
			return d
		}
	}

	return entity.Display{Index: 0, Primary: true, Bounds: fallbackBounds}
}
