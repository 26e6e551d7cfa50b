// Package display picks the monitor the kiosk surface covers.
package display

import (
	"github.com/nmgaston/protect-kiosk/internal/entity"
	"github.com/nmgaston/protect-kiosk/pkg/logger"
)

// Resolve returns displays[requested] when it exists. Otherwise it logs the
// miss and falls back to the display flagged primary, or to primary itself
// when the enumeration carries no such flag. Enumeration order is kept as is.
func Resolve(log logger.Interface, requested int, displays []entity.Display, primary entity.Display) entity.Display {
	if requested >= 0 && requested < len(displays) {
		return displays[requested]
	}

	log.Warn("display - Resolve - monitor #%d not found among %d displays, falling back to primary display", requested+1, len(displays))

	for _, d := range displays {
		if d.Primary {
			return d
		}
	}

	return primary
}

// DefaultSelection is the index the setup form preselects: the stored index
// when that display is attached, else the primary display.
func DefaultSelection(requested int, displays []entity.Display) int {
	if requested >= 0 && requested < len(displays) {
		return requested
	}

	for i, d := range displays {
		if d.Primary {
			return i
		}
	}

	return 0
}
