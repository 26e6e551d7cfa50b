package fullscreen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmgaston/protect-kiosk/internal/usecase/fullscreen"
)

func TestButtonGroupLocator(t *testing.T) {
	t.Parallel()

	l := fullscreen.ButtonGroupLocator{Selector: ".LiveviewControls__ButtonGroup-sc-6n7ics-1"}

	trigger := l.TriggerScript()
	assert.Contains(t, trigger, `document.querySelector(".LiveviewControls__ButtonGroup-sc-6n7ics-1")`)
	assert.Contains(t, trigger, "buttons[buttons.length - 1].click()")
	assert.NotContains(t, trigger, "fullscreenElement")

	exit := l.ExitScript()
	assert.Contains(t, exit, `if (!document.fullscreenElement) return "inactive";`)
	assert.Contains(t, exit, "buttons[buttons.length - 1].click()")
}

func TestButtonGroupLocator_QuotesSelector(t *testing.T) {
	t.Parallel()

	l := fullscreen.ButtonGroupLocator{Selector: `div[data-id="a"]`}

	assert.Contains(t, l.TriggerScript(), `document.querySelector("div[data-id=\"a\"]")`)
}
