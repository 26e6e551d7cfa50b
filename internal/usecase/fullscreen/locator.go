package fullscreen

import (
	"encoding/json"
	"fmt"
)

// Locator produces the in-page scripts that find and press the dashboard's
// full-screen control. Each script evaluates to one of the Outcome strings.
type Locator interface {
	TriggerScript() string
	ExitScript() string
}

// ButtonGroupLocator presses the last button inside the first element
// matching Selector.
type ButtonGroupLocator struct {
	Selector string
}

const lastButtonScript = `(() => {
  %s
  const group = document.querySelector(%s);
  if (!group) return "missing";
  const buttons = group.querySelectorAll("button");
  if (buttons.length === 0) return "missing";
  buttons[buttons.length - 1].click();
  return "clicked";
})()`

// TriggerScript -.
func (l ButtonGroupLocator) TriggerScript() string {
	return fmt.Sprintf(lastButtonScript, "", l.quoted())
}

// ExitScript presses the control only while the document is in full-screen
// state, so repeated exits are no-ops.
func (l ButtonGroupLocator) ExitScript() string {
	return fmt.Sprintf(lastButtonScript, `if (!document.fullscreenElement) return "inactive";`, l.quoted())
}

func (l ButtonGroupLocator) quoted() string {
	b, err := json.Marshal(l.Selector)
	if err != nil {
		return `""`
	}

	return string(b)
}
