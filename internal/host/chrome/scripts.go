package chrome

import "github.com/chromedp/cdproto/page"

// shortcutBinding is the page-side function the key listener reports to.
const shortcutBinding = "kioskShortcut"

// shortcutScript reports chorded key presses, Escape and function keys in
// the Ctrl+Alt+Shift+Meta+Key form the shortcut registry uses. Plain typing
// is never reported.
const shortcutScript = `(() => {
  window.addEventListener("keydown", (e) => {
    if (["Control", "Alt", "Shift", "Meta"].includes(e.key)) return;
    let key = e.key;
    if (e.code.startsWith("Key")) key = e.code.slice(3);
    else if (e.code.startsWith("Digit")) key = e.code.slice(5);
    const chord = e.ctrlKey || e.altKey || e.metaKey;
    if (!chord && !/^(Escape|F\d{1,2})$/.test(key)) return;
    const parts = [];
    if (e.ctrlKey) parts.push("Ctrl");
    if (e.altKey) parts.push("Alt");
    if (e.shiftKey) parts.push("Shift");
    if (e.metaKey) parts.push("Meta");
    parts.push(key.length === 1 ? key.toUpperCase() : key);
    if (typeof window.` + shortcutBinding + ` === "function") window.` + shortcutBinding + `(parts.join("+"));
  }, true);
})();`

func addScript(source string) *page.AddScriptToEvaluateOnNewDocumentParams {
	return page.AddScriptToEvaluateOnNewDocument(source)
}
