package browser

import (
	"fmt"

	"github.com/go-rod/rod"
)

// hasBoxJS filters out zero-size elements. The portal re-renders widgets and
// leaves stale hidden copies behind, so a selector frequently matches more
// nodes than are actually on screen.
const hasBoxJS = `() => {
	const r = this.getBoundingClientRect();
	return r.width > 0 && r.height > 0;
}`

// VisibleBySelector resolves a selector to the single currently visible
// element among possibly many stale matches. The first match that is visible
// and has a rendered box wins.
//
// Locators for dynamically suffixed portal ids should be prefix patterns,
// e.g. PrefixSelector("input", "id", "passport").
func VisibleBySelector(page *rod.Page, selector string) (*rod.Element, error) {
	els, err := page.Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", selector, err)
	}

	for _, el := range els {
		visible, err := el.Visible()
		if err != nil || !visible {
			continue
		}
		box, err := el.Eval(hasBoxJS)
		if err != nil || !box.Value.Bool() {
			continue
		}
		return el, nil
	}

	return nil, fmt.Errorf("no visible element for %q (%d total matches)", selector, len(els))
}

// VisibleAll returns every visible match for selector, in document order.
func VisibleAll(page *rod.Page, selector string) []*rod.Element {
	els, err := page.Elements(selector)
	if err != nil {
		return nil
	}

	var out []*rod.Element
	for _, el := range els {
		if visible, err := el.Visible(); err != nil || !visible {
			continue
		}
		if box, err := el.Eval(hasBoxJS); err != nil || !box.Value.Bool() {
			continue
		}
		out = append(out, el)
	}
	return out
}

// PrefixSelector builds an attribute-prefix CSS selector for the portal's
// suffixed dynamic ids ("passport-f3a1", "passport-09bc", ...).
func PrefixSelector(tag, attr, prefix string) string {
	return fmt.Sprintf(`%s[%s^="%s"]`, tag, attr, prefix)
}
