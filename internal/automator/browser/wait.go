// Package browser provides utilities for browser automation with Rod.
package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
)

const (
	// pollInterval is the base cadence for readiness polling. Polling
	// replaces fixed sleeps: we react as soon as the page settles instead
	// of always paying the worst-case delay.
	pollInterval = 100 * time.Millisecond

	// quietWindow is how long the DOM must go without mutations before
	// WaitDOMSettled resolves early.
	quietWindow = 200 * time.Millisecond
)

// isReadyJS reports whether the element is accepting interaction: not
// disabled, not marked busy, not carrying a loading class mid-render.
const isReadyJS = `() => {
	const el = this;
	if (el.disabled) return false;
	if (el.getAttribute('aria-busy') === 'true') return false;
	if (el.classList.contains('loading') || el.classList.contains('is-loading')) return false;
	return true;
}`

// rectJS serializes the element's rendered box so two polls can be compared
// for visual stability (CSS transitions move the box between frames).
const rectJS = `() => {
	const r = this.getBoundingClientRect();
	return Math.round(r.x) + ',' + Math.round(r.y) + ',' + Math.round(r.width) + ',' + Math.round(r.height);
}`

// isInteractableJS checks rendered size, ancestor visibility and input state.
// Hidden duplicates of re-rendered portal widgets fail the size check.
const isInteractableJS = `() => {
	const el = this;
	const r = el.getBoundingClientRect();
	if (r.width === 0 || r.height === 0) return false;
	if (el.disabled || el.readOnly) return false;
	let n = el;
	while (n && n.nodeType === 1) {
		const s = window.getComputedStyle(n);
		if (s.display === 'none' || s.visibility === 'hidden') return false;
		if (parseFloat(s.opacity) === 0) return false;
		n = n.parentElement;
	}
	return true;
}`

// domSettleJS resolves once no mutation has been observed for quietMs, or
// after maxMs, whichever comes first.
const domSettleJS = `(maxMs, quietMs) => new Promise(resolve => {
	let quiet, cap;
	const done = () => {
		obs.disconnect();
		clearTimeout(quiet);
		clearTimeout(cap);
		resolve(true);
	};
	const obs = new MutationObserver(() => {
		clearTimeout(quiet);
		quiet = setTimeout(done, quietMs);
	});
	obs.observe(document.body, {childList: true, subtree: true, attributes: true, characterData: true});
	quiet = setTimeout(done, quietMs);
	cap = setTimeout(done, maxMs);
})`

// WaitReady polls until a visible element matching selector exists, is not
// disabled or loading, and its rendered box held still across two polls.
// Use before opening dropdown widgets. Safe to call redundantly.
func WaitReady(page *rod.Page, selector string, timeout time.Duration) (*rod.Element, error) {
	deadline := time.Now().Add(timeout)
	var lastRect string

	for time.Now().Before(deadline) {
		el, err := VisibleBySelector(page, selector)
		if err != nil {
			lastRect = ""
			time.Sleep(pollInterval)
			continue
		}

		ready, err := el.Eval(isReadyJS)
		if err != nil || !ready.Value.Bool() {
			lastRect = ""
			time.Sleep(pollInterval)
			continue
		}

		rect, err := el.Eval(rectJS)
		if err != nil {
			lastRect = ""
			time.Sleep(pollInterval)
			continue
		}

		// Two consecutive identical boxes means the element is not
		// mid-transition.
		if lastRect != "" && rect.Value.Str() == lastRect {
			return el, nil
		}
		lastRect = rect.Value.Str()
		time.Sleep(pollInterval)
	}

	return nil, fmt.Errorf("element %q not ready within %v", selector, timeout)
}

// WaitInteractable polls until an element matching selector has a non-zero
// rendered size, no hidden ancestors, and is neither disabled nor readonly.
// Returns false instead of an error so callers can pick their own fallback.
func WaitInteractable(page *rod.Page, selector string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		el, err := VisibleBySelector(page, selector)
		if err == nil {
			ok, evalErr := el.Eval(isInteractableJS)
			if evalErr == nil && ok.Value.Bool() {
				return true
			}
		}
		time.Sleep(pollInterval)
	}

	return false
}

// WaitDOMSettled blocks until the page body has gone a quiet window without
// mutations, or maxWait elapses. Bounds worst-case latency while reacting
// fast when the page settles quickly. Errors are swallowed: the primitive is
// advisory and callers chain it defensively.
func WaitDOMSettled(page *rod.Page, maxWait time.Duration) {
	_, _ = page.Eval(domSettleJS, maxWait.Milliseconds(), quietWindow.Milliseconds())
}
