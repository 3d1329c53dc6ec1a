package ecd

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"go.uber.org/zap"

	"github.com/hendrawanz/ecard-filler/internal/automator/browser"
	"github.com/hendrawanz/ecard-filler/internal/automator/translate"
)

// optionMatch classifies how a dropdown option was matched.
type optionMatch int

const (
	matchNone optionMatch = iota
	matchExact
	matchSubstring
	matchFallback
)

func (m optionMatch) String() string {
	switch m {
	case matchExact:
		return "exact"
	case matchSubstring:
		return "substring"
	case matchFallback:
		return "fallback"
	default:
		return "none"
	}
}

// matchOption picks an option index for a search string. Exact match wins
// outright; otherwise a bidirectional substring match; otherwise the first
// filtered option as a last resort. A reachable fallback path must never
// shadow an existing exact match.
func matchOption(search string, options []string) (int, optionMatch) {
	if len(options) == 0 {
		return -1, matchNone
	}

	needle := strings.ToUpper(strings.TrimSpace(search))

	for i, opt := range options {
		if strings.ToUpper(strings.TrimSpace(opt)) == needle {
			return i, matchExact
		}
	}

	for i, opt := range options {
		candidate := strings.ToUpper(strings.TrimSpace(opt))
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return i, matchSubstring
		}
	}

	return 0, matchFallback
}

// fillDropdown drives the portal's non-native searchable dropdown: open the
// widget, type into the active overlay's search box, pick the best-matching
// filtered option, and confirm the overlay closed.
//
// The raw value is tried first; the locale table is a fallback layer only,
// consulted when the raw value filters down to nothing.
func (a *Automator) fillDropdown(idPrefix, value string, cat translate.Category) error {
	candidates := []string{value}
	if translated := a.tr.Translate(value, cat); translated != value {
		candidates = append(candidates, translated)
	}
	return a.fillDropdownCandidates(idPrefix, candidates)
}

// fillDropdownCandidates tries each candidate search string in order until
// one selects an option.
func (a *Automator) fillDropdownCandidates(idPrefix string, candidates []string) error {
	trigger := browser.PrefixSelector("div", "id", idPrefix)

	el, err := browser.WaitReady(a.page, trigger, fieldTimeout)
	if err != nil {
		return fmt.Errorf("dropdown %s: %w", idPrefix, err)
	}
	if err := el.Click(clickButtonLeft, 1); err != nil {
		return fmt.Errorf("dropdown %s: open: %w", idPrefix, err)
	}

	overlay, err := browser.WaitReady(a.page, SelectorDropdownOverlay, fieldTimeout)
	if err != nil {
		return fmt.Errorf("dropdown %s: no overlay appeared: %w", idPrefix, err)
	}

	var lastErr error
	for _, candidate := range candidates {
		if err := a.selectFromOverlay(overlay, idPrefix, candidate); err != nil {
			lastErr = err
			continue
		}
		return a.confirmDropdownClosed(idPrefix)
	}

	return fmt.Errorf("dropdown %s: no option for %q: %w", idPrefix, candidates[0], lastErr)
}

func (a *Automator) selectFromOverlay(overlay *rod.Element, idPrefix, value string) error {
	search, err := overlay.Element(`input[type="text"]`)
	if err != nil {
		// Portal variant without a search box: scan the option rows
		// directly, scrolling the virtualized list as needed.
		return a.selectByScanning(overlay, idPrefix, value)
	}

	if err := browser.Clear(search); err != nil {
		return fmt.Errorf("clear search: %w", err)
	}
	if err := browser.TypeFast(search, value); err != nil {
		return fmt.Errorf("type search: %w", err)
	}
	browser.WaitDOMSettled(a.page, 2*time.Second)

	options, texts := a.visibleOptions(overlay)
	idx, kind := matchOption(value, texts)
	if kind == matchNone {
		return fmt.Errorf("no filtered options for %q", value)
	}
	if kind == matchFallback {
		a.log.Warn("dropdown fell back to first filtered option",
			zap.String("field", idPrefix),
			zap.String("wanted", value),
			zap.String("picked", texts[idx]))
	}

	return options[idx].Click(clickButtonLeft, 1)
}

// selectByScanning walks visible option rows without a search box,
// scrolling the overlay in increments when the option set is long.
func (a *Automator) selectByScanning(overlay *rod.Element, idPrefix, value string) error {
	const maxScrolls = 10

	for i := 0; i <= maxScrolls; i++ {
		options, texts := a.visibleOptions(overlay)
		if len(texts) > 0 {
			idx, kind := matchOption(value, texts)
			if kind == matchExact || kind == matchSubstring {
				return options[idx].Click(clickButtonLeft, 1)
			}
		}

		if _, err := overlay.Eval(`() => { this.scrollTop += this.clientHeight; }`); err != nil {
			break
		}
		browser.WaitDOMSettled(a.page, time.Second)
	}

	// Exhausted the list with no real match; pick the first visible row
	// rather than leaving the field empty, and say so.
	options, texts := a.visibleOptions(overlay)
	if len(options) == 0 {
		return fmt.Errorf("no visible options while scanning for %q", value)
	}
	a.log.Warn("dropdown scan fell back to first visible option",
		zap.String("field", idPrefix),
		zap.String("wanted", value),
		zap.String("picked", texts[0]))
	return options[0].Click(clickButtonLeft, 1)
}

// visibleOptions returns the overlay's currently visible option rows and
// their trimmed texts, index-aligned.
func (a *Automator) visibleOptions(overlay *rod.Element) ([]*rod.Element, []string) {
	els, err := overlay.Elements(`li`)
	if err != nil {
		return nil, nil
	}

	var out []*rod.Element
	var texts []string
	for _, el := range els {
		if visible, err := el.Visible(); err != nil || !visible {
			continue
		}
		out = append(out, el)
		texts = append(texts, rodElementText(el))
	}
	return out, texts
}

// confirmDropdownClosed waits for the overlay to go away and drops any
// lingering focus so the next field's click lands cleanly.
func (a *Automator) confirmDropdownClosed(idPrefix string) error {
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := browser.VisibleBySelector(a.page, SelectorDropdownOverlay); err != nil {
			a.blurActive()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	// Overlay stuck open; close it ourselves and keep going.
	a.log.Debug("dropdown overlay did not close after selection", zap.String("field", idPrefix))
	a.blurActive()
	_, _ = a.page.Eval(`() => document.body.click()`)
	return nil
}
