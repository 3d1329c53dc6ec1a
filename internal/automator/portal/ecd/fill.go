package ecd

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"go.uber.org/zap"

	"github.com/hendrawanz/ecard-filler/internal/automator/browser"
)

const (
	fieldTimeout = 10 * time.Second

	// forceClearJS empties a stubborn input and pokes the portal's
	// reactive binding so the stale value does not resurface on blur.
	forceClearJS = `() => {
		this.value = '';
		this.dispatchEvent(new Event('input', {bubbles: true}));
		this.dispatchEvent(new Event('change', {bubbles: true}));
	}`
)

// fillText fills the single visible input matching the id prefix, verifying
// the resulting value before declaring success. A mismatch triggers one
// forceful clear-and-retype retry.
//
// Re-filling an already-correct field is a no-op.
func (a *Automator) fillText(idPrefix, value string) error {
	return a.fillInput("input", idPrefix, value)
}

// fillTextarea is the multi-line variant of fillText (address fields).
func (a *Automator) fillTextarea(idPrefix, value string) error {
	return a.fillInput("textarea", idPrefix, value)
}

// fillDate normalizes the value to the portal's DD/MM/YYYY input format
// before filling.
func (a *Automator) fillDate(idPrefix, value string) error {
	normalized, err := normalizeDate(value)
	if err != nil {
		return fmt.Errorf("date field %s: %w", idPrefix, err)
	}
	return a.fillInput("input", idPrefix, normalized)
}

func (a *Automator) fillInput(tag, idPrefix, value string) error {
	sel := browser.PrefixSelector(tag, "id", idPrefix)

	el, err := browser.WaitReady(a.page, sel, fieldTimeout)
	if err != nil {
		return fmt.Errorf("field %s: %w", idPrefix, err)
	}

	current, err := browser.FieldValue(el)
	if err == nil && current == value {
		return nil
	}

	if err := browser.Clear(el); err != nil {
		return fmt.Errorf("field %s: clear: %w", idPrefix, err)
	}
	if err := browser.TypeSlow(el, value); err != nil {
		return fmt.Errorf("field %s: type: %w", idPrefix, err)
	}

	got, err := browser.FieldValue(el)
	if err == nil && got == value {
		return nil
	}

	// Forceful retry: wipe the bound value outright, then burst-type.
	a.log.Debug("field value mismatch after fill, retrying forcefully",
		zap.String("field", idPrefix), zap.String("got", got))

	if _, err := el.Eval(forceClearJS); err != nil {
		return fmt.Errorf("field %s: force clear: %w", idPrefix, err)
	}
	if err := browser.TypeFast(el, value); err != nil {
		return fmt.Errorf("field %s: retype: %w", idPrefix, err)
	}

	got, err = browser.FieldValue(el)
	if err != nil {
		return fmt.Errorf("field %s: read back: %w", idPrefix, err)
	}
	if got != value {
		return fmt.Errorf("field %s: value %q did not stick (got %q)", idPrefix, value, got)
	}
	return nil
}

// ensureChecked ticks a checkbox if it is not already ticked.
func (a *Automator) ensureChecked(selector string) error {
	el, err := browser.WaitReady(a.page, selector, fieldTimeout)
	if err != nil {
		return err
	}

	checked, err := el.Property("checked")
	if err == nil && checked.Bool() {
		return nil
	}
	return el.Click(clickButtonLeft, 1)
}

// blurActive drops focus from whatever control is focused, closing any
// lingering widget state.
func (a *Automator) blurActive() {
	_, _ = a.page.Eval(`() => { if (document.activeElement) document.activeElement.blur(); }`)
}

// normalizeDate converts ISO (YYYY-MM-DD) input to the portal's DD/MM/YYYY.
// Already-formatted values pass through.
func normalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("02/01/2006"), nil
	}
	if _, err := time.Parse("02/01/2006", s); err == nil {
		return s, nil
	}
	return "", fmt.Errorf("unrecognized date format %q", s)
}

// rodElementText trims an element's rendered text, tolerating read errors.
func rodElementText(el *rod.Element) string {
	t, err := el.Text()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(t)
}
