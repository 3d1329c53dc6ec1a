package browser

import (
	"math/rand"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

// TypeSlow types text into an element with small inter-keystroke delays.
// Element.Type triggers proper keydown/keyup events, which the portal's
// reactive form bindings require; setting value directly leaves the bound
// model stale.
func TypeSlow(el *rod.Element, text string) error {
	for _, char := range text {
		if err := el.Type(input.Key(char)); err != nil {
			return err
		}
		time.Sleep(time.Duration(30+rand.Intn(50)) * time.Millisecond)
	}
	return nil
}

// TypeFast types text in one burst. Used for retries and tests where speed
// matters more than pacing. Still emits per-key events.
func TypeFast(el *rod.Element, text string) error {
	keys := make([]input.Key, len([]rune(text)))
	for i, char := range []rune(text) {
		keys[i] = input.Key(char)
	}
	return el.Type(keys...)
}

// Clear empties a text control by triple-click-selecting its content and
// pressing backspace. More reliable than SelectAllText against the portal's
// custom inputs, which intercept ctrl-a.
func Clear(el *rod.Element) error {
	if err := el.Click(proto.InputMouseButtonLeft, 3); err != nil {
		return err
	}
	return el.Type(input.Backspace)
}

// FieldValue reads back the element's current value property.
func FieldValue(el *rod.Element) (string, error) {
	v, err := el.Property("value")
	if err != nil {
		return "", err
	}
	return v.Str(), nil
}
