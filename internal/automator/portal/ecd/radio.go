package ecd

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"go.uber.org/zap"

	"github.com/hendrawanz/ecard-filler/internal/automator/browser"
)

// questionBlockTextJS reads the text of the form block a radio group sits
// in, which carries the question heading. The group element itself only
// contains the option labels.
const questionBlockTextJS = `() => {
	const block = this.closest('[class*="form-item"], [class*="question"]') || this.parentElement;
	return block ? block.innerText : '';
}`

// indicatorColorJS reads the computed fill of a radio option's inner
// indicator. The portal paints the selected indicator with its primary
// highlight, which is a more trustworthy signal than the click not erroring.
const indicatorColorJS = `() => {
	const s = window.getComputedStyle(this);
	return s.backgroundColor + '|' + s.borderColor;
}`

// matchQuestionTopic classifies a question block's text into one of the
// known radio topics by keyword. Returns false for unrelated blocks.
func matchQuestionTopic(text string) (string, bool) {
	lower := strings.ToLower(text)
	for topic, keywords := range questionKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return topic, true
			}
		}
	}
	return "", false
}

// answerLabelMatches reports whether an option label is the Yes (or No)
// answer in either portal language.
func answerLabelMatches(label string, yes bool) bool {
	candidates := noLabels
	if yes {
		candidates = yesLabels
	}
	trimmed := strings.TrimSpace(label)
	for _, c := range candidates {
		if strings.EqualFold(trimmed, c) {
			return true
		}
	}
	return false
}

// fillRadio answers one Yes/No question block. The block is located by
// matching its heading text against the topic's keywords, and the option
// search is restricted to that block's descendants: a declaration page holds
// several unrelated Yes/No groups, and matching options globally by value
// would click the wrong one.
func (a *Automator) fillRadio(topic string, yes bool) error {
	group, err := a.findQuestionGroup(topic)
	if err != nil {
		return err
	}

	option, err := a.findAnswerOption(group, yes)
	if err != nil {
		return fmt.Errorf("question %q: %w", topic, err)
	}

	if err := option.Click(clickButtonLeft, 1); err != nil {
		return fmt.Errorf("question %q: click: %w", topic, err)
	}

	if a.radioSelected(option) {
		return nil
	}

	// The portal occasionally swallows the first click while re-rendering
	// the block. One more, then verify again.
	a.log.Debug("radio indicator not selected after click, retrying", zap.String("question", topic))
	browser.WaitDOMSettled(a.page, time.Second)
	if err := option.Click(clickButtonLeft, 1); err != nil {
		return fmt.Errorf("question %q: retry click: %w", topic, err)
	}
	if !a.radioSelected(option) {
		return fmt.Errorf("question %q: option never showed selected state", topic)
	}
	return nil
}

// findQuestionGroup walks the visible radio groups and returns the one whose
// surrounding block text matches the topic's keywords.
func (a *Automator) findQuestionGroup(topic string) (*rod.Element, error) {
	keywords, ok := questionKeywords[topic]
	if !ok {
		return nil, fmt.Errorf("unknown question topic %q", topic)
	}

	for _, group := range browser.VisibleAll(a.page, SelectorRadioGroup) {
		res, err := group.Eval(questionBlockTextJS)
		if err != nil {
			continue
		}
		text := strings.ToLower(res.Value.Str())
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return group, nil
			}
		}
	}

	return nil, fmt.Errorf("no question block found for topic %q", topic)
}

// findAnswerOption picks the Yes/No option label inside the given group
// only.
func (a *Automator) findAnswerOption(group *rod.Element, yes bool) (*rod.Element, error) {
	options, err := group.Elements(SelectorRadioOption)
	if err != nil {
		return nil, fmt.Errorf("list options: %w", err)
	}

	for _, opt := range options {
		if answerLabelMatches(rodElementText(opt), yes) {
			return opt, nil
		}
	}

	return nil, fmt.Errorf("no matching answer option (yes=%v) among %d options", yes, len(options))
}

// radioSelected inspects the option's inner indicator for the portal-wide
// selected highlight color.
func (a *Automator) radioSelected(option *rod.Element) bool {
	indicator, err := option.Element(SelectorRadioIndicator)
	if err != nil {
		return false
	}
	res, err := indicator.Eval(indicatorColorJS)
	if err != nil {
		return false
	}
	return strings.Contains(res.Value.Str(), selectedIndicatorColor)
}
