package ecd

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hendrawanz/ecard-filler/internal/automator/browser"
	"github.com/hendrawanz/ecard-filler/internal/automator/form"
	"github.com/hendrawanz/ecard-filler/internal/automator/portal"
)

// travellerStep is one traveller's slot in the group flow: the lead first,
// then dependents in the order the caller supplied them, which is the order
// the portal renders their cards.
type travellerStep struct {
	Index  int
	Name   string
	Lead   bool
	Member *form.FamilyMember // nil for the lead
}

// groupPlan expands a form into the per-traveller processing order.
func groupPlan(f *form.ApplicantForm) []travellerStep {
	plan := make([]travellerStep, 0, f.TravellerCount())
	plan = append(plan, travellerStep{Index: 0, Name: f.FullName, Lead: true})
	for i := range f.FamilyMembers {
		m := &f.FamilyMembers[i]
		plan = append(plan, travellerStep{Index: i + 1, Name: m.FullName, Member: m})
	}
	return plan
}

// runGroupPage processes a wizard page that branched into the card-based
// group flow: each traveller's card opens an individual sub-form that must
// be filled and saved before the next card.
//
// Failure policy: a traveller whose card cannot be found or whose sub-form
// fails aborts the whole loop. Partial group submission is never attempted.
func (a *Automator) runGroupPage(page portal.Page, f *form.ApplicantForm) error {
	plan := groupPlan(f)
	a.log.Info("entering group flow",
		zap.Stringer("page", page), zap.Int("travellers", len(plan)))

	for _, step := range plan {
		if err := a.processTravellerCard(page, step, f); err != nil {
			return &form.AutomationError{
				Portal: string(portal.PortalECD),
				Step:   page.String(),
				Cause:  form.ErrGroupAborted,
				Details: fmt.Sprintf("traveller %d (%s): %v",
					step.Index, step.Name, err),
			}
		}
	}

	if page == portal.PageDeclaration {
		return a.fillSharedDeclaration(f)
	}
	return nil
}

func (a *Automator) processTravellerCard(page portal.Page, step travellerStep, f *form.ApplicantForm) error {
	cards := browser.VisibleAll(a.page, SelectorTravellerCard)
	if step.Index >= len(cards) {
		return fmt.Errorf("card %d not found (%d cards rendered)", step.Index, len(cards))
	}

	if err := cards[step.Index].Click(clickButtonLeft, 1); err != nil {
		return fmt.Errorf("open card: %w", err)
	}
	if err := a.waitForSubForm(); err != nil {
		return err
	}

	if err := a.fillTravellerSubForm(page, step, f); err != nil {
		return err
	}

	save, err := browser.WaitReady(a.page, SelectorSaveButton, fieldTimeout)
	if err != nil {
		return fmt.Errorf("save button: %w", err)
	}
	if err := save.Click(clickButtonLeft, 1); err != nil {
		return fmt.Errorf("save click: %w", err)
	}

	// A failed save leaves the sub-form open; only the card page counts
	// as done.
	if err := a.waitForCardPage(); err != nil {
		return fmt.Errorf("after save: %w", err)
	}

	a.log.Debug("traveller processed",
		zap.Int("index", step.Index), zap.Bool("lead", step.Lead))
	return nil
}

func (a *Automator) fillTravellerSubForm(page portal.Page, step travellerStep, f *form.ApplicantForm) error {
	switch page {
	case portal.PageTravelDetails:
		if step.Lead {
			if err := a.fillDate(idArrivalDate, f.ArrivalDate); err != nil {
				return err
			}
			if err := a.fillDate(idDepartureDate, f.DepartureDate); err != nil {
				return err
			}
			if err := a.fillRadio("visa", f.HasVisa); err != nil {
				return err
			}
			if f.HasVisa {
				return a.fillText(idVisaNumber, f.VisaNumber)
			}
			return nil
		}

		if err := a.fillRadio("visa", step.Member.HasVisa); err != nil {
			return err
		}
		if step.Member.HasVisa {
			return a.fillText(idVisaNumber, step.Member.VisaNumber)
		}
		return nil

	case portal.PageDeclaration:
		// Health status is declared per traveller; customs answers are
		// shared page-level questions filled after the loop.
		return a.fillRadio("symptoms", f.HasSymptoms)

	default:
		return fmt.Errorf("page %s has no group sub-form", page)
	}
}

// fillSharedDeclaration fills the page-level elements that appear once for
// the whole group, after every traveller card is processed.
func (a *Automator) fillSharedDeclaration(f *form.ApplicantForm) error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"baggage count", func() error { return a.fillText(idBaggageCount, strconv.Itoa(f.BaggageCount)) }},
		{"goods question", func() error { return a.fillRadio("goods", f.CarryingGoods) }},
		{"currency question", func() error { return a.fillRadio("currency", f.CarryingCurrency) }},
		{"quarantine question", func() error { return a.fillRadio("quarantine", f.CarryingQuarantine) }},
		{"consent", func() error { return a.ensureChecked(SelectorConsentBox) }},
	}
	return a.runFillSteps(portal.PageDeclaration, steps)
}

// waitForSubForm confirms navigation into a traveller's individual sub-form:
// the save control is the sub-form's landmark.
func (a *Automator) waitForSubForm() error {
	if !browser.WaitInteractable(a.page, SelectorSaveButton, pageLoadTimeout) {
		return fmt.Errorf("traveller sub-form never loaded (url %s)", a.pageURL())
	}
	browser.WaitDOMSettled(a.page, 2*time.Second)
	return nil
}

// waitForCardPage confirms navigation back to the card-selection page.
func (a *Automator) waitForCardPage() error {
	deadline := time.Now().Add(pageLoadTimeout)
	for time.Now().Before(deadline) {
		if len(browser.VisibleAll(a.page, SelectorTravellerCard)) > 0 {
			browser.WaitDOMSettled(a.page, 2*time.Second)
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
	return fmt.Errorf("card-selection page never reappeared (url %s)", a.pageURL())
}
