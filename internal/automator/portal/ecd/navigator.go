package ecd

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hendrawanz/ecard-filler/internal/automator/browser"
	"github.com/hendrawanz/ecard-filler/internal/automator/form"
	"github.com/hendrawanz/ecard-filler/internal/automator/portal"
	"github.com/hendrawanz/ecard-filler/internal/automator/translate"
)

const (
	// navRetryCeiling bounds forward-navigation attempts per page. After
	// this many rejected transitions the run fails hard.
	navRetryCeiling = 3

	pageLoadTimeout   = 30 * time.Second
	transitionTimeout = 10 * time.Second
)

func (a *Automator) pageHTML() (string, error) {
	return a.page.HTML()
}

func (a *Automator) pageURL() string {
	info, err := a.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// currentPage re-derives the wizard state from the live DOM. This is the
// only source of truth for where the automation is; a forward click is never
// trusted on its own.
func (a *Automator) currentPage() portal.Page {
	html, err := a.pageHTML()
	if err != nil {
		return portal.PageUnknown
	}
	return DetectPage(a.pageURL(), html)
}

// waitForPage polls until the DOM lands on the expected page.
func (a *Automator) waitForPage(expected portal.Page, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if a.currentPage() == expected {
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
	return fmt.Errorf("%w: page %s never presented its landmark (url %s)",
		form.ErrNavigation, expected, a.pageURL())
}

// fillPage fills the given wizard page's fields in their fixed order. Order
// matters: some selections dynamically reveal dependent fields.
func (a *Automator) fillPage(page portal.Page, f *form.ApplicantForm) error {
	switch page {
	case portal.PagePersonalInfo:
		return a.fillPersonalInfo(f)
	case portal.PageTravelDetails:
		return a.fillTravelDetails(f)
	case portal.PageTransportAddress:
		return a.fillTransportAddress(f)
	case portal.PageDeclaration:
		return a.fillDeclaration(f)
	default:
		return fmt.Errorf("no filler for page %s", page)
	}
}

func (a *Automator) fillPersonalInfo(f *form.ApplicantForm) error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"full name", func() error { return a.fillText(idFullName, f.FullName) }},
		{"passport number", func() error { return a.fillText(idPassportNo, f.PassportNumber) }},
		{"nationality", func() error { return a.fillDropdown(idNationality, f.Nationality, translate.CategoryCountry) }},
		{"date of birth", func() error { return a.fillDate(idBirthDate, f.DateOfBirth) }},
		{"gender", func() error { return a.fillDropdown(idGender, f.Gender, translate.Category("")) }},
		{"occupation", func() error { return a.fillText(idOccupation, f.Occupation) }},
		{"phone", func() error { return a.fillText(idPhone, f.Phone) }},
		{"email", func() error { return a.fillText(idEmail, f.Email) }},
	}
	return a.runFillSteps(portal.PagePersonalInfo, steps)
}

func (a *Automator) fillTravelDetails(f *form.ApplicantForm) error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"arrival date", func() error { return a.fillDate(idArrivalDate, f.ArrivalDate) }},
		{"departure date", func() error { return a.fillDate(idDepartureDate, f.DepartureDate) }},
		{"purpose of visit", func() error { return a.fillDropdown(idPurpose, f.PurposeOfVisit, translate.CategoryPurpose) }},
		{"visa question", func() error { return a.fillRadio("visa", f.HasVisa) }},
	}
	if f.HasVisa {
		// Revealed only after the visa question is answered Yes.
		steps = append(steps, struct {
			name string
			fn   func() error
		}{"visa number", func() error { return a.fillText(idVisaNumber, f.VisaNumber) }})
	}
	return a.runFillSteps(portal.PageTravelDetails, steps)
}

func (a *Automator) fillTransportAddress(f *form.ApplicantForm) error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"transport mode", func() error { return a.fillDropdown(idTransportMode, f.TransportMode, translate.Category("")) }},
		{"transport type", func() error { return a.fillDropdown(idTransportType, f.TransportType, translate.CategoryTransportType) }},
		{"flight name", func() error { return a.fillFlightName(f.FlightName) }},
		{"flight number", func() error { return a.fillText(idFlightNumber, f.FlightNumber) }},
		{"arrival port", func() error { return a.fillDropdown(idArrivalPort, f.ArrivalPort, translate.CategoryAirport) }},
		{"address", func() error { return a.fillTextarea(idAddress, f.AddressInCountry) }},
	}
	return a.runFillSteps(portal.PageTransportAddress, steps)
}

func (a *Automator) fillDeclaration(f *form.ApplicantForm) error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"baggage count", func() error { return a.fillText(idBaggageCount, strconv.Itoa(f.BaggageCount)) }},
		{"goods question", func() error { return a.fillRadio("goods", f.CarryingGoods) }},
		{"currency question", func() error { return a.fillRadio("currency", f.CarryingCurrency) }},
		{"quarantine question", func() error { return a.fillRadio("quarantine", f.CarryingQuarantine) }},
		{"symptoms question", func() error { return a.fillRadio("symptoms", f.HasSymptoms) }},
		{"consent", func() error { return a.ensureChecked(SelectorConsentBox) }},
	}
	return a.runFillSteps(portal.PageDeclaration, steps)
}

// runFillSteps executes fill steps in order. A single failed field does not
// abort the page: the pre-flight pass or the recovery engine catches the gap
// later, which beats bailing out of a page that is otherwise fine.
func (a *Automator) runFillSteps(page portal.Page, steps []struct {
	name string
	fn   func() error
}) error {
	for _, step := range steps {
		if err := step.fn(); err != nil {
			a.log.Warn("field fill failed, continuing page",
				zap.Stringer("page", page),
				zap.String("field", step.name),
				zap.Error(err))
		}
	}
	return nil
}

// fillFlightName drives the airline dropdown with its value-shape quirks:
// raw "CODE - NAME" first, then the alias table, then just the carrier name.
func (a *Automator) fillFlightName(value string) error {
	candidates := []string{value}
	if translated := a.tr.Translate(value, translate.CategoryAirline); translated != value {
		candidates = append(candidates, translated)
	}
	if name := translate.AirlineName(value); name != value {
		candidates = append(candidates, name)
	}
	return a.fillDropdownCandidates(idFlightName, candidates)
}

// preflight runs one scan+fix pass before attempting the forward click, for
// pages where partial fill is common. Distinct from the post-click recovery
// loop: it costs one scan and saves a rejected transition.
func (a *Automator) preflight(f *form.ApplicantForm) {
	if errs := a.scanValidation(); len(errs) > 0 {
		a.log.Debug("preflight found flagged fields", zap.Int("count", len(errs)))
		a.fixValidation(errs, f)
	}
}

// advance clicks the forward control and confirms arrival on the next page
// by landmark. A silent rejection (same page after the click) triggers the
// recovery engine, then a retry, up to the ceiling.
func (a *Automator) advance(from portal.Page, f *form.ApplicantForm) error {
	expected := from.Next()

	for attempt := 1; attempt <= navRetryCeiling; attempt++ {
		btn, err := browser.WaitReady(a.page, SelectorNextButton, fieldTimeout)
		if err != nil {
			return &form.AutomationError{
				Portal: string(portal.PortalECD), Step: from.String(),
				Cause: form.ErrNavigation, Details: "next button not found: " + err.Error(),
			}
		}
		if err := btn.Click(clickButtonLeft, 1); err != nil {
			return &form.AutomationError{
				Portal: string(portal.PortalECD), Step: from.String(),
				Cause: form.ErrNavigation, Details: "next click failed: " + err.Error(),
			}
		}

		browser.WaitDOMSettled(a.page, 3*time.Second)
		if err := a.waitForPage(expected, transitionTimeout); err == nil {
			a.log.Info("page transition confirmed",
				zap.Stringer("from", from), zap.Stringer("to", expected))
			return nil
		}

		// Still on the prior page: the portal rejected the transition
		// without saying so. Fix what it flagged and try again.
		a.log.Warn("transition rejected, scanning for validation errors",
			zap.Stringer("page", from), zap.Int("attempt", attempt))

		errs := a.scanValidation()
		if len(errs) > 0 {
			for _, ve := range errs {
				a.log.Debug("flagged field", zap.String("error", ve.String()))
			}
			a.fixValidation(errs, f)
		}
	}

	return &form.AutomationError{
		Portal: string(portal.PortalECD), Step: from.String(),
		Cause:   form.ErrValidationCeiling,
		Details: fmt.Sprintf("page %s rejected %d transition attempts", from, navRetryCeiling),
	}
}
