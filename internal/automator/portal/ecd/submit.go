package ecd

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hendrawanz/ecard-filler/internal/automator/browser"
	"github.com/hendrawanz/ecard-filler/internal/automator/form"
	"github.com/hendrawanz/ecard-filler/internal/automator/portal"
)

const (
	dialogWait          = 5 * time.Second
	successPollAttempts = 10
	successPollDelay    = time.Second
)

// submit triggers final submission from the declaration page, handles the
// confirmation dialog, waits out the success page and extracts the QR
// artifact. Called exactly once per run, for both individual and group
// flows.
func (a *Automator) submit(f *form.ApplicantForm) (*form.QRCode, *form.SubmissionDetails, error) {
	for attempt := 1; attempt <= navRetryCeiling; attempt++ {
		btn, err := browser.WaitReady(a.page, SelectorSubmitButton, fieldTimeout)
		if err != nil {
			return nil, nil, &form.AutomationError{
				Portal: string(portal.PortalECD), Step: form.StepSubmit,
				Cause: form.ErrNavigation, Details: "submit button not found: " + err.Error(),
			}
		}
		if err := btn.Click(clickButtonLeft, 1); err != nil {
			return nil, nil, &form.AutomationError{
				Portal: string(portal.PortalECD), Step: form.StepSubmit,
				Cause: form.ErrNavigation, Details: "submit click failed: " + err.Error(),
			}
		}

		a.confirmDialogIfPresent()

		if a.awaitSuccessPage() {
			return a.extractArtifact()
		}

		// Submission rejected; the portal flags offending fields the
		// same way it does on intermediate pages.
		a.log.Warn("submission not accepted, running recovery", zap.Int("attempt", attempt))
		if errs := a.scanValidation(); len(errs) > 0 {
			a.fixValidation(errs, f)
		}
	}

	return nil, nil, &form.AutomationError{
		Portal: string(portal.PortalECD), Step: form.StepSubmit,
		Cause:   form.ErrValidationCeiling,
		Details: fmt.Sprintf("submission rejected %d times", navRetryCeiling),
	}
}

// confirmDialogIfPresent waits briefly for the portal's pre-submit
// confirmation dialog and clicks its affirmative control. The click is
// scoped strictly to the dialog container; the page keeps sibling
// cancel-style buttons elsewhere that must never be matched.
func (a *Automator) confirmDialogIfPresent() {
	deadline := time.Now().Add(dialogWait)

	for time.Now().Before(deadline) {
		dialog, err := browser.VisibleBySelector(a.page, SelectorDialog)
		if err != nil {
			time.Sleep(200 * time.Millisecond)
			continue
		}

		if !dialogHasConfirmationWording(rodElementText(dialog)) {
			time.Sleep(200 * time.Millisecond)
			continue
		}

		confirm, err := dialog.Element(`button[class*="confirm"]`)
		if err != nil {
			a.log.Warn("confirmation dialog without a confirm control")
			return
		}
		if err := confirm.Click(clickButtonLeft, 1); err != nil {
			a.log.Warn("failed to confirm submission dialog", zap.Error(err))
			return
		}
		a.log.Debug("submission dialog confirmed")
		return
	}
}

func dialogHasConfirmationWording(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range confirmationWording {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// awaitSuccessPage polls a bounded number of times for the success-page
// signature: the submitted page showing its QR graphic. Group submissions
// land on an intermediate page first and need the "view QR" navigation
// followed once before the graphic appears. The SPA may also route to the
// success URL before rendering the graphic, so arrival alone never ends
// the poll.
func (a *Automator) awaitSuccessPage() bool {
	followedViewQR := false
	sawSubmitted := false

	for i := 0; i < successPollAttempts; i++ {
		html, err := a.pageHTML()
		if err == nil && DetectPage(a.pageURL(), html) == portal.PageSubmitted {
			sawSubmitted = true
			if pageHasQR(html) {
				return true
			}
			if !followedViewQR && hasViewQRLink(html) {
				if link, err := browser.VisibleBySelector(a.page, SelectorViewQRLink); err == nil {
					_ = link.Click(clickButtonLeft, 1)
					followedViewQR = true
					browser.WaitDOMSettled(a.page, 3*time.Second)
					continue
				}
			}
		}
		time.Sleep(successPollDelay)
	}

	// Success page reached but no graphic within the budget: hand the final
	// snapshot to extraction so the failure reports the missing artifact.
	// Returning false here would re-click a Submit button that no longer
	// exists and misreport the failure as navigation.
	return sawSubmitted
}

func pageHasQR(html string) bool {
	_, _, err := ParseArtifact(html)
	return err == nil
}

// extractArtifact reads the final page and produces the run's artifact. No
// QR graphic means the run failed, regardless of what the portal may have
// recorded server-side.
func (a *Automator) extractArtifact() (*form.QRCode, *form.SubmissionDetails, error) {
	html, err := a.pageHTML()
	if err != nil {
		return nil, nil, &form.AutomationError{
			Portal: string(portal.PortalECD), Step: form.StepExtract,
			Cause: form.ErrNoArtifact, Details: "could not snapshot success page: " + err.Error(),
		}
	}

	qr, details, err := ParseArtifact(html)
	if err != nil {
		return nil, nil, &form.AutomationError{
			Portal: string(portal.PortalECD), Step: form.StepExtract,
			Cause: form.ErrNoArtifact, Details: err.Error(),
		}
	}

	a.log.Info("artifact extracted",
		zap.String("submissionID", details.SubmissionID),
		zap.String("format", qr.Format),
		zap.Int("size", qr.Size))
	return qr, details, nil
}
