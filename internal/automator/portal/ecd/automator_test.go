package ecd

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/hendrawanz/ecard-filler/internal/automator/form"
	"github.com/hendrawanz/ecard-filler/internal/automator/portal"
	"github.com/hendrawanz/ecard-filler/internal/automator/testutil"
)

// TestMode
type TestMode string

const (
	TestModeMock    TestMode = "mock"    // Pure fixture tests only
	TestModeBrowser TestMode = "browser" // Drive a real local browser against static pages
	TestModeLive    TestMode = "live"    // Hit the real portal (dangerous!)
)

func getTestMode() TestMode {
	mode := os.Getenv("ECARD_TEST_MODE")
	if mode == "" {
		return TestModeMock
	}
	return TestMode(mode)
}

// skipUnlessMode skips test if not in specified mode
func skipUnlessMode(t *testing.T, required TestMode) {
	if getTestMode() != required {
		t.Skipf("Skipping: requires ECARD_TEST_MODE=%s", required)
	}
}

// Integration test - runs only with a local browser available
func TestAutomator_OpenPortal_StaticSite_Integration(t *testing.T) {
	skipUnlessMode(t, TestModeBrowser)

	site := testutil.NewStaticSite(testutil.WithVerbose(true))
	site.AddPage("/arrival-card", testutil.LoadFixture(t, "ecd", "personal_info"))

	a, err := New(
		WithHijacker(site.Middleware()),
		WithTimeout(30*time.Second),
		WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	autoErr := a.openPortal(t.Context())
	require.Nil(t, autoErr, "portal should open onto the personal information page")

	assert.Equal(t, portal.PagePersonalInfo, a.currentPage())
}

func TestAutomator_ExtractFromSuccessPage_Integration(t *testing.T) {
	skipUnlessMode(t, TestModeBrowser)

	site := testutil.NewStaticSite()
	site.AddPage("/arrival-card/submission-success", testutil.LoadFixture(t, "ecd", "success"))

	a, err := New(
		WithHijacker(site.Middleware()),
		WithPortalURL(PortalBaseURL+"/submission-success"),
		WithTimeout(30*time.Second),
		WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	page, err := a.newSessionPage(t.Context())
	require.NoError(t, err)
	require.NoError(t, page.Navigate(a.opts.portalURL))
	_ = page.WaitLoad()

	require.Equal(t, portal.PageSubmitted, a.currentPage())

	qr, details, err := a.extractArtifact()
	require.NoError(t, err)
	assert.NotEmpty(t, qr.ImageData)
	assert.Regexp(t, `^\d{12}$`, details.SubmissionID)
}

// The SPA routes to the success URL before the QR graphic renders; the poll
// must wait for the graphic, not just the page.
func TestAutomator_AwaitSuccess_QRRendersLate_Integration(t *testing.T) {
	skipUnlessMode(t, TestModeBrowser)

	site := testutil.NewStaticSite()
	site.AddPage("/arrival-card/submission-success", testutil.LoadFixture(t, "ecd", "success_delayedqr"))

	a, err := New(
		WithHijacker(site.Middleware()),
		WithPortalURL(PortalBaseURL+"/submission-success"),
		WithTimeout(60*time.Second),
		WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	page, err := a.newSessionPage(t.Context())
	require.NoError(t, err)
	require.NoError(t, page.Navigate(a.opts.portalURL))
	_ = page.WaitLoad()

	require.Equal(t, portal.PageSubmitted, a.currentPage())

	require.True(t, a.awaitSuccessPage(), "poll should wait out the late-rendering graphic")

	qr, _, err := a.extractArtifact()
	require.NoError(t, err)
	assert.NotEmpty(t, qr.ImageData)
}

// A success page that never renders a graphic must exhaust the poll budget
// and still reach extraction, so the failure reports the missing artifact
// rather than a navigation error.
func TestAutomator_AwaitSuccess_NoQRReportsMissingArtifact_Integration(t *testing.T) {
	skipUnlessMode(t, TestModeBrowser)

	site := testutil.NewStaticSite()
	site.AddPage("/arrival-card/submission-success", testutil.LoadFixture(t, "ecd", "success_noqr"))

	a, err := New(
		WithHijacker(site.Middleware()),
		WithPortalURL(PortalBaseURL+"/submission-success"),
		WithTimeout(60*time.Second),
		WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	page, err := a.newSessionPage(t.Context())
	require.NoError(t, err)
	require.NoError(t, page.Navigate(a.opts.portalURL))
	_ = page.WaitLoad()

	require.True(t, a.awaitSuccessPage(), "exhausted poll must still hand off to extraction")

	_, _, err = a.extractArtifact()
	require.ErrorIs(t, err, form.ErrNoArtifact)
}

// Re-filling an already-correct field is a no-op: the second fill must not
// touch the control at all.
func TestAutomator_FillText_SecondFillIsNoOp_Integration(t *testing.T) {
	skipUnlessMode(t, TestModeBrowser)

	site := testutil.NewStaticSite()
	site.AddPage("/arrival-card", testutil.LoadFixture(t, "ecd", "personal_info"))

	a, err := New(
		WithHijacker(site.Middleware()),
		WithTimeout(30*time.Second),
		WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	page, err := a.newSessionPage(t.Context())
	require.NoError(t, err)
	require.NoError(t, page.Navigate(a.opts.portalURL))
	_ = page.WaitLoad()

	const name = "JOHN MICHAEL DOE"
	require.NoError(t, a.fillText(idFullName, name))

	// Count input events from here on; an idempotent re-fill emits none.
	_, err = page.Eval(`() => {
		window.__inputEvents = 0;
		document.querySelector('input[id^="fullName"]')
			.addEventListener('input', () => window.__inputEvents++);
	}`)
	require.NoError(t, err)

	require.NoError(t, a.fillText(idFullName, name))

	el, err := page.Element(`input[id^="fullName"]`)
	require.NoError(t, err)
	value, err := el.Property("value")
	require.NoError(t, err)
	assert.Equal(t, name, value.Str())

	events, err := page.Eval(`() => window.__inputEvents`)
	require.NoError(t, err)
	assert.Equal(t, 0, events.Value.Int())
}

// One scan+fix pass over a page with flagged fields must leave nothing
// flagged on the rescan.
func TestAutomator_Recovery_ConvergesToZeroFlaggedFields_Integration(t *testing.T) {
	skipUnlessMode(t, TestModeBrowser)

	site := testutil.NewStaticSite()
	site.AddPage("/arrival-card/personal-information", testutil.LoadFixture(t, "ecd", "personal_invalid"))

	a, err := New(
		WithHijacker(site.Middleware()),
		WithPortalURL(PortalBaseURL+"/personal-information"),
		WithTimeout(30*time.Second),
		WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	page, err := a.newSessionPage(t.Context())
	require.NoError(t, err)
	require.NoError(t, page.Navigate(a.opts.portalURL))
	_ = page.WaitLoad()

	f := &form.ApplicantForm{
		FullName: "JOHN MICHAEL DOE",
		Email:    "john.doe@example.com",
	}

	flagged := a.scanValidation()
	require.Len(t, flagged, 2, "both red-bordered inputs should be flagged")

	require.True(t, a.fixValidation(flagged, f))

	assert.Empty(t, a.scanValidation(), "no fields may stay flagged after the fix pass")
}
