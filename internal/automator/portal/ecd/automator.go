// Package ecd automates the e-arrival-card declaration wizard on the
// government immigration portal: a multi-page form driven through a headless
// browser, producing a QR artifact on success.
package ecd

import (
	"context"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"go.uber.org/zap"

	"github.com/hendrawanz/ecard-filler/internal/automator/browser"
	"github.com/hendrawanz/ecard-filler/internal/automator/form"
	"github.com/hendrawanz/ecard-filler/internal/automator/portal"
	"github.com/hendrawanz/ecard-filler/internal/automator/translate"
)

const clickButtonLeft = proto.InputMouseButtonLeft

// Automator drives one portal submission over a single browser session and
// a single page. Fully sequential: every browser interaction completes
// before the next begins, and the session is never shared across runs.
type Automator struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	router   *rod.HijackRouter

	log      *zap.Logger
	tr       *translate.Translator
	progress *form.ProgressEmitter
	opts     options
}

type options struct {
	headless   bool
	keepOpen   bool
	timeout    time.Duration
	portalURL  string
	logger     *zap.Logger
	progressFn form.ProgressFunc
	hijack     func(*rod.Hijack)
}

// Option configures an Automator.
type Option func(*options)

// WithHeadless toggles headless launch. Defaults to true.
func WithHeadless(enabled bool) Option {
	return func(o *options) { o.headless = enabled }
}

// WithKeepOpen retains the browser process on Close for manual inspection.
// Debug aid only; the session leaks until killed by hand.
func WithKeepOpen(enabled bool) Option {
	return func(o *options) { o.keepOpen = enabled }
}

// WithTimeout sets the overall wall-clock ceiling for one run. Per-step
// waits stay bounded independently. Defaults to 5 minutes.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithPortalURL overrides the portal entry point. Used by tests to run
// against a replayed static site.
func WithPortalURL(url string) Option {
	return func(o *options) { o.portalURL = url }
}

// WithLogger sets the structured logger. Defaults to a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithProgress registers a milestone progress callback.
func WithProgress(fn form.ProgressFunc) Option {
	return func(o *options) { o.progressFn = fn }
}

// WithHijacker installs a request hijack handler on the session, serving
// recorded responses in tests.
func WithHijacker(handler func(*rod.Hijack)) Option {
	return func(o *options) { o.hijack = handler }
}

// New launches the browser and prepares an automator. A launch failure is
// fatal and not retried within a run; it almost always means the browser
// binary is missing or not executable on this host.
func New(opts ...Option) (*Automator, error) {
	o := options{
		headless:  true,
		timeout:   5 * time.Minute,
		portalURL: PortalBaseURL,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	l := launcher.New().Headless(o.headless)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, &form.AutomationError{
			Portal: string(portal.PortalECD), Step: form.StepLaunch,
			Cause:   form.ErrLaunchFailed,
			Details: err.Error() + " (is a Chromium binary installed and executable?)",
		}
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, &form.AutomationError{
			Portal: string(portal.PortalECD), Step: form.StepLaunch,
			Cause: form.ErrLaunchFailed, Details: "connect to browser: " + err.Error(),
		}
	}

	return &Automator{
		browser:  b,
		launcher: l,
		log:      o.logger,
		tr:       translate.NewTranslator(),
		progress: form.NewProgressEmitter(o.progressFn),
		opts:     o,
	}, nil
}

// Close tears the browser session down. All exit paths run through here
// except keep-open debug mode, which deliberately retains the process.
func (a *Automator) Close() error {
	if a.opts.keepOpen {
		a.log.Info("keep-open mode: browser retained for inspection")
		return nil
	}

	if a.router != nil {
		_ = a.router.Stop()
	}
	if err := a.browser.Close(); err != nil {
		return err
	}
	a.launcher.Cleanup()
	return nil
}

// Run performs one full submission. The Result is always non-nil; on
// failure it carries the uniform error shape plus the portal's public URL
// so the user can finish manually, and err holds the underlying
// AutomationError.
func (a *Automator) Run(ctx context.Context, f *form.ApplicantForm) (*form.Result, error) {
	if a.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.opts.timeout)
		defer cancel()
	}

	if err := a.openPortal(ctx); err != nil {
		return form.Failure(err, a.opts.portalURL), err
	}

	if err := a.walkWizard(f); err != nil {
		return form.Failure(err, a.opts.portalURL), err
	}

	a.progress.Emit(form.StepSubmit, 90, "submitting declaration")
	qr, details, err := a.submit(f)
	if err != nil {
		autoErr := err.(*form.AutomationError)
		return form.Failure(autoErr, a.opts.portalURL), autoErr
	}

	a.progress.Emit(form.StepExtract, 100, "QR artifact extracted")
	return &form.Result{
		Success:     true,
		QRCode:      qr,
		Details:     details,
		FallbackURL: a.opts.portalURL,
	}, nil
}

// newSessionPage creates the run's single stealth page and installs the
// hijacker if configured.
func (a *Automator) newSessionPage(ctx context.Context) (*rod.Page, error) {
	page, err := stealth.Page(a.browser.Context(ctx))
	if err != nil {
		return nil, err
	}
	a.page = page

	if a.opts.hijack != nil {
		router := page.HijackRequests()
		if err := router.Add("*", "", a.opts.hijack); err != nil {
			return nil, err
		}
		go router.Run()
		a.router = router
	}
	return page, nil
}

// openPortal creates the session page and navigates to the first wizard
// page.
func (a *Automator) openPortal(ctx context.Context) *form.AutomationError {
	a.progress.Emit(form.StepLaunch, 5, "browser session ready")

	if _, err := a.newSessionPage(ctx); err != nil {
		return &form.AutomationError{
			Portal: string(portal.PortalECD), Step: form.StepLaunch,
			Cause: form.ErrLaunchFailed, Details: "create page: " + err.Error(),
		}
	}

	a.progress.Emit(form.StepNavigate, 10, "opening portal")
	if err := a.page.Navigate(a.opts.portalURL); err != nil {
		return &form.AutomationError{
			Portal: string(portal.PortalECD), Step: form.StepNavigate,
			Cause: form.ErrNavigation, Details: a.opts.portalURL + ": " + err.Error(),
		}
	}
	_ = a.page.WaitLoad()
	browser.WaitDOMSettled(a.page, 5*time.Second)

	if err := a.waitForPage(portal.PagePersonalInfo, pageLoadTimeout); err != nil {
		return &form.AutomationError{
			Portal: string(portal.PortalECD), Step: form.StepNavigate,
			Cause: form.ErrNavigation, Details: err.Error(),
		}
	}
	return nil
}

// pageMilestones maps each wizard page to its progress milestone.
var pageMilestones = map[portal.Page]struct {
	step string
	pct  int
}{
	portal.PagePersonalInfo:     {form.StepPersonal, 25},
	portal.PageTravelDetails:    {form.StepTravel, 45},
	portal.PageTransportAddress: {form.StepTransport, 60},
	portal.PageDeclaration:      {form.StepDeclaration, 75},
}

// walkWizard drives the state machine from the first page up to (but not
// through) final submission. The current page is re-derived from the DOM at
// every step.
func (a *Automator) walkWizard(f *form.ApplicantForm) *form.AutomationError {
	for {
		current := a.currentPage()
		if current == portal.PageDeclaration || current == portal.PageSubmitted {
			break
		}
		if current == portal.PageUnknown {
			return &form.AutomationError{
				Portal: string(portal.PortalECD), Step: form.StepNavigate,
				Cause: form.ErrNavigation, Details: "lost wizard state (url " + a.pageURL() + ")",
			}
		}

		if m, ok := pageMilestones[current]; ok {
			a.progress.Emit(m.step, m.pct, "filling "+current.String())
		}

		if err := a.fillCurrentPage(current, f); err != nil {
			return err
		}
		a.preflight(f)

		if err := a.advance(current, f); err != nil {
			return err.(*form.AutomationError)
		}
	}

	// Declaration page still needs filling; submission itself is the
	// caller's next move.
	if a.currentPage() == portal.PageDeclaration {
		if m, ok := pageMilestones[portal.PageDeclaration]; ok {
			a.progress.Emit(m.step, m.pct, "filling Declaration")
		}
		if err := a.fillCurrentPage(portal.PageDeclaration, f); err != nil {
			return err
		}
		a.preflight(f)
	}
	return nil
}

// fillCurrentPage fills either the single-traveller page or, when the
// portal shaped this page as a group card flow, the per-traveller loop.
func (a *Automator) fillCurrentPage(current portal.Page, f *form.ApplicantForm) *form.AutomationError {
	groupCapable := current == portal.PageTravelDetails || current == portal.PageDeclaration

	if groupCapable {
		html, err := a.pageHTML()
		if err == nil && IsGroupPage(a.pageURL(), html) {
			a.progress.Emit(form.StepGroup, pageMilestones[current].pct, "processing traveller group")
			if err := a.runGroupPage(current, f); err != nil {
				return err.(*form.AutomationError)
			}
			return nil
		}
	}

	if err := a.fillPage(current, f); err != nil {
		return &form.AutomationError{
			Portal: string(portal.PortalECD), Step: current.String(),
			Cause: form.ErrNavigation, Details: err.Error(),
		}
	}
	return nil
}
