// Package portal defines the abstractions shared by portal automator
// implementations.
package portal

import (
	"context"

	"github.com/hendrawanz/ecard-filler/internal/automator/form"
)

// Automator drives one portal's arrival-card wizard end to end.
type Automator interface {
	// Run performs a full submission for the given form. The returned
	// Result is always non-nil; on failure it carries the uniform error
	// shape plus the portal's public fallback URL, and err holds the
	// underlying AutomationError.
	Run(ctx context.Context, f *form.ApplicantForm) (*form.Result, error)

	// Close tears the browser session down. A no-op in debug keep-open
	// mode.
	Close() error
}

// Code identifies a portal implementation.
type Code string

const (
	PortalECD Code = "ECD" // electronic customs/arrival declaration portal
)

// Page enumerates the wizard pages in fixed forward order. The current page
// is never trusted internal state: it is re-derived from DOM landmarks,
// because the portal can silently reject a transition and leave the
// automation on the prior page.
type Page int

const (
	PageUnknown Page = iota
	PagePersonalInfo
	PageTravelDetails
	PageTransportAddress
	PageDeclaration
	PageSubmitted
)

func (p Page) String() string {
	switch p {
	case PagePersonalInfo:
		return "PersonalInfo"
	case PageTravelDetails:
		return "TravelDetails"
	case PageTransportAddress:
		return "TransportAddress"
	case PageDeclaration:
		return "Declaration"
	case PageSubmitted:
		return "Submitted"
	default:
		return "Unknown"
	}
}

// Next returns the expected successor page. There are no backward
// transitions in normal operation.
func (p Page) Next() Page {
	switch p {
	case PagePersonalInfo:
		return PageTravelDetails
	case PageTravelDetails:
		return PageTransportAddress
	case PageTransportAddress:
		return PageDeclaration
	case PageDeclaration:
		return PageSubmitted
	default:
		return PageUnknown
	}
}
