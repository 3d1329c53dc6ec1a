package form

import (
	"errors"
	"fmt"
)

var (
	// ErrLaunchFailed means the browser process could not be started.
	// Usually environment misconfiguration (missing browser binary).
	ErrLaunchFailed = errors.New("browser launch failed")

	// ErrNavigation means the portal was unreachable or a page never
	// presented its landmark within the step timeout.
	ErrNavigation = errors.New("portal navigation failed")

	// ErrValidationCeiling means forward navigation kept getting rejected
	// after the recovery retry ceiling was exhausted.
	ErrValidationCeiling = errors.New("validation retry ceiling exceeded")

	// ErrNoArtifact means the success page never produced a QR graphic.
	// This is a hard failure even if the submission may have landed
	// server-side; a result without the artifact is unusable.
	ErrNoArtifact = errors.New("no QR artifact found")

	ErrGroupAborted = errors.New("group traveller flow aborted")
	ErrTimeout      = errors.New("operation timed out")
)

// AutomationError provides detailed error context for a failed run.
type AutomationError struct {
	Portal  string
	Step    string
	Cause   error
	Details string
}

func (e *AutomationError) Error() string {
	return fmt.Sprintf("[%s] %s failed: %v - %s", e.Portal, e.Step, e.Cause, e.Details)
}

func (e *AutomationError) Unwrap() error {
	return e.Cause
}

// Code maps the underlying cause to a stable machine-readable code for the
// uniform failure result shape.
func (e *AutomationError) Code() string {
	switch {
	case errors.Is(e.Cause, ErrLaunchFailed):
		return "BROWSER_LAUNCH_FAILED"
	case errors.Is(e.Cause, ErrNavigation):
		return "NAVIGATION_FAILED"
	case errors.Is(e.Cause, ErrValidationCeiling):
		return "VALIDATION_FAILED"
	case errors.Is(e.Cause, ErrNoArtifact):
		return "QR_EXTRACTION_FAILED"
	case errors.Is(e.Cause, ErrGroupAborted):
		return "GROUP_FLOW_FAILED"
	case errors.Is(e.Cause, ErrTimeout):
		return "TIMEOUT"
	default:
		return "AUTOMATION_FAILED"
	}
}

// FieldKind buckets a portal control into a logical form field so the
// recovery engine can pick a fixer.
type FieldKind string

const (
	FieldFullName    FieldKind = "fullName"
	FieldPassport    FieldKind = "passportNumber"
	FieldNationality FieldKind = "nationality"
	FieldBirthDate   FieldKind = "dateOfBirth"
	FieldArrival     FieldKind = "arrivalDate"
	FieldDeparture   FieldKind = "departureDate"
	FieldFlight      FieldKind = "flightNumber"
	FieldPurpose     FieldKind = "purposeOfVisit"
	FieldPort        FieldKind = "arrivalPort"
	FieldAddress     FieldKind = "address"
	FieldOccupation  FieldKind = "occupation"
	FieldPhone       FieldKind = "phone"
	FieldEmail       FieldKind = "email"
	FieldVisaNumber  FieldKind = "visaNumber"
	FieldUnknown     FieldKind = "unknown"
)

// ValidationError is an ephemeral record produced by the recovery scan and
// consumed immediately by the fixer. Not retained across attempts.
type ValidationError struct {
	Field    FieldKind
	Selector string
	Issue    string
}

func (v ValidationError) String() string {
	return fmt.Sprintf("%s (%s): %s", v.Field, v.Selector, v.Issue)
}
