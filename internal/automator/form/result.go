package form

import "time"

// QRCode is the extracted QR graphic, wrapped for image delivery.
type QRCode struct {
	ImageData string // base64-encoded image payload
	Format    string // "png" unless the portal serves something else
	Size      int    // decoded payload size in bytes
}

// SubmissionDetails holds the reference fields scraped off the success page.
type SubmissionDetails struct {
	SubmissionID   string // arrival-card number, fixed-length digits
	PassengerName  string
	PassportNumber string
	Nationality    string
	ArrivalDate    string
	DepartureDate  string
	Status         string
	SubmissionTime time.Time
}

// ErrorInfo is the uniform failure shape returned to the caller.
type ErrorInfo struct {
	Code    string
	Message string
	Step    string
	Details string
}

// Result is the outcome of one automation run. On failure FallbackURL always
// carries the portal's public URL so the user can finish manually.
type Result struct {
	Success     bool
	QRCode      *QRCode
	Details     *SubmissionDetails
	Error       *ErrorInfo
	FallbackURL string
}

// Failure builds the uniform failure result from an AutomationError.
func Failure(err *AutomationError, fallbackURL string) *Result {
	return &Result{
		Success: false,
		Error: &ErrorInfo{
			Code:    err.Code(),
			Message: err.Cause.Error(),
			Step:    err.Step,
			Details: err.Details,
		},
		FallbackURL: fallbackURL,
	}
}
