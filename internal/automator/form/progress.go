package form

import "time"

// ProgressEvent is emitted at fixed milestones of a run. Progress is
// monotonically non-decreasing across one run; no stronger ordering is
// guaranteed.
type ProgressEvent struct {
	Step      string
	Progress  int // 0-100
	Message   string
	Timestamp time.Time
}

// ProgressFunc receives progress events. May be nil.
type ProgressFunc func(ProgressEvent)

// Milestone step names, in rough run order.
const (
	StepLaunch      = "browser_launch"
	StepNavigate    = "portal_navigation"
	StepPersonal    = "personal_information"
	StepTravel      = "travel_details"
	StepTransport   = "transportation_address"
	StepDeclaration = "declaration"
	StepGroup       = "group_travellers"
	StepSubmit      = "submission"
	StepExtract     = "artifact_extraction"
)

// ProgressEmitter clamps emitted percentages so callers always observe a
// non-decreasing sequence even if milestones fire out of order after a
// recovery retry.
type ProgressEmitter struct {
	fn   ProgressFunc
	last int
}

func NewProgressEmitter(fn ProgressFunc) *ProgressEmitter {
	return &ProgressEmitter{fn: fn}
}

// Emit reports a milestone. Percentages below the high-water mark are raised
// to it.
func (p *ProgressEmitter) Emit(step string, progress int, message string) {
	if p == nil || p.fn == nil {
		return
	}
	if progress < p.last {
		progress = p.last
	}
	if progress > 100 {
		progress = 100
	}
	p.last = progress
	p.fn(ProgressEvent{
		Step:      step,
		Progress:  progress,
		Message:   message,
		Timestamp: time.Now(),
	})
}
