package form

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutomationError_Code(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		want  string
	}{
		{"launch", ErrLaunchFailed, "BROWSER_LAUNCH_FAILED"},
		{"navigation", ErrNavigation, "NAVIGATION_FAILED"},
		{"validation ceiling", ErrValidationCeiling, "VALIDATION_FAILED"},
		{"no artifact", ErrNoArtifact, "QR_EXTRACTION_FAILED"},
		{"group aborted", ErrGroupAborted, "GROUP_FLOW_FAILED"},
		{"timeout", ErrTimeout, "TIMEOUT"},
		{"unrecognized", errors.New("something else"), "AUTOMATION_FAILED"},
		{"wrapped cause", fmt.Errorf("advance: %w", ErrValidationCeiling), "VALIDATION_FAILED"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &AutomationError{Portal: "ECD", Step: StepSubmit, Cause: tc.cause}
			assert.Equal(t, tc.want, e.Code())
		})
	}
}

func TestAutomationError_Unwrap(t *testing.T) {
	e := &AutomationError{
		Portal:  "ECD",
		Step:    StepNavigate,
		Cause:   ErrNavigation,
		Details: "landmark never appeared",
	}

	assert.ErrorIs(t, e, ErrNavigation)
	assert.Contains(t, e.Error(), "ECD")
	assert.Contains(t, e.Error(), StepNavigate)
	assert.Contains(t, e.Error(), "landmark never appeared")
}
