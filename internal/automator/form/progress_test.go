package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressEmitter_MonotonicClamping(t *testing.T) {
	var seen []int
	e := NewProgressEmitter(func(ev ProgressEvent) {
		seen = append(seen, ev.Progress)
	})

	e.Emit(StepLaunch, 5, "launch")
	e.Emit(StepNavigate, 10, "navigate")
	// A recovery retry re-emits an earlier milestone; the percentage must
	// not move backwards.
	e.Emit(StepPersonal, 25, "personal")
	e.Emit(StepNavigate, 10, "retry navigate")
	e.Emit(StepTravel, 45, "travel")

	require.Equal(t, []int{5, 10, 25, 25, 45}, seen)
	for i := 1; i < len(seen); i++ {
		assert.GreaterOrEqual(t, seen[i], seen[i-1])
	}
}

func TestProgressEmitter_CapsAtHundred(t *testing.T) {
	var last ProgressEvent
	e := NewProgressEmitter(func(ev ProgressEvent) { last = ev })

	e.Emit(StepExtract, 140, "done")

	assert.Equal(t, 100, last.Progress)
	assert.Equal(t, StepExtract, last.Step)
	assert.False(t, last.Timestamp.IsZero())
}

func TestProgressEmitter_NilSafe(t *testing.T) {
	var e *ProgressEmitter
	assert.NotPanics(t, func() { e.Emit(StepLaunch, 5, "launch") })

	assert.NotPanics(t, func() {
		NewProgressEmitter(nil).Emit(StepLaunch, 5, "launch")
	})
}
