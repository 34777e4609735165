package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPracticalSessionFlow(t *testing.T) {
	fired := 0
	s := NewPracticalSession(func() { fired++ })
	assert.Equal(t, PracticalIntro, s.State())

	// success before the exercise starts is ignored
	s.HandleSuccess()
	assert.Zero(t, fired)
	assert.False(t, s.SuccessShown())

	s.Begin()
	assert.Equal(t, PracticalInteractive, s.State())
	s.Begin() // no-op

	s.HandleSuccess()
	assert.True(t, s.SuccessShown())
	assert.True(t, s.Interacted())
	assert.Equal(t, 1, fired)

	s.DismissSuccess()
	assert.False(t, s.SuccessShown())
	assert.Equal(t, PracticalInteractive, s.State())
}

func TestPracticalSessionCallbackFiresOnce(t *testing.T) {
	fired := 0
	s := NewPracticalSession(func() { fired++ })
	s.Begin()

	for i := 0; i < 5; i++ {
		s.HandleSuccess()
		s.DismissSuccess()
	}
	assert.Equal(t, 1, fired, "repeat successes must not re-fire the callback")
	assert.True(t, s.Interacted())
}

func TestPracticalSessionNilCallback(t *testing.T) {
	s := NewPracticalSession(nil)
	s.Begin()
	s.HandleSuccess() // must not panic
	assert.True(t, s.Interacted())
}
