package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputPoll(t *testing.T) {
	src := StaticInput{}
	in := InputData{Source: src}

	src.Hold(ControlLeft, ControlFire)
	in.Poll()
	assert.True(t, in.Held[ControlLeft])
	assert.True(t, in.Held[ControlFire])
	assert.False(t, in.Held[ControlUp])

	// Held state is sampled, not live
	src.Hold(ControlUp)
	assert.True(t, in.Held[ControlLeft])
	in.Poll()
	assert.False(t, in.Held[ControlLeft])
	assert.True(t, in.Held[ControlUp])
}

func TestInputPoll_NoSource(t *testing.T) {
	in := InputData{}
	in.Held[ControlFire] = true

	in.Poll()

	assert.Equal(t, [ControlCount]bool{}, in.Held)
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "fire", ControlFire.String())
	assert.Equal(t, "unknown", ControlCount.String())
}
