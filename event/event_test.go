package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maschinekit/maschine/event"
)

func TestContextDrainsInOrder(t *testing.T) {
	ctx := event.NewContext()
	ctx.Add(event.ButtonChange{Button: event.Play, Pressed: true})
	ctx.Add(event.EncoderChange{Direction: event.Down})
	ctx.Add(event.PadChange{Pad: 3, Velocity: 0x7F})

	assert.Equal(t, 3, ctx.Len())

	e, ok := ctx.Next()
	assert.True(t, ok)
	assert.Equal(t, event.ButtonChange{Button: event.Play, Pressed: true}, e)

	e, ok = ctx.Next()
	assert.True(t, ok)
	assert.Equal(t, event.EncoderChange{Direction: event.Down}, e)

	e, ok = ctx.Next()
	assert.True(t, ok)
	assert.Equal(t, event.PadChange{Pad: 3, Velocity: 0x7F}, e)

	_, ok = ctx.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, ctx.Len())
}

func TestButtonNames(t *testing.T) {
	assert.Equal(t, "erase", event.Erase.String())
	assert.Equal(t, "scene", event.Scene.String())
	assert.Equal(t, "unknown", event.Unknown.String())
	assert.Equal(t, "unknown", event.Button(200).String())
}

func TestDirectionNames(t *testing.T) {
	assert.Equal(t, "up", event.Up.String())
	assert.Equal(t, "down", event.Down.String())
}
