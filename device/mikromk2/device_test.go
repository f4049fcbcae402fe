package mikromk2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maschinekit/maschine/canvas"
	"github.com/maschinekit/maschine/colour"
	"github.com/maschinekit/maschine/device"
	"github.com/maschinekit/maschine/event"
)

var errTransport = errors.New("transport broken")

// fakeTransport scripts reads and records writes. Exhausted reads return
// zero bytes, matching a HID read with nothing pending.
type fakeTransport struct {
	reads  [][]byte
	writes [][]byte

	readErr        error
	failWriteAfter int // fail the Nth write (0-based); -1 never fails
	readCount      int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{failWriteAfter: -1}
}

func (f *fakeTransport) Read(p []byte) (int, error) {
	f.readCount++
	if f.readErr != nil {
		return 0, f.readErr
	}
	if len(f.reads) == 0 {
		return 0, nil
	}
	r := f.reads[0]
	f.reads = f.reads[1:]
	return copy(p, r), nil
}

func (f *fakeTransport) Write(p []byte) (int, error) {
	if f.failWriteAfter >= 0 && len(f.writes) == f.failWriteAfter {
		return 0, errTransport
	}
	f.writes = append(f.writes, append([]byte(nil), p...))
	return len(p), nil
}

func buttonReport(mask [4]byte, encoder byte) []byte {
	return []byte{tagButtons, mask[0], mask[1], mask[2], mask[3], encoder}
}

func padReport(channels ...[2]byte) []byte {
	r := make([]byte, 1+64)
	r[0] = tagPads
	for i, ch := range channels {
		r[1+2*i] = ch[0]
		r[2+2*i] = ch[1]
	}
	return r
}

func drain(ctx *event.Context) []event.Event {
	var out []event.Event
	for {
		e, ok := ctx.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestTickPhaseRotation(t *testing.T) {
	tr := newFakeTransport()
	d := New(tr, nil, nil)

	// Phase 0: a fresh driver transmits the whole frame.
	require.NoError(t, d.Tick(event.NewContext()))
	assert.Len(t, tr.writes, 4)
	assert.Zero(t, tr.readCount)

	// Phase 1: the LED table starts dirty and goes out as one report.
	require.NoError(t, d.Tick(event.NewContext()))
	assert.Len(t, tr.writes, 5)
	assert.Zero(t, tr.readCount)

	// Phase 2: polling reads up to the attempt bound, no writes.
	require.NoError(t, d.Tick(event.NewContext()))
	assert.Len(t, tr.writes, 5)
	assert.Equal(t, pollAttempts, tr.readCount)

	// Back to phase 0 with nothing dirty: no traffic.
	require.NoError(t, d.Tick(event.NewContext()))
	assert.Len(t, tr.writes, 5)
	assert.Equal(t, pollAttempts, tr.readCount)
}

func TestDisplayChunkLayout(t *testing.T) {
	tr := newFakeTransport()
	d := New(tr, nil, nil)

	data := d.Display().Data()
	for i := range data {
		data[i] = byte(i)
	}

	require.NoError(t, d.Tick(event.NewContext()))
	require.Len(t, tr.writes, 4)

	for i, w := range tr.writes {
		row := byte(2 * i)
		require.Len(t, w, 9+displayChunkBytes)
		assert.Equal(t, []byte{displayAddress, 0x00, 0x00, row, 0x00, 0x80, 0x00, 0x02, 0x00}, w[:9])
		offset := int(row) * displayWidth
		assert.Equal(t, data[offset:offset+displayChunkBytes], w[9:])
	}

	assert.False(t, d.Display().IsDirty())
}

func TestDisplayRetransmitsOnlyWhenDirty(t *testing.T) {
	tr := newFakeTransport()
	d := New(tr, nil, nil)
	d.ledsDirty = false

	require.NoError(t, d.Tick(event.NewContext()))
	require.Len(t, tr.writes, 4)

	// Full rotation without mutations: silent.
	for i := 0; i < 3; i++ {
		require.NoError(t, d.Tick(event.NewContext()))
	}
	assert.Len(t, tr.writes, 4)

	// Any canvas mutation retransmits the whole frame.
	d.Display().SetPixel(0, 0, canvas.PixelOn)
	for i := 0; i < 3; i++ {
		require.NoError(t, d.Tick(event.NewContext()))
	}
	assert.Len(t, tr.writes, 8)
}

func TestDisplayFailureResendsWholeFrame(t *testing.T) {
	tr := newFakeTransport()
	tr.failWriteAfter = 2 // third chunk fails
	d := New(tr, nil, nil)

	err := d.Tick(event.NewContext())
	require.ErrorIs(t, err, errTransport)
	assert.True(t, d.Display().IsDirty(), "a partial frame stays dirty")
	assert.Len(t, tr.writes, 2)

	// The failed phase is retried on the next tick, from chunk zero.
	tr.failWriteAfter = -1
	require.NoError(t, d.Tick(event.NewContext()))
	assert.Len(t, tr.writes, 6)
	assert.Equal(t, byte(0), tr.writes[2][3], "resend starts at band row 0")
	assert.False(t, d.Display().IsDirty())
}

func TestLEDReportLayout(t *testing.T) {
	tr := newFakeTransport()
	d := New(tr, nil, nil)
	d.Display().ClearDirtyFlag()

	d.SetButtonLED(event.Play, colour.White)
	require.NoError(t, d.Tick(event.NewContext())) // display, idle
	require.NoError(t, d.Tick(event.NewContext())) // leds

	require.Len(t, tr.writes, 1)
	w := tr.writes[0]
	require.Len(t, w, 1+ledCount)
	assert.Equal(t, byte(ledAddress), w[0])
	assert.Equal(t, byte(0xFF), w[1+ledPlay])
	assert.False(t, d.ledsDirty)
}

func TestLEDFailureKeepsDirty(t *testing.T) {
	tr := newFakeTransport()
	tr.failWriteAfter = 0
	d := New(tr, nil, nil)
	d.Display().ClearDirtyFlag()

	require.NoError(t, d.Tick(event.NewContext())) // display, idle
	err := d.Tick(event.NewContext())
	require.ErrorIs(t, err, errTransport)
	assert.True(t, d.ledsDirty)
}

func TestButtonEventsFollowBitTransitions(t *testing.T) {
	tr := newFakeTransport()
	d := New(tr, nil, nil)

	// Play is scan slot 0x03: byte 0, bit 3.
	ctx := event.NewContext()
	require.NoError(t, d.processButtons(buttonReport([4]byte{1 << 3}, 0)[1:], ctx))
	events := drain(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, event.ButtonChange{Button: event.Play, Pressed: true}, events[0])

	// The identical report is idempotent.
	ctx = event.NewContext()
	require.NoError(t, d.processButtons(buttonReport([4]byte{1 << 3}, 0)[1:], ctx))
	assert.Empty(t, drain(ctx))

	// Release emits exactly one transition.
	ctx = event.NewContext()
	require.NoError(t, d.processButtons(buttonReport([4]byte{}, 0)[1:], ctx))
	events = drain(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, event.ButtonChange{Button: event.Play, Pressed: false}, events[0])
}

func TestShiftIsALatchNotAnEvent(t *testing.T) {
	tr := newFakeTransport()
	d := New(tr, nil, nil)
	d.ledsDirty = false

	// Shift down: no event, latch set, LED driven white.
	ctx := event.NewContext()
	require.NoError(t, d.processButtons(buttonReport([4]byte{1 << 0}, 0)[1:], ctx))
	assert.Empty(t, drain(ctx))
	assert.True(t, d.ShiftPressed())
	assert.Equal(t, byte(0xFF), d.leds[ledShift])
	assert.True(t, d.ledsDirty)

	// Transitions while shift is held carry the modifier.
	ctx = event.NewContext()
	require.NoError(t, d.processButtons(buttonReport([4]byte{1<<0 | 1<<3}, 0)[1:], ctx))
	events := drain(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, event.ButtonChange{Button: event.Play, Pressed: true, Shift: true}, events[0])

	// Shift up: LED driven black, latch cleared.
	ctx = event.NewContext()
	require.NoError(t, d.processButtons(buttonReport([4]byte{1 << 3}, 0)[1:], ctx))
	assert.Empty(t, drain(ctx))
	assert.False(t, d.ShiftPressed())
	assert.Equal(t, byte(0x00), d.leds[ledShift])
}

func TestEncoderDirections(t *testing.T) {
	t.Run("14 15 0 yields two forward steps", func(t *testing.T) {
		d := New(newFakeTransport(), nil, nil)
		d.encoderValue = 14

		for _, v := range []byte{15, 0} {
			ctx := event.NewContext()
			require.NoError(t, d.processButtons(buttonReport([4]byte{}, v)[1:], ctx))
			events := drain(ctx)
			require.Len(t, events, 1)
			assert.Equal(t, event.EncoderChange{Direction: event.Down}, events[0])
		}
	})

	t.Run("0 15 yields one backward step", func(t *testing.T) {
		d := New(newFakeTransport(), nil, nil)

		ctx := event.NewContext()
		require.NoError(t, d.processButtons(buttonReport([4]byte{}, 15)[1:], ctx))
		events := drain(ctx)
		require.Len(t, events, 1)
		assert.Equal(t, event.EncoderChange{Direction: event.Up}, events[0])
	})

	t.Run("unchanged value is silent", func(t *testing.T) {
		d := New(newFakeTransport(), nil, nil)
		d.encoderValue = 7

		ctx := event.NewContext()
		require.NoError(t, d.processButtons(buttonReport([4]byte{}, 7)[1:], ctx))
		assert.Empty(t, drain(ctx))
	})

	t.Run("decrement is backward", func(t *testing.T) {
		d := New(newFakeTransport(), nil, nil)
		d.encoderValue = 7

		ctx := event.NewContext()
		require.NoError(t, d.processButtons(buttonReport([4]byte{}, 6)[1:], ctx))
		events := drain(ctx)
		require.Len(t, events, 1)
		assert.Equal(t, event.EncoderChange{Direction: event.Up}, events[0])
	})
}

func TestPadDecode(t *testing.T) {
	d := New(newFakeTransport(), nil, nil)

	// Below the press threshold and not latched: data stored, no event.
	ctx := event.NewContext()
	require.NoError(t, d.processPads(padReport([2]byte{0x00, 0x21})[1:], ctx))
	assert.Empty(t, drain(ctx))
	assert.Equal(t, uint16(0x100), d.padsData[2])
	assert.False(t, d.padsStatus[2])

	// Full pressure: velocity is the top eight bits of the raw value.
	ctx = event.NewContext()
	require.NoError(t, d.processPads(padReport([2]byte{0xFF, 0x2F})[1:], ctx))
	events := drain(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, event.PadChange{Pad: 2, Velocity: 0xFF}, events[0])
	assert.Equal(t, uint16(0xFFF), d.padsData[2])

	// Release: the latch delivers exactly one zero-velocity event.
	ctx = event.NewContext()
	require.NoError(t, d.processPads(padReport([2]byte{0x00, 0x20})[1:], ctx))
	events = drain(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, event.PadChange{Pad: 2, Velocity: 0}, events[0])

	ctx = event.NewContext()
	require.NoError(t, d.processPads(padReport([2]byte{0x00, 0x20})[1:], ctx))
	assert.Empty(t, drain(ctx))
}

func TestMalformedReportsMutateNothing(t *testing.T) {
	d := New(newFakeTransport(), nil, nil)

	ctx := event.NewContext()
	err := d.processButtons([]byte{0xFF, 0xFF, 0xFF, 0xFF}, ctx)
	require.ErrorIs(t, err, device.ErrInvalidReport)
	assert.Empty(t, drain(ctx))
	assert.Equal(t, [buttonCount]bool{}, d.buttonStates)
	assert.Zero(t, d.encoderValue)

	err = d.processPads(make([]byte, 63), ctx)
	require.ErrorIs(t, err, device.ErrInvalidReport)
	assert.Empty(t, drain(ctx))
	assert.Equal(t, [padCount]uint16{}, d.padsData)
}

func TestPollSamplesPadsOnCadence(t *testing.T) {
	press := padReport([2]byte{0xFF, 0x2F})

	tests := []struct {
		name           string
		reports        int
		expectedEvents int
	}{
		{"only the first of seven buffers counts", 7, 1},
		{"the eighth buffer is sampled again", 8, 2},
		{"thirty-two attempts sample five buffers", 32, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newFakeTransport()
			for i := 0; i < tt.reports; i++ {
				tr.reads = append(tr.reads, press)
			}
			d := New(tr, nil, nil)
			d.phase = phasePoll

			ctx := event.NewContext()
			require.NoError(t, d.Tick(ctx))
			assert.Len(t, drain(ctx), tt.expectedEvents)
		})
	}
}

func TestPollDispatchesButtonReports(t *testing.T) {
	tr := newFakeTransport()
	tr.reads = [][]byte{
		buttonReport([4]byte{1 << 3}, 0),
		{0x7F, 0xAA, 0xBB}, // unknown tag, discarded
		buttonReport([4]byte{}, 0),
	}
	d := New(tr, nil, nil)
	d.phase = phasePoll

	ctx := event.NewContext()
	require.NoError(t, d.Tick(ctx))

	events := drain(ctx)
	require.Len(t, events, 2)
	assert.Equal(t, event.ButtonChange{Button: event.Play, Pressed: true}, events[0])
	assert.Equal(t, event.ButtonChange{Button: event.Play, Pressed: false}, events[1])
	assert.Equal(t, pollAttempts, tr.readCount)
}

func TestPollReadErrorAbortsPhase(t *testing.T) {
	tr := newFakeTransport()
	tr.readErr = errTransport
	d := New(tr, nil, nil)
	d.phase = phasePoll

	err := d.Tick(event.NewContext())
	require.ErrorIs(t, err, errTransport)
	assert.Equal(t, 1, tr.readCount)
	assert.Equal(t, phasePoll, d.phase, "a failed phase is retried")
}
