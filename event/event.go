// Package event defines the decoded input events produced by controller
// drivers and the queue callers drain each tick.
package event

// Direction reports which way the main encoder turned.
//
// The mapping follows the hardware: incrementing positions (including the
// 15 -> 0 wrap) are reported as Down, the 0 -> 15 wrap and all remaining
// transitions as Up.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Button identifies a named control on the device. Unknown is emitted for
// scan slots without an assigned control.
type Button int

const (
	Erase Button = iota
	Rec
	Play
	Grid
	TransportRight
	TransportLeft
	Restart
	MainEncoder
	NoteRepeat
	Sampling
	Browse
	Group
	Main
	BrowseRight
	BrowseLeft
	Nav
	Control
	F3
	F2
	F1
	Mute
	Solo
	Select
	Duplicate
	View
	PadMode
	Pattern
	Scene
	Unknown
)

var buttonNames = [...]string{
	Erase:          "erase",
	Rec:            "rec",
	Play:           "play",
	Grid:           "grid",
	TransportRight: "transport-right",
	TransportLeft:  "transport-left",
	Restart:        "restart",
	MainEncoder:    "main-encoder",
	NoteRepeat:     "note-repeat",
	Sampling:       "sampling",
	Browse:         "browse",
	Group:          "group",
	Main:           "main",
	BrowseRight:    "browse-right",
	BrowseLeft:     "browse-left",
	Nav:            "nav",
	Control:        "control",
	F3:             "f3",
	F2:             "f2",
	F1:             "f1",
	Mute:           "mute",
	Solo:           "solo",
	Select:         "select",
	Duplicate:      "duplicate",
	View:           "view",
	PadMode:        "pad-mode",
	Pattern:        "pattern",
	Scene:          "scene",
	Unknown:        "unknown",
}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "unknown"
	}
	return buttonNames[b]
}

// Event is one decoded state transition. The concrete types are
// ButtonChange, EncoderChange and PadChange.
type Event interface {
	isEvent()
}

// ButtonChange reports a button press or release.
type ButtonChange struct {
	Button  Button
	Pressed bool
	Shift   bool
}

// EncoderChange reports a single step of the main encoder.
type EncoderChange struct {
	Encoder   uint8
	Direction Direction
	Shift     bool
}

// PadChange reports pad pressure. Velocity is zero exactly once when a
// pressed pad is released.
type PadChange struct {
	Pad      uint8
	Velocity uint8
	Shift    bool
}

func (ButtonChange) isEvent()  {}
func (EncoderChange) isEvent() {}
func (PadChange) isEvent()     {}

// Context is the ordered event queue populated by a Source during a tick
// and drained by the caller afterwards.
type Context struct {
	events []Event
}

// NewContext returns an empty event queue.
func NewContext() *Context {
	return &Context{}
}

// Add appends an event to the queue.
func (c *Context) Add(e Event) {
	c.events = append(c.events, e)
}

// Next removes and returns the oldest queued event. The second return
// value is false when the queue is empty.
func (c *Context) Next() (Event, bool) {
	if len(c.events) == 0 {
		return nil, false
	}
	e := c.events[0]
	c.events = c.events[1:]
	return e, true
}

// Len returns the number of queued events.
func (c *Context) Len() int {
	return len(c.events)
}

// Source generates events. Drivers implement it with their tick function.
type Source interface {
	// Tick performs one unit of device work and appends any decoded
	// events to ctx.
	Tick(ctx *Context) error
}

// Handler consumes events. Handle reports whether the event was handled.
type Handler interface {
	Handle(e Event) bool
}
