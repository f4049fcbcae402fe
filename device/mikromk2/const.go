package mikromk2

import "github.com/maschinekit/maschine/event"

// USB identity of the Maschine Mikro MK2.
const (
	VendorID  = 0x17CC
	ProductID = 0x1200
)

// Output report addresses.
const (
	ledAddress     = 0x80
	displayAddress = 0xE0
)

// Input report tags.
const (
	tagButtons = 0x01
	tagPads    = 0x20
)

const (
	ledCount    = 78
	buttonCount = 45
	padCount    = 16

	inputBufferSize = 512

	// The device floods pad-scan reports; only every seventh buffer
	// within the 32-attempt poll loop carries a usable sample. Both
	// constants are a timing quirk of the hardware and must not be
	// changed independently.
	pollAttempts   = 32
	padSampleEvery = 7

	// A pad counts as pressed above this 12-bit pressure value.
	padPressThreshold = 512
)

// LED register slots. The Group slot and the sixteen pad slots are
// RGB-capable and occupy three consecutive bytes each; all others hold a
// single monochrome byte.
const (
	ledF1             = 0x00
	ledF2             = 0x01
	ledF3             = 0x02
	ledControl        = 0x03
	ledNav            = 0x04
	ledBrowseLeft     = 0x05
	ledBrowseRight    = 0x06
	ledMain           = 0x07
	ledGroup          = 0x08
	ledBrowse         = 0x0B
	ledSampling       = 0x0C
	ledNoteRepeat     = 0x0D
	ledRestart        = 0x0E
	ledTransportLeft  = 0x0F
	ledTransportRight = 0x10
	ledGrid           = 0x11
	ledPlay           = 0x12
	ledRec            = 0x13
	ledErase          = 0x14
	ledShift          = 0x15
	ledScene          = 0x16
	ledPattern        = 0x17
	ledPadMode        = 0x18
	ledView           = 0x19
	ledDuplicate      = 0x1A
	ledSelect         = 0x1B
	ledSolo           = 0x1C
	ledMute           = 0x1D
	ledPad13          = 0x1E
	ledPad14          = 0x21
	ledPad15          = 0x24
	ledPad16          = 0x27
	ledPad09          = 0x2A
	ledPad10          = 0x2D
	ledPad11          = 0x30
	ledPad12          = 0x33
	ledPad05          = 0x36
	ledPad06          = 0x39
	ledPad07          = 0x3C
	ledPad08          = 0x3F
	ledPad01          = 0x42
	ledPad02          = 0x45
	ledPad03          = 0x48
	ledPad04          = 0x4B
)

// Button scan slots in the bitmask of a button report.
const (
	scanShift = 0x00
	scanNone  = 0x20
)

// scanButtons maps a scan slot to its logical button. Slots without an
// assigned control decode to Unknown; slot 0 is the Shift modifier and is
// handled before this table is consulted.
var scanButtons = [scanNone]event.Button{
	0x00: event.Unknown, // shift, never emitted
	0x01: event.Erase,
	0x02: event.Rec,
	0x03: event.Play,
	0x04: event.Grid,
	0x05: event.TransportRight,
	0x06: event.TransportLeft,
	0x07: event.Restart,
	0x08: event.Unknown,
	0x09: event.Unknown,
	0x0A: event.Unknown,
	0x0B: event.MainEncoder,
	0x0C: event.NoteRepeat,
	0x0D: event.Sampling,
	0x0E: event.Browse,
	0x0F: event.Group,
	0x10: event.Main,
	0x11: event.BrowseRight,
	0x12: event.BrowseLeft,
	0x13: event.Nav,
	0x14: event.Control,
	0x15: event.F3,
	0x16: event.F2,
	0x17: event.F1,
	0x18: event.Mute,
	0x19: event.Solo,
	0x1A: event.Select,
	0x1B: event.Duplicate,
	0x1C: event.View,
	0x1D: event.PadMode,
	0x1E: event.Pattern,
	0x1F: event.Scene,
}

// buttonLEDs maps a logical button to its LED slot. Buttons absent from
// the table (the encoder push and Unknown) have no LED.
var buttonLEDs = map[event.Button]uint8{
	event.Erase:          ledErase,
	event.Rec:            ledRec,
	event.Play:           ledPlay,
	event.Grid:           ledGrid,
	event.TransportRight: ledTransportRight,
	event.TransportLeft:  ledTransportLeft,
	event.Restart:        ledRestart,
	event.NoteRepeat:     ledNoteRepeat,
	event.Sampling:       ledSampling,
	event.Browse:         ledBrowse,
	event.Group:          ledGroup,
	event.Main:           ledMain,
	event.BrowseRight:    ledBrowseRight,
	event.BrowseLeft:     ledBrowseLeft,
	event.Nav:            ledNav,
	event.Control:        ledControl,
	event.F3:             ledF3,
	event.F2:             ledF2,
	event.F1:             ledF1,
	event.Mute:           ledMute,
	event.Solo:           ledSolo,
	event.Select:         ledSelect,
	event.Duplicate:      ledDuplicate,
	event.View:           ledView,
	event.PadMode:        ledPadMode,
	event.Pattern:        ledPattern,
	event.Scene:          ledScene,
}

// padLEDs maps a logical pad (0-15) to its LED slot. The physical wiring
// groups pads in reverse row order relative to their logical numbering.
var padLEDs = [padCount]uint8{
	ledPad13, ledPad14, ledPad15, ledPad16,
	ledPad09, ledPad10, ledPad11, ledPad12,
	ledPad05, ledPad06, ledPad07, ledPad08,
	ledPad01, ledPad02, ledPad03, ledPad04,
}
