// Package link implements the bit-serial video link between the handheld
// core and its display controller.
//
// The link has four wires: two data lines carrying one pixel each per clock
// pulse, the clock itself (latched on the rising edge) and a data/command
// select line. A frame is the 128x64 monochrome framebuffer scanned out one
// bit-plane at a time, each scan line padded to the physical width of the
// display, followed by a 16-bit control word that carries the sound state.
package link

// Line identifies one of the four wires of the link.
type Line uint8

const (
	DataA Line = iota
	DataB
	Clock
	CommandSelect
)

func (l Line) String() string {
	switch l {
	case DataA:
		return "DataA"
	case DataB:
		return "DataB"
	case Clock:
		return "Clock"
	case CommandSelect:
		return "CommandSelect"
	}
	return "Line(?)"
}

// Lines is the minimal capability a board must provide to drive the link.
// Implementations must not block or yield: the scan is timing critical and
// must run as one uninterrupted unit.
type Lines interface {
	// Set drives line to the given level.
	Set(line Line, high bool)
	// PulseClock drives the clock low and then high, latching the data lines.
	PulseClock()
}

// Geometry of the link.
const (
	// Width and Height of the logical framebuffer in pixels.
	Width  = 128
	Height = 64
	// BufferSize is the framebuffer length in bytes: 8 pages of 128 columns.
	BufferSize = Width * Height / 8

	Pages = Height / 8

	// PhysicalWidth is the fixed number of pixels in one scan line of the
	// display. Each clock pulse carries two pixels.
	PhysicalWidth  = 240
	PhysicalHeight = 160

	// ActivePulses and BlankPulses make up one scan line.
	ActivePulses = Width / 2
	BlankPulses  = (PhysicalWidth - Width) / 2
	LinePulses   = ActivePulses + BlankPulses

	// PixelPulses is the number of clock pulses in the pixel phase of PaintScreen.
	PixelPulses = Height * LinePulses
	// ControlPulses is the number of clock pulses carrying the control word.
	ControlPulses = 8

	// FillPulses covers the whole physical frame; used by Blank and AllPixelsOn.
	FillPulses = PhysicalWidth * PhysicalHeight / 2
)
