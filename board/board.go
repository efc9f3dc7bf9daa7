// Package board ties the video link, the tone sequencer and the buttons of
// one handheld into a single Core, the way sketches use them.
//
// Target specific files supply the pin bindings; on a host the Core can be
// built with New over any link.Lines implementation.
package board

import (
	"errors"
	"image/color"

	"github.com/tinygo-org/abgba/link"
	"github.com/tinygo-org/abgba/tone"
	"tinygo.org/x/drivers"
)

// Display size in pixels.
const (
	Width  = link.Width
	Height = link.Height
)

var (
	ErrPinConflict = errors.New("board: pin assigned twice")
	ErrRotation    = errors.New("board: unsupported rotation")
)

// Config holds the settings that differ between board revisions.
type Config struct {
	Sound tone.Config
}

// ButtonReader returns the current state of the buttons.
type ButtonReader interface {
	ReadButtons() Buttons
}

// Core is one handheld: a framebuffer, the link that paints it and the
// sequencer whose state rides along with every frame.
type Core struct {
	Buffer link.Buffer

	screen   *link.Serializer
	sound    *tone.Sequencer
	buttons  ButtonReader
	rotation drivers.Rotation
}

var _ drivers.Displayer = (*Core)(nil)

// New returns a Core driving lines. buttons may be nil, in which case no
// button ever reads as pressed.
func New(lines link.Lines, buttons ButtonReader, cfg Config) *Core {
	return &Core{
		screen:  link.NewSerializer(lines),
		sound:   tone.New(cfg.Sound),
		buttons: buttons,
	}
}

// Size implements drivers.Displayer.
func (c *Core) Size() (x, y int16) {
	return Width, Height
}

// SetPixel implements drivers.Displayer. Any colour other than black turns
// the pixel on.
func (c *Core) SetPixel(x, y int16, col color.RGBA) {
	if c.rotation == drivers.Rotation180 {
		x, y = Width-1-x, Height-1-y
	}
	c.Buffer.Set(x, y, col.R|col.G|col.B != 0)
}

// Display implements drivers.Displayer. It paints the buffer without
// clearing it and never fails.
func (c *Core) Display() error {
	c.paint(false)
	return nil
}

// SetRotation sets the orientation used by SetPixel. Only Rotation0 and
// Rotation180 fit a 128x64 panel.
func (c *Core) SetRotation(rotation drivers.Rotation) error {
	switch rotation {
	case drivers.Rotation0, drivers.Rotation180:
		c.rotation = rotation
		return nil
	}
	return ErrRotation
}

// Rotation returns the current orientation.
func (c *Core) Rotation() drivers.Rotation { return c.rotation }

// Update finishes a frame: the buffer is painted together with the current
// sound state, optionally cleared, and the sequencer advances by one tick.
func (c *Core) Update(clear bool) {
	c.paint(clear)
	c.sound.Tick()
}

func (c *Core) paint(clear bool) {
	upper, lower := c.sound.Control()
	c.screen.PaintScreen(&c.Buffer, clear, lower, upper)
}

// Blank darkens the display without touching the buffer.
func (c *Core) Blank() { c.screen.Blank() }

// AllPixelsOn lights the whole display without touching the buffer. Call
// Display to return to the buffer contents.
func (c *Core) AllPixelsOn(on bool) { c.screen.AllPixelsOn(on) }

// Tone plays a single note for dur frames.
func (c *Core) Tone(freq, dur uint16) { c.sound.Tone(freq, dur) }

// Tones plays a sequence of notes terminated by tone.End.
func (c *Core) Tones(seq []uint16) { c.sound.Tones(seq) }

// NoTone silences the sound.
func (c *Core) NoTone() { c.sound.Stop() }

// Playing reports whether a tone is in progress.
func (c *Core) Playing() bool { return c.sound.Playing() }

// Buttons polls the buttons.
func (c *Core) Buttons() Buttons {
	if c.buttons == nil {
		return 0
	}
	return c.buttons.ReadButtons()
}
