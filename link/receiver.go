package link

// Receiver models the display controller at the far end of the link. It
// implements Lines, so a Serializer can drive it directly, and keeps the
// physical 240x160 pixel array plus the last control word received.
//
// Pixel data is latched on each rising clock edge while CommandSelect is
// high; raising CommandSelect restarts the scan at the top left corner.
// While CommandSelect is low each rising edge shifts two bits into the
// control word, DataA first.
type Receiver struct {
	pixels [PhysicalWidth * PhysicalHeight]bool

	data    bool // level of CommandSelect
	a, b    bool
	clock   bool
	pos     int
	control uint16
	bits    int

	upper, lower uint8
	frames       int
	pulses       int
}

// Set implements Lines.
func (rx *Receiver) Set(line Line, high bool) {
	switch line {
	case DataA:
		rx.a = high
	case DataB:
		rx.b = high
	case Clock:
		if high && !rx.clock {
			rx.latch()
		}
		rx.clock = high
	case CommandSelect:
		if high && !rx.data {
			rx.pos = 0
		} else if !high && rx.data {
			rx.control, rx.bits = 0, 0
		}
		rx.data = high
	default:
		panic("link: invalid line")
	}
}

// PulseClock implements Lines.
func (rx *Receiver) PulseClock() {
	rx.clock = false
	rx.latch()
	rx.clock = true
}

func (rx *Receiver) latch() {
	rx.pulses++
	if rx.data {
		if rx.pos < FillPulses {
			rx.pixels[2*rx.pos] = rx.a
			rx.pixels[2*rx.pos+1] = rx.b
			rx.pos++
		}
		return
	}
	rx.control <<= 2
	if rx.a {
		rx.control |= 2
	}
	if rx.b {
		rx.control |= 1
	}
	rx.bits += 2
	if rx.bits == 16 {
		rx.upper = uint8(rx.control >> 8)
		rx.lower = uint8(rx.control)
		rx.frames++
		rx.control, rx.bits = 0, 0
	}
}

// Pixel reports whether the physical pixel at (x, y) is lit.
func (rx *Receiver) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= PhysicalWidth || y >= PhysicalHeight {
		panic(badCoordinate)
	}
	return rx.pixels[y*PhysicalWidth+x]
}

// Image copies the top left 128x64 region of the display into dst, using
// the same page layout as the buffer that was painted.
func (rx *Receiver) Image(dst *Buffer) {
	for y := int16(0); y < Height; y++ {
		for x := int16(0); x < Width; x++ {
			dst.Set(x, y, rx.Pixel(int(x), int(y)))
		}
	}
}

// Control returns the last complete control word.
func (rx *Receiver) Control() (upper, lower uint8) {
	return rx.upper, rx.lower
}

// Frames returns the number of complete control words received, which is
// the number of PaintScreen calls seen.
func (rx *Receiver) Frames() int { return rx.frames }

// Pulses returns the total number of clock pulses latched.
func (rx *Receiver) Pulses() int { return rx.pulses }
