package link

// Serializer scans framebuffers out over a set of Lines.
// It holds no state besides the lines; a zero Serializer is not usable.
type Serializer struct {
	lines Lines
}

// NewSerializer returns a Serializer driving lines.
func NewSerializer(lines Lines) *Serializer {
	return &Serializer{lines: lines}
}

// PaintScreen sends image to the display followed by the control word
// (upper, lower). If clear is true image is zeroed once the transfer is done.
//
// Page t, bit-plane r becomes physical line 8t+r. Each line carries the 128
// image columns two at a time, DataA the even column and DataB the odd one,
// then BlankPulses of padding so the display's scan position stays aligned
// with its 240 pixel line.
func (s *Serializer) PaintScreen(image *Buffer, clear bool, lower, upper uint8) {
	l := s.lines
	l.Set(CommandSelect, true)

	for t := 0; t < Pages; t++ {
		for r := uint(0); r < 8; r++ {
			bitMask := byte(1) << r
			a := t * Width
			for end := a + Width; a < end; a += 2 {
				l.Set(DataA, image[a]&bitMask != 0)
				l.Set(DataB, image[a+1]&bitMask != 0)
				l.PulseClock()
			}

			l.Set(DataA, false)
			l.Set(DataB, false)
			for i := 0; i < BlankPulses; i++ {
				l.PulseClock()
			}
		}
	}

	l.Set(CommandSelect, false)
	s.shiftOut(upper)
	s.shiftOut(lower)

	if clear {
		image.Clear()
	}
}

// shiftOut sends b most significant bits first, two bits per clock pulse.
func (s *Serializer) shiftOut(b uint8) {
	for i := 0; i < 4; i++ {
		s.lines.Set(DataA, b&0x80 != 0)
		s.lines.Set(DataB, b&0x40 != 0)
		s.lines.PulseClock()
		b <<= 2
	}
}

// Blank darkens the whole physical display. The buffer is not involved.
func (s *Serializer) Blank() {
	s.fill(false)
}

// AllPixelsOn lights every pixel of the display, ignoring any buffer
// contents. AllPixelsOn(false) does nothing: repaint the buffer with
// PaintScreen to return to normal display.
func (s *Serializer) AllPixelsOn(on bool) {
	if on {
		s.fill(true)
	}
}

func (s *Serializer) fill(level bool) {
	l := s.lines
	l.Set(DataA, level)
	l.Set(DataB, level)

	l.Set(CommandSelect, true)
	for i := 0; i < FillPulses; i++ {
		l.PulseClock()
	}

	l.Set(CommandSelect, false)
	l.PulseClock()
}
