package link

const badCoordinate = "link: pixel coordinate out of range"

// Buffer is a page-addressed monochrome framebuffer. Byte x of page p holds
// the pixels (x, 8p) .. (x, 8p+7), bit 0 being the topmost.
type Buffer [BufferSize]byte

// Set turns the pixel at (x, y) on or off. Out of range coordinates are
// ignored, like drawing past the screen edge.
func (b *Buffer) Set(x, y int16, on bool) {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return
	}
	i := int(y/8)*Width + int(x)
	mask := byte(1) << (y % 8)
	if on {
		b[i] |= mask
	} else {
		b[i] &^= mask
	}
}

// Get reports whether the pixel at (x, y) is on. It panics if the
// coordinate is outside the buffer.
func (b *Buffer) Get(x, y int16) bool {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		panic(badCoordinate)
	}
	return b[int(y/8)*Width+int(x)]&(1<<(y%8)) != 0
}

// Fill sets every pixel on or off.
func (b *Buffer) Fill(on bool) {
	var v byte
	if on {
		v = 0xff
	}
	for i := range b {
		b[i] = v
	}
}

// Clear turns off every pixel.
func (b *Buffer) Clear() { *b = Buffer{} }
