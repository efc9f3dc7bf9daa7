package link

import (
	"math/rand"
	"testing"
)

// pulse is the state of the data lines at one rising clock edge.
type pulse struct {
	a, b, command bool
}

// recorder is a Lines implementation that logs every latched pulse.
type recorder struct {
	levels [4]bool
	pulses []pulse
	sets   int
}

func (r *recorder) Set(line Line, high bool) {
	r.levels[line] = high
	r.sets++
}

func (r *recorder) PulseClock() {
	r.pulses = append(r.pulses, pulse{
		a:       r.levels[DataA],
		b:       r.levels[DataB],
		command: r.levels[CommandSelect],
	})
}

func randomBuffer(seed int64) *Buffer {
	rng := rand.New(rand.NewSource(seed))
	var buf Buffer
	rng.Read(buf[:])
	return &buf
}

func TestPaintScreenPulseCount(t *testing.T) {
	full := new(Buffer)
	full.Fill(true)
	for name, buf := range map[string]*Buffer{
		"empty":  new(Buffer),
		"full":   full,
		"random": randomBuffer(1),
	} {
		var rec recorder
		NewSerializer(&rec).PaintScreen(buf, false, 0xf3, 0x21)
		const expected = 8*8*(64+56) + 8
		if len(rec.pulses) != expected {
			t.Errorf("%s: pulse count mismatch got!=expected: %d != %d", name, len(rec.pulses), expected)
		}
		if PixelPulses+ControlPulses != expected {
			t.Errorf("%s: geometry constants disagree with pulse count", name)
		}
	}
}

func TestPaintScreenBitOrder(t *testing.T) {
	buf := randomBuffer(2)
	var rec recorder
	NewSerializer(&rec).PaintScreen(buf, false, 0, 0)

	for p, got := range rec.pulses[:PixelPulses] {
		if !got.command {
			t.Fatalf("pulse %d: command select low during pixel phase", p)
		}
		line, c := p/LinePulses, p%LinePulses
		page, r := line/8, uint(line%8)
		if c >= ActivePulses {
			if got.a || got.b {
				t.Errorf("pulse %d: data lines not cleared in blanking columns", p)
			}
			continue
		}
		offset := page*Width + 2*c
		wantA := buf[offset]&(1<<r) != 0
		wantB := buf[offset+1]&(1<<r) != 0
		if got.a != wantA || got.b != wantB {
			t.Errorf("page %d plane %d column %d mismatch got!=expected: (%v,%v) != (%v,%v)",
				page, r, c, got.a, got.b, wantA, wantB)
		}
	}
}

func TestPaintScreenControlWord(t *testing.T) {
	tests := []struct {
		upper, lower uint8
	}{
		{0x00, 0x00},
		{0xf5, 0xaa},
		{0x07, 0xff},
		{0x93, 0x1c},
	}
	for _, tc := range tests {
		var rec recorder
		NewSerializer(&rec).PaintScreen(new(Buffer), false, tc.lower, tc.upper)

		ctrl := rec.pulses[PixelPulses:]
		if len(ctrl) != ControlPulses {
			t.Fatalf("control pulses mismatch got!=expected: %d != %d", len(ctrl), ControlPulses)
		}
		var word uint16
		for i, p := range ctrl {
			if p.command {
				t.Errorf("control pulse %d sent with command select high", i)
			}
			word <<= 2
			if p.a {
				word |= 2
			}
			if p.b {
				word |= 1
			}
		}
		want := uint16(tc.upper)<<8 | uint16(tc.lower)
		if word != want {
			t.Errorf("control word mismatch got!=expected: %#04x != %#04x", word, want)
		}
	}
}

func TestPaintScreenClear(t *testing.T) {
	buf := randomBuffer(3)
	orig := *buf
	s := NewSerializer(new(recorder))

	s.PaintScreen(buf, false, 0, 0)
	if *buf != orig {
		t.Error("buffer modified with clear=false")
	}

	s.PaintScreen(buf, true, 0, 0)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared: %#x", i, b)
		}
	}
}

func TestReceiverRoundTrip(t *testing.T) {
	var rx Receiver
	s := NewSerializer(&rx)
	for seed := int64(10); seed < 13; seed++ {
		buf := randomBuffer(seed)
		s.PaintScreen(buf, false, uint8(seed), 0xf0|uint8(seed))

		var got Buffer
		rx.Image(&got)
		if got != *buf {
			t.Errorf("seed %d: received image differs from painted buffer", seed)
		}
		upper, lower := rx.Control()
		if upper != 0xf0|uint8(seed) || lower != uint8(seed) {
			t.Errorf("seed %d: control mismatch got!=expected: %#x,%#x != %#x,%#x",
				seed, upper, lower, 0xf0|uint8(seed), uint8(seed))
		}
	}
	if rx.Frames() != 3 {
		t.Errorf("frames mismatch got!=expected: %d != 3", rx.Frames())
	}
	// Padding columns stay dark.
	for y := 0; y < Height; y++ {
		for x := Width; x < PhysicalWidth; x++ {
			if rx.Pixel(x, y) {
				t.Fatalf("blanking pixel (%d,%d) lit", x, y)
			}
		}
	}
}

func TestBlank(t *testing.T) {
	var rx Receiver
	s := NewSerializer(&rx)
	s.AllPixelsOn(true)
	s.Blank()
	for y := 0; y < PhysicalHeight; y++ {
		for x := 0; x < PhysicalWidth; x++ {
			if rx.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) lit after Blank", x, y)
			}
		}
	}

	var rec recorder
	NewSerializer(&rec).Blank()
	if len(rec.pulses) != FillPulses+1 {
		t.Errorf("pulse count mismatch got!=expected: %d != %d", len(rec.pulses), FillPulses+1)
	}
	if last := rec.pulses[len(rec.pulses)-1]; last.command {
		t.Error("trailing pulse sent with command select high")
	}
}

func TestAllPixelsOn(t *testing.T) {
	buf := randomBuffer(4)
	orig := *buf

	var rx Receiver
	s := NewSerializer(&rx)
	s.PaintScreen(buf, false, 0, 0)

	var rec recorder
	NewSerializer(&rec).AllPixelsOn(false)
	if rec.sets != 0 || len(rec.pulses) != 0 {
		t.Errorf("AllPixelsOn(false) touched the lines: %d sets, %d pulses", rec.sets, len(rec.pulses))
	}

	s.AllPixelsOn(true)
	for y := 0; y < PhysicalHeight; y++ {
		for x := 0; x < PhysicalWidth; x++ {
			if !rx.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) dark after AllPixelsOn(true)", x, y)
			}
		}
	}
	if *buf != orig {
		t.Fatal("AllPixelsOn modified the buffer")
	}

	s.PaintScreen(buf, false, 0, 0)
	var got Buffer
	rx.Image(&got)
	if got != orig {
		t.Error("repaint did not restore the image")
	}
}

func TestBufferPixels(t *testing.T) {
	var buf Buffer
	buf.Set(0, 0, true)
	buf.Set(127, 63, true)
	buf.Set(5, 9, true)
	buf.Set(-1, 3, true)
	buf.Set(128, 3, true)

	tests := []struct {
		index int
		value byte
	}{
		{0, 0x01},
		{7*Width + 127, 0x80},
		{1*Width + 5, 0x02},
	}
	for _, tc := range tests {
		if buf[tc.index] != tc.value {
			t.Errorf("byte %d mismatch got!=expected: %#x != %#x", tc.index, buf[tc.index], tc.value)
		}
	}
	if !buf.Get(5, 9) || buf.Get(5, 8) {
		t.Error("Get disagrees with Set")
	}
	buf.Set(5, 9, false)
	if buf.Get(5, 9) {
		t.Error("pixel still on after clearing")
	}

	defer func() {
		if recover() == nil {
			t.Error("Get out of range did not panic")
		}
	}()
	buf.Get(0, Height)
}
