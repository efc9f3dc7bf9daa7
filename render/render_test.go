package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/tinygo-org/abgba/tone"
)

func TestSamples(t *testing.T) {
	seq := []uint16{tone.NoteA5, 2, tone.Rest, 2, tone.End}
	cfg := Config{SampleRate: 6000, FrameRate: 60}
	data, err := Samples(seq, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// A5 loaded, 2 -> 1, 1 -> 0 (muted), rest, 2 -> 1, 1 -> 0, End: 6 frames.
	const perFrame = 100
	if len(data) != 6*perFrame {
		t.Fatalf("sample count mismatch got!=expected: %d != %d", len(data), 6*perFrame)
	}

	// The first two frames carry a 440 Hz square wave.
	crossings := 0
	for i := 1; i < 2*perFrame; i++ {
		if data[i] == 0 {
			t.Fatalf("silent sample %d while note sounds", i)
		}
		if (data[i] > 0) != (data[i-1] > 0) {
			crossings++
		}
	}
	// 440 Hz over 1/30 s is about 14.7 periods, two edges each.
	if crossings < 27 || crossings > 31 {
		t.Errorf("edge count out of range: %d", crossings)
	}
	for i := 2 * perFrame; i < len(data); i++ {
		if data[i] != 0 {
			t.Fatalf("sample %d audible after mute", i)
		}
	}
}

func TestSamplesTooLong(t *testing.T) {
	seq := []uint16{tone.NoteC4, 1000, tone.End}
	if _, err := Samples(seq, Config{MaxFrames: 10}); err != ErrTooLong {
		t.Errorf("error mismatch got!=expected: %v != %v", err, ErrTooLong)
	}
}

func TestWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	seq := []uint16{tone.NoteC5, 30, tone.End}
	if err := WAV(f, seq, Config{}); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	f, err = os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("not a valid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if dec.SampleRate != 22050 || dec.NumChans != 1 || dec.BitDepth != 16 {
		t.Errorf("format mismatch: %d Hz, %d channels, %d bits", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
	// 31 frames: 30 loaded or counting down plus the one that consumes End.
	expected := 31 * 22050 / 60
	if len(buf.Data) != expected {
		t.Errorf("sample count mismatch got!=expected: %d != %d", len(buf.Data), expected)
	}
}
