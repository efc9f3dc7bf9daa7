// Package render plays a tone sequence through a software model of the
// square-wave sound channel and writes the result as PCM audio.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tinygo-org/abgba/tone"
)

var ErrTooLong = errors.New("render: sequence exceeds MaxFrames")

// Config controls rendering. Zero fields take the defaults below.
type Config struct {
	SampleRate int     // 22050
	FrameRate  int     // 60; one sequencer tick per frame
	Volume     float64 // 0.5 of full scale
	MaxFrames  int     // 10 minutes worth of frames
	Sound      tone.Config
}

func (cfg Config) withDefaults() Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 22050
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 60
	}
	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = 0.5
	}
	if cfg.MaxFrames <= 0 {
		cfg.MaxFrames = cfg.FrameRate * 600
	}
	return cfg
}

// Samples plays seq from its first note until the sequencer reports it has
// finished and returns 16-bit mono samples. Each frame is rendered with the
// control bytes that would be painted with it, then the sequencer ticks.
func Samples(seq []uint16, cfg Config) ([]int, error) {
	cfg = cfg.withDefaults()
	s := tone.New(cfg.Sound)
	s.Tones(seq)

	var (
		data  []int
		phase float64
	)
	for frame := 0; s.Playing(); frame++ {
		if frame >= cfg.MaxFrames {
			return nil, ErrTooLong
		}
		start := frame * cfg.SampleRate / cfg.FrameRate
		end := (frame + 1) * cfg.SampleRate / cfg.FrameRate

		vol, freq := tone.Decode(s.Control())
		step := tone.Hz(freq) / float64(cfg.SampleRate)
		amp := int(float64(vol) / 15 * cfg.Volume * 32767)
		for i := start; i < end; i++ {
			if vol == 0 {
				data = append(data, 0)
				continue
			}
			if phase < 0.5 {
				data = append(data, amp)
			} else {
				data = append(data, -amp)
			}
			phase += step
			phase -= float64(int(phase))
		}
		s.Tick()
	}
	return data, nil
}

// WAV renders seq and writes it to w as a 16-bit mono WAV file.
func WAV(w io.WriteSeeker, seq []uint16, cfg Config) error {
	cfg = cfg.withDefaults()
	data, err := Samples(seq, cfg)
	if err != nil {
		return err
	}
	enc := wav.NewEncoder(w, cfg.SampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: cfg.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("render: wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: wav: %w", err)
	}
	return nil
}
