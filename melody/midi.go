package melody

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/tinygo-org/abgba/tone"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDIOptions selects what ReadMIDI extracts.
type MIDIOptions struct {
	// Track is the track to read; negative reads all tracks.
	Track int
	// Channel restricts notes to one MIDI channel; negative accepts all.
	Channel int
	// FrameRate converts time to ticks. Zero means DefaultFrameRate.
	FrameRate int
}

type noteEvent struct {
	us  int64
	on  bool
	key uint8
}

// ReadMIDI converts a Standard MIDI File into a tone sequence. The sequencer
// is monophonic: a note starting while another sounds cuts the earlier one
// short. Gaps between notes become rests.
func ReadMIDI(r io.Reader, opts MIDIOptions) ([]uint16, error) {
	rate := opts.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	var tracks []int
	if opts.Track >= 0 {
		tracks = append(tracks, opts.Track)
	}

	var events []noteEvent
	rd := smf.ReadTracksFrom(r, tracks...).Do(func(ev smf.TrackEvent) {
		var ch, key, vel uint8
		msg := midi.Message(ev.Message)
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			if opts.Channel < 0 || int(ch) == opts.Channel {
				events = append(events, noteEvent{us: ev.AbsMicroSeconds, on: true, key: key})
			}
		case msg.GetNoteEnd(&ch, &key):
			if opts.Channel < 0 || int(ch) == opts.Channel {
				events = append(events, noteEvent{us: ev.AbsMicroSeconds, key: key})
			}
		}
	})
	if err := rd.Error(); err != nil {
		return nil, fmt.Errorf("melody: %w", err)
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].us < events[j].us })

	ticks := func(us int64) int64 {
		return int64(math.Round(float64(us) * float64(rate) / 1e6))
	}
	// An entry of duration d occupies d+1 frames on the sequencer: d ticks
	// counting down plus the tick that loads the next entry.
	var seq []uint16
	add := func(freq uint16, from, to int64) {
		for n := ticks(to) - ticks(from); n > 0; n -= 0x10000 {
			seq = append(seq, freq, uint16(min(n, 0x10000)-1))
		}
	}

	var (
		sounding bool
		key      uint8
		start    int64
		last     int64
	)
	for _, ev := range events {
		switch {
		case ev.on:
			if sounding {
				add(KeyCode(key), start, ev.us)
			} else {
				add(tone.Rest, last, ev.us)
			}
			sounding, key, start = true, ev.key, ev.us
		case sounding && ev.key == key:
			add(KeyCode(key), start, ev.us)
			sounding, last = false, ev.us
		}
	}
	if len(seq) == 0 {
		return nil, ErrEmpty
	}
	return append(seq, tone.End), nil
}

// KeyCode returns the frequency code closest to the pitch of a MIDI key.
// Pitches below the range of the sound channel map to its lowest note.
func KeyCode(key uint8) uint16 {
	hz := 440 * math.Pow(2, (float64(key)-69)/12)
	code := math.Round(2048 - 131072/hz)
	if code < 1 {
		return 1
	}
	if code > 2047 {
		return 2047
	}
	return uint16(code)
}
