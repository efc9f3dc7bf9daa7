// Package tone implements the square-wave tone sequencer.
//
// The sequencer owns the two control bytes that the video link carries to
// the sound hardware at the end of every frame: the upper byte holds the
// volume nibble and the top 3 bits of an 11-bit frequency code, the lower
// byte the remaining 8 bits. Tick must be called once per frame.
package tone

// Sentinel values in a tone sequence.
const (
	// Rest silences the output for the duration that follows it.
	Rest uint16 = 0
	// End terminates a sequence.
	End uint16 = 0x8000
)

const (
	volumeMask = 0xf0
	freqMask   = 0x07ff
)

// Mute thresholds. See Config.
const (
	MuteAtZero = 1
	EarlyMute  = 2
)

// Config holds the per-board sequencer settings.
type Config struct {
	// MuteThreshold is the remaining tick count below which a playing note
	// is muted. MuteAtZero (the default when zero) mutes exactly when the
	// duration runs out; EarlyMute silences the last tick as well, which
	// avoids an audible click on boards whose sound channel restarts late.
	MuteThreshold uint8
}

// Sequencer plays single tones or sequences of (frequency, duration) pairs.
// The zero value is a silent sequencer using MuteAtZero.
type Sequencer struct {
	upper, lower uint8
	duration     uint16
	playing      bool

	seq    []uint16
	cursor int

	threshold uint16
}

// New returns a silent Sequencer.
func New(cfg Config) *Sequencer {
	return &Sequencer{threshold: uint16(cfg.MuteThreshold)}
}

// Tone plays freq for dur ticks, cancelling anything already playing.
// Bits of freq above the 11-bit code are dropped. A zero duration is
// muted on the next tick.
func (s *Sequencer) Tone(freq, dur uint16) {
	s.seq = nil
	s.load(freq)
	s.duration = dur
	s.playing = true
}

// Tones starts playing seq, a list of frequency and duration pairs ended by
// End. The first note is loaded immediately. The sequencer reads seq as it
// plays, so the caller must not modify it until playback is over. A missing
// End is treated as if the sequence ended at the slice end.
func (s *Sequencer) Tones(seq []uint16) {
	s.seq = seq
	s.cursor = 0
	s.duration = 0
	s.playing = true
	s.next()
}

// Stop mutes the output and abandons any sequence.
func (s *Sequencer) Stop() {
	s.seq = nil
	s.duration = 0
	s.mute()
	s.playing = false
}

// Tick advances the sequencer by one frame.
func (s *Sequencer) Tick() {
	if s.duration == 0 {
		if s.seq != nil {
			s.next()
			return
		}
		s.mute()
		s.playing = false
		return
	}

	s.duration--
	if s.duration < s.muteThreshold() {
		s.mute()
		if s.duration == 0 && s.seq == nil {
			s.playing = false
		}
	}
}

// next loads the note at the cursor.
func (s *Sequencer) next() {
	if s.cursor >= len(s.seq) || s.seq[s.cursor] == End {
		s.seq = nil
		s.mute()
		s.playing = false
		return
	}
	freq := s.seq[s.cursor]
	s.cursor++
	var dur uint16
	if s.cursor < len(s.seq) {
		dur = s.seq[s.cursor]
		s.cursor++
	}

	if freq == Rest {
		s.mute()
	} else {
		s.load(freq)
	}
	s.duration = dur
}

func (s *Sequencer) load(freq uint16) {
	s.upper, s.lower = Encode(freq, true)
}

func (s *Sequencer) mute() {
	s.upper &^= volumeMask
}

func (s *Sequencer) muteThreshold() uint16 {
	if s.threshold == 0 {
		return MuteAtZero
	}
	return s.threshold
}

// Control returns the control bytes to send with the next frame.
func (s *Sequencer) Control() (upper, lower uint8) {
	return s.upper, s.lower
}

// Playing reports whether a tone or sequence is in progress.
func (s *Sequencer) Playing() bool { return s.playing }

// Duration returns the ticks left on the current note.
func (s *Sequencer) Duration() uint16 { return s.duration }

// Muted reports whether the volume nibble is clear.
func (s *Sequencer) Muted() bool { return s.upper&volumeMask == 0 }

// Encode packs an 11-bit frequency code into the control byte pair, with
// the volume nibble at full when on is true.
func Encode(freq uint16, on bool) (upper, lower uint8) {
	upper = uint8(freq>>8) & 0x07
	if on {
		upper |= volumeMask
	}
	return upper, uint8(freq)
}

// Decode splits a control byte pair into its 4-bit volume and 11-bit
// frequency code, as the sound hardware sees them.
func Decode(upper, lower uint8) (volume uint8, freq uint16) {
	return upper >> 4, (uint16(upper)<<8 | uint16(lower)) & freqMask
}

// Hz returns the pitch produced by a frequency code. The sound channel
// divides a 131072 Hz clock by (2048 - code).
func Hz(freq uint16) float64 {
	return 131072 / float64(2048-int(freq&freqMask))
}
