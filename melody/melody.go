// Package melody builds tone sequences from files, for previewing and for
// embedding in sketches.
package melody

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/tinygo-org/abgba/tone"
)

// DefaultFrameRate is the tick rate of the sequencer on a running sketch.
const DefaultFrameRate = 60

var (
	ErrEmpty    = errors.New("melody: no notes")
	errBadToken = errors.New("melody: expected NOTE:TICKS")
)

// ParseText reads a melody script. Each token is NOTE:TICKS where NOTE is a
// note name (A4, CS5, C#5, REST) or a raw 11-bit frequency code and TICKS is
// the duration in frames. Tokens are separated by white space; # starts a
// comment. The result ends with tone.End.
func ParseText(src string) ([]uint16, error) {
	tokens, err := shlex.Split(src)
	if err != nil {
		return nil, fmt.Errorf("melody: %w", err)
	}
	var seq []uint16
	for _, tok := range tokens {
		name, ticks, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errBadToken, tok)
		}
		freq, err := parseNote(name)
		if err != nil {
			return nil, err
		}
		dur, err := strconv.ParseUint(ticks, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("melody: duration of %q: %w", tok, err)
		}
		seq = append(seq, freq, uint16(dur))
	}
	if len(seq) == 0 {
		return nil, ErrEmpty
	}
	return append(seq, tone.End), nil
}

func parseNote(name string) (uint16, error) {
	if freq, ok := tone.Lookup(name); ok {
		return freq, nil
	}
	code, err := strconv.ParseUint(name, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("melody: unknown note %q", name)
	}
	if code > 0x07ff {
		return 0, fmt.Errorf("melody: frequency code %d out of range", code)
	}
	return uint16(code), nil
}

// Format writes seq back in the text form read by ParseText, using note
// names where the code matches one.
func Format(seq []uint16) string {
	var b strings.Builder
	for i := 0; i+1 < len(seq) && seq[i] != tone.End; i += 2 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if name, ok := tone.Name(seq[i]); ok {
			b.WriteString(name)
		} else {
			b.WriteString(strconv.Itoa(int(seq[i])))
		}
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(seq[i+1])))
	}
	return b.String()
}

// GoLiteral renders seq as a Go slice literal for pasting into a sketch.
func GoLiteral(name string, seq []uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "var %s = []uint16{\n", name)
	for i := 0; i < len(seq); i += 2 {
		if seq[i] == tone.End || i+1 >= len(seq) {
			b.WriteString("\ttone.End,\n")
			break
		}
		fmt.Fprintf(&b, "\t%s, %d,\n", identifier(seq[i]), seq[i+1])
	}
	b.WriteString("}\n")
	return b.String()
}

// identifier names freq the way a sketch would spell it.
func identifier(freq uint16) string {
	if freq == tone.Rest {
		return "tone.Rest"
	}
	if name, ok := tone.Name(freq); ok {
		return "tone.Note" + name
	}
	return strconv.Itoa(int(freq))
}
