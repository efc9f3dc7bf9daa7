// Command abtone converts melodies into tone sequences for sketches and
// renders them to WAV for listening on a desktop.
//
//	abtone -o theme.wav theme.mid
//	abtone -go theme -o /dev/null theme.txt
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tinygo-org/abgba/melody"
	"github.com/tinygo-org/abgba/render"
	"github.com/tinygo-org/abgba/tone"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("abtone: ")

	var (
		out     = flag.String("o", "", "write rendered audio to this WAV file")
		track   = flag.Int("track", -1, "MIDI track to read (-1 for all)")
		channel = flag.Int("channel", -1, "MIDI channel to read (-1 for all)")
		fps     = flag.Int("fps", melody.DefaultFrameRate, "sequencer ticks per second")
		rate    = flag.Int("rate", 22050, "WAV sample rate")
		early   = flag.Bool("early", false, "mute one tick before a note ends")
		goName  = flag.String("go", "", "print the sequence as a Go variable with this name")
		text    = flag.Bool("text", false, "print the sequence in text form")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: abtone [flags] melody.{mid,txt}\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	seq, err := load(flag.Arg(0), melody.MIDIOptions{Track: *track, Channel: *channel, FrameRate: *fps})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d notes, %d frames", (len(seq)-1)/2, frames(seq))

	if *goName != "" {
		fmt.Print(melody.GoLiteral(*goName, seq))
	}
	if *text {
		fmt.Println(melody.Format(seq))
	}
	if *out == "" {
		return
	}

	cfg := render.Config{SampleRate: *rate, FrameRate: *fps}
	if *early {
		cfg.Sound.MuteThreshold = tone.EarlyMute
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WAV(f, seq, cfg); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}

func load(path string, opts melody.MIDIOptions) ([]uint16, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return melody.ReadMIDI(f, opts)
	default:
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return melody.ParseText(string(src))
	}
}

// frames sums the note durations of seq.
func frames(seq []uint16) int {
	n := 0
	for i := 1; i < len(seq); i += 2 {
		n += int(seq[i])
	}
	return n
}
